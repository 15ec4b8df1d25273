package ast

// Visitor dispatches over every concrete node kind the parser produces.
// Each stage that walks the tree (the transformer, primarily) implements
// this once rather than type-switching at every call site.
type Visitor interface {
	VisitChunk(*Chunk)
	VisitBlock(*Block)
	VisitIdentifier(*Identifier)

	VisitBoolLiteral(*BoolLiteral)
	VisitNilLiteral(*NilLiteral)
	VisitNumberLiteral(*NumberLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitNameExpression(*NameExpression)
	VisitVarargs(*Varargs)
	VisitTableLiteral(*TableLiteral)
	VisitFunctionLiteral(*FunctionLiteral)
	VisitParenExpression(*ParenExpression)
	VisitUnaryExpression(*UnaryExpression)
	VisitBinaryExpression(*BinaryExpression)
	VisitTypeAssertionExpression(*TypeAssertionExpression)
	VisitSuffixedExpression(*SuffixedExpression)

	VisitBreakStatement(*BreakStatement)
	VisitCallStatement(*CallStatement)
	VisitDoStatement(*DoStatement)
	VisitWhileStatement(*WhileStatement)
	VisitRepeatStatement(*RepeatStatement)
	VisitNumericForStatement(*NumericForStatement)
	VisitGenericForStatement(*GenericForStatement)
	VisitIfStatement(*IfStatement)
	VisitLocalAssignStatement(*LocalAssignStatement)
	VisitVarAssignStatement(*VarAssignStatement)
	VisitLocalFunctionStatement(*LocalFunctionStatement)
	VisitFunctionAssignStatement(*FunctionAssignStatement)
	VisitReturnStatement(*ReturnStatement)
	VisitTypeDeclarationStatement(*TypeDeclarationStatement)

	VisitReferenceTypeInfo(*ReferenceTypeInfo)
	VisitTableTypeInfo(*TableTypeInfo)
	VisitMetatableTypeInfo(*MetatableTypeInfo)
	VisitCallbackTypeInfo(*CallbackTypeInfo)
	VisitTupleTypeInfo(*TupleTypeInfo)
	VisitUnionTypeInfo(*UnionTypeInfo)
	VisitIntersectionTypeInfo(*IntersectionTypeInfo)
}

// BaseVisitor gives every method a no-op body so a caller that only cares
// about a handful of node kinds can embed it and override selectively.
type BaseVisitor struct{}

func (BaseVisitor) VisitChunk(*Chunk)         {}
func (BaseVisitor) VisitBlock(*Block)         {}
func (BaseVisitor) VisitIdentifier(*Identifier) {}

func (BaseVisitor) VisitBoolLiteral(*BoolLiteral)                     {}
func (BaseVisitor) VisitNilLiteral(*NilLiteral)                       {}
func (BaseVisitor) VisitNumberLiteral(*NumberLiteral)                 {}
func (BaseVisitor) VisitStringLiteral(*StringLiteral)                 {}
func (BaseVisitor) VisitNameExpression(*NameExpression)               {}
func (BaseVisitor) VisitVarargs(*Varargs)                             {}
func (BaseVisitor) VisitTableLiteral(*TableLiteral)                   {}
func (BaseVisitor) VisitFunctionLiteral(*FunctionLiteral)             {}
func (BaseVisitor) VisitParenExpression(*ParenExpression)             {}
func (BaseVisitor) VisitUnaryExpression(*UnaryExpression)             {}
func (BaseVisitor) VisitBinaryExpression(*BinaryExpression)           {}
func (BaseVisitor) VisitTypeAssertionExpression(*TypeAssertionExpression) {}
func (BaseVisitor) VisitSuffixedExpression(*SuffixedExpression)       {}

func (BaseVisitor) VisitBreakStatement(*BreakStatement)               {}
func (BaseVisitor) VisitCallStatement(*CallStatement)                 {}
func (BaseVisitor) VisitDoStatement(*DoStatement)                     {}
func (BaseVisitor) VisitWhileStatement(*WhileStatement)               {}
func (BaseVisitor) VisitRepeatStatement(*RepeatStatement)             {}
func (BaseVisitor) VisitNumericForStatement(*NumericForStatement)     {}
func (BaseVisitor) VisitGenericForStatement(*GenericForStatement)     {}
func (BaseVisitor) VisitIfStatement(*IfStatement)                     {}
func (BaseVisitor) VisitLocalAssignStatement(*LocalAssignStatement)   {}
func (BaseVisitor) VisitVarAssignStatement(*VarAssignStatement)       {}
func (BaseVisitor) VisitLocalFunctionStatement(*LocalFunctionStatement) {}
func (BaseVisitor) VisitFunctionAssignStatement(*FunctionAssignStatement) {}
func (BaseVisitor) VisitReturnStatement(*ReturnStatement)             {}
func (BaseVisitor) VisitTypeDeclarationStatement(*TypeDeclarationStatement) {}

func (BaseVisitor) VisitReferenceTypeInfo(*ReferenceTypeInfo)         {}
func (BaseVisitor) VisitTableTypeInfo(*TableTypeInfo)                 {}
func (BaseVisitor) VisitMetatableTypeInfo(*MetatableTypeInfo)         {}
func (BaseVisitor) VisitCallbackTypeInfo(*CallbackTypeInfo)           {}
func (BaseVisitor) VisitTupleTypeInfo(*TupleTypeInfo)                 {}
func (BaseVisitor) VisitUnionTypeInfo(*UnionTypeInfo)                 {}
func (BaseVisitor) VisitIntersectionTypeInfo(*IntersectionTypeInfo)   {}
