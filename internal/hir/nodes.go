package hir

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/source"
)

// ExprKind distinguishes the five HIR expression shapes spec.md §3 names
// (Literal, TypeAssertion, Table, Function, Suffixed) plus Library (the
// setmetatable intrinsic, §4.3) and a Generic fallback covering every
// other expression form, which carries only its surface type plus
// operand expressions for recursive type propagation.
type ExprKind int

const (
	ExprGeneric ExprKind = iota
	ExprLiteral
	ExprTypeAssertion
	ExprTable
	ExprFunction
	ExprSuffixed
	ExprLibrarySetMetatable
)

// SuffixKind mirrors ast.SuffixKind at the HIR level.
type SuffixKind int

const (
	SuffixDot SuffixKind = iota
	SuffixMethod
	SuffixIndex
	SuffixCall
)

// Suffix is one link of a Suffixed expression's chain.
type Suffix struct {
	SpanInfo source.Span
	Kind     SuffixKind
	Name     string  // SuffixDot / SuffixMethod
	Index    *Expr   // SuffixIndex
	Args     []*Expr // SuffixCall
}

// TableFieldValue is one entry of a Table expression: the HIR-level key
// (already classified Name/Computed/None-array-index) and its value
// expression.
type TableFieldValue struct {
	Key   TableFieldKey
	Value *Expr
}

// Expr is an HIR expression node: its syntax back-reference (the ast.Node
// it was built from — ast is an already-built immutable tree, not a
// growable arena, so the node pointer itself serves as the stable handle
// spec.md §3 asks for), its surface Type, and shape-specific payload
// selected by Kind. Every HIR expression carries Type and SpanInfo;
// only fields relevant to Kind are populated.
type Expr struct {
	Syntax   ast.Node
	SpanInfo source.Span
	Type     Type
	Kind     ExprKind

	// EnclosingScope is the scope active when this expression was
	// transformed, used by the analyzer to install condition facts
	// scoped "to the enclosing scope" (e.g. Library::SetMetatable).
	EnclosingScope ScopeHandle

	// ExprTypeAssertion
	Operand *Expr

	// ExprTable
	Fields []TableFieldValue

	// ExprFunction
	FuncScope     ScopeHandle
	Params        []SymbolHandle
	VariadicParam SymbolHandle
	HasVariadic   bool
	Body          *Block

	// ExprSuffixed
	Base     *Expr
	Suffixes []Suffix

	// ExprLibrarySetMetatable
	TargetSymbol SymbolHandle
	Metatable    *Expr

	// ExprGeneric: operands of unary/binary/paren/name/varargs/etc, kept
	// for nested type propagation even though the shape itself isn't
	// individually distinguished.
	Operands []*Expr
	// Symbol is set for name-expression Generic nodes so the analyzer
	// and fact-installation logic can address the binding.
	Symbol   SymbolHandle
	HasSymbol bool
}

func (e *Expr) Span() source.Span { return e.SpanInfo }

// StmtKind distinguishes HIR statement shapes. Unlike expressions, no
// statement shape needs distinguished payload beyond what the
// transformer already resolves into scope/symbol effects, so HIR keeps
// one shape per ast statement kind for source-order re-walking (used by
// the resolver and analyzer, which both walk "in source order").
type StmtKind int

const (
	StmtExpr StmtKind = iota
	StmtDo
	StmtWhile
	StmtRepeat
	StmtNumericFor
	StmtGenericFor
	StmtIf
	StmtLocalAssign
	StmtVarAssign
	StmtTypeDecl
	StmtReturn
	StmtBreak
	StmtLibrarySetMetatable
)

// IfClause is one branch of an If statement (the initial condition or an
// elseif), paired with the scope entered for its body.
type IfClause struct {
	Condition *Expr
	Scope     ScopeHandle
	Body      *Block
}

// Stmt is an HIR statement node.
type Stmt struct {
	Syntax   ast.Node
	SpanInfo source.Span
	Kind     StmtKind

	Expr  *Expr   // StmtExpr, StmtLibrarySetMetatable
	Exprs []*Expr // StmtVarAssign/StmtLocalAssign right-hand sides, StmtReturn values (empty for bare return)

	Scope ScopeHandle // body scope for Do/While/Repeat/For
	Body  *Block

	Condition *Expr // While/Repeat
	Clauses   []IfClause
	Else      *Block
	ElseScope ScopeHandle
	HasElse   bool

	// StmtLocalAssign / StmtVarAssign
	Targets     []SymbolHandle // StmtLocalAssign: one per declared name
	TargetExprs []*Expr        // StmtVarAssign: transformed l-value expressions (name or suffixed)

	// StmtNumericFor / StmtGenericFor
	LoopVars []SymbolHandle
}

func (s *Stmt) Span() source.Span { return s.SpanInfo }

// Block is a typed sequence of statements sharing one scope.
type Block struct {
	Scope      ScopeHandle
	Statements []*Stmt
}
