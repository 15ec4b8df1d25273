package ast

import "github.com/slt-lang/slt/internal/source"

// BreakStatement is only valid as a block's last-statement.
type BreakStatement struct {
	SpanInfo source.Span
}

func (b *BreakStatement) Span() source.Span { return b.SpanInfo }
func (b *BreakStatement) Accept(v Visitor)  { v.VisitBreakStatement(b) }
func (b *BreakStatement) statementNode()    {}

// CallStatement is an expression-statement; its expression must terminate
// in a call suffix (spec.md §4.2).
type CallStatement struct {
	SpanInfo source.Span
	Call     *SuffixedExpression
}

func (c *CallStatement) Span() source.Span { return c.SpanInfo }
func (c *CallStatement) Accept(v Visitor)  { v.VisitCallStatement(c) }
func (c *CallStatement) statementNode()    {}

// DoStatement is a bare `do ... end` block, introducing its own scope.
type DoStatement struct {
	SpanInfo source.Span
	Body     *Block
}

func (d *DoStatement) Span() source.Span { return d.SpanInfo }
func (d *DoStatement) Accept(v Visitor)  { v.VisitDoStatement(d) }
func (d *DoStatement) statementNode()    {}

// WhileStatement is `while cond do ... end`.
type WhileStatement struct {
	SpanInfo  source.Span
	Condition Expression
	Body      *Block
}

func (w *WhileStatement) Span() source.Span { return w.SpanInfo }
func (w *WhileStatement) Accept(v Visitor)  { v.VisitWhileStatement(w) }
func (w *WhileStatement) statementNode()    {}

// RepeatStatement is `repeat ... until cond`; the condition is resolved in
// the body's scope (it may reference locals declared in the body).
type RepeatStatement struct {
	SpanInfo  source.Span
	Body      *Block
	Condition Expression
}

func (r *RepeatStatement) Span() source.Span { return r.SpanInfo }
func (r *RepeatStatement) Accept(v Visitor)  { v.VisitRepeatStatement(r) }
func (r *RepeatStatement) statementNode()    {}

// NumericForStatement is `for name = start, stop [, step] do ... end`.
type NumericForStatement struct {
	SpanInfo source.Span
	Name     string
	Start    Expression
	Stop     Expression
	Step     Expression // nil if omitted
	Body     *Block
}

func (n *NumericForStatement) Span() source.Span { return n.SpanInfo }
func (n *NumericForStatement) Accept(v Visitor)  { v.VisitNumericForStatement(n) }
func (n *NumericForStatement) statementNode()    {}

// GenericForStatement is `for n1, n2, ... in e1, e2, ... do ... end`.
type GenericForStatement struct {
	SpanInfo source.Span
	Names    []string
	Exprs    []Expression
	Body     *Block
}

func (g *GenericForStatement) Span() source.Span { return g.SpanInfo }
func (g *GenericForStatement) Accept(v Visitor)  { v.VisitGenericForStatement(g) }
func (g *GenericForStatement) statementNode()    {}

// ElseIfClause is one `elseif cond then ...` arm of an IfStatement.
type ElseIfClause struct {
	SpanInfo  source.Span
	Condition Expression
	Body      *Block
}

// IfStatement is `if cond then ... [elseif ...]* [else ...] end`.
type IfStatement struct {
	SpanInfo  source.Span
	Condition Expression
	Then      *Block
	ElseIfs   []ElseIfClause
	Else      *Block // nil if absent
}

func (i *IfStatement) Span() source.Span { return i.SpanInfo }
func (i *IfStatement) Accept(v Visitor)  { v.VisitIfStatement(i) }
func (i *IfStatement) statementNode()    {}

// LocalBinding is one `name [: T]` slot of a LocalAssignStatement.
type LocalBinding struct {
	SpanInfo source.Span
	Name     string
	Type     TypeInfo // nil if unannotated
}

// LocalAssignStatement is `local a [: T], b [: T], ... [= e1, e2, ...]`.
type LocalAssignStatement struct {
	SpanInfo source.Span
	Names    []LocalBinding
	Exprs    []Expression // may be shorter than Names, or empty
}

func (l *LocalAssignStatement) Span() source.Span { return l.SpanInfo }
func (l *LocalAssignStatement) Accept(v Visitor)  { v.VisitLocalAssignStatement(l) }
func (l *LocalAssignStatement) statementNode()    {}

// VarAssignStatement is `lvalue1, lvalue2, ... = e1, e2, ...`; each target
// is a name or a suffixed expression whose final suffix is `.name` or
// `[expr]` (spec.md §4.2).
type VarAssignStatement struct {
	SpanInfo source.Span
	Targets  []Expression
	Exprs    []Expression
}

func (va *VarAssignStatement) Span() source.Span { return va.SpanInfo }
func (va *VarAssignStatement) Accept(v Visitor)  { v.VisitVarAssignStatement(va) }
func (va *VarAssignStatement) statementNode()    {}

// LocalFunctionStatement is `local function name(...) ... end`; unlike a
// plain local-assign, the name is visible inside its own body (for
// recursion).
type LocalFunctionStatement struct {
	SpanInfo source.Span
	Name     string
	Func     *FunctionLiteral
}

func (l *LocalFunctionStatement) Span() source.Span { return l.SpanInfo }
func (l *LocalFunctionStatement) Accept(v Visitor)  { v.VisitLocalFunctionStatement(l) }
func (l *LocalFunctionStatement) statementNode()    {}

// FunctionName is a chain of `Name(.Name)*(:Name)?` naming a
// FunctionAssignStatement's target (spec.md §4.2).
type FunctionName struct {
	SpanInfo source.Span
	Base     string
	Path     []string // dotted segments after Base
	Method   string   // non-empty if the name ends in `:Name`
}

// FunctionAssignStatement is `function a.b.c:m() ... end`.
type FunctionAssignStatement struct {
	SpanInfo source.Span
	Name     FunctionName
	Func     *FunctionLiteral
}

func (f *FunctionAssignStatement) Span() source.Span { return f.SpanInfo }
func (f *FunctionAssignStatement) Accept(v Visitor)  { v.VisitFunctionAssignStatement(f) }
func (f *FunctionAssignStatement) statementNode()    {}

// ReturnStatement is a block's optional last-statement returning zero or
// more values.
type ReturnStatement struct {
	SpanInfo source.Span
	Exprs    []Expression
}

func (r *ReturnStatement) Span() source.Span { return r.SpanInfo }
func (r *ReturnStatement) Accept(v Visitor)  { v.VisitReturnStatement(r) }
func (r *ReturnStatement) statementNode()    {}

// TypeParam is a generic parameter of a TypeDeclarationStatement: `T`,
// `T: Bound`, `T = Default`, or `T: Bound = Default`.
type TypeParam struct {
	SpanInfo source.Span
	Name     string
	Bound    TypeInfo // nil if unbounded
	Default  TypeInfo // nil if no default; substituted when an argument is omitted
}

// TypeDeclarationStatement is `type N<T1, T2: Bound, ...> = T`.
type TypeDeclarationStatement struct {
	SpanInfo source.Span
	Name     string
	Params   []TypeParam
	Type     TypeInfo
}

func (t *TypeDeclarationStatement) Span() source.Span { return t.SpanInfo }
func (t *TypeDeclarationStatement) Accept(v Visitor)  { v.VisitTypeDeclarationStatement(t) }
func (t *TypeDeclarationStatement) statementNode()    {}
