package ast

import (
	"github.com/slt-lang/slt/internal/source"
	"github.com/slt-lang/slt/internal/token"
)

// BoolLiteral represents the true/false literals.
type BoolLiteral struct {
	SpanInfo source.Span
	Value    bool
}

func (b *BoolLiteral) Span() source.Span { return b.SpanInfo }
func (b *BoolLiteral) Accept(v Visitor)  { v.VisitBoolLiteral(b) }
func (b *BoolLiteral) expressionNode()   {}

// NilLiteral represents the nil literal (the only value of type Nil).
type NilLiteral struct {
	SpanInfo source.Span
}

func (n *NilLiteral) Span() source.Span { return n.SpanInfo }
func (n *NilLiteral) Accept(v Visitor)  { v.VisitNilLiteral(n) }
func (n *NilLiteral) expressionNode()   {}

// NumberLiteral carries the literal text verbatim; no numeric parsing
// happens in the lexer or here (spec.md §3).
type NumberLiteral struct {
	SpanInfo source.Span
	Text     string
}

func (n *NumberLiteral) Span() source.Span { return n.SpanInfo }
func (n *NumberLiteral) Accept(v Visitor)  { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) expressionNode()   {}

// StringLiteral carries the decoded text (quotes/brackets already
// stripped by the lexer).
type StringLiteral struct {
	SpanInfo source.Span
	Value    string
}

func (s *StringLiteral) Span() source.Span { return s.SpanInfo }
func (s *StringLiteral) Accept(v Visitor)  { v.VisitStringLiteral(s) }
func (s *StringLiteral) expressionNode()   {}

// NameExpression is a bare identifier used as a value.
type NameExpression struct {
	Ident *Identifier
}

func (n *NameExpression) Span() source.Span { return n.Ident.Span() }
func (n *NameExpression) Accept(v Visitor)  { v.VisitNameExpression(n) }
func (n *NameExpression) expressionNode()   {}

// Varargs is the `...` expression, valid only inside a variadic function.
type Varargs struct {
	SpanInfo source.Span
}

func (va *Varargs) Span() source.Span { return va.SpanInfo }
func (va *Varargs) Accept(v Visitor)  { v.VisitVarargs(va) }
func (va *Varargs) expressionNode()   {}

// TableFieldKind distinguishes the three table-literal field shapes.
type TableFieldKind int

const (
	TableFieldArray TableFieldKind = iota
	TableFieldNamed
	TableFieldComputed
)

// TableField is one entry of a TableLiteral. Name is set for
// TableFieldNamed, Key for TableFieldComputed; Array fields use neither.
type TableField struct {
	SpanInfo source.Span
	Kind     TableFieldKind
	Name     string
	Key      Expression
	Value    Expression
}

// TableLiteral is a `{ ... }` value expression.
type TableLiteral struct {
	SpanInfo source.Span
	Fields   []TableField
}

func (t *TableLiteral) Span() source.Span { return t.SpanInfo }
func (t *TableLiteral) Accept(v Visitor)  { v.VisitTableLiteral(t) }
func (t *TableLiteral) expressionNode()   {}

// FunctionParam is one declared parameter of a function literal.
type FunctionParam struct {
	SpanInfo source.Span
	Name     string
	Type     TypeInfo // nil if unannotated
	Optional bool
}

// FunctionLiteral is an anonymous `function(...) ... end` expression.
type FunctionLiteral struct {
	SpanInfo     source.Span
	Params       []FunctionParam
	VarargParam  *FunctionParam // non-nil if the parameter list ends in `...`
	ReturnType   TypeInfo       // nil if unannotated
	Body         *Block
}

func (f *FunctionLiteral) Span() source.Span { return f.SpanInfo }
func (f *FunctionLiteral) Accept(v Visitor)  { v.VisitFunctionLiteral(f) }
func (f *FunctionLiteral) expressionNode()   {}

// ParenExpression is a parenthesized expression; parentheses truncate a
// multi-value expression to its first result (preserved here, adjusted
// during transformation).
type ParenExpression struct {
	SpanInfo source.Span
	Inner    Expression
}

func (p *ParenExpression) Span() source.Span { return p.SpanInfo }
func (p *ParenExpression) Accept(v Visitor)  { v.VisitParenExpression(p) }
func (p *ParenExpression) expressionNode()   {}

// UnaryExpression is a prefix operator application: `#`, `not`, or `-`.
type UnaryExpression struct {
	SpanInfo source.Span
	Operator token.Token
	Operand  Expression
}

func (u *UnaryExpression) Span() source.Span { return u.SpanInfo }
func (u *UnaryExpression) Accept(v Visitor)  { v.VisitUnaryExpression(u) }
func (u *UnaryExpression) expressionNode()   {}

// BinaryExpression carries the operator token verbatim for diagnostics
// (spec.md §3).
type BinaryExpression struct {
	SpanInfo source.Span
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (b *BinaryExpression) Span() source.Span { return b.SpanInfo }
func (b *BinaryExpression) Accept(v Visitor)  { v.VisitBinaryExpression(b) }
func (b *BinaryExpression) expressionNode()   {}

// TypeAssertionExpression is `expr :: Type`; chains associate left.
type TypeAssertionExpression struct {
	SpanInfo source.Span
	Base     Expression
	Cast     TypeInfo
}

func (t *TypeAssertionExpression) Span() source.Span { return t.SpanInfo }
func (t *TypeAssertionExpression) Accept(v Visitor)  { v.VisitTypeAssertionExpression(t) }
func (t *TypeAssertionExpression) expressionNode()   {}

// SuffixKind distinguishes the four suffix shapes a SuffixedExpression can
// chain: `.name`, `:method`, `[index]`, and a call.
type SuffixKind int

const (
	SuffixDot SuffixKind = iota
	SuffixMethod
	SuffixIndex
	SuffixCall
)

// Suffix is one link of a suffix chain following a primary expression.
type Suffix struct {
	SpanInfo source.Span
	Kind     SuffixKind
	Name     string     // SuffixDot, SuffixMethod
	Index    Expression // SuffixIndex
	Args     CallArgs   // SuffixCall
}

func (s Suffix) Span() source.Span { return s.SpanInfo }

// CallArgsKind distinguishes the three forms a call's argument list may
// take: a parenthesized list, a bare table literal, or a bare string.
type CallArgsKind int

const (
	CallArgsParen CallArgsKind = iota
	CallArgsTable
	CallArgsString
)

// CallArgs is the argument-list shape of a SuffixCall.
type CallArgs struct {
	SpanInfo source.Span
	Kind     CallArgsKind
	Exprs    []Expression   // CallArgsParen
	Table    *TableLiteral  // CallArgsTable
	String   *StringLiteral // CallArgsString
}

// SuffixedExpression is a base expression followed by zero or more
// suffixes. A chain ending in SuffixMethod with no trailing SuffixCall is
// rejected by the parser (spec.md §4.2), so every SuffixedExpression that
// survives parsing either has zero suffixes or a well-formed chain.
type SuffixedExpression struct {
	SpanInfo source.Span
	Base     Expression
	Suffixes []Suffix
}

func (s *SuffixedExpression) Span() source.Span { return s.SpanInfo }
func (s *SuffixedExpression) Accept(v Visitor)  { v.VisitSuffixedExpression(s) }
func (s *SuffixedExpression) expressionNode()   {}

// EndsInCall reports whether the chain's final suffix is a call, the
// condition required for use as a call statement (spec.md §4.2).
func (s *SuffixedExpression) EndsInCall() bool {
	if len(s.Suffixes) == 0 {
		return false
	}
	return s.Suffixes[len(s.Suffixes)-1].Kind == SuffixCall
}
