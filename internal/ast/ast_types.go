package ast

import "github.com/slt-lang/slt/internal/source"

// ReferenceTypeInfo is a named type, optionally applied to type arguments:
// `Name` or `Name<T1, T2>`.
type ReferenceTypeInfo struct {
	SpanInfo source.Span
	Name     string
	Args     []TypeInfo
}

func (r *ReferenceTypeInfo) Span() source.Span { return r.SpanInfo }
func (r *ReferenceTypeInfo) Accept(v Visitor)  { v.VisitReferenceTypeInfo(r) }
func (r *ReferenceTypeInfo) typeNode()         {}

// TableTypeFieldKind distinguishes the three field shapes a table type can
// declare (spec.md §4.2 "field").
type TableTypeFieldKind int

const (
	TableTypeFieldArray TableTypeFieldKind = iota
	TableTypeFieldNamed
	TableTypeFieldComputed
)

// TableTypeField is one entry of a TableTypeInfo. IsMetatable marks the
// `@metatable: T` named-field form, distinct from MetatableTypeInfo (which
// wraps the whole table).
type TableTypeField struct {
	SpanInfo    source.Span
	Kind        TableTypeFieldKind
	Name        string   // TableTypeFieldNamed
	IsMetatable bool     // TableTypeFieldNamed, key was `@metatable`
	KeyType     TypeInfo // TableTypeFieldComputed
	Type        TypeInfo
}

// TableTypeInfo is `{ field, field, ... }`.
type TableTypeInfo struct {
	SpanInfo source.Span
	Fields   []TableTypeField
}

func (t *TableTypeInfo) Span() source.Span { return t.SpanInfo }
func (t *TableTypeInfo) Accept(v Visitor)  { v.VisitTableTypeInfo(t) }
func (t *TableTypeInfo) typeNode()         {}

// MetatableTypeInfo is `@metatable { ... }`, marking the wrapped table as
// usable as a metatable (spec.md §3 Table.is_metatable).
type MetatableTypeInfo struct {
	SpanInfo source.Span
	Table    *TableTypeInfo
}

func (m *MetatableTypeInfo) Span() source.Span { return m.SpanInfo }
func (m *MetatableTypeInfo) Accept(v Visitor)  { v.VisitMetatableTypeInfo(m) }
func (m *MetatableTypeInfo) typeNode()         {}

// CallbackParam is one parameter of a CallbackTypeInfo: `[Name ":"] type`.
type CallbackParam struct {
	SpanInfo source.Span
	Name     string // empty if unnamed
	Type     TypeInfo
}

// CallbackTypeInfo is `(p1: T1, p2: T2, ...) -> R`.
type CallbackTypeInfo struct {
	SpanInfo   source.Span
	Params     []CallbackParam
	ReturnType TypeInfo
}

func (c *CallbackTypeInfo) Span() source.Span { return c.SpanInfo }
func (c *CallbackTypeInfo) Accept(v Visitor)  { v.VisitCallbackTypeInfo(c) }
func (c *CallbackTypeInfo) typeNode()         {}

// TupleTypeInfo is `(T1, T2, ...)` with two or more members (a
// single-parenthesized type is just that type, not a tuple).
type TupleTypeInfo struct {
	SpanInfo source.Span
	Members  []TypeInfo
}

func (t *TupleTypeInfo) Span() source.Span { return t.SpanInfo }
func (t *TupleTypeInfo) Accept(v Visitor)  { v.VisitTupleTypeInfo(t) }
func (t *TupleTypeInfo) typeNode()         {}

// UnionTypeInfo is `A | B | ...`, left-associative.
type UnionTypeInfo struct {
	SpanInfo source.Span
	Members  []TypeInfo
}

func (u *UnionTypeInfo) Span() source.Span { return u.SpanInfo }
func (u *UnionTypeInfo) Accept(v Visitor)  { v.VisitUnionTypeInfo(u) }
func (u *UnionTypeInfo) typeNode()         {}

// IntersectionTypeInfo is `A & B & ...`, left-associative.
type IntersectionTypeInfo struct {
	SpanInfo source.Span
	Members  []TypeInfo
}

func (i *IntersectionTypeInfo) Span() source.Span { return i.SpanInfo }
func (i *IntersectionTypeInfo) Accept(v Visitor)  { v.VisitIntersectionTypeInfo(i) }
func (i *IntersectionTypeInfo) typeNode()         {}
