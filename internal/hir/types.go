package hir

import "github.com/slt-lang/slt/internal/source"

// Type is the closed structural sum spec.md §3 defines: Literal, Any,
// Unknown, Reference, Recursive, Unresolved, Tuple, Function, Table,
// Intersection, Union. There is no type-variable/unification machinery —
// assignability (internal/analyzer) compares declared types directly.
type Type interface {
	Span() source.Span
	typeTag()
}

// LiteralKind enumerates the primitive literal kinds (spec.md §3).
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralNumber
	LiteralNil
	LiteralString
	LiteralVoid
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralBool:
		return "bool"
	case LiteralNumber:
		return "number"
	case LiteralNil:
		return "nil"
	case LiteralString:
		return "string"
	case LiteralVoid:
		return "void"
	default:
		return "literal"
	}
}

// Literal is a primitive scalar type.
type Literal struct {
	SpanInfo source.Span
	Kind     LiteralKind
}

func (t Literal) Span() source.Span { return t.SpanInfo }
func (Literal) typeTag()            {}

// Any is the top type: assignable to and from everything.
type Any struct{ SpanInfo source.Span }

func (t Any) Span() source.Span { return t.SpanInfo }
func (Any) typeTag()            {}

// Unknown marks a value whose type could not be determined (an error
// already reported elsewhere); it is assignable to and from everything so
// a single failure doesn't cascade into unrelated diagnostics.
type Unknown struct{ SpanInfo source.Span }

func (t Unknown) Span() source.Span { return t.SpanInfo }
func (Unknown) typeTag()            {}

// Reference is an unresolved-at-construction-time reference to a named
// type alias, optionally with generic arguments. The resolver replaces
// these with the alias's resolved body (internal/resolver).
type Reference struct {
	SpanInfo  source.Span
	Name      string
	Symbol    SymbolHandle
	Arguments []Type
}

func (t Reference) Span() source.Span { return t.SpanInfo }
func (Reference) typeTag()            {}

// Recursive marks a reference back to a type alias still being resolved
// (the resolver's recursion guard produces this instead of looping).
type Recursive struct {
	SpanInfo source.Span
	Symbol   SymbolHandle
}

func (t Recursive) Span() source.Span { return t.SpanInfo }
func (Recursive) typeTag()            {}

// Unresolved stands in for a symbol's type that is not yet computed. The
// resolver replaces it with the resolved CurrentType of Symbol; the
// analyzer has no rule of its own for it.
type Unresolved struct {
	SpanInfo source.Span
	Symbol   SymbolHandle
}

func (t Unresolved) Span() source.Span { return t.SpanInfo }
func (Unresolved) typeTag()            {}

// Tuple is an ordered, fixed-arity group of types (multiple-return shape).
type Tuple struct {
	SpanInfo source.Span
	Members  []Type
}

func (t Tuple) Span() source.Span { return t.SpanInfo }
func (Tuple) typeTag()            {}

// Param is one parameter of a Function type.
type Param struct {
	SpanInfo source.Span
	Name     string
	Typ      Type
	Optional bool
}

// Function is a callable type: ordered parameters, an optional variadic
// tail parameter, and a single return type (wrap in Tuple for multiple
// returns).
type Function struct {
	SpanInfo      source.Span
	Parameters    []Param
	VariadicParam *Param
	Return        Type
}

func (t Function) Span() source.Span { return t.SpanInfo }
func (Function) typeTag()            {}

// TableKeyKind enumerates the three table-field-key shapes spec.md §3
// describes: a literal name, a computed-key type, and a bare array index.
type TableKeyKind int

const (
	KeyName TableKeyKind = iota
	KeyComputed
	KeyArrayIndex
)

// TableFieldKey identifies one entry of a Table type. Keys compare by
// kind/name/computed-type-equality or kind/index; the span is never part
// of equality (spec.md §3: "span ignored").
type TableFieldKey struct {
	SpanInfo source.Span
	Kind     TableKeyKind
	Name     string
	Computed Type
	Index    int
}

// EqualKey reports whether two keys identify the same table slot,
// ignoring source position.
func EqualKey(a, b TableFieldKey) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KeyName:
		return a.Name == b.Name
	case KeyArrayIndex:
		return a.Index == b.Index
	case KeyComputed:
		return Equal(a.Computed, b.Computed)
	default:
		return false
	}
}

// TableEntry is one ordered (key, value-type) pair of a Table type.
type TableEntry struct {
	Key   TableFieldKey
	Value Type
}

// Table is a structural record/array/map type. Entries preserve source
// order (spec.md §3: "ordered mapping"). A table carrying its own
// metatable link sets Metatable; IsMetatable marks a table that is itself
// being used *as* a metatable (spec.md §4.4 metamethod lookup).
type Table struct {
	SpanInfo    source.Span
	Entries     []TableEntry
	Metatable   *Table
	IsMetatable bool
}

func (t Table) Span() source.Span { return t.SpanInfo }
func (Table) typeTag()            {}

// Get returns the entry for key, if present.
func (t Table) Get(key TableFieldKey) (TableEntry, bool) {
	for _, e := range t.Entries {
		if EqualKey(e.Key, key) {
			return e, true
		}
	}
	return TableEntry{}, false
}

// Intersection is a type satisfying every member simultaneously. Table
// members are structurally merged by the resolver rather than kept as a
// list of separate Table types (spec.md §4.4, DESIGN.md Open Question 2).
type Intersection struct {
	SpanInfo source.Span
	Members  []Type
}

func (t Intersection) Span() source.Span { return t.SpanInfo }
func (Intersection) typeTag()            {}

// Union is a type satisfying at least one member.
type Union struct {
	SpanInfo source.Span
	Members  []Type
}

func (t Union) Span() source.Span { return t.SpanInfo }
func (Union) typeTag()            {}

// Equal reports structural equality: same tag, same payload by value,
// source position ignored throughout.
func Equal(a, b Type) bool {
	switch av := a.(type) {
	case Literal:
		bv, ok := b.(Literal)
		return ok && av.Kind == bv.Kind
	case Any:
		_, ok := b.(Any)
		return ok
	case Unknown:
		_, ok := b.(Unknown)
		return ok
	case Reference:
		bv, ok := b.(Reference)
		if !ok || av.Symbol != bv.Symbol || len(av.Arguments) != len(bv.Arguments) {
			return false
		}
		for i := range av.Arguments {
			if !Equal(av.Arguments[i], bv.Arguments[i]) {
				return false
			}
		}
		return true
	case Recursive:
		bv, ok := b.(Recursive)
		return ok && av.Symbol == bv.Symbol
	case Unresolved:
		bv, ok := b.(Unresolved)
		return ok && av.Symbol == bv.Symbol
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Members) != len(bv.Members) {
			return false
		}
		for i := range av.Members {
			if !Equal(av.Members[i], bv.Members[i]) {
				return false
			}
		}
		return true
	case Function:
		bv, ok := b.(Function)
		if !ok || len(av.Parameters) != len(bv.Parameters) {
			return false
		}
		for i := range av.Parameters {
			if av.Parameters[i].Optional != bv.Parameters[i].Optional || !Equal(av.Parameters[i].Typ, bv.Parameters[i].Typ) {
				return false
			}
		}
		if (av.VariadicParam == nil) != (bv.VariadicParam == nil) {
			return false
		}
		if av.VariadicParam != nil && !Equal(av.VariadicParam.Typ, bv.VariadicParam.Typ) {
			return false
		}
		return Equal(av.Return, bv.Return)
	case Table:
		bv, ok := b.(Table)
		if !ok || len(av.Entries) != len(bv.Entries) || av.IsMetatable != bv.IsMetatable {
			return false
		}
		for _, e := range av.Entries {
			other, found := bv.Get(e.Key)
			if !found || !Equal(e.Value, other.Value) {
				return false
			}
		}
		return true
	case Intersection:
		bv, ok := b.(Intersection)
		return ok && equalMemberSets(av.Members, bv.Members)
	case Union:
		bv, ok := b.(Union)
		return ok && equalMemberSets(av.Members, bv.Members)
	default:
		return false
	}
}

func equalMemberSets(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
