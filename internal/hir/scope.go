package hir

// ScopeKind distinguishes the four lexical scope shapes spec.md §3 names.
type ScopeKind int

const (
	ScopeModule ScopeKind = iota
	ScopeBlock
	ScopeFunction
	ScopeTypeAliasDeclaration
)

// Scope is an entry in a Module's scope arena: a name→symbol frame plus a
// condition-facts overlay for narrowing (spec.md §4.3/§4.4).
//
// ConditionFacts maps a base symbol handle to a refined "shadow" symbol
// installed by a narrowing construct (the analyzer's metatable install
// after a `setmetatable` call) scoped to this frame: resolving a name that names
// the base symbol from this scope, or any scope nested under it before
// another overlay intervenes, yields the shadow instead. The base symbol
// itself, and its original type, are never mutated.
type Scope struct {
	Kind   ScopeKind
	Parent ScopeHandle
	HasParent bool

	Vars        map[string]SymbolHandle
	TypeAliases map[string]SymbolHandle

	ConditionFacts map[SymbolHandle]SymbolHandle

	// ExpectedType/ActualType back Function and Module scopes' return-flow
	// tracking (DESIGN.md Open Question 1): ExpectedType is the annotated
	// return type (nil if unannotated); when it is nil, ActualType is set
	// by the first concluding return and later returns are checked
	// against it.
	ExpectedType Type
	ActualType   Type
}

func newScope(kind ScopeKind, parent ScopeHandle, hasParent bool) Scope {
	return Scope{
		Kind:           kind,
		Parent:         parent,
		HasParent:      hasParent,
		Vars:           make(map[string]SymbolHandle),
		TypeAliases:    make(map[string]SymbolHandle),
		ConditionFacts: make(map[SymbolHandle]SymbolHandle),
	}
}
