package hir

// Module is the per-translation-unit owner of the scope and symbol
// arenas the transformer populates and the resolver/analyzer read
// (spec.md §5: a unit's HIR never outlives its Module).
type Module struct {
	symbols arena[Symbol]
	scopes  arena[Scope]
	Root    ScopeHandle
}

// NewModule allocates a fresh module with its root (Module-kind) scope.
func NewModule() *Module {
	m := &Module{}
	m.Root = ScopeHandle(m.scopes.alloc(newScope(ScopeModule, NoScope, false)))
	return m
}

// NewSymbol allocates sym in the symbol arena and returns its handle.
func (m *Module) NewSymbol(sym Symbol) SymbolHandle {
	return SymbolHandle(m.symbols.alloc(sym))
}

// Symbol dereferences a handle. Handles are only ever produced by this
// Module, so the lookup cannot fail.
func (m *Module) Symbol(h SymbolHandle) *Symbol {
	return m.symbols.get(int(h))
}

// NewScope allocates a child scope of parent and returns its handle.
func (m *Module) NewScope(kind ScopeKind, parent ScopeHandle) ScopeHandle {
	return ScopeHandle(m.scopes.alloc(newScope(kind, parent, true)))
}

// Scope dereferences a handle.
func (m *Module) Scope(h ScopeHandle) *Scope {
	return m.scopes.get(int(h))
}

// Declare binds name to sym in scope's variable map, shadowing any
// enclosing declaration of the same name.
func (m *Module) Declare(scope ScopeHandle, name string, sym SymbolHandle) {
	m.Scope(scope).Vars[name] = sym
}

// DeclareType binds name to sym in scope's type-alias map.
func (m *Module) DeclareType(scope ScopeHandle, name string, sym SymbolHandle) {
	m.Scope(scope).TypeAliases[name] = sym
}

// InstallFact overlays base with shadow in scope's condition-facts map,
// narrowing subsequent lookups of base from scope (and its descendants,
// until another overlay intervenes) to shadow instead.
func (m *Module) InstallFact(scope ScopeHandle, base, shadow SymbolHandle) {
	m.Scope(scope).ConditionFacts[base] = shadow
}

// Lookup resolves name starting at scope, walking enclosing scopes
// outward, then applies the innermost condition-facts overlay found
// between the lookup site and the scope that declared the name.
func (m *Module) Lookup(scope ScopeHandle, name string) (SymbolHandle, bool) {
	return m.lookupIn(scope, name, func(s *Scope) (SymbolHandle, bool) {
		h, ok := s.Vars[name]
		return h, ok
	})
}

// LookupType resolves a type-alias name the same way Lookup resolves a
// variable name, but over each scope's type-alias map.
func (m *Module) LookupType(scope ScopeHandle, name string) (SymbolHandle, bool) {
	return m.lookupIn(scope, name, func(s *Scope) (SymbolHandle, bool) {
		h, ok := s.TypeAliases[name]
		return h, ok
	})
}

func (m *Module) lookupIn(scope ScopeHandle, name string, find func(*Scope) (SymbolHandle, bool)) (SymbolHandle, bool) {
	var trail []ScopeHandle
	cur := scope
	for {
		s := m.Scope(cur)
		trail = append(trail, cur)
		if h, ok := find(s); ok {
			return m.applyFacts(trail, h), true
		}
		if !s.HasParent {
			return 0, false
		}
		cur = s.Parent
	}
}

// applyFacts returns the innermost overlay for base found across trail
// (ordered from the lookup site outward), or base unchanged.
func (m *Module) applyFacts(trail []ScopeHandle, base SymbolHandle) SymbolHandle {
	for _, h := range trail {
		if shadow, ok := m.Scope(h).ConditionFacts[base]; ok {
			return shadow
		}
	}
	return base
}
