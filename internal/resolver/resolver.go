// Package resolver eliminates Reference, Unresolved, and mid-pipeline
// sentinels from HIR so the analyzer sees a purely structural
// representation (spec.md §4.4). It mutates HIR in place.
package resolver

import (
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
)

// Resolver threads the recursion guard (type_stack) and generic argument
// bindings (type_vars) spec.md §4.4 describes across one resolution pass.
type Resolver struct {
	module    *hir.Module
	typeStack []hir.SymbolHandle
	typeVars  []map[string]hir.Type // stack of argument bindings, innermost last
	diags     diagnostics.Bag
}

// Resolve walks block in source order, resolving every type field it
// finds, and clears the recursion stack between top-level statements
// (spec.md §4.4: "clearing the recursion stack between top-level
// entries"). Returns diagnostics raised by type-argument checks on
// references (ExpectedTypeArguments, MissingTypeArgument) and by
// intersection metatable merges (DESIGN.md Open Question 2).
func Resolve(m *hir.Module, block *hir.Block) *diagnostics.Bag {
	r := &Resolver{module: m}
	r.resolveBlock(block)
	return &r.diags
}

func (r *Resolver) resolveBlock(b *hir.Block) {
	for _, s := range b.Statements {
		r.typeStack = r.typeStack[:0]
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s *hir.Stmt) {
	if s == nil {
		return
	}
	r.resolveExpr(s.Expr)
	for _, e := range s.Exprs {
		r.resolveExpr(e)
	}
	for _, e := range s.TargetExprs {
		r.resolveExpr(e)
	}
	r.resolveExpr(s.Condition)
	if s.Body != nil {
		r.resolveBlock(s.Body)
	}
	for _, c := range s.Clauses {
		r.resolveExpr(c.Condition)
		if c.Body != nil {
			r.resolveBlock(c.Body)
		}
	}
	if s.HasElse && s.Else != nil {
		r.resolveBlock(s.Else)
	}
	switch s.Kind {
	case hir.StmtTypeDecl:
		for _, h := range s.Targets {
			sym := r.module.Symbol(h)
			sym.CurrentType = r.resolveType(sym.CurrentType)
			for i, p := range sym.Params {
				p.Bound = r.resolveType(p.Bound)
				p.Default = r.resolveType(p.Default)
				sym.Params[i] = p
			}
		}
	case hir.StmtLocalAssign:
		for _, h := range s.Targets {
			sym := r.module.Symbol(h)
			sym.CurrentType = r.resolveType(sym.CurrentType)
		}
	}
	for _, h := range s.LoopVars {
		sym := r.module.Symbol(h)
		sym.CurrentType = r.resolveType(sym.CurrentType)
	}
}

func (r *Resolver) resolveExpr(e *hir.Expr) {
	if e == nil {
		return
	}
	e.Type = r.resolveType(e.Type)
	if e.Operand != nil {
		r.resolveExpr(e.Operand)
	}
	if e.Base != nil {
		r.resolveExpr(e.Base)
	}
	for _, f := range e.Fields {
		r.resolveExpr(f.Value)
	}
	for _, suf := range e.Suffixes {
		if suf.Index != nil {
			r.resolveExpr(suf.Index)
		}
		for _, a := range suf.Args {
			r.resolveExpr(a)
		}
	}
	for _, o := range e.Operands {
		r.resolveExpr(o)
	}
	if e.Metatable != nil {
		r.resolveExpr(e.Metatable)
	}
	if e.Body != nil {
		r.resolveBlock(e.Body)
	}
	if e.HasSymbol {
		sym := r.module.Symbol(e.Symbol)
		sym.CurrentType = r.resolveType(sym.CurrentType)
	}
}

// resolveType is the structural traversal spec.md §4.4 describes.
func (r *Resolver) resolveType(t hir.Type) hir.Type {
	switch v := t.(type) {
	case nil:
		return nil
	case hir.Literal, hir.Any, hir.Unknown, hir.Recursive:
		return v
	case hir.Tuple:
		members := make([]hir.Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = r.resolveType(m)
		}
		v.Members = members
		return v
	case hir.Table:
		entries := make([]hir.TableEntry, len(v.Entries))
		for i, e := range v.Entries {
			if e.Key.Kind == hir.KeyComputed {
				e.Key.Computed = r.resolveType(e.Key.Computed)
			}
			e.Value = r.resolveType(e.Value)
			entries[i] = e
		}
		v.Entries = entries
		if v.Metatable != nil {
			resolved := r.resolveType(*v.Metatable).(hir.Table)
			v.Metatable = &resolved
		}
		return v
	case hir.Function:
		params := make([]hir.Param, len(v.Parameters))
		for i, p := range v.Parameters {
			p.Typ = r.resolveType(p.Typ)
			params[i] = p
		}
		v.Parameters = params
		if v.VariadicParam != nil {
			vp := *v.VariadicParam
			vp.Typ = r.resolveType(vp.Typ)
			v.VariadicParam = &vp
		}
		v.Return = r.resolveType(v.Return)
		return v
	case hir.Reference:
		return r.resolveReference(v)
	case hir.Unresolved:
		return r.resolveType(r.module.Symbol(v.Symbol).CurrentType)
	case hir.Intersection:
		return r.resolveIntersection(v)
	case hir.Union:
		members := make([]hir.Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = r.resolveType(m)
		}
		v.Members = members
		return v
	default:
		return t
	}
}

// resolveReference substitutes ref's arguments for its alias's type
// parameters, one binding per parameter: an explicitly supplied argument
// wins, else the parameter's Default, else MissingTypeArgument/
// ExpectedTypeArguments is raised (spec.md §4.4). Bound never stands in
// for a missing argument — it is a constraint on the parameter, not a
// fallback value, and only shows up here to describe, in that diagnostic,
// what type the caller should have supplied.
func (r *Resolver) resolveReference(ref hir.Reference) hir.Type {
	if bound, ok := r.lookupTypeVar(ref.Symbol); ok {
		return bound
	}
	if r.module.Symbol(ref.Symbol).Kind == hir.SymbolTypeParameter {
		// An unbound type parameter (inside its own alias body, resolved
		// at the declaration) stays a reference until an instantiation
		// binds it.
		return ref
	}
	for _, onStack := range r.typeStack {
		if onStack == ref.Symbol {
			return hir.Recursive{SpanInfo: ref.SpanInfo, Symbol: ref.Symbol}
		}
	}
	sym := r.module.Symbol(ref.Symbol)
	if sym.CurrentType == nil {
		return hir.Any{SpanInfo: ref.SpanInfo}
	}

	if len(sym.Params) > 0 && len(ref.Arguments) == 0 {
		r.diags.Add(diagnostics.ExpectedTypeArguments(ref.SpanInfo, ref.Name))
		return hir.Any{SpanInfo: ref.SpanInfo}
	}

	r.typeStack = append(r.typeStack, ref.Symbol)
	bindings := make(map[string]hir.Type, len(sym.Params))
	for i, p := range sym.Params {
		var arg hir.Type
		switch {
		case i < len(ref.Arguments):
			arg = ref.Arguments[i]
		case p.Default != nil:
			arg = p.Default
		default:
			expected := p.Bound
			if expected == nil {
				expected = hir.Any{SpanInfo: ref.SpanInfo}
			}
			r.diags.Add(diagnostics.MissingTypeArgument(ref.SpanInfo, i+1, hir.Describe(expected)))
			r.typeStack = r.typeStack[:len(r.typeStack)-1]
			return hir.Any{SpanInfo: ref.SpanInfo}
		}
		bindings[p.Name] = arg
	}
	r.typeVars = append(r.typeVars, bindings)

	result := r.resolveType(sym.CurrentType)

	r.typeVars = r.typeVars[:len(r.typeVars)-1]
	r.typeStack = r.typeStack[:len(r.typeStack)-1]
	return result
}

func (r *Resolver) lookupTypeVar(sym hir.SymbolHandle) (hir.Type, bool) {
	name := r.module.Symbol(sym).Name
	for i := len(r.typeVars) - 1; i >= 0; i-- {
		if bound, ok := r.typeVars[i][name]; ok {
			return bound, true
		}
	}
	return nil, false
}

// resolveIntersection merges table members left-to-right into a single
// table (later wins on key collision), preserves non-table members, and
// unwraps a single-member result (spec.md §4.4; DESIGN.md Open Question 2
// for the metatable-collision policy).
func (r *Resolver) resolveIntersection(v hir.Intersection) hir.Type {
	resolved := make([]hir.Type, len(v.Members))
	for i, m := range v.Members {
		resolved[i] = r.resolveType(m)
	}

	var merged *hir.Table
	var others []hir.Type
	for _, m := range resolved {
		if tbl, ok := m.(hir.Table); ok {
			if merged == nil {
				cp := tbl
				merged = &cp
			} else {
				*merged = r.mergeTables(*merged, tbl)
			}
			continue
		}
		others = append(others, m)
	}

	var members []hir.Type
	if merged != nil {
		members = append(members, *merged)
	}
	members = append(members, others...)

	if len(members) == 1 {
		return members[0]
	}
	v.Members = members
	return v
}

// mergeTables unions a's and b's entries, b winning on key collision, and
// keeps a's metatable unless only b carries one — leftmost wins (DESIGN.md
// Open Question 2). If both carry a metatable defining the same key with
// differing types, InvalidMetatable is raised.
func (r *Resolver) mergeTables(a, b hir.Table) hir.Table {
	entries := append([]hir.TableEntry{}, a.Entries...)
	for _, be := range b.Entries {
		replaced := false
		for i, ae := range entries {
			if hir.EqualKey(ae.Key, be.Key) {
				entries[i] = be
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, be)
		}
	}
	meta := a.Metatable
	if meta == nil {
		meta = b.Metatable
	} else if b.Metatable != nil {
		for _, be := range b.Metatable.Entries {
			if ae, ok := meta.Get(be.Key); ok && !hir.Equal(ae.Value, be.Value) {
				r.diags.Add(diagnostics.InvalidMetatable(b.SpanInfo))
			}
		}
	}
	return hir.Table{SpanInfo: a.SpanInfo, Entries: entries, Metatable: meta, IsMetatable: a.IsMetatable || b.IsMetatable}
}
