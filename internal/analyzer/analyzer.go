// Package analyzer decides structural assignability between declared HIR
// types and performs metatable-aware call checking (spec.md §4.5). It
// assumes its input has already passed through internal/resolver: no
// Reference, Unresolved, or unmerged table intersection survives.
package analyzer

import (
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/source"
)

type Analyzer struct {
	module *hir.Module
	diags  diagnostics.Bag

	// seenReturn marks a returnable scope once its first concluding return
	// has been visited, so later returns into the same scope are checked
	// for assignability against it instead of silently replacing it
	// (DESIGN.md Open Question 1).
	seenReturn map[hir.ScopeHandle]bool
}

// Analyze walks the resolved HIR in source order, collecting diagnostics
// in visitation order (spec.md §5).
func Analyze(m *hir.Module, block *hir.Block) *diagnostics.Bag {
	a := &Analyzer{module: m, seenReturn: map[hir.ScopeHandle]bool{}}
	a.analyzeBlock(block)
	return &a.diags
}

func (a *Analyzer) analyzeBlock(b *hir.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Statements {
		a.analyzeStmt(s, b.Scope)
	}
}

func (a *Analyzer) analyzeStmt(s *hir.Stmt, scope hir.ScopeHandle) {
	switch s.Kind {
	case hir.StmtExpr:
		a.exprType(s.Expr)
	case hir.StmtLibrarySetMetatable:
		a.checkSetMetatable(s.Expr)
	case hir.StmtDo, hir.StmtWhile, hir.StmtRepeat, hir.StmtNumericFor, hir.StmtGenericFor:
		if s.Condition != nil {
			a.exprType(s.Condition)
		}
		for _, e := range s.Exprs {
			if e != nil {
				a.exprType(e)
			}
		}
		a.analyzeBlock(s.Body)
	case hir.StmtIf:
		for _, c := range s.Clauses {
			a.exprType(c.Condition)
			a.analyzeBlock(c.Body)
		}
		if s.HasElse {
			a.analyzeBlock(s.Else)
		}
	case hir.StmtLocalAssign:
		a.analyzeLocalAssign(s)
	case hir.StmtVarAssign:
		a.analyzeVarAssign(s)
	case hir.StmtReturn:
		a.analyzeReturn(s, scope)
	case hir.StmtTypeDecl:
		a.analyzeTypeDecl(s)
	case hir.StmtBreak:
		// nothing to check: break carries no expression.
	}
}

// analyzeTypeDecl implements spec.md §4.5's fifth assignable invocation
// site: a type parameter's default, where both a bound and a default are
// declared, must itself satisfy the bound (`type T<A: Bound = Default>`).
func (a *Analyzer) analyzeTypeDecl(s *hir.Stmt) {
	for _, h := range s.Targets {
		sym := a.module.Symbol(h)
		for _, p := range sym.Params {
			if p.Bound != nil && p.Default != nil {
				a.assignable(p.Default, p.Bound, p.SpanInfo)
			}
		}
	}
}

// analyzeReturn implements DESIGN.md Open Question 1: the first concluding
// return into a given returnable scope already set that scope's
// ActualType (internal/transformer); every later return into the same
// scope is checked for assignability against it instead.
func (a *Analyzer) analyzeReturn(s *hir.Stmt, scope hir.ScopeHandle) {
	var concluded hir.Type
	switch len(s.Exprs) {
	case 0:
		concluded = hir.Literal{SpanInfo: s.Span(), Kind: hir.LiteralVoid}
	case 1:
		concluded = a.exprType(s.Exprs[0])
	default:
		members := make([]hir.Type, len(s.Exprs))
		for i, e := range s.Exprs {
			members[i] = a.exprType(e)
		}
		concluded = hir.Tuple{SpanInfo: s.Span(), Members: members}
	}

	target := a.returnableScope(scope)
	sc := a.module.Scope(target)

	if sc.ExpectedType != nil {
		// The function declared an explicit return type: every return is
		// checked directly against it, not just the later ones.
		a.assignable(concluded, sc.ExpectedType, s.Span())
		return
	}
	if a.seenReturn[target] {
		a.assignable(concluded, sc.ActualType, s.Span())
		return
	}
	a.seenReturn[target] = true
}

// returnableScope mirrors transformer.returnableScope: the nearest
// Module-or-Function-kind scope.
func (a *Analyzer) returnableScope(start hir.ScopeHandle) hir.ScopeHandle {
	h := start
	for {
		sc := a.module.Scope(h)
		if sc.Kind == hir.ScopeModule || sc.Kind == hir.ScopeFunction {
			return h
		}
		if !sc.HasParent {
			return h
		}
		h = sc.Parent
	}
}

func (a *Analyzer) analyzeLocalAssign(s *hir.Stmt) {
	for i, sym := range s.Targets {
		symbol := a.module.Symbol(sym)
		if i >= len(s.Exprs) || s.Exprs[i] == nil {
			continue
		}
		value := a.exprType(s.Exprs[i])
		if symbol.Explicit {
			a.assignable(value, symbol.CurrentType, s.Exprs[i].Span())
		}
	}
}

func (a *Analyzer) analyzeVarAssign(s *hir.Stmt) {
	for _, e := range s.TargetExprs {
		a.exprType(e)
	}
	for i, target := range s.TargetExprs {
		if i >= len(s.Exprs) || s.Exprs[i] == nil {
			continue
		}
		value := a.exprType(s.Exprs[i])
		a.assignable(value, target.Type, s.Exprs[i].Span())
	}
}

// exprType returns e's type, computing a Suffixed expression's call/index
// type lazily (spec.md §4.3: "the expression type of a call is computed
// lazily by the analyzer").
func (a *Analyzer) exprType(e *hir.Expr) hir.Type {
	if e == nil {
		return hir.Any{}
	}
	switch e.Kind {
	case hir.ExprTypeAssertion:
		valueType := a.exprType(e.Operand)
		a.assignable(valueType, e.Type, e.Span())
		return e.Type
	case hir.ExprTable:
		for _, f := range e.Fields {
			a.exprType(f.Value)
		}
		return e.Type
	case hir.ExprFunction:
		a.analyzeBlock(e.Body)
		return e.Type
	case hir.ExprLibrarySetMetatable:
		a.checkSetMetatable(e)
		return e.Type
	case hir.ExprSuffixed:
		return a.exprTypeSuffixed(e)
	default:
		for _, o := range e.Operands {
			a.exprType(o)
		}
		return e.Type
	}
}

// checkSetMetatable implements the Library::SetMetatable check spec.md
// §4.5 describes: both operands must be Table, after which the base
// acquires the metatable through a fact overlay scoped to where the call
// was made (spec.md §4.3's EnclosingScope), rather than by mutating the
// base symbol directly.
func (a *Analyzer) checkSetMetatable(e *hir.Expr) {
	mt := a.exprType(e.Metatable)
	base, baseOk := e.Type.(hir.Table)
	mtTable, mtOk := mt.(hir.Table)
	if !baseOk || !mtOk {
		a.diags.Add(diagnostics.InvalidMetatable(e.Span()))
		return
	}
	base.Metatable = &mtTable
	sym := a.module.Symbol(e.TargetSymbol)
	shadow := a.module.NewSymbol(hir.Symbol{
		Name:        sym.Name,
		Kind:        sym.Kind,
		Definitions: sym.Definitions,
		Explicit:    sym.Explicit,
		CurrentType: base,
	})
	a.module.InstallFact(e.EnclosingScope, e.TargetSymbol, shadow)
}

func (a *Analyzer) exprTypeSuffixed(e *hir.Expr) hir.Type {
	cur := a.exprType(e.Base)
	for _, suf := range e.Suffixes {
		switch suf.Kind {
		case hir.SuffixDot, hir.SuffixMethod:
			cur = a.fieldType(cur, suf.Name)
		case hir.SuffixIndex:
			a.exprType(suf.Index)
			cur = a.indexType(cur, suf.SpanInfo)
		case hir.SuffixCall:
			for _, arg := range suf.Args {
				a.exprType(arg)
			}
			cur = a.checkCall(cur, suf.Args, suf.SpanInfo)
		}
	}
	return cur
}

// fieldType looks up a dot/method access against a table's declared
// shape. Arbitrary field access outside an assignability check isn't
// named explicitly by spec.md §4.5, so a miss degrades to Unknown rather
// than raising a diagnostic of its own; MissingField is reserved for
// table-subtyping checks, where the expected type is actually known.
func (a *Analyzer) fieldType(base hir.Type, name string) hir.Type {
	tbl, ok := base.(hir.Table)
	if !ok {
		return hir.Unknown{}
	}
	if e, ok := tbl.Get(hir.TableFieldKey{Kind: hir.KeyName, Name: name}); ok {
		return e.Value
	}
	return hir.Unknown{}
}

func (a *Analyzer) indexType(base hir.Type, span source.Span) hir.Type {
	tbl, ok := base.(hir.Table)
	if !ok {
		return hir.Unknown{SpanInfo: span}
	}
	for _, e := range tbl.Entries {
		if e.Key.Kind == hir.KeyArrayIndex || e.Key.Kind == hir.KeyComputed {
			return e.Value
		}
	}
	return hir.Unknown{SpanInfo: span}
}

// checkCall implements spec.md §4.5's call checking: resolve through a
// __call metamethod if base isn't directly callable, check each actual
// against the callee's parameters, and return the callee's declared
// return type.
func (a *Analyzer) checkCall(base hir.Type, args []*hir.Expr, span source.Span) hir.Type {
	fn, ok := a.callable(base, span)
	if !ok {
		return hir.Unknown{SpanInfo: span}
	}
	for i, p := range fn.Parameters {
		if i >= len(args) {
			if !p.Optional {
				a.diags.Add(diagnostics.MissingArgument(span, i+1, hir.Describe(p.Typ)))
			}
			continue
		}
		a.assignable(args[i].Type, p.Typ, args[i].Span())
	}
	if fn.VariadicParam != nil {
		for i := len(fn.Parameters); i < len(args); i++ {
			a.assignable(args[i].Type, fn.VariadicParam.Typ, args[i].Span())
		}
	} else if len(args) > len(fn.Parameters) {
		a.diags.Add(diagnostics.ExcessiveParameter(span, len(fn.Parameters)+1))
	}
	return fn.Return
}

// callable resolves base to a Function, recursing through a __call
// metamethod on a Table's metatable if necessary.
func (a *Analyzer) callable(base hir.Type, span source.Span) (hir.Function, bool) {
	switch v := base.(type) {
	case hir.Function:
		return v, true
	case hir.Any:
		return hir.Function{Return: hir.Any{SpanInfo: span}}, true
	case hir.Unknown:
		return hir.Function{Return: hir.Unknown{SpanInfo: span}}, true
	case hir.Table:
		if v.Metatable == nil {
			a.diags.Add(diagnostics.NonCallExpression(span))
			return hir.Function{}, false
		}
		call, ok := v.Metatable.Get(hir.TableFieldKey{Kind: hir.KeyName, Name: "__call"})
		if !ok {
			a.diags.Add(diagnostics.NonCallExpression(span))
			return hir.Function{}, false
		}
		fn, ok := call.Value.(hir.Function)
		if !ok {
			a.diags.Add(diagnostics.InvalidMetamethod(span, "__call"))
			return hir.Function{}, false
		}
		return fn, true
	default:
		a.diags.Add(diagnostics.NonCallExpression(span))
		return hir.Function{}, false
	}
}
