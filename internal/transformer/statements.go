package transformer

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/source"
)

func (t *Transformer) VisitBreakStatement(n *ast.BreakStatement) {
	t.stmtResult = &hir.Stmt{Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtBreak}
}

func (t *Transformer) VisitCallStatement(n *ast.CallStatement) {
	call := t.transformExpr(n.Call)
	kind := hir.StmtExpr
	if call.Kind == hir.ExprLibrarySetMetatable {
		kind = hir.StmtLibrarySetMetatable
	}
	t.stmtResult = &hir.Stmt{Syntax: n, SpanInfo: n.Span(), Kind: kind, Expr: call}
}

func (t *Transformer) VisitDoStatement(n *ast.DoStatement) {
	body, scope := t.transformBlock(n.Body, hir.ScopeBlock)
	t.stmtResult = &hir.Stmt{Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtDo, Body: body, Scope: scope}
}

func (t *Transformer) VisitWhileStatement(n *ast.WhileStatement) {
	cond := t.transformExpr(n.Condition)
	body, scope := t.transformBlock(n.Body, hir.ScopeBlock)
	t.stmtResult = &hir.Stmt{Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtWhile, Condition: cond, Body: body, Scope: scope}
}

func (t *Transformer) VisitRepeatStatement(n *ast.RepeatStatement) {
	// The until-condition is resolved in the body's own scope (it may
	// reference locals the body declared), so it's transformed with that
	// scope still current rather than via transformBlock's restore.
	parent := t.scope
	scope := t.module.NewScope(hir.ScopeBlock, parent)
	t.scope = scope
	stmts := t.transformStatements(n.Body)
	cond := t.transformExpr(n.Condition)
	t.scope = parent
	t.stmtResult = &hir.Stmt{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtRepeat, Scope: scope,
		Body: &hir.Block{Scope: scope, Statements: stmts}, Condition: cond,
	}
}

func (t *Transformer) VisitNumericForStatement(n *ast.NumericForStatement) {
	start := t.transformExpr(n.Start)
	stop := t.transformExpr(n.Stop)
	var step *hir.Expr
	if n.Step != nil {
		step = t.transformExpr(n.Step)
	}
	parent := t.scope
	scope := t.module.NewScope(hir.ScopeBlock, parent)
	t.scope = scope
	sym := t.module.NewSymbol(hir.Symbol{
		Name: n.Name, Kind: hir.SymbolBlockVariable,
		Definitions: []source.Span{n.Span()}, CurrentType: hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralNumber},
	})
	t.module.Declare(scope, n.Name, sym)
	stmts := t.transformStatements(n.Body)
	t.scope = parent
	t.stmtResult = &hir.Stmt{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtNumericFor, Scope: scope,
		Exprs: []*hir.Expr{start, stop, step}, LoopVars: []hir.SymbolHandle{sym},
		Body: &hir.Block{Scope: scope, Statements: stmts},
	}
}

func (t *Transformer) VisitGenericForStatement(n *ast.GenericForStatement) {
	exprs := t.transformExprs(n.Exprs)
	parent := t.scope
	scope := t.module.NewScope(hir.ScopeBlock, parent)
	t.scope = scope
	vars := make([]hir.SymbolHandle, len(n.Names))
	for i, name := range n.Names {
		sym := t.module.NewSymbol(hir.Symbol{
			Name: name, Kind: hir.SymbolBlockVariable,
			Definitions: []source.Span{n.Span()}, CurrentType: hir.Any{SpanInfo: n.Span()},
		})
		t.module.Declare(scope, name, sym)
		vars[i] = sym
	}
	stmts := t.transformStatements(n.Body)
	t.scope = parent
	t.stmtResult = &hir.Stmt{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtGenericFor, Scope: scope,
		Exprs: exprs, LoopVars: vars, Body: &hir.Block{Scope: scope, Statements: stmts},
	}
}

func (t *Transformer) VisitIfStatement(n *ast.IfStatement) {
	clauses := make([]hir.IfClause, 0, 1+len(n.ElseIfs))
	cond := t.transformExpr(n.Condition)
	body, scope := t.transformBlock(n.Then, hir.ScopeBlock)
	clauses = append(clauses, hir.IfClause{Condition: cond, Scope: scope, Body: body})
	for _, ei := range n.ElseIfs {
		c := t.transformExpr(ei.Condition)
		b, s := t.transformBlock(ei.Body, hir.ScopeBlock)
		clauses = append(clauses, hir.IfClause{Condition: c, Scope: s, Body: b})
	}
	stmt := &hir.Stmt{Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtIf, Clauses: clauses}
	if n.Else != nil {
		elseBody, elseScope := t.transformBlock(n.Else, hir.ScopeBlock)
		stmt.Else = elseBody
		stmt.ElseScope = elseScope
		stmt.HasElse = true
	}
	t.stmtResult = stmt
}

// flattenAssignType returns the value type used to declare a binding from
// a right-hand expression: a tuple's first member, or the expression's
// own type if it isn't a tuple (spec.md §4.3 "flatten" for multi-value
// right-hand sides; spec.md §4.5 rule 7 treats a one-element tuple as its
// sole element, which this generalises to "use the first").
func flattenAssignType(e *hir.Expr) hir.Type {
	if e == nil {
		return hir.Type(hir.Any{})
	}
	if tup, ok := e.Type.(hir.Tuple); ok && len(tup.Members) > 0 {
		return tup.Members[0]
	}
	return e.Type
}

// applyParameterGuessOverride implements spec.md §4.3's rule: when a
// local has an explicit function type and its value is a function
// literal, any parameter the literal left untyped (Any) is overwritten
// from the assertion's corresponding parameter type. The return type is
// never touched by this rule.
func applyParameterGuessOverride(explicit hir.Type, value *hir.Expr) {
	if value == nil || value.Kind != hir.ExprFunction {
		return
	}
	target, ok := explicit.(hir.Function)
	if !ok {
		return
	}
	fnType, ok := value.Type.(hir.Function)
	if !ok {
		return
	}
	for i := range fnType.Parameters {
		if i >= len(target.Parameters) {
			break
		}
		if _, isAny := fnType.Parameters[i].Typ.(hir.Any); !isAny {
			continue
		}
		fnType.Parameters[i].Typ = target.Parameters[i].Typ
	}
}

func (t *Transformer) VisitLocalAssignStatement(n *ast.LocalAssignStatement) {
	exprs := t.transformExprs(n.Exprs)
	seen := make(map[string]bool, len(n.Names))
	targets := make([]hir.SymbolHandle, len(n.Names))
	for i, binding := range n.Names {
		if seen[binding.Name] {
			t.diags.Add(diagnostics.DuplicateDeclaration(binding.SpanInfo, binding.Name))
		}
		seen[binding.Name] = true

		var value *hir.Expr
		if i < len(exprs) {
			value = exprs[i]
		}

		var chosen hir.Type
		explicit := binding.Type != nil
		if explicit {
			chosen = t.transformType(binding.Type)
			applyParameterGuessOverride(chosen, value)
		} else if value != nil {
			chosen = flattenAssignType(value)
		} else {
			chosen = hir.Any{SpanInfo: binding.SpanInfo}
		}

		sym := t.module.NewSymbol(hir.Symbol{
			Name: binding.Name, Kind: hir.SymbolBlockVariable,
			Definitions: []source.Span{binding.SpanInfo}, CurrentType: chosen, Explicit: explicit,
		})
		t.module.Declare(t.scope, binding.Name, sym)
		targets[i] = sym
	}
	t.stmtResult = &hir.Stmt{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtLocalAssign, Targets: targets, Exprs: exprs,
	}
}

func (t *Transformer) VisitVarAssignStatement(n *ast.VarAssignStatement) {
	targetExprs := t.transformExprs(n.Targets)
	valueExprs := t.transformExprs(n.Exprs)
	t.stmtResult = &hir.Stmt{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtVarAssign,
		TargetExprs: targetExprs, Exprs: valueExprs,
	}
}

func (t *Transformer) VisitLocalFunctionStatement(n *ast.LocalFunctionStatement) {
	// Unlike a plain local-assign, the name is declared before the body is
	// visited so recursive calls resolve (spec.md §4.2 doc comment on the
	// syntax node).
	sym := t.module.NewSymbol(hir.Symbol{
		Name: n.Name, Kind: hir.SymbolBlockVariable,
		Definitions: []source.Span{n.Span()}, CurrentType: hir.Any{SpanInfo: n.Span()},
	})
	t.module.Declare(t.scope, n.Name, sym)
	fn := t.transformExpr(n.Func)
	t.module.Symbol(sym).CurrentType = fn.Type
	t.module.Symbol(sym).Explicit = true
	t.stmtResult = &hir.Stmt{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtLocalAssign,
		Targets: []hir.SymbolHandle{sym}, Exprs: []*hir.Expr{fn},
	}
}

func (t *Transformer) VisitFunctionAssignStatement(n *ast.FunctionAssignStatement) {
	fn := t.transformExpr(n.Func)
	baseIdent := &ast.Identifier{SpanInfo: n.Span(), Name: n.Name.Base}
	sym := t.lookupOrUnknown(baseIdent)
	// A dotted/method target (`function a.b.c:m()`) is assigned through
	// its base name only; the nested field path isn't re-typed as a
	// table-field assignment target here (a deliberate simplification:
	// such declarations overwhelmingly target a table the transformer
	// already widened to Any/Unknown along the way).
	target := &hir.Expr{
		Syntax: baseIdent, SpanInfo: baseIdent.Span(), Kind: hir.ExprGeneric,
		Type: t.module.Symbol(sym).CurrentType, Symbol: sym, HasSymbol: true, EnclosingScope: t.scope,
	}
	t.stmtResult = &hir.Stmt{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtVarAssign,
		TargetExprs: []*hir.Expr{target}, Exprs: []*hir.Expr{fn},
	}
}

// returnableScope walks parent scopes from start to the nearest Module or
// Function scope (spec.md §4.3's "return flow").
func (t *Transformer) returnableScope(start hir.ScopeHandle) hir.ScopeHandle {
	cur := start
	for {
		s := t.module.Scope(cur)
		if s.Kind == hir.ScopeModule || s.Kind == hir.ScopeFunction {
			return cur
		}
		if !s.HasParent {
			return cur
		}
		cur = s.Parent
	}
}

func (t *Transformer) VisitReturnStatement(n *ast.ReturnStatement) {
	exprs := t.transformExprs(n.Exprs)
	var concluding hir.Type
	switch len(exprs) {
	case 0:
		concluding = hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralVoid}
	case 1:
		concluding = exprs[0].Type
	default:
		members := make([]hir.Type, len(exprs))
		for i, e := range exprs {
			members[i] = e.Type
		}
		concluding = hir.Tuple{SpanInfo: n.Span(), Members: members}
	}

	target := t.returnableScope(t.scope)
	scope := t.module.Scope(target)
	if scope.ExpectedType == nil {
		// DESIGN.md Open Question 1: first concluding return wins; later
		// returns are checked for assignability against it elsewhere
		// (internal/analyzer), not unioned here.
		if scope.ActualType == nil {
			scope.ActualType = concluding
		}
	}

	t.stmtResult = &hir.Stmt{Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtReturn, Exprs: exprs}
}

func (t *Transformer) VisitTypeDeclarationStatement(n *ast.TypeDeclarationStatement) {
	// The alias symbol is created before visiting its body so
	// self-recursive aliases resolve (spec.md §4.3).
	sym := t.module.NewSymbol(hir.Symbol{
		Name: n.Name, Kind: hir.SymbolTypeAlias,
		Definitions: []source.Span{n.Span()}, CurrentType: hir.Any{SpanInfo: n.Span()},
	})
	t.module.DeclareType(t.scope, n.Name, sym)

	parent := t.scope
	declScope := t.module.NewScope(hir.ScopeTypeAliasDeclaration, parent)
	t.scope = declScope

	params := make([]hir.TypeParamDecl, len(n.Params))
	for i, p := range n.Params {
		var bound, def hir.Type
		if p.Bound != nil {
			bound = t.transformType(p.Bound)
		}
		if p.Default != nil {
			def = t.transformType(p.Default)
		}
		declared := bound
		if declared == nil {
			declared = def
		}
		if declared == nil {
			declared = hir.Any{SpanInfo: p.SpanInfo}
		}
		psym := t.module.NewSymbol(hir.Symbol{
			Name: p.Name, Kind: hir.SymbolTypeParameter,
			Definitions: []source.Span{p.SpanInfo}, Bound: bound, CurrentType: declared,
		})
		t.module.DeclareType(declScope, p.Name, psym)
		params[i] = hir.TypeParamDecl{SpanInfo: p.SpanInfo, Name: p.Name, Bound: bound, Default: def}
	}

	body := t.transformType(n.Type)
	t.scope = parent

	t.module.Symbol(sym).CurrentType = body
	t.module.Symbol(sym).Params = params

	t.stmtResult = &hir.Stmt{Syntax: n, SpanInfo: n.Span(), Kind: hir.StmtTypeDecl, Targets: []hir.SymbolHandle{sym}, Scope: declScope}
}
