package transformer

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/config"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/source"
	"github.com/slt-lang/slt/internal/token"
)

func (t *Transformer) VisitBoolLiteral(n *ast.BoolLiteral) {
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprLiteral,
		Type: hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralBool}}
}

func (t *Transformer) VisitNilLiteral(n *ast.NilLiteral) {
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprLiteral,
		Type: hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralNil}}
}

func (t *Transformer) VisitNumberLiteral(n *ast.NumberLiteral) {
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprLiteral,
		Type: hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralNumber}}
}

func (t *Transformer) VisitStringLiteral(n *ast.StringLiteral) {
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprLiteral,
		Type: hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralString}}
}

func (t *Transformer) VisitNameExpression(n *ast.NameExpression) {
	sym := t.lookupOrUnknown(n.Ident)
	t.exprResult = &hir.Expr{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprGeneric,
		Type: t.module.Symbol(sym).CurrentType, Symbol: sym, HasSymbol: true,
	}
}

func (t *Transformer) VisitVarargs(n *ast.Varargs) {
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprGeneric,
		Type: hir.Any{SpanInfo: n.Span()}}
}

func (t *Transformer) VisitTableLiteral(n *ast.TableLiteral) {
	fields := make([]hir.TableFieldValue, 0, len(n.Fields))
	entries := make([]hir.TableEntry, 0, len(n.Fields))
	arrayIndex := 0
	for _, f := range n.Fields {
		value := t.transformExpr(f.Value)
		var key hir.TableFieldKey
		switch f.Kind {
		case ast.TableFieldNamed:
			key = hir.TableFieldKey{SpanInfo: f.SpanInfo, Kind: hir.KeyName, Name: f.Name}
		case ast.TableFieldComputed:
			keyExpr := t.transformExpr(f.Key)
			key = hir.TableFieldKey{SpanInfo: f.SpanInfo, Kind: hir.KeyComputed, Computed: keyExpr.Type}
		default: // ast.TableFieldArray
			key = hir.TableFieldKey{SpanInfo: f.SpanInfo, Kind: hir.KeyArrayIndex, Index: arrayIndex}
			arrayIndex++
		}
		fields = append(fields, hir.TableFieldValue{Key: key, Value: value})
		entries = append(entries, hir.TableEntry{Key: key, Value: value.Type})
	}
	t.exprResult = &hir.Expr{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprTable, Fields: fields,
		Type: hir.Table{SpanInfo: n.Span(), Entries: entries},
	}
}

func (t *Transformer) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	parent := t.scope
	fnScope := t.module.NewScope(hir.ScopeFunction, parent)
	t.scope = fnScope

	if n.ReturnType != nil {
		t.module.Scope(fnScope).ExpectedType = t.transformType(n.ReturnType)
	}

	params := make([]hir.SymbolHandle, len(n.Params))
	fnParams := make([]hir.Param, len(n.Params))
	for i, p := range n.Params {
		typ := hir.Type(hir.Any{SpanInfo: p.SpanInfo})
		if p.Type != nil {
			typ = t.transformType(p.Type)
		}
		sym := t.module.NewSymbol(hir.Symbol{
			Name: p.Name, Kind: hir.SymbolFunctionParameter,
			Definitions: []source.Span{p.SpanInfo}, CurrentType: typ, Optional: p.Optional,
		})
		t.module.Declare(fnScope, p.Name, sym)
		params[i] = sym
		fnParams[i] = hir.Param{SpanInfo: p.SpanInfo, Name: p.Name, Typ: typ, Optional: p.Optional}
	}

	var variadic hir.SymbolHandle
	hasVariadic := n.VarargParam != nil
	var variadicParam *hir.Param
	if hasVariadic {
		vp := n.VarargParam
		typ := hir.Type(hir.Any{SpanInfo: vp.SpanInfo})
		if vp.Type != nil {
			typ = t.transformType(vp.Type)
		}
		sym := t.module.NewSymbol(hir.Symbol{
			Name: vp.Name, Kind: hir.SymbolFunctionParameter,
			Definitions: []source.Span{vp.SpanInfo}, CurrentType: typ, Optional: true,
		})
		t.module.Declare(fnScope, vp.Name, sym)
		variadic = sym
		variadicParam = &hir.Param{SpanInfo: vp.SpanInfo, Name: vp.Name, Typ: typ, Optional: true}
	}

	bodyStmts := t.transformStatements(n.Body)
	scopeInfo := t.module.Scope(fnScope)
	returnType := scopeInfo.ExpectedType
	if returnType == nil {
		if scopeInfo.ActualType != nil {
			returnType = scopeInfo.ActualType
		} else {
			returnType = hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralVoid}
		}
	}
	t.scope = parent

	t.exprResult = &hir.Expr{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprFunction,
		FuncScope: fnScope, Params: params, VariadicParam: variadic, HasVariadic: hasVariadic,
		Body: &hir.Block{Scope: fnScope, Statements: bodyStmts},
		Type: hir.Function{SpanInfo: n.Span(), Parameters: fnParams, VariadicParam: variadicParam, Return: returnType},
	}
}

func (t *Transformer) VisitParenExpression(n *ast.ParenExpression) {
	inner := t.transformExpr(n.Inner)
	typ := inner.Type
	if tup, ok := typ.(hir.Tuple); ok && len(tup.Members) > 0 {
		typ = tup.Members[0]
	}
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprGeneric, Type: typ, Operands: []*hir.Expr{inner}}
}

func (t *Transformer) VisitUnaryExpression(n *ast.UnaryExpression) {
	operand := t.transformExpr(n.Operand)
	var typ hir.Type
	switch n.Operator.Kind {
	case token.NOT:
		typ = hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralBool}
	case token.HASH:
		typ = hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralNumber}
	default: // MINUS
		typ = operand.Type
	}
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprGeneric, Type: typ, Operands: []*hir.Expr{operand}}
}

func (t *Transformer) VisitBinaryExpression(n *ast.BinaryExpression) {
	left := t.transformExpr(n.Left)
	right := t.transformExpr(n.Right)
	var typ hir.Type
	switch n.Operator.Kind {
	case token.EQ, token.NEQ, token.GT, token.GTE, token.LT, token.LTE, token.AND, token.OR:
		typ = hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralBool}
	case token.DOT_DOT:
		typ = hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralString}
	default: // arithmetic
		typ = left.Type
	}
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprGeneric, Type: typ, Operands: []*hir.Expr{left, right}}
}

func (t *Transformer) VisitTypeAssertionExpression(n *ast.TypeAssertionExpression) {
	base := t.transformExpr(n.Base)
	castType := t.transformType(n.Cast)
	t.exprResult = &hir.Expr{Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprTypeAssertion, Type: castType, Operand: base}
}

// setmetatableCall reports whether base and suffixes form a direct call to the
// setmetatable intrinsic (spec.md §4.3: "the distinguished intrinsic
// call"), returning its two argument expressions if so.
func setmetatableCall(base ast.Expression, suffixes []ast.Suffix) (ast.Expression, ast.Expression, bool) {
	name, ok := base.(*ast.NameExpression)
	if !ok || name.Ident.Name != config.SetMetatableFuncName || len(suffixes) != 1 {
		return nil, nil, false
	}
	suf := suffixes[0]
	if suf.Kind != ast.SuffixCall || suf.Args.Kind != ast.CallArgsParen || len(suf.Args.Exprs) != 2 {
		return nil, nil, false
	}
	return suf.Args.Exprs[0], suf.Args.Exprs[1], true
}

func (t *Transformer) VisitSuffixedExpression(n *ast.SuffixedExpression) {
	if tblExpr, mtExpr, ok := setmetatableCall(n.Base, n.Suffixes); ok {
		tbl := t.transformExpr(tblExpr)
		mt := t.transformExpr(mtExpr)
		t.exprResult = &hir.Expr{
			Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprLibrarySetMetatable,
			Type: tbl.Type, TargetSymbol: tbl.Symbol, Metatable: mt,
		}
		return
	}

	base := t.transformExpr(n.Base)
	suffixes := make([]hir.Suffix, len(n.Suffixes))
	for i, s := range n.Suffixes {
		hs := hir.Suffix{SpanInfo: s.Span(), Kind: hir.SuffixKind(s.Kind)}
		switch s.Kind {
		case ast.SuffixDot, ast.SuffixMethod:
			hs.Name = s.Name
		case ast.SuffixIndex:
			hs.Index = t.transformExpr(s.Index)
		case ast.SuffixCall:
			switch s.Args.Kind {
			case ast.CallArgsParen:
				hs.Args = t.transformExprs(s.Args.Exprs)
			case ast.CallArgsTable:
				hs.Args = []*hir.Expr{t.transformExpr(s.Args.Table)}
			case ast.CallArgsString:
				hs.Args = []*hir.Expr{t.transformExpr(s.Args.String)}
			}
		}
		suffixes[i] = hs
	}
	// The expression type of a call/index chain is computed lazily by the
	// analyzer from the callee's function type (spec.md §4.3); until then
	// it is Unknown so a reference to it before analysis doesn't panic.
	t.exprResult = &hir.Expr{
		Syntax: n, SpanInfo: n.Span(), Kind: hir.ExprSuffixed, Base: base, Suffixes: suffixes,
		Type: hir.Unknown{SpanInfo: n.Span()},
	}
}
