package parser

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/source"
	"github.com/slt-lang/slt/internal/token"
)

// atBlockEnd reports whether cur sits at one of the sentinels that close a
// block (spec.md §4.2: `end | elseif | else | until | <eof>`).
func atBlockEnd(s State) bool {
	switch s.current().Kind {
	case token.END, token.ELSEIF, token.ELSE, token.UNTIL, token.EOF:
		return true
	default:
		return false
	}
}

// parseBlock parses a statement sequence up to (but not consuming) a
// block-end sentinel, folding in the optional last-statement.
func parseBlock(s State) (*ast.Block, State, error) {
	start := s
	var stmts []ast.Statement
	var last ast.Statement
	cur := s
	for !atBlockEnd(cur) {
		if cur.at(token.BREAK) || cur.at(token.RETURN) {
			l, ns, err := parseLastStatement(cur)
			if err != nil {
				return nil, s, err
			}
			last = l
			cur = ns
			if cur.at(token.SEMICOLON) {
				cur = cur.advance()
			}
			break
		}
		stmt, ns, err := expect(parseStatement, "statement")(cur)
		if err != nil {
			return nil, s, err
		}
		cur = ns
		if cur.at(token.SEMICOLON) {
			cur = cur.advance()
		}
		stmts = append(stmts, stmt)
	}
	endSpan := cur.span()
	if len(stmts) > 0 || last != nil {
		tailSpan := endSpan
		if last != nil {
			tailSpan = last.Span()
		} else {
			tailSpan = stmts[len(stmts)-1].Span()
		}
		endSpan = tailSpan
	}
	return &ast.Block{
		SpanInfo:   source.Merge(start.span(), endSpan),
		Statements: stmts,
		Last:       last,
	}, cur, nil
}

func parseLastStatement(s State) (ast.Statement, State, error) {
	cur := s.current()
	if cur.Kind == token.BREAK {
		return &ast.BreakStatement{SpanInfo: cur.Span}, s.advance(), nil
	}
	// RETURN
	next := s.advance()
	if atBlockEnd(next) || next.at(token.SEMICOLON) {
		return &ast.ReturnStatement{SpanInfo: cur.Span}, next, nil
	}
	exprs, ns, err := oneOrMorePunctuated(parseExpr(1), token.COMMA, "expression after 'return'")(next)
	if err != nil {
		return nil, s, err
	}
	return &ast.ReturnStatement{
		SpanInfo: source.Merge(cur.Span, exprs[len(exprs)-1].Span()),
		Exprs:    exprs,
	}, ns, nil
}

// parseStatement tries every statement alternative in the order spec.md
// §4.2 lists, except call-stmt and var-assign, which share a leading
// expression parse and so are resolved together in
// parseExprOrAssignStatement (see DESIGN.md's parser entry).
func parseStatement(s State) (ast.Statement, State, error) {
	return either(
		parseFunctionAssignStatement,
		parseDoStatement,
		parseForStatement,
		parseIfStatement,
		parseLocalStatement,
		parseRepeatStatement,
		parseWhileStatement,
		parseTypeDeclarationStatement,
		parseExprOrAssignStatement,
	)(s)
}

func parseDoStatement(s State) (ast.Statement, State, error) {
	kw := s.current()
	if kw.Kind != token.DO {
		return nil, s, errNoMatch
	}
	cur := s.advance()
	body, cur, err := parseBlock(cur)
	if err != nil {
		return nil, s, err
	}
	endTok, cur, err := expect(match(token.END), "'end'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.DoStatement{SpanInfo: source.Merge(kw.Span, endTok.Span), Body: body}, cur, nil
}

func parseWhileStatement(s State) (ast.Statement, State, error) {
	kw := s.current()
	if kw.Kind != token.WHILE {
		return nil, s, errNoMatch
	}
	cur := s.advance()
	cond, cur, err := expect(parseExpr(1), "condition after 'while'")(cur)
	if err != nil {
		return nil, s, err
	}
	_, cur, err = expect(match(token.DO), "'do'")(cur)
	if err != nil {
		return nil, s, err
	}
	body, cur, err := parseBlock(cur)
	if err != nil {
		return nil, s, err
	}
	endTok, cur, err := expect(match(token.END), "'end'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.WhileStatement{
		SpanInfo:  source.Merge(kw.Span, endTok.Span),
		Condition: cond,
		Body:      body,
	}, cur, nil
}

func parseRepeatStatement(s State) (ast.Statement, State, error) {
	kw := s.current()
	if kw.Kind != token.REPEAT {
		return nil, s, errNoMatch
	}
	cur := s.advance()
	body, cur, err := parseBlock(cur)
	if err != nil {
		return nil, s, err
	}
	_, cur, err = expect(match(token.UNTIL), "'until'")(cur)
	if err != nil {
		return nil, s, err
	}
	cond, cur, err := expect(parseExpr(1), "condition after 'until'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.RepeatStatement{
		SpanInfo:  source.Merge(kw.Span, cond.Span()),
		Body:      body,
		Condition: cond,
	}, cur, nil
}

// parseForStatement disambiguates numeric-for from generic-for by looking
// at the token following the first name (`=` vs `,`/`in`).
func parseForStatement(s State) (ast.Statement, State, error) {
	kw := s.current()
	if kw.Kind != token.FOR {
		return nil, s, errNoMatch
	}
	next := s.advance()
	name, cur, err := expect(match(token.IDENT), "name after 'for'")(next)
	if err != nil {
		return nil, s, err
	}
	if cur.at(token.ASSIGN) {
		return parseNumericForTail(kw.Span, name.Text, cur.advance())
	}
	return parseGenericForTail(kw.Span, name.Text, cur)
}

func parseNumericForTail(kwSpan source.Span, name string, s State) (ast.Statement, State, error) {
	start, cur, err := expect(parseExpr(1), "start expression")(s)
	if err != nil {
		return nil, s, err
	}
	_, cur, err = expect(match(token.COMMA), "','")(cur)
	if err != nil {
		return nil, s, err
	}
	stop, cur, err := expect(parseExpr(1), "stop expression")(cur)
	if err != nil {
		return nil, s, err
	}
	var step ast.Expression
	if cur.at(token.COMMA) {
		next := cur.advance()
		st, ns, serr := expect(parseExpr(1), "step expression")(next)
		if serr != nil {
			return nil, s, serr
		}
		step = st
		cur = ns
	}
	_, cur, err = expect(match(token.DO), "'do'")(cur)
	if err != nil {
		return nil, s, err
	}
	body, cur, err := parseBlock(cur)
	if err != nil {
		return nil, s, err
	}
	endTok, cur, err := expect(match(token.END), "'end'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.NumericForStatement{
		SpanInfo: source.Merge(kwSpan, endTok.Span),
		Name:     name,
		Start:    start,
		Stop:     stop,
		Step:     step,
		Body:     body,
	}, cur, nil
}

func parseGenericForTail(kwSpan source.Span, firstName string, s State) (ast.Statement, State, error) {
	names := []string{firstName}
	cur := s
	for cur.at(token.COMMA) {
		next := cur.advance()
		name, ns, err := expect(match(token.IDENT), "name")(next)
		if err != nil {
			return nil, s, err
		}
		names = append(names, name.Text)
		cur = ns
	}
	_, cur, err := expect(match(token.IN), "'in'")(cur)
	if err != nil {
		return nil, s, err
	}
	exprs, cur, err := oneOrMorePunctuated(parseExpr(1), token.COMMA, "expression after 'in'")(cur)
	if err != nil {
		return nil, s, err
	}
	_, cur, err = expect(match(token.DO), "'do'")(cur)
	if err != nil {
		return nil, s, err
	}
	body, cur, err := parseBlock(cur)
	if err != nil {
		return nil, s, err
	}
	endTok, cur, err := expect(match(token.END), "'end'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.GenericForStatement{
		SpanInfo: source.Merge(kwSpan, endTok.Span),
		Names:    names,
		Exprs:    exprs,
		Body:     body,
	}, cur, nil
}

func parseIfStatement(s State) (ast.Statement, State, error) {
	kw := s.current()
	if kw.Kind != token.IF {
		return nil, s, errNoMatch
	}
	cur := s.advance()
	cond, cur, err := expect(parseExpr(1), "condition after 'if'")(cur)
	if err != nil {
		return nil, s, err
	}
	_, cur, err = expect(match(token.THEN), "'then'")(cur)
	if err != nil {
		return nil, s, err
	}
	thenBlock, cur, err := parseBlock(cur)
	if err != nil {
		return nil, s, err
	}
	var elseIfs []ast.ElseIfClause
	for cur.at(token.ELSEIF) {
		eiKw := cur.current()
		next := cur.advance()
		eiCond, ns, eerr := expect(parseExpr(1), "condition after 'elseif'")(next)
		if eerr != nil {
			return nil, s, eerr
		}
		_, ns2, eerr := expect(match(token.THEN), "'then'")(ns)
		if eerr != nil {
			return nil, s, eerr
		}
		eiBody, ns3, eerr := parseBlock(ns2)
		if eerr != nil {
			return nil, s, eerr
		}
		elseIfs = append(elseIfs, ast.ElseIfClause{
			SpanInfo:  source.Merge(eiKw.Span, eiBody.Span()),
			Condition: eiCond,
			Body:      eiBody,
		})
		cur = ns3
	}
	var elseBlock *ast.Block
	if cur.at(token.ELSE) {
		next := cur.advance()
		eb, ns, eerr := parseBlock(next)
		if eerr != nil {
			return nil, s, eerr
		}
		elseBlock = eb
		cur = ns
	}
	endTok, cur, err := expect(match(token.END), "'end'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.IfStatement{
		SpanInfo:  source.Merge(kw.Span, endTok.Span),
		Condition: cond,
		Then:      thenBlock,
		ElseIfs:   elseIfs,
		Else:      elseBlock,
	}, cur, nil
}

// parseLocalStatement handles both `local function` and plain
// `local a [: T], ...`.
func parseLocalStatement(s State) (ast.Statement, State, error) {
	kw := s.current()
	if kw.Kind != token.LOCAL {
		return nil, s, errNoMatch
	}
	cur := s.advance()
	if cur.at(token.FUNCTION) {
		fnKw := cur.current()
		next := cur.advance()
		name, ns, err := expect(match(token.IDENT), "function name")(next)
		if err != nil {
			return nil, s, err
		}
		fn, ns2, err := parseFunctionTail(fnKw.Span, ns)
		if err != nil {
			return nil, s, err
		}
		return &ast.LocalFunctionStatement{
			SpanInfo: source.Merge(kw.Span, fn.Span()),
			Name:     name.Text,
			Func:     fn,
		}, ns2, nil
	}
	bindings, cur, err := oneOrMorePunctuated(parseLocalBinding, token.COMMA, "name after 'local'")(cur)
	if err != nil {
		return nil, s, err
	}
	var exprs []ast.Expression
	endSpan := bindings[len(bindings)-1].Span()
	if cur.at(token.ASSIGN) {
		next := cur.advance()
		es, ns, eerr := oneOrMorePunctuated(parseExpr(1), token.COMMA, "expression after '='")(next)
		if eerr != nil {
			return nil, s, eerr
		}
		exprs = es
		endSpan = exprs[len(exprs)-1].Span()
		cur = ns
	}
	return &ast.LocalAssignStatement{
		SpanInfo: source.Merge(kw.Span, endSpan),
		Names:    bindings,
		Exprs:    exprs,
	}, cur, nil
}

func parseLocalBinding(s State) (ast.LocalBinding, State, error) {
	name, cur, err := expect(match(token.IDENT), "name")(s)
	if err != nil {
		return ast.LocalBinding{}, s, err
	}
	b := ast.LocalBinding{SpanInfo: name.Span, Name: name.Text}
	if cur.at(token.COLON) {
		next := cur.advance()
		typ, ns, terr := expect(parseType, "type after ':'")(next)
		if terr != nil {
			return ast.LocalBinding{}, s, terr
		}
		b.Type = typ
		b.SpanInfo = source.Merge(b.SpanInfo, typ.Span())
		cur = ns
	}
	return b, cur, nil
}

func parseFunctionAssignStatement(s State) (ast.Statement, State, error) {
	kw := s.current()
	if kw.Kind != token.FUNCTION {
		return nil, s, errNoMatch
	}
	next := s.advance()
	base, cur, err := expect(match(token.IDENT), "function name")(next)
	if err != nil {
		return nil, s, err
	}
	fname := ast.FunctionName{SpanInfo: base.Span, Base: base.Text}
	for cur.at(token.DOT) {
		dcur := cur.advance()
		seg, ns, derr := expect(match(token.IDENT), "name after '.'")(dcur)
		if derr != nil {
			return nil, s, derr
		}
		fname.Path = append(fname.Path, seg.Text)
		fname.SpanInfo = source.Merge(fname.SpanInfo, seg.Span)
		cur = ns
	}
	if cur.at(token.COLON) {
		ccur := cur.advance()
		method, ns, merr := expect(match(token.IDENT), "method name after ':'")(ccur)
		if merr != nil {
			return nil, s, merr
		}
		fname.Method = method.Text
		fname.SpanInfo = source.Merge(fname.SpanInfo, method.Span)
		cur = ns
	}
	fn, cur, err := parseFunctionTail(kw.Span, cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.FunctionAssignStatement{
		SpanInfo: source.Merge(kw.Span, fn.Span()),
		Name:     fname,
		Func:     fn,
	}, cur, nil
}

func parseTypeDeclarationStatement(s State) (ast.Statement, State, error) {
	kw := s.current()
	if kw.Kind != token.TYPE {
		return nil, s, errNoMatch
	}
	next := s.advance()
	name, cur, err := expect(match(token.IDENT), "type name")(next)
	if err != nil {
		return nil, s, err
	}
	var params []ast.TypeParam
	if cur.at(token.LT) {
		pcur := cur.advance()
		ps, ns, perr := oneOrMorePunctuated(parseTypeParam, token.COMMA, "type parameter")(pcur)
		if perr != nil {
			return nil, s, perr
		}
		_, ns2, perr := expect(match(token.GT), "'>'")(ns)
		if perr != nil {
			return nil, s, perr
		}
		params = ps
		cur = ns2
	}
	_, cur, err = expect(match(token.ASSIGN), "'='")(cur)
	if err != nil {
		return nil, s, err
	}
	typ, cur, err := expect(parseType, "type")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.TypeDeclarationStatement{
		SpanInfo: source.Merge(kw.Span, typ.Span()),
		Name:     name.Text,
		Params:   params,
		Type:     typ,
	}, cur, nil
}

func parseTypeParam(s State) (ast.TypeParam, State, error) {
	name, cur, err := expect(match(token.IDENT), "type parameter name")(s)
	if err != nil {
		return ast.TypeParam{}, s, err
	}
	p := ast.TypeParam{SpanInfo: name.Span, Name: name.Text}
	if cur.at(token.COLON) {
		next := cur.advance()
		bound, ns, berr := expect(parseType, "bound after ':'")(next)
		if berr != nil {
			return ast.TypeParam{}, s, berr
		}
		p.Bound = bound
		p.SpanInfo = source.Merge(p.SpanInfo, bound.Span())
		cur = ns
	}
	if cur.at(token.ASSIGN) {
		next := cur.advance()
		def, ns, derr := expect(parseType, "default after '='")(next)
		if derr != nil {
			return ast.TypeParam{}, s, derr
		}
		p.Default = def
		p.SpanInfo = source.Merge(p.SpanInfo, def.Span())
		cur = ns
	}
	return p, cur, nil
}

// parseExprOrAssignStatement parses a leading suffixed-expression and
// classifies it as call-stmt or var-assign depending on what follows
// (spec.md §4.2: call-stmt requires the expression to end in a call
// suffix; var-assign requires one-or-more l-values followed by `=`).
func parseExprOrAssignStatement(s State) (ast.Statement, State, error) {
	first, cur, err := parsePrimaryChain(s)
	if err != nil {
		return nil, s, err
	}
	if cur.at(token.ASSIGN) || cur.at(token.COMMA) {
		targets := []ast.Expression{first}
		for cur.at(token.COMMA) {
			next := cur.advance()
			t, ns, terr := expect(parsePrimaryChain, "assignment target")(next)
			if terr != nil {
				return nil, s, terr
			}
			targets = append(targets, t)
			cur = ns
		}
		_, cur, err = expect(match(token.ASSIGN), "'='")(cur)
		if err != nil {
			return nil, s, err
		}
		exprs, cur, err := oneOrMorePunctuated(parseExpr(1), token.COMMA, "expression after '='")(cur)
		if err != nil {
			return nil, s, err
		}
		return &ast.VarAssignStatement{
			SpanInfo: source.Merge(targets[0].Span(), exprs[len(exprs)-1].Span()),
			Targets:  targets,
			Exprs:    exprs,
		}, cur, nil
	}
	suffixed, ok := first.(*ast.SuffixedExpression)
	if !ok || !suffixed.EndsInCall() {
		return nil, s, errNoMatch
	}
	return &ast.CallStatement{SpanInfo: suffixed.Span(), Call: suffixed}, cur, nil
}
