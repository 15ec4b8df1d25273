package parser

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/source"
	"github.com/slt-lang/slt/internal/token"
)

// parseFunctionLiteral parses `function(...) ... end`, used both as an
// expression and as the shared body grammar for local-function and
// function-assign statements.
func parseFunctionLiteral(s State) (ast.Expression, State, error) {
	kw := s.current()
	if kw.Kind != token.FUNCTION {
		var zero ast.Expression
		return zero, s, errNoMatch
	}
	cur := s.advance()
	return parseFunctionTail(kw.Span, cur)
}

// parseFunctionTail parses the parameter list, optional return type, body,
// and closing `end`, given the span of the already-consumed `function`
// (or local-function name) keyword.
func parseFunctionTail(startSpan source.Span, s State) (*ast.FunctionLiteral, State, error) {
	_, cur, err := expect(match(token.LPAREN), "'(' after function name")(s)
	if err != nil {
		return nil, s, err
	}
	params, varargParam, cur, err := parseFunctionParams(cur)
	if err != nil {
		return nil, s, err
	}
	_, cur, err = expect(match(token.RPAREN), "')'")(cur)
	if err != nil {
		return nil, s, err
	}
	var returnType ast.TypeInfo
	if cur.at(token.ARROW) {
		next := cur.advance()
		rt, ns, rerr := expect(parseType, "return type after '->'")(next)
		if rerr != nil {
			return nil, s, rerr
		}
		returnType = rt
		cur = ns
	}
	body, cur, err := parseBlock(cur)
	if err != nil {
		return nil, s, err
	}
	endTok, cur, err := expect(match(token.END), "'end'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.FunctionLiteral{
		SpanInfo:    source.Merge(startSpan, endTok.Span),
		Params:      params,
		VarargParam: varargParam,
		ReturnType:  returnType,
		Body:        body,
	}, cur, nil
}

// parseFunctionParams parses a comma-separated parameter list that may end
// in a bare `...` marking the function variadic.
func parseFunctionParams(s State) ([]ast.FunctionParam, *ast.FunctionParam, State, error) {
	var params []ast.FunctionParam
	cur := s
	if cur.at(token.RPAREN) {
		return nil, nil, cur, nil
	}
	for {
		if cur.at(token.ELLIPSIS) {
			tok := cur.current()
			vp := &ast.FunctionParam{SpanInfo: tok.Span, Name: "..."}
			return params, vp, cur.advance(), nil
		}
		p, ns, err := parseFunctionParam(cur)
		if err != nil {
			return nil, nil, s, err
		}
		params = append(params, p)
		cur = ns
		if !cur.at(token.COMMA) {
			return params, nil, cur, nil
		}
		cur = cur.advance()
	}
}

func parseFunctionParam(s State) (ast.FunctionParam, State, error) {
	name, cur, err := expect(match(token.IDENT), "parameter name")(s)
	if err != nil {
		return ast.FunctionParam{}, s, err
	}
	p := ast.FunctionParam{SpanInfo: name.Span, Name: name.Text}
	if cur.at(token.COLON) {
		next := cur.advance()
		typ, ns, terr := expect(parseType, "parameter type")(next)
		if terr != nil {
			return ast.FunctionParam{}, s, terr
		}
		p.Type = typ
		p.SpanInfo = source.Merge(p.SpanInfo, typ.Span())
		cur = ns
	}
	if cur.at(token.QUESTION) {
		q := cur.current()
		p.Optional = true
		p.SpanInfo = source.Merge(p.SpanInfo, q.Span)
		cur = cur.advance()
	}
	return p, cur, nil
}
