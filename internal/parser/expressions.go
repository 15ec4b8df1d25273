package parser

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/source"
	"github.com/slt-lang/slt/internal/token"
)

// binaryPrec gives each binary operator token its precedence and
// associativity per spec.md §4.2. Operators the table names but that have
// no corresponding token in §6 (`??`, `//`) are intentionally absent — see
// DESIGN.md's parser entry.
type assoc int

const (
	leftAssoc assoc = iota
	rightAssoc
)

type opInfo struct {
	prec  int
	assoc assoc
}

var binaryOps = map[token.Kind]opInfo{
	token.CARET:   {10, rightAssoc},
	token.STAR:    {7, leftAssoc},
	token.SLASH:   {7, leftAssoc},
	token.PERCENT: {7, leftAssoc},
	token.PLUS:    {6, leftAssoc},
	token.MINUS:   {6, leftAssoc},
	token.DOT_DOT: {5, rightAssoc},
	token.EQ:      {3, leftAssoc},
	token.NEQ:     {3, leftAssoc},
	token.GT:      {3, leftAssoc},
	token.GTE:     {3, leftAssoc},
	token.LT:      {3, leftAssoc},
	token.LTE:     {3, leftAssoc},
	token.AND:     {2, leftAssoc},
	token.OR:      {1, leftAssoc},
}

const unaryPrec = 7

// parseExpr is the Pratt precedence climber: it parses a unary-or-primary
// atom, then repeatedly consumes binary operators whose precedence is at
// least minPrec (spec.md §4.2).
func parseExpr(minPrec int) Rule[ast.Expression] {
	return func(s State) (ast.Expression, State, error) {
		left, cur, err := parseUnary(s)
		if err != nil {
			return nil, s, err
		}
		for {
			op := cur.current()
			info, isBinary := binaryOps[op.Kind]
			if !isBinary || info.prec < minPrec {
				return left, cur, nil
			}
			next := cur.advance()
			nextMinPrec := info.prec + 1
			if info.assoc == rightAssoc {
				nextMinPrec = info.prec
			}
			right, ns, err := parseExpr(nextMinPrec)(next)
			if err != nil {
				return nil, s, err
			}
			left = &ast.BinaryExpression{
				SpanInfo: source.Merge(left.Span(), right.Span()),
				Left:     left,
				Operator: op,
				Right:    right,
			}
			cur = ns
		}
	}
}

// parseUnary handles the three unary operators, parsing their operand at
// unaryPrec, and otherwise falls through to a primary expression with its
// suffix chain and type-assertion chain.
func parseUnary(s State) (ast.Expression, State, error) {
	op := s.current()
	switch op.Kind {
	case token.HASH, token.NOT, token.MINUS:
		next := s.advance()
		operand, ns, err := parseExpr(unaryPrec)(next)
		if err != nil {
			return nil, s, err
		}
		return &ast.UnaryExpression{
			SpanInfo: source.Merge(op.Span, operand.Span()),
			Operator: op,
			Operand:  operand,
		}, ns, nil
	default:
		return parsePrimaryChain(s)
	}
}

// parsePrimaryChain parses a primary expression, its suffix chain, and any
// trailing `:: Type` assertions (spec.md §4.2).
func parsePrimaryChain(s State) (ast.Expression, State, error) {
	base, cur, err := parsePrimary(s)
	if err != nil {
		return nil, s, err
	}
	expr, cur, err := parseSuffixChain(base, cur)
	if err != nil {
		return nil, s, err
	}
	for cur.at(token.DOUBLE_COLON) {
		colon := cur.current()
		next := cur.advance()
		typ, ns, err := expect(parseType, "type after '::'")(next)
		if err != nil {
			return nil, s, err
		}
		expr = &ast.TypeAssertionExpression{
			SpanInfo: source.Merge(expr.Span(), typ.Span()),
			Base:     expr,
			Cast:     typ,
		}
		_ = colon
		cur = ns
	}
	return expr, cur, nil
}

func parsePrimary(s State) (ast.Expression, State, error) {
	cur := s.current()
	switch cur.Kind {
	case token.TRUE:
		return &ast.BoolLiteral{SpanInfo: cur.Span, Value: true}, s.advance(), nil
	case token.FALSE:
		return &ast.BoolLiteral{SpanInfo: cur.Span, Value: false}, s.advance(), nil
	case token.NIL:
		return &ast.NilLiteral{SpanInfo: cur.Span}, s.advance(), nil
	case token.NUMBER:
		return &ast.NumberLiteral{SpanInfo: cur.Span, Text: cur.Text}, s.advance(), nil
	case token.STRING:
		return &ast.StringLiteral{SpanInfo: cur.Span, Value: cur.Text}, s.advance(), nil
	case token.ELLIPSIS:
		return &ast.Varargs{SpanInfo: cur.Span}, s.advance(), nil
	case token.IDENT:
		return &ast.NameExpression{Ident: &ast.Identifier{SpanInfo: cur.Span, Name: cur.Text}}, s.advance(), nil
	case token.LBRACE:
		return parseTableLiteral(s)
	case token.FUNCTION:
		return parseFunctionLiteral(s)
	case token.LPAREN:
		next := s.advance()
		inner, ns, err := expect(parseExpr(1), "expression")(next)
		if err != nil {
			return nil, s, err
		}
		closeTok, ns2, err := expect(match(token.RPAREN), "')'")(ns)
		if err != nil {
			return nil, s, err
		}
		return &ast.ParenExpression{
			SpanInfo: source.Merge(cur.Span, closeTok.Span),
			Inner:    inner,
		}, ns2, nil
	default:
		var zero ast.Expression
		return zero, s, errNoMatch
	}
}

// parseSuffixChain consumes `.name`, `:method`, `[expr]`, and call
// suffixes. A chain ending in `:method` with no following call is
// rejected (spec.md §4.2).
func parseSuffixChain(base ast.Expression, s State) (ast.Expression, State, error) {
	var suffixes []ast.Suffix
	cur := s
	for {
		switch cur.current().Kind {
		case token.DOT:
			dot := cur.current()
			next := cur.advance()
			name, ns, err := expect(match(token.IDENT), "name after '.'")(next)
			if err != nil {
				return nil, s, err
			}
			suffixes = append(suffixes, ast.Suffix{
				SpanInfo: source.Merge(dot.Span, name.Span),
				Kind:     ast.SuffixDot,
				Name:     name.Text,
			})
			cur = ns
		case token.COLON:
			colon := cur.current()
			next := cur.advance()
			name, ns, err := expect(match(token.IDENT), "method name after ':'")(next)
			if err != nil {
				return nil, s, err
			}
			suffixes = append(suffixes, ast.Suffix{
				SpanInfo: source.Merge(colon.Span, name.Span),
				Kind:     ast.SuffixMethod,
				Name:     name.Text,
			})
			cur = ns
		case token.LBRACKET:
			open := cur.current()
			next := cur.advance()
			idx, ns, err := expect(parseExpr(1), "expression inside '[...]'")(next)
			if err != nil {
				return nil, s, err
			}
			closeTok, ns2, err := expect(match(token.RBRACKET), "']'")(ns)
			if err != nil {
				return nil, s, err
			}
			suffixes = append(suffixes, ast.Suffix{
				SpanInfo: source.Merge(open.Span, closeTok.Span),
				Kind:     ast.SuffixIndex,
				Index:    idx,
			})
			cur = ns2
		case token.LPAREN, token.LBRACE, token.STRING:
			args, ns, err := parseCallArgs(cur)
			if err != nil {
				if isNoMatch(err) {
					goto done
				}
				return nil, s, err
			}
			suffixes = append(suffixes, ast.Suffix{
				SpanInfo: args.SpanInfo,
				Kind:     ast.SuffixCall,
				Args:     args,
			})
			cur = ns
		default:
			goto done
		}
	}
done:
	if len(suffixes) == 0 {
		return base, cur, nil
	}
	if suffixes[len(suffixes)-1].Kind == ast.SuffixMethod {
		return nil, s, errNoMatch
	}
	return &ast.SuffixedExpression{
		SpanInfo: source.Merge(base.Span(), suffixes[len(suffixes)-1].Span()),
		Base:     base,
		Suffixes: suffixes,
	}, cur, nil
}

func parseCallArgs(s State) (ast.CallArgs, State, error) {
	cur := s.current()
	switch cur.Kind {
	case token.LPAREN:
		next := s.advance()
		exprs, ns, err := zeroOrMorePunctuated(parseExpr(1), token.COMMA)(next)
		if err != nil {
			return ast.CallArgs{}, s, err
		}
		closeTok, ns2, err := expect(match(token.RPAREN), "')'")(ns)
		if err != nil {
			return ast.CallArgs{}, s, err
		}
		return ast.CallArgs{
			SpanInfo: source.Merge(cur.Span, closeTok.Span),
			Kind:     ast.CallArgsParen,
			Exprs:    exprs,
		}, ns2, nil
	case token.LBRACE:
		tbl, ns, err := parseTableLiteral(s)
		if err != nil {
			return ast.CallArgs{}, s, err
		}
		t := tbl.(*ast.TableLiteral)
		return ast.CallArgs{SpanInfo: t.SpanInfo, Kind: ast.CallArgsTable, Table: t}, ns, nil
	case token.STRING:
		return ast.CallArgs{
			SpanInfo: cur.Span,
			Kind:     ast.CallArgsString,
			String:   &ast.StringLiteral{SpanInfo: cur.Span, Value: cur.Text},
		}, s.advance(), nil
	default:
		return ast.CallArgs{}, s, errNoMatch
	}
}

func parseTableLiteral(s State) (ast.Expression, State, error) {
	open, ok := s.current(), s.at(token.LBRACE)
	if !ok {
		var zero ast.Expression
		return zero, s, errNoMatch
	}
	cur := s.advance()
	fields, cur, err := zeroOrMorePunctuatedTrailing(parseTableField, token.COMMA)(cur)
	if err != nil {
		return nil, s, err
	}
	closeTok, cur, err := expect(match(token.RBRACE), "'}'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.TableLiteral{
		SpanInfo: source.Merge(open.Span, closeTok.Span),
		Fields:   fields,
	}, cur, nil
}

func parseTableField(s State) (ast.TableField, State, error) {
	cur := s.current()
	if cur.Kind == token.LBRACKET {
		next := s.advance()
		key, ns, err := expect(parseExpr(1), "computed field key")(next)
		if err != nil {
			return ast.TableField{}, s, err
		}
		_, ns2, err := expect(match(token.RBRACKET), "']'")(ns)
		if err != nil {
			return ast.TableField{}, s, err
		}
		_, ns3, err := expect(match(token.ASSIGN), "'='")(ns2)
		if err != nil {
			return ast.TableField{}, s, err
		}
		value, ns4, err := expect(parseExpr(1), "field value")(ns3)
		if err != nil {
			return ast.TableField{}, s, err
		}
		return ast.TableField{
			SpanInfo: source.Merge(cur.Span, value.Span()),
			Kind:     ast.TableFieldComputed,
			Key:      key,
			Value:    value,
		}, ns4, nil
	}
	if cur.Kind == token.IDENT {
		lookahead := s.advance()
		if lookahead.at(token.ASSIGN) {
			next := lookahead.advance()
			value, ns, err := expect(parseExpr(1), "field value")(next)
			if err != nil {
				return ast.TableField{}, s, err
			}
			return ast.TableField{
				SpanInfo: source.Merge(cur.Span, value.Span()),
				Kind:     ast.TableFieldNamed,
				Name:     cur.Text,
				Value:    value,
			}, ns, nil
		}
	}
	value, ns, err := parseExpr(1)(s)
	if err != nil {
		return ast.TableField{}, s, err
	}
	return ast.TableField{SpanInfo: value.Span(), Kind: ast.TableFieldArray, Value: value}, ns, nil
}
