package parser

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/source"
	"github.com/slt-lang/slt/internal/token"
)

// parseType implements the type-info grammar of spec.md §4.2:
//
//	type := callback | reference | table | metatable | tuple | union | intersection
//
// Union and intersection are folded in as left-associative suffixes on a
// "base type" (callback/reference/table/metatable/tuple), matching the
// grammar's integration note.
func parseType(s State) (ast.TypeInfo, State, error) {
	base, cur, err := parseBaseType(s)
	if err != nil {
		return nil, s, err
	}
	return parseTypeCombinators(base, cur)
}

func parseTypeCombinators(base ast.TypeInfo, s State) (ast.TypeInfo, State, error) {
	cur := s
	var unionMembers, intersectionMembers []ast.TypeInfo
	result := base
	for {
		switch cur.current().Kind {
		case token.PIPE:
			next := cur.advance()
			member, ns, err := expect(parseBaseType, "type after '|'")(next)
			if err != nil {
				return nil, s, err
			}
			if unionMembers == nil {
				unionMembers = []ast.TypeInfo{result}
			}
			unionMembers = append(unionMembers, member)
			result = &ast.UnionTypeInfo{
				SpanInfo: source.Merge(result.Span(), member.Span()),
				Members:  append([]ast.TypeInfo{}, unionMembers...),
			}
			cur = ns
		case token.AMP:
			next := cur.advance()
			member, ns, err := expect(parseBaseType, "type after '&'")(next)
			if err != nil {
				return nil, s, err
			}
			if intersectionMembers == nil {
				intersectionMembers = []ast.TypeInfo{result}
			}
			intersectionMembers = append(intersectionMembers, member)
			result = &ast.IntersectionTypeInfo{
				SpanInfo: source.Merge(result.Span(), member.Span()),
				Members:  append([]ast.TypeInfo{}, intersectionMembers...),
			}
			cur = ns
		default:
			return result, cur, nil
		}
	}
}

// parseBaseType parses one of callback/reference/table/metatable/tuple —
// the alternatives composed by union/intersection above.
func parseBaseType(s State) (ast.TypeInfo, State, error) {
	cur := s.current()
	switch cur.Kind {
	case token.AT_METATABLE:
		next := s.advance()
		tbl, ns, err := expect(parseTableType, "table after '@metatable'")(next)
		if err != nil {
			return nil, s, err
		}
		t := tbl.(*ast.TableTypeInfo)
		return &ast.MetatableTypeInfo{SpanInfo: source.Merge(cur.Span, t.Span()), Table: t}, ns, nil
	case token.LBRACE:
		return parseTableType(s)
	case token.LPAREN:
		return parseParenOrCallbackOrTuple(s)
	case token.IDENT:
		return parseReferenceType(s)
	default:
		var zero ast.TypeInfo
		return zero, s, errNoMatch
	}
}

func parseReferenceType(s State) (ast.TypeInfo, State, error) {
	name := s.current()
	if name.Kind != token.IDENT {
		var zero ast.TypeInfo
		return zero, s, errNoMatch
	}
	cur := s.advance()
	ref := &ast.ReferenceTypeInfo{SpanInfo: name.Span, Name: name.Text}
	if cur.at(token.LT) {
		next := cur.advance()
		args, ns, err := oneOrMorePunctuated(parseType, token.COMMA, "type argument")(next)
		if err != nil {
			return nil, s, err
		}
		closeTok, ns2, err := expect(match(token.GT), "'>'")(ns)
		if err != nil {
			return nil, s, err
		}
		ref.Args = args
		ref.SpanInfo = source.Merge(name.Span, closeTok.Span)
		cur = ns2
	}
	return ref, cur, nil
}

func parseTableType(s State) (ast.TypeInfo, State, error) {
	open := s.current()
	if open.Kind != token.LBRACE {
		var zero ast.TypeInfo
		return zero, s, errNoMatch
	}
	cur := s.advance()
	fields, cur, err := zeroOrMorePunctuatedTrailing(parseTableTypeField, token.COMMA)(cur)
	if err != nil {
		return nil, s, err
	}
	closeTok, cur, err := expect(match(token.RBRACE), "'}'")(cur)
	if err != nil {
		return nil, s, err
	}
	return &ast.TableTypeInfo{SpanInfo: source.Merge(open.Span, closeTok.Span), Fields: fields}, cur, nil
}

// parseTableTypeField implements spec.md §4.2's `field` production:
//
//	field := ("@metatable" | Name) ":" type
//	       | "[" type "]" ":" type
//	       | type
func parseTableTypeField(s State) (ast.TableTypeField, State, error) {
	cur := s.current()
	if cur.Kind == token.LBRACKET {
		next := s.advance()
		keyType, ns, err := expect(parseType, "computed field key type")(next)
		if err != nil {
			return ast.TableTypeField{}, s, err
		}
		_, ns2, err := expect(match(token.RBRACKET), "']'")(ns)
		if err != nil {
			return ast.TableTypeField{}, s, err
		}
		_, ns3, err := expect(match(token.COLON), "':'")(ns2)
		if err != nil {
			return ast.TableTypeField{}, s, err
		}
		valueType, ns4, err := expect(parseType, "field value type")(ns3)
		if err != nil {
			return ast.TableTypeField{}, s, err
		}
		return ast.TableTypeField{
			SpanInfo: source.Merge(cur.Span, valueType.Span()),
			Kind:     ast.TableTypeFieldComputed,
			KeyType:  keyType,
			Type:     valueType,
		}, ns4, nil
	}
	if cur.Kind == token.IDENT || cur.Kind == token.AT_METATABLE {
		lookahead := s.advance()
		if lookahead.at(token.COLON) {
			next := lookahead.advance()
			valueType, ns, err := expect(parseType, "field value type")(next)
			if err != nil {
				return ast.TableTypeField{}, s, err
			}
			return ast.TableTypeField{
				SpanInfo:    source.Merge(cur.Span, valueType.Span()),
				Kind:        ast.TableTypeFieldNamed,
				Name:        cur.Text,
				IsMetatable: cur.Kind == token.AT_METATABLE,
				Type:        valueType,
			}, ns, nil
		}
	}
	valueType, ns, err := parseType(s)
	if err != nil {
		return ast.TableTypeField{}, s, err
	}
	return ast.TableTypeField{SpanInfo: valueType.Span(), Kind: ast.TableTypeFieldArray, Type: valueType}, ns, nil
}

// parseParenOrCallbackOrTuple disambiguates `(p1: T1, ...) -> R` from
// `(T1, T2, ...)` (a tuple, two-or-more members) by attempting a callback
// parameter list first and falling back to a parenthesized type list.
func parseParenOrCallbackOrTuple(s State) (ast.TypeInfo, State, error) {
	open := s.current()
	cur := s.advance()
	params, cur, err := zeroOrMorePunctuated(parseCallbackParam, token.COMMA)(cur)
	if err != nil && !isNoMatch(err) {
		return nil, s, err
	}
	if err == nil {
		if _, ns, rerr := match(token.RPAREN)(cur); rerr == nil {
			if _, ns2, aerr := match(token.ARROW)(ns); aerr == nil {
				retType, ns3, terr := expect(parseType, "return type after '->'")(ns2)
				if terr != nil {
					return nil, s, terr
				}
				return &ast.CallbackTypeInfo{
					SpanInfo:   source.Merge(open.Span, retType.Span()),
					Params:     params,
					ReturnType: retType,
				}, ns3, nil
			}
		}
	}
	// Not a callback type: reparse as a tuple of bare types.
	cur = s.advance()
	members, cur, err := oneOrMorePunctuated(parseType, token.COMMA, "type")(cur)
	if err != nil {
		return nil, s, err
	}
	closeTok, cur, err := expect(match(token.RPAREN), "')'")(cur)
	if err != nil {
		return nil, s, err
	}
	if len(members) == 1 {
		return members[0], cur, nil
	}
	return &ast.TupleTypeInfo{SpanInfo: source.Merge(open.Span, closeTok.Span), Members: members}, cur, nil
}

func parseCallbackParam(s State) (ast.CallbackParam, State, error) {
	cur := s.current()
	if cur.Kind == token.IDENT {
		lookahead := s.advance()
		if lookahead.at(token.COLON) {
			next := lookahead.advance()
			typ, ns, err := expect(parseType, "parameter type")(next)
			if err != nil {
				return ast.CallbackParam{}, s, err
			}
			return ast.CallbackParam{SpanInfo: source.Merge(cur.Span, typ.Span()), Name: cur.Text, Type: typ}, ns, nil
		}
	}
	typ, ns, err := parseType(s)
	if err != nil {
		return ast.CallbackParam{}, s, err
	}
	return ast.CallbackParam{SpanInfo: typ.Span(), Type: typ}, ns, nil
}
