package parser

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/token"
)

// Parse runs the combinator grammar over a non-trivia token slice (already
// filtered via token.FilterNonTrivia) and returns the parsed chunk, or the
// first committed Expected failure rendered as a diagnostic (spec.md §7:
// "first committed Expected halts the unit").
func Parse(tokens []token.Token) (*ast.Chunk, *diagnostics.Diagnostic) {
	s := NewState(tokens)
	body, cur, err := parseBlock(s)
	if err != nil {
		return nil, toDiagnostic(err)
	}
	_, _, err = expect(match(token.EOF), "<eof>")(cur)
	if err != nil {
		return nil, toDiagnostic(err)
	}
	return &ast.Chunk{Body: body}, nil
}

func toDiagnostic(err error) *diagnostics.Diagnostic {
	expected, got, ok := describeFailure(err)
	if !ok {
		oe, _ := err.(*outcomeError)
		span := token.Token{}.Span
		if oe != nil {
			span = oe.got.Span
		}
		return diagnostics.New(diagnostics.ParseExpected, span, "internal parser error")
	}
	oe := err.(*outcomeError)
	return diagnostics.ExpectedGot(oe.got.Span, expected, got)
}
