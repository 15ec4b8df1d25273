package parser

import (
	"testing"

	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/lexer"
	"github.com/slt-lang/slt/internal/token"
)

func mustParse(t *testing.T, src string) *ast.Chunk {
	t.Helper()
	tokens, lexErr := lexer.Lex(src)
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	chunk, err := Parse(token.FilterNonTrivia(tokens))
	if err != nil {
		t.Fatalf("parse error: %s", err.Message)
	}
	return chunk
}

func soleExprStatement(t *testing.T, chunk *ast.Chunk) ast.Expression {
	t.Helper()
	stmts := chunk.Body.All()
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	local, ok := stmts[0].(*ast.LocalAssignStatement)
	if !ok || len(local.Exprs) != 1 {
		t.Fatalf("expected a single local-assign with one expr, got %#v", stmts[0])
	}
	return local.Exprs[0]
}

func asBinary(t *testing.T, e ast.Expression) *ast.BinaryExpression {
	t.Helper()
	b, ok := e.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpression, got %#v", e)
	}
	return b
}

func TestParsePrecedenceMultiplicationOverAddition(t *testing.T) {
	chunk := mustParse(t, "local x = 1 + 2 * 3")
	top := asBinary(t, soleExprStatement(t, chunk))
	if top.Operator.Kind != token.PLUS {
		t.Fatalf("top operator = %v, want PLUS", top.Operator.Kind)
	}
	right := asBinary(t, top.Right)
	if right.Operator.Kind != token.STAR {
		t.Errorf("right operand operator = %v, want STAR", right.Operator.Kind)
	}
}

func TestParseCaretIsRightAssociative(t *testing.T) {
	chunk := mustParse(t, "local x = 2 ^ 2 ^ 3")
	top := asBinary(t, soleExprStatement(t, chunk))
	if top.Operator.Kind != token.CARET {
		t.Fatalf("top operator = %v, want CARET", top.Operator.Kind)
	}
	if _, ok := top.Left.(*ast.NumberLiteral); !ok {
		t.Errorf("left operand should be the literal 2, got %#v", top.Left)
	}
	right := asBinary(t, top.Right)
	if right.Operator.Kind != token.CARET {
		t.Errorf("right operand should itself be a ^ expression, got %#v", top.Right)
	}
}

func TestParseMinusIsLeftAssociative(t *testing.T) {
	chunk := mustParse(t, "local x = 1 - 2 - 3")
	top := asBinary(t, soleExprStatement(t, chunk))
	if top.Operator.Kind != token.MINUS {
		t.Fatalf("top operator = %v, want MINUS", top.Operator.Kind)
	}
	left := asBinary(t, top.Left)
	if left.Operator.Kind != token.MINUS {
		t.Errorf("left operand should itself be a - expression, got %#v", top.Left)
	}
	if _, ok := top.Right.(*ast.NumberLiteral); !ok {
		t.Errorf("right operand should be the literal 3, got %#v", top.Right)
	}
}

func TestParseLocalAssignWithTypeAnnotation(t *testing.T) {
	chunk := mustParse(t, "local x: number = 1")
	stmts := chunk.Body.All()
	local, ok := stmts[0].(*ast.LocalAssignStatement)
	if !ok {
		t.Fatalf("expected *ast.LocalAssignStatement, got %#v", stmts[0])
	}
	if len(local.Names) != 1 || local.Names[0].Name != "x" {
		t.Fatalf("unexpected bindings: %#v", local.Names)
	}
	if local.Names[0].Type == nil {
		t.Error("expected a non-nil type annotation on x")
	}
}

func TestParseSuffixedCallChain(t *testing.T) {
	chunk := mustParse(t, "local r = a.b:c(1, 2)")
	expr := soleExprStatement(t, chunk)
	suffixed, ok := expr.(*ast.SuffixedExpression)
	if !ok {
		t.Fatalf("expected *ast.SuffixedExpression, got %#v", expr)
	}
	if len(suffixed.Suffixes) != 3 {
		t.Fatalf("expected 3 suffixes (.b, :c, (...)), got %d", len(suffixed.Suffixes))
	}
	if suffixed.Suffixes[0].Kind != ast.SuffixDot || suffixed.Suffixes[0].Name != "b" {
		t.Errorf("suffix 0 = %#v, want .b", suffixed.Suffixes[0])
	}
	if suffixed.Suffixes[1].Kind != ast.SuffixMethod || suffixed.Suffixes[1].Name != "c" {
		t.Errorf("suffix 1 = %#v, want :c", suffixed.Suffixes[1])
	}
	if suffixed.Suffixes[2].Kind != ast.SuffixCall {
		t.Errorf("suffix 2 = %#v, want a call", suffixed.Suffixes[2])
	}
	if !suffixed.EndsInCall() {
		t.Error("EndsInCall() should be true")
	}
}

func TestParseMethodWithoutTrailingCallIsRejected(t *testing.T) {
	tokens, lexErr := lexer.Lex("local r = a:b")
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	_, err := Parse(token.FilterNonTrivia(tokens))
	if err == nil {
		t.Fatal("expected a parse error for a method suffix with no trailing call")
	}
}

func TestParseMissingEndIsExpectedError(t *testing.T) {
	tokens, lexErr := lexer.Lex("if true then local x = 1")
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	_, err := Parse(token.FilterNonTrivia(tokens))
	if err == nil {
		t.Fatal("expected a parse error for a missing 'end'")
	}
}

func TestParseFunctionLiteralParams(t *testing.T) {
	chunk := mustParse(t, "local f = function(a: number, b: string?, ...) -> number end")
	expr := soleExprStatement(t, chunk)
	fn, ok := expr.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expected *ast.FunctionLiteral, got %#v", expr)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 named params, got %d", len(fn.Params))
	}
	if fn.Params[0].Optional {
		t.Error("param a should not be optional")
	}
	if !fn.Params[1].Optional {
		t.Error("param b should be optional")
	}
	if fn.VarargParam == nil {
		t.Fatal("expected a vararg parameter")
	}
	if fn.ReturnType == nil {
		t.Error("expected a non-nil return type annotation")
	}
}
