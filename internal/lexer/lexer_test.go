package lexer

import (
	"testing"

	"github.com/slt-lang/slt/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestLexKeywordsAndPunctuation(t *testing.T) {
	tokens, err := Lex("local x: number = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := kinds(token.FilterNonTrivia(tokens))
	want := []token.Kind{token.LOCAL, token.IDENT, token.COLON, token.IDENT, token.ASSIGN, token.NUMBER, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("kind count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexLongestMatchOperators(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"...", token.ELLIPSIS},
		{"..", token.DOT_DOT},
		{".", token.DOT},
		{"->", token.ARROW},
		{"-", token.MINUS},
		{">=", token.GTE},
		{">", token.GT},
		{"<=", token.LTE},
		{"<", token.LT},
		{"==", token.EQ},
		{"=", token.ASSIGN},
		{"~=", token.NEQ},
		{"::", token.DOUBLE_COLON},
		{":", token.COLON},
		{"@metatable", token.AT_METATABLE},
	}
	for _, c := range cases {
		tokens, err := Lex(c.src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.src, err)
		}
		nonTrivia := token.FilterNonTrivia(tokens)
		if len(nonTrivia) != 2 {
			t.Fatalf("%q: expected 1 token + EOF, got %d", c.src, len(nonTrivia))
		}
		if nonTrivia[0].Kind != c.kind {
			t.Errorf("%q: got kind %v, want %v", c.src, nonTrivia[0].Kind, c.kind)
		}
		if nonTrivia[0].Text != c.src {
			t.Errorf("%q: got text %q, want %q", c.src, nonTrivia[0].Text, c.src)
		}
	}
}

func TestLexRoundTripsTrivia(t *testing.T) {
	src := "  -- comment\nlocal x = 1\n"
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok.Text
	}
	if rebuilt != src {
		t.Errorf("round-trip mismatch:\n got: %q\nwant: %q", rebuilt, src)
	}
}

func TestLexLongBracketStringAndComment(t *testing.T) {
	tokens, err := Lex(`local s = [==[hello]]world]==]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nonTrivia := token.FilterNonTrivia(tokens)
	var str *token.Token
	for i := range nonTrivia {
		if nonTrivia[i].Kind == token.STRING {
			str = &nonTrivia[i]
		}
	}
	if str == nil {
		t.Fatal("no STRING token found")
	}
	if str.Text != "hello]]world" {
		t.Errorf("got %q, want %q", str.Text, "hello]]world")
	}

	tokens, err = Lex("--[[ this\nspans lines ]]\nlocal x = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, tok := range tokens {
		if tok.Kind == token.COMMENT {
			found = true
		}
	}
	if !found {
		t.Error("expected a long comment token")
	}
}

func TestLexErrorsAreFatal(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"incomplete string", `"unterminated`, IncompleteString},
		{"incomplete bracket string", `[[unterminated`, IncompleteString},
		{"incomplete comment", `--[[unterminated`, IncompleteComment},
		{"bad shebang", "#!/bin/slt no newline", IncorrectShebang},
		{"unexpected char", "local x = `", UnexpectedCharacter},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Lex(c.src)
			if err == nil {
				t.Fatalf("expected an error, got none")
			}
			if err.Kind != c.kind {
				t.Errorf("got kind %v, want %v", err.Kind, c.kind)
			}
		})
	}
}

func TestLexShebangOnlyAtStart(t *testing.T) {
	tokens, err := Lex("#!/usr/bin/env slt\nlocal x = 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != token.SHEBANG {
		t.Errorf("first token kind = %v, want SHEBANG", tokens[0].Kind)
	}

	tokens, err = Lex("local x = 1 # not a shebang\n")
	if err == nil {
		nonTrivia := token.FilterNonTrivia(tokens)
		for _, tok := range nonTrivia {
			if tok.Kind == token.SHEBANG {
				t.Error("'#' mid-file must not be treated as a shebang")
			}
		}
	}
}
