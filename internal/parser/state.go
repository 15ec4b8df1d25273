// Package parser implements the combinator-style recursive-descent engine
// from spec.md §4.2, translated from original_source's
// crates/parser/src/{lib,others}.rs into idiomatic Go generics.
package parser

import (
	"github.com/slt-lang/slt/internal/source"
	"github.com/slt-lang/slt/internal/token"
)

// State is an immutable cursor over a token slice; every combinator
// advances by returning a new State rather than mutating one in place
// (mirrors the Rust original's ParseState).
type State struct {
	tokens []token.Token
	offset int
}

// NewState builds a State positioned at the start of tokens, which must
// already be filtered of trivia (token.FilterNonTrivia) and end in an EOF
// token.
func NewState(tokens []token.Token) State {
	return State{tokens: tokens, offset: 0}
}

func (s State) current() token.Token {
	if s.offset >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1] // EOF
	}
	return s.tokens[s.offset]
}

func (s State) advance() State {
	if s.offset >= len(s.tokens)-1 {
		return s
	}
	return State{tokens: s.tokens, offset: s.offset + 1}
}

func (s State) at(kind token.Kind) bool {
	return s.current().Kind == kind
}

func (s State) span() source.Span {
	return s.current().Span
}
