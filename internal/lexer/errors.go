package lexer

import (
	"fmt"

	"github.com/slt-lang/slt/internal/source"
)

// ErrorKind enumerates the ways longest-match scanning can fail.
type ErrorKind int

const (
	IncompleteString ErrorKind = iota
	IncompleteComment
	IncorrectShebang
	UnexpectedCharacter
)

// Error is the single fatal failure a unit's lex pass can produce. Lexing
// halts at the first one; there is no recovery (spec ErrP: "first error
// halts the unit").
type Error struct {
	Kind ErrorKind
	Span source.Span
	Char rune // only meaningful for UnexpectedCharacter
}

func (e *Error) Error() string {
	switch e.Kind {
	case IncompleteString:
		return "unterminated string"
	case IncompleteComment:
		return "unterminated long comment"
	case IncorrectShebang:
		return "shebang must start at the beginning of the file and end with a newline"
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q", e.Char)
	default:
		return "lex error"
	}
}
