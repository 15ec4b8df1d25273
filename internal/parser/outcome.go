package parser

import (
	"fmt"

	"github.com/slt-lang/slt/internal/token"
)

// Three outcomes a combinator can produce (spec.md §4.2): NoMatch means
// the production did not apply and the caller may try an alternative;
// Expected is a committed failure that propagates to the top of the
// parse; Internal marks a bug in the grammar itself.
type outcomeKind int

const (
	outcomeNoMatch outcomeKind = iota
	outcomeExpected
	outcomeInternal
)

type outcomeError struct {
	kind     outcomeKind
	expected string
	got      token.Token
	msg      string
}

func (e *outcomeError) Error() string {
	switch e.kind {
	case outcomeExpected:
		return fmt.Sprintf("expected %s, got %q", e.expected, e.got.Text)
	case outcomeInternal:
		return "internal parser error: " + e.msg
	default:
		return "no match"
	}
}

var errNoMatch = &outcomeError{kind: outcomeNoMatch}

// isNoMatch reports whether err is the NoMatch sentinel; callers use this
// to decide whether trying the next alternative is safe.
func isNoMatch(err error) bool {
	oe, ok := err.(*outcomeError)
	return ok && oe.kind == outcomeNoMatch
}

// expectedErr builds a committed Expected failure naming what was wanted
// and the token actually found.
func expectedErr(s State, expected string) error {
	return &outcomeError{kind: outcomeExpected, expected: expected, got: s.current()}
}

func internalErr(msg string) error {
	return &outcomeError{kind: outcomeInternal, msg: msg}
}

// describeFailure renders an outcomeExpected error as the normative parse
// diagnostic text (spec.md §6: `Expected {expected} got '{text}'`).
func describeFailure(err error) (expected, got string, ok bool) {
	oe, isOutcome := err.(*outcomeError)
	if !isOutcome || oe.kind != outcomeExpected {
		return "", "", false
	}
	got = oe.got.Text
	if oe.got.Kind == token.EOF {
		got = "<eof>"
	}
	return oe.expected, got, true
}
