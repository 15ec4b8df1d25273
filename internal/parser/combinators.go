package parser

import "github.com/slt-lang/slt/internal/token"

// Rule is a single parser combinator: given a state, it either matches
// and returns the advanced state plus a value, or fails with one of the
// three outcome kinds in outcome.go.
type Rule[T any] func(State) (T, State, error)

// match matches a single token.Kind, returning NoMatch (never Expected)
// so callers compose it with expect/either freely.
func match(kind token.Kind) Rule[token.Token] {
	return func(s State) (token.Token, State, error) {
		cur := s.current()
		if cur.Kind != kind {
			var zero token.Token
			return zero, s, errNoMatch
		}
		return cur, s.advance(), nil
	}
}

// expect promotes a rule's NoMatch into a committed Expected failure
// naming what the caller wanted (spec.md §4.2 `expect(p, msg)`).
func expect[T any](p Rule[T], expected string) Rule[T] {
	return func(s State) (T, State, error) {
		v, ns, err := p(s)
		if err != nil && isNoMatch(err) {
			var zero T
			return zero, s, expectedErr(s, expected)
		}
		return v, ns, err
	}
}

// optional absorbs NoMatch into a zero value plus false, and propagates
// any committed failure.
func optional[T any](p Rule[T]) Rule[optionalResult[T]] {
	return func(s State) (optionalResult[T], State, error) {
		v, ns, err := p(s)
		if err != nil {
			if isNoMatch(err) {
				return optionalResult[T]{}, s, nil
			}
			return optionalResult[T]{}, s, err
		}
		return optionalResult[T]{Value: v, Present: true}, ns, nil
	}
}

type optionalResult[T any] struct {
	Value   T
	Present bool
}

// either tries each alternative in order, returning the first match,
// propagating a committed Expected, and reporting NoMatch only if every
// alternative declines (spec.md §4.2 `either{...}`).
func either[T any](alts ...Rule[T]) Rule[T] {
	return func(s State) (T, State, error) {
		for _, alt := range alts {
			v, ns, err := alt(s)
			if err == nil {
				return v, ns, nil
			}
			if !isNoMatch(err) {
				var zero T
				return zero, s, err
			}
		}
		var zero T
		return zero, s, errNoMatch
	}
}

// zeroOrMore repeats p until it declines, collecting every match.
func zeroOrMore[T any](p Rule[T]) Rule[[]T] {
	return func(s State) ([]T, State, error) {
		var out []T
		cur := s
		for {
			v, ns, err := p(cur)
			if err != nil {
				if isNoMatch(err) {
					return out, cur, nil
				}
				return out, cur, err
			}
			out = append(out, v)
			cur = ns
		}
	}
}

// zeroOrMorePunctuated repeats p separated by sep; a trailing separator
// with no following member is not consumed.
func zeroOrMorePunctuated[T any](p Rule[T], sep token.Kind) Rule[[]T] {
	return func(s State) ([]T, State, error) {
		var out []T
		cur := s
		beforeSep := s
		for {
			v, ns, err := p(cur)
			if err != nil {
				if isNoMatch(err) {
					return out, beforeSep, nil
				}
				return out, cur, err
			}
			out = append(out, v)
			cur = ns
			if !cur.at(sep) {
				return out, cur, nil
			}
			beforeSep = cur
			cur = cur.advance()
		}
	}
}

// zeroOrMorePunctuatedTrailing is like zeroOrMorePunctuated but also
// accepts (and consumes) a trailing separator with nothing after it —
// used for table literal/type field lists (spec.md §4.2 `table`).
func zeroOrMorePunctuatedTrailing[T any](p Rule[T], sep token.Kind) Rule[[]T] {
	return func(s State) ([]T, State, error) {
		var out []T
		cur := s
		for {
			v, ns, err := p(cur)
			if err != nil {
				if isNoMatch(err) {
					return out, cur, nil
				}
				return out, cur, err
			}
			out = append(out, v)
			cur = ns
			if !cur.at(sep) {
				return out, cur, nil
			}
			cur = cur.advance()
		}
	}
}

// oneOrMorePunctuated requires at least one match of p, committing to
// expectedMsg if even the first is absent.
func oneOrMorePunctuated[T any](p Rule[T], sep token.Kind, expectedMsg string) Rule[[]T] {
	return func(s State) ([]T, State, error) {
		first, cur, err := expect(p, expectedMsg)(s)
		if err != nil {
			return nil, s, err
		}
		out := []T{first}
		for cur.at(sep) {
			cur = cur.advance()
			v, ns, err := p(cur)
			if err != nil {
				if isNoMatch(err) {
					return out, cur, nil
				}
				return out, cur, err
			}
			out = append(out, v)
			cur = ns
		}
		return out, cur, nil
	}
}
