package analyzer

import (
	"fmt"

	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/source"
)

// assignable decides whether value may flow into target, recording any
// failure in a. See check for the rule order (spec.md §4.5).
func (a *Analyzer) assignable(value, target hir.Type, span source.Span) bool {
	return a.check(value, target, span, &a.diags)
}

// check implements spec.md §4.5's assignable(value, target, span)
// relation. Rules are tried in the exact precedence order the spec lists;
// the first that applies decides the result.
func (a *Analyzer) check(value, target hir.Type, span source.Span, sink *diagnostics.Bag) bool {
	if value == nil || target == nil {
		return true
	}

	// 1. Intersection target: value must satisfy every member.
	if it, ok := target.(hir.Intersection); ok {
		for _, m := range it.Members {
			if !a.check(value, m, span, sink) {
				return false
			}
		}
		return true
	}

	// 2. Union target: value must satisfy at least one member. Candidate
	// members are probed silently so only the final failure is reported.
	if ut, ok := target.(hir.Union); ok {
		for _, m := range ut.Members {
			scratch := &diagnostics.Bag{}
			if a.check(value, m, span, scratch) {
				return true
			}
		}
		sink.Add(diagnostics.NotExtendable(span, hir.Describe(value), hir.Describe(target)))
		return false
	}

	// 3. Function-Function.
	if vf, ok := value.(hir.Function); ok {
		if tf, ok := target.(hir.Function); ok {
			return a.checkFunction(vf, tf, span, sink)
		}
	}

	// 4. Table-Table: structural subtyping.
	if vt, ok := value.(hir.Table); ok {
		if tt, ok := target.(hir.Table); ok {
			return a.checkTable(vt, tt, span, sink)
		}
	}

	// 5. Any/Unknown are bidirectionally assignable with anything.
	if isAnyOrUnknown(target) || isAnyOrUnknown(value) {
		return true
	}

	// 6. Void and Nil are interchangeable literal kinds.
	if vl, ok := value.(hir.Literal); ok {
		if tl, ok := target.(hir.Literal); ok {
			if (vl.Kind == hir.LiteralVoid && tl.Kind == hir.LiteralNil) ||
				(vl.Kind == hir.LiteralNil && tl.Kind == hir.LiteralVoid) {
				return true
			}
		}
	}

	// 7. A one-element tuple degenerates to its sole member before
	// comparing against a non-tuple target.
	if vtup, ok := value.(hir.Tuple); ok {
		if _, targetIsTuple := target.(hir.Tuple); !targetIsTuple && len(vtup.Members) == 1 {
			return a.check(vtup.Members[0], target, span, sink)
		}
	}
	if ttup, ok := target.(hir.Tuple); ok {
		if vtup, valueIsTuple := value.(hir.Tuple); valueIsTuple {
			// 8. Tuple-to-tuple: element-wise, value may be shorter than
			// target (the missing tail is simply unconstrained).
			return a.checkTupleTuple(vtup, ttup, span, sink)
		}
		if len(ttup.Members) == 1 {
			return a.check(value, ttup.Members[0], span, sink)
		}
	}

	// 9. Structural equality covers Literal/Any/Unknown/Reference-free
	// matches not already handled above.
	if hir.Equal(value, target) {
		return true
	}

	// 10. NotExtendable: nothing else applies.
	sink.Add(diagnostics.NotExtendable(span, hir.Describe(value), hir.Describe(target)))
	return false
}

func isAnyOrUnknown(t hir.Type) bool {
	switch t.(type) {
	case hir.Any, hir.Unknown:
		return true
	default:
		return false
	}
}

// checkFunction checks parameter arity and types left-to-right, then the
// return type. A value parameter list longer than the target's is
// ExcessiveParameter; a variadic parameter on value without one on target
// is ExcessiveVarargParameter.
func (a *Analyzer) checkFunction(value, target hir.Function, span source.Span, sink *diagnostics.Bag) bool {
	if len(value.Parameters) > len(target.Parameters) {
		sink.Add(diagnostics.ExcessiveParameter(span, len(target.Parameters)+1))
		return false
	}
	for i, tp := range target.Parameters {
		if i >= len(value.Parameters) {
			continue
		}
		if !a.check(value.Parameters[i].Typ, tp.Typ, span, sink) {
			return false
		}
	}
	if value.VariadicParam != nil && target.VariadicParam == nil {
		sink.Add(diagnostics.ExcessiveVarargParameter(span))
		return false
	}
	if value.VariadicParam != nil && target.VariadicParam != nil {
		if !a.check(value.VariadicParam.Typ, target.VariadicParam.Typ, span, sink) {
			return false
		}
	}
	return a.check(value.Return, target.Return, span, sink)
}

// checkTupleTuple checks a tuple-to-tuple assignment element-wise. value
// may carry fewer elements than target (its missing tail is left
// unconstrained); any element target carries beyond value's length is
// simply skipped rather than reported.
func (a *Analyzer) checkTupleTuple(value, target hir.Tuple, span source.Span, sink *diagnostics.Bag) bool {
	ok := true
	for i, tm := range target.Members {
		if i >= len(value.Members) {
			break
		}
		if !a.check(value.Members[i], tm, span, sink) {
			ok = false
		}
	}
	return ok
}

// checkTable implements spec.md §4.5's table subtyping: every named or
// array-index field target declares must be present in value and have an
// assignable type (MissingField / InvalidField); a field value declares
// beyond what target lists is ExcessiveField. A Computed(string) target
// key additionally accepts matching named fields on value, modelling an
// open string-indexed dictionary.
func (a *Analyzer) checkTable(value, target hir.Table, span source.Span, sink *diagnostics.Bag) bool {
	matched := make([]bool, len(value.Entries))
	ok := true

	for _, te := range target.Entries {
		if te.Key.Kind == hir.KeyComputed {
			for i, ve := range value.Entries {
				if !keyMatchesComputed(ve.Key, te.Key) {
					continue
				}
				matched[i] = true
				if !a.checkTableField(ve.Value, te.Value, ve.Key, span, sink) {
					ok = false
				}
			}
			continue
		}

		idx, ve, found := findEntry(value, te.Key)
		if !found {
			sink.Add(diagnostics.MissingField(span, keyName(te.Key), hir.Describe(te.Value)))
			ok = false
			continue
		}
		matched[idx] = true
		if !a.checkTableField(ve.Value, te.Value, te.Key, span, sink) {
			ok = false
		}
	}

	for i, ve := range value.Entries {
		if !matched[i] {
			sink.Add(diagnostics.ExcessiveField(span, keyName(ve.Key)))
			ok = false
		}
	}
	return ok
}

func (a *Analyzer) checkTableField(value, target hir.Type, key hir.TableFieldKey, span source.Span, sink *diagnostics.Bag) bool {
	nested := &diagnostics.Bag{}
	if a.check(value, target, span, nested) {
		return true
	}
	reason := diagnostics.NotExtendable(span, hir.Describe(value), hir.Describe(target))
	if items := nested.Items(); len(items) > 0 {
		reason = items[0]
	}
	sink.Add(diagnostics.InvalidField(span, keyName(key), reason))
	return false
}

func findEntry(t hir.Table, key hir.TableFieldKey) (int, hir.TableEntry, bool) {
	for i, e := range t.Entries {
		if hir.EqualKey(e.Key, key) {
			return i, e, true
		}
	}
	return -1, hir.TableEntry{}, false
}

// keyMatchesComputed reports whether a value entry's key satisfies a
// Computed target key: an exact structural match always qualifies, and a
// named key additionally qualifies against a Computed(string) target
// (the common "dictionary of named fields" shape).
func keyMatchesComputed(value, target hir.TableFieldKey) bool {
	if hir.EqualKey(value, target) {
		return true
	}
	if value.Kind != hir.KeyName {
		return false
	}
	lit, ok := target.Computed.(hir.Literal)
	return ok && lit.Kind == hir.LiteralString
}

func keyName(key hir.TableFieldKey) string {
	switch key.Kind {
	case hir.KeyName:
		return key.Name
	case hir.KeyArrayIndex:
		return fmt.Sprintf("[%d]", key.Index)
	default:
		return "[computed]"
	}
}
