package hir

import "strings"

// Describe renders a Type as the human-readable surface spec.md §6
// specifies for diagnostic messages: literals by keyword, references by
// alias name, functions as `(p1: T1, p2: T2, …) -> R`, tables as
// `{ k1: T1, … }` (capped at 5 entries, then `..`, with an appended
// `LUA_METATABLE = { … }` when a metatable is present), tuples as
// `(T1,T2,…)`, unions joined by `|`, intersections joined by `&`.
func Describe(t Type) string {
	switch v := t.(type) {
	case Literal:
		return v.Kind.String()
	case Any:
		return "any"
	case Unknown:
		return "unknown"
	case Reference:
		return v.Name
	case Recursive:
		return "<recursive>"
	case Unresolved:
		return "<unresolved>"
	case Tuple:
		parts := make([]string, len(v.Members))
		for i, m := range v.Members {
			parts[i] = Describe(m)
		}
		return "(" + strings.Join(parts, ",") + ")"
	case Function:
		var b strings.Builder
		b.WriteByte('(')
		for i, p := range v.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Name)
			b.WriteString(": ")
			b.WriteString(Describe(p.Typ))
			if p.Optional {
				b.WriteByte('?')
			}
		}
		if v.VariadicParam != nil {
			if len(v.Parameters) > 0 {
				b.WriteString(", ")
			}
			b.WriteString("...: ")
			b.WriteString(Describe(v.VariadicParam.Typ))
		}
		b.WriteString(") -> ")
		b.WriteString(Describe(v.Return))
		return b.String()
	case Table:
		return describeTable(v)
	case Intersection:
		return describeJoin(v.Members, " & ")
	case Union:
		return describeJoin(v.Members, " | ")
	default:
		return "?"
	}
}

func describeJoin(members []Type, sep string) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, sep)
}

func describeTable(t Table) string {
	var b strings.Builder
	b.WriteString("{ ")
	n := len(t.Entries)
	shown := n
	if shown > 5 {
		shown = 5
	}
	for i := 0; i < shown; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(describeKey(t.Entries[i].Key))
		b.WriteString(": ")
		b.WriteString(Describe(t.Entries[i].Value))
	}
	if n > shown {
		b.WriteString(", ..")
	}
	b.WriteString(" }")
	if t.Metatable != nil {
		b.WriteString(" LUA_METATABLE = ")
		b.WriteString(describeTable(*t.Metatable))
	}
	return b.String()
}

func describeKey(k TableFieldKey) string {
	switch k.Kind {
	case KeyName:
		return k.Name
	case KeyArrayIndex:
		return "[]"
	case KeyComputed:
		return "[" + Describe(k.Computed) + "]"
	default:
		return "?"
	}
}
