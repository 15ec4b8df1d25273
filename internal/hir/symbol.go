package hir

import "github.com/slt-lang/slt/internal/source"

// SymbolKind distinguishes the six binding shapes spec.md §3 names.
type SymbolKind int

const (
	SymbolBlockVariable SymbolKind = iota
	SymbolFunctionParameter
	SymbolTypeParameter
	SymbolTypeAlias
	SymbolUnknownVariable
	SymbolValue
)

// TypeParamDecl is one generic parameter of a type-alias declaration
// (spec.md §4.2 "TypeParam"): a name plus an optional bound and an
// optional default. Bound constrains what an explicitly supplied argument
// must describe; Default is substituted only when the reference omits an
// argument for this parameter outright — the two are never conflated.
type TypeParamDecl struct {
	SpanInfo source.Span
	Name     string
	Bound    Type // nil if unbounded
	Default  Type // nil if no default
}

// Symbol is an entry in a Module's symbol arena. Every binding the
// transformer creates — a local, a function parameter, a type alias, a
// type parameter, or the synthetic symbol standing in for a name that
// failed to resolve — is a Symbol. Field use varies by Kind:
//
//   - BlockVariable: CurrentType tracks narrowing; Explicit records
//     whether the declaration carried an annotation (spec.md §4.3's
//     parameter-guess-override only applies to implicit types).
//   - FunctionParameter: CurrentType is the declared parameter type,
//     Optional mirrors the `?` marker.
//   - TypeParameter: Bound is the constraint type, nil if unbounded;
//     CurrentType is the bound, else the default, else Any.
//   - TypeAlias: CurrentType is the alias body (post-resolution), Params
//     holds its generic parameter list, Intrinsic marks built-ins the
//     transformer injects (spec.md §6) rather than user declarations.
//   - UnknownVariable: no payload beyond Definitions; stands in for a
//     name that resolved to nothing so downstream lookups don't re-report.
//   - Value: CurrentType is the type of an intrinsic value the transformer
//     pre-declares (e.g. setmetatable).
type Symbol struct {
	Name        string
	Kind        SymbolKind
	Definitions []source.Span

	Explicit    bool
	CurrentType Type
	Optional    bool
	Bound       Type
	Params      []TypeParamDecl
	Intrinsic   bool
}
