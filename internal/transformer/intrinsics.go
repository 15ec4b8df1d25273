package transformer

import (
	"github.com/slt-lang/slt/internal/config"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/source"
)

// installIntrinsics registers the built-ins the transformer's type
// surface assumes exist, into a fresh module scope (spec.md §5:
// "All intrinsic-type registration happens into a fresh module scope
// during init_intrinsics"). setmetatable is special-cased by name at
// every call site (see expressions.go), but it is still declared here so
// a bare reference to the name (not immediately called) resolves instead
// of reporting UnknownVariable.
func installIntrinsics(m *hir.Module, scope hir.ScopeHandle) {
	invalid := source.Invalid

	setmetatableType := hir.Function{
		SpanInfo: invalid,
		Parameters: []hir.Param{
			{Name: "tbl", Typ: hir.Any{SpanInfo: invalid}},
			{Name: "mt", Typ: hir.Any{SpanInfo: invalid}},
		},
		Return: hir.Any{SpanInfo: invalid},
	}
	sym := m.NewSymbol(hir.Symbol{
		Name:        config.SetMetatableFuncName,
		Kind:        hir.SymbolValue,
		Intrinsic:   true,
		CurrentType: setmetatableType,
	})
	m.Declare(scope, config.SetMetatableFuncName, sym)
}
