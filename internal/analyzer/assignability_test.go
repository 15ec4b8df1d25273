package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/source"
)

func newAnalyzer() *Analyzer {
	return &Analyzer{module: hir.NewModule(), seenReturn: map[hir.ScopeHandle]bool{}}
}

func number() hir.Type  { return hir.Literal{Kind: hir.LiteralNumber} }
func str() hir.Type     { return hir.Literal{Kind: hir.LiteralString} }
func void() hir.Type    { return hir.Literal{Kind: hir.LiteralVoid} }
func nilType() hir.Type { return hir.Literal{Kind: hir.LiteralNil} }

func field(name string, t hir.Type) hir.TableEntry {
	return hir.TableEntry{Key: hir.TableFieldKey{Kind: hir.KeyName, Name: name}, Value: t}
}

func TestCheckLiteralMismatchIsNotExtendable(t *testing.T) {
	a := newAnalyzer()
	ok := a.assignable(number(), str(), source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	assert.Equal(t, diagnostics.AnalyzeNotExtendable, a.diags.Items()[0].Code)
}

func TestCheckVoidNilAreInterchangeable(t *testing.T) {
	a := newAnalyzer()
	assert.True(t, a.assignable(void(), nilType(), source.Span{}))
	a2 := newAnalyzer()
	assert.True(t, a2.assignable(nilType(), void(), source.Span{}))
}

func TestCheckAnyAndUnknownAreUniversallyAssignable(t *testing.T) {
	a := newAnalyzer()
	assert.True(t, a.assignable(hir.Any{}, number(), source.Span{}))
	assert.True(t, a.assignable(number(), hir.Unknown{}, source.Span{}))
}

func TestCheckUnionTargetAcceptsAnyMatchingMember(t *testing.T) {
	a := newAnalyzer()
	target := hir.Union{Members: []hir.Type{number(), str()}}
	assert.True(t, a.assignable(str(), target, source.Span{}))
	assert.Empty(t, a.diags.Items())
}

func TestCheckUnionTargetReportsOnlyFinalFailure(t *testing.T) {
	a := newAnalyzer()
	target := hir.Union{Members: []hir.Type{number(), str()}}
	ok := a.assignable(hir.Literal{Kind: hir.LiteralBool}, target, source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	assert.Equal(t, diagnostics.AnalyzeNotExtendable, a.diags.Items()[0].Code)
}

func TestCheckIntersectionTargetRequiresEveryMember(t *testing.T) {
	a := newAnalyzer()
	target := hir.Intersection{Members: []hir.Type{number(), str()}}
	ok := a.assignable(number(), target, source.Span{})
	assert.False(t, ok)
	assert.NotEmpty(t, a.diags.Items())
}

func TestCheckTableMissingField(t *testing.T) {
	a := newAnalyzer()
	value := hir.Table{}
	target := hir.Table{Entries: []hir.TableEntry{field("x", number())}}
	ok := a.assignable(value, target, source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	assert.Equal(t, diagnostics.AnalyzeMissingField, a.diags.Items()[0].Code)
}

func TestCheckTableExcessiveField(t *testing.T) {
	a := newAnalyzer()
	value := hir.Table{Entries: []hir.TableEntry{field("x", number()), field("y", number())}}
	target := hir.Table{Entries: []hir.TableEntry{field("x", number())}}
	ok := a.assignable(value, target, source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	assert.Equal(t, diagnostics.AnalyzeExcessiveField, a.diags.Items()[0].Code)
}

func TestCheckTableInvalidFieldWrapsNestedReason(t *testing.T) {
	a := newAnalyzer()
	value := hir.Table{Entries: []hir.TableEntry{field("x", str())}}
	target := hir.Table{Entries: []hir.TableEntry{field("x", number())}}
	ok := a.assignable(value, target, source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	d := a.diags.Items()[0]
	assert.Equal(t, diagnostics.AnalyzeInvalidField, d.Code)
	assert.Equal(t, "Invalid field 'x': 'string' is not extendable from 'number'", d.Message)
}

func TestCheckTableExactMatchSucceeds(t *testing.T) {
	a := newAnalyzer()
	value := hir.Table{Entries: []hir.TableEntry{field("x", number())}}
	target := hir.Table{Entries: []hir.TableEntry{field("x", number())}}
	assert.True(t, a.assignable(value, target, source.Span{}))
	assert.Empty(t, a.diags.Items())
}

func TestCheckOneElementTupleDegeneratesToItsMember(t *testing.T) {
	a := newAnalyzer()
	value := hir.Tuple{Members: []hir.Type{number()}}
	assert.True(t, a.assignable(value, number(), source.Span{}))
}

func TestCheckTupleToTupleAllowsShorterValue(t *testing.T) {
	a := newAnalyzer()
	value := hir.Tuple{Members: []hir.Type{number()}}
	target := hir.Tuple{Members: []hir.Type{number(), str()}}
	assert.True(t, a.assignable(value, target, source.Span{}))
	assert.Empty(t, a.diags.Items())
}

func TestCheckFunctionExcessiveParameter(t *testing.T) {
	a := newAnalyzer()
	value := hir.Function{Parameters: []hir.Param{{Name: "a", Typ: number()}, {Name: "b", Typ: number()}}, Return: void()}
	target := hir.Function{Parameters: []hir.Param{{Name: "a", Typ: number()}}, Return: void()}
	ok := a.assignable(value, target, source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	assert.Equal(t, diagnostics.AnalyzeExcessiveParam, a.diags.Items()[0].Code)
}

func TestCheckFunctionReturnTypeMismatch(t *testing.T) {
	a := newAnalyzer()
	value := hir.Function{Return: void()}
	target := hir.Function{Return: number()}
	ok := a.assignable(value, target, source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	assert.Equal(t, diagnostics.AnalyzeNotExtendable, a.diags.Items()[0].Code)
}

func TestCheckFunctionMatchingSignatureSucceeds(t *testing.T) {
	a := newAnalyzer()
	sig := func() hir.Function {
		return hir.Function{Parameters: []hir.Param{{Name: "a", Typ: number()}}, Return: str()}
	}
	assert.True(t, a.assignable(sig(), sig(), source.Span{}))
	assert.Empty(t, a.diags.Items())
}

func TestCallableResolvesThroughCallMetamethod(t *testing.T) {
	a := newAnalyzer()
	callFn := hir.Function{Return: number()}
	table := hir.Table{Metatable: &hir.Table{Entries: []hir.TableEntry{field("__call", callFn)}}}
	fn, ok := a.callable(table, source.Span{})
	require.True(t, ok)
	assert.Empty(t, a.diags.Items())
	assert.True(t, hir.Equal(fn.Return, number()))
}

func TestCallableWithoutMetatableIsNonCall(t *testing.T) {
	a := newAnalyzer()
	_, ok := a.callable(hir.Table{}, source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	assert.Equal(t, diagnostics.AnalyzeNonCall, a.diags.Items()[0].Code)
}

func TestCallableWithNonFunctionCallMetamethodIsInvalidMetamethod(t *testing.T) {
	a := newAnalyzer()
	table := hir.Table{Metatable: &hir.Table{Entries: []hir.TableEntry{field("__call", number())}}}
	_, ok := a.callable(table, source.Span{})
	assert.False(t, ok)
	require.Len(t, a.diags.Items(), 1)
	assert.Equal(t, diagnostics.AnalyzeInvalidMetaUse, a.diags.Items()[0].Code)
}
