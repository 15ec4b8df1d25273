package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slt-lang/slt/internal/diagnostics"
)

// codes returns the diagnostics.Code of every diagnostic in r, in order.
func codes(r *Result) []diagnostics.Code {
	out := make([]diagnostics.Code, len(r.Diags))
	for i, d := range r.Diags {
		out[i] = d.Code
	}
	return out
}

// spec.md §8's "Concrete scenarios" are exercised by TestScenarioFixtures
// in scenarios_test.go, loaded from testdata/scenarios.yaml. The tests
// below cover pipeline-level infrastructure that isn't part of that table.

func TestBuildStampsFileAndUnitID(t *testing.T) {
	r := Build("typo.slt", "local x: string = 1")
	require.Len(t, r.Diags, 1)
	assert.Equal(t, "typo.slt", r.Diags[0].File)
	assert.Equal(t, r.ID, r.Diags[0].UnitID)
}

func TestBuildHaltsCleanlyOnLexError(t *testing.T) {
	r := Build("bad.slt", `local s = "unterminated`)
	require.NotEmpty(t, r.Diags)
	assert.Equal(t, diagnostics.LexIncompleteString, r.Diags[0].Code)
	assert.Nil(t, r.Module)
	assert.True(t, r.HasErrors())
}

func TestRecursiveTypeAliasDoesNotExpandInfinitely(t *testing.T) {
	src := `type R = { next: R }
local x: R`
	r := Build("r.slt", src)
	assert.Empty(t, r.Diags)
	require.NotNil(t, r.Module)
}

func TestBuildHaltsCleanlyOnParseError(t *testing.T) {
	r := Build("bad.slt", "if true then local x = 1")
	require.NotEmpty(t, r.Diags)
	assert.Equal(t, diagnostics.ParseExpected, r.Diags[0].Code)
	assert.Nil(t, r.Module)
	assert.True(t, r.HasErrors())
}
