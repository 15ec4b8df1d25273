package unit

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/slt-lang/slt/internal/diagnostics"
)

// scenarioFixture mirrors one entry of testdata/scenarios.yaml, the
// spec.md §8 "concrete scenarios" table.
type scenarioFixture struct {
	Name         string            `yaml:"name"`
	File         string            `yaml:"file"`
	Source       string            `yaml:"source"`
	WantCodes    []string          `yaml:"wantCodes"`
	WantMessages map[string]string `yaml:"wantMessages"`
}

type scenarioFile struct {
	Scenarios []scenarioFixture `yaml:"scenarios"`
}

func loadScenarios(t *testing.T) []scenarioFixture {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var f scenarioFile
	require.NoError(t, yaml.Unmarshal(raw, &f))
	require.NotEmpty(t, f.Scenarios)
	return f.Scenarios
}

func TestScenarioFixtures(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			r := Build(sc.File, sc.Source)

			if len(sc.WantCodes) == 0 {
				require.Empty(t, r.Diags)
				return
			}

			got := make(map[string]*diagnostics.Diagnostic, len(r.Diags))
			for _, d := range r.Diags {
				got[string(d.Code)] = d
			}
			for _, code := range sc.WantCodes {
				d, ok := got[code]
				require.Truef(t, ok, "expected diagnostic %s, got %v", code, codes(r))
				if want, ok := sc.WantMessages[code]; ok {
					require.Equal(t, want, d.Message)
				}
			}
		})
	}
}
