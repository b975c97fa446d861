package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/makerbooks/makerbooks/internal/snapshot"
)

// RunWithGolden executes a scenario and compares the full report against
// a golden file in testdata/golden/{scenario.Name}.golden.
//
// Golden files pin the entire report, down to every per-product figure,
// in canonical JSON, so any numeric drift anywhere in the engine fails
// the comparison. Regenerate with:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	reportJSON, err := snapshot.MarshalDocument(result.Report)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, reportJSON)

	return result, nil
}
