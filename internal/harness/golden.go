package harness

import (
	"testing"

	"github.com/roach88/slotreel/internal/trace"
)

// Snapshot builds the golden snapshot for a scenario's result.
func Snapshot(scenario *Scenario, result *Result) *trace.Snapshot {
	return &trace.Snapshot{
		Name:     scenario.Name,
		RunToken: scenario.RunToken,
		Events:   result.Trace,
	}
}

// RunWithGolden runs scenario and compares its trace against
// testdata/golden/<name>.golden.
//
// Regenerate golden files with:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	trace.AssertGolden(t, Snapshot(scenario, result))
	return result, nil
}
