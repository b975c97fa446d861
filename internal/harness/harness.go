// Package harness executes conformance scenarios against the simulation
// engine. A scenario is a YAML document holding one CalculatorState plus
// assertions on the computed metrics, profit-and-loss waterfall, and
// strategies. The harness also supports golden-file comparison of whole
// reports for regression pinning.
package harness

import (
	"fmt"

	"github.com/makerbooks/makerbooks/internal/engine"
	"github.com/makerbooks/makerbooks/internal/model"
	"github.com/makerbooks/makerbooks/internal/snapshot"
)

// Report is the full engine output for one state: comprehensive metrics,
// both overhead pictures (the legacy flat net profit inside Metrics and
// the BusinessExpenses waterfall in PL, deliberately not reconciled),
// and the strategy catalog.
type Report struct {
	StateHash  string                   `json:"stateHash"`
	Metrics    engine.CalculatedMetrics `json:"metrics"`
	PL         engine.PLCalculation     `json:"pl"`
	Strategies engine.StrategyReport    `json:"strategies"`
}

// BuildReport runs every engine stage for one state.
func BuildReport(state model.CalculatorState) (Report, error) {
	hash, err := snapshot.StateHash(state)
	if err != nil {
		return Report{}, fmt.Errorf("hash state: %w", err)
	}

	metrics := engine.CalculateComprehensiveMetrics(state)
	return Report{
		StateHash:  hash,
		Metrics:    metrics,
		PL:         engine.CalculatePL(metrics, state, nil),
		Strategies: engine.GenerateBusinessStrategies(state),
	}, nil
}

// Result is the outcome of running one scenario.
type Result struct {
	ScenarioName string
	Report       Report

	// Failures holds one message per failed assertion. Empty means pass.
	Failures []string
}

// Passed reports whether every assertion held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run executes a scenario: build the report, then evaluate each assertion
// against it in order.
func Run(scenario *Scenario) (*Result, error) {
	report, err := BuildReport(scenario.State)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	result := &Result{
		ScenarioName: scenario.Name,
		Report:       report,
	}
	for i, assertion := range scenario.Assertions {
		if msg := evaluate(assertion, report); msg != "" {
			result.Failures = append(result.Failures, fmt.Sprintf("assertion[%d]: %s", i, msg))
		}
	}
	return result, nil
}
