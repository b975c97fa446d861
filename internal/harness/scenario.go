package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/makerbooks/makerbooks/internal/model"
)

// Scenario defines one conformance scenario: a business state and the
// metric values it must produce.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden file
	// name when the scenario is pinned.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// State is the CalculatorState the engine computes over.
	State model.CalculatorState `yaml:"state"`

	// Assertions validate fields of the computed report.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion checks one numeric field of the report.
type Assertion struct {
	// Metric is a dotted path into the report, e.g. "pl.netProfit",
	// "metrics.totalMonthlyRevenue", or
	// "metrics.products.mugs.revenue.monthlyRevenue".
	Metric string `yaml:"metric"`

	// Equals is the expected value.
	Equals float64 `yaml:"equals"`

	// Tolerance is the allowed absolute difference. Zero means the
	// default floating-point tolerance of 1e-9.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// DefaultTolerance is the absolute tolerance applied when an assertion
// does not specify its own.
const DefaultTolerance = 1e-9

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if scenario.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	for i, assertion := range scenario.Assertions {
		if assertion.Metric == "" {
			return nil, fmt.Errorf("scenario %s: assertion[%d] missing metric path", path, i)
		}
		if assertion.Tolerance < 0 {
			return nil, fmt.Errorf("scenario %s: assertion[%d] negative tolerance", path, i)
		}
	}
	return &scenario, nil
}

// LoadScenarioDir loads every *.yaml/*.yml scenario under dir, sorted by
// file name for deterministic run order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[scenario.Name]; dup {
			return nil, fmt.Errorf("duplicate scenario name %q in %s and %s", scenario.Name, prev, path)
		}
		seen[scenario.Name] = path
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}
