package harness

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// evaluate checks one assertion against a report. Returns an empty string
// on success, a failure message otherwise.
func evaluate(assertion Assertion, report Report) string {
	actual, err := lookupMetric(report, assertion.Metric)
	if err != nil {
		return fmt.Sprintf("metric %q: %v", assertion.Metric, err)
	}

	tolerance := assertion.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	if math.Abs(actual-assertion.Equals) > tolerance {
		return fmt.Sprintf("metric %q = %v, want %v (tolerance %v)",
			assertion.Metric, actual, assertion.Equals, tolerance)
	}
	return ""
}

// lookupMetric resolves a dotted path against the report's JSON shape, so
// assertion paths match the field names users see in --format json
// output. Map keys (product IDs, channel names) are path segments too.
func lookupMetric(report Report, path string) (float64, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("marshal report: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("unmarshal report: %w", err)
	}

	current := doc
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return 0, fmt.Errorf("segment %q: not an object", segment)
		}
		current, ok = obj[segment]
		if !ok {
			return 0, fmt.Errorf("segment %q: not found", segment)
		}
	}

	value, ok := current.(float64)
	if !ok {
		return 0, fmt.Errorf("path resolves to %T, not a number", current)
	}
	return value, nil
}
