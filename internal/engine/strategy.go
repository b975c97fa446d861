package engine

import "github.com/makerbooks/makerbooks/internal/model"

// Strategy is one named strategic posture the business could adopt. The
// catalog is fixed; only CurrentHourlyRate varies with the state, to show
// how far the business sits from each strategy's target.
type Strategy struct {
	Key               string   `json:"key"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	TargetHourlyRate  float64  `json:"targetHourlyRate"`
	CurrentHourlyRate float64  `json:"currentHourlyRate"`
	RiskLevel         string   `json:"riskLevel"`
	TimeframeMonths   int      `json:"timeframeMonths"`
	Changes           []string `json:"changes"`
}

// StrategyReport is the generator's output.
type StrategyReport struct {
	Strategies []Strategy `json:"strategies"`
}

// Risk levels used by the strategy catalog.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// GenerateBusinessStrategies produces the fixed premium/efficiency/volume
// catalog, annotated with the blended hourly rate the business currently
// achieves. No branching depends on the rate; it is context for the
// reader, computed so each card can show "you are here".
func GenerateBusinessStrategies(state model.CalculatorState) StrategyReport {
	currentRate := CalculateComprehensiveMetrics(state).AverageHourlyRate

	return StrategyReport{Strategies: []Strategy{
		{
			Key:               "premium",
			Name:              "Premium Positioning",
			Description:       "Raise prices 30-50% and reposition toward buyers who pay for craft over cost.",
			TargetHourlyRate:  50,
			CurrentHourlyRate: currentRate,
			RiskLevel:         RiskMedium,
			TimeframeMonths:   3,
			Changes: []string{
				"Increase selling prices 30-50% across the catalog",
				"Rebuild listings around materials, finish quality, and story",
				"Upgrade product photography and packaging presentation",
				"Drop the lowest-margin products that undercut the positioning",
			},
		},
		{
			Key:               "efficiency",
			Name:              "Production Efficiency",
			Description:       "Keep prices where they are and cut minutes per unit with batching and fixtures.",
			TargetHourlyRate:  35,
			CurrentHourlyRate: currentRate,
			RiskLevel:         RiskLow,
			TimeframeMonths:   2,
			Changes: []string{
				"Batch setup and finishing work across production runs",
				"Build jigs and fixtures for repeated operations",
				"Nest parts to cut material waste and machine time",
				"Template the design stage for repeat products",
			},
		},
		{
			Key:               "volume",
			Name:              "Volume Production",
			Description:       "Standardize a small product line and scale unit count on thinner margins.",
			TargetHourlyRate:  25,
			CurrentHourlyRate: currentRate,
			RiskLevel:         RiskHigh,
			TimeframeMonths:   6,
			Changes: []string{
				"Standardize on a small line of proven sellers",
				"Expand into additional marketplace channels",
				"Negotiate bulk material pricing",
				"Hire or contract out finishing and packaging",
			},
		},
	}}
}
