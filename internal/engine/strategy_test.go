package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerbooks/makerbooks/internal/model"
)

// TestGenerateBusinessStrategies_Catalog tests the fixed catalog shape:
// three postures with their targets, risks, and horizons.
func TestGenerateBusinessStrategies_Catalog(t *testing.T) {
	report := GenerateBusinessStrategies(model.CalculatorState{})

	require.Len(t, report.Strategies, 3)

	premium, efficiency, volume := report.Strategies[0], report.Strategies[1], report.Strategies[2]

	assert.Equal(t, "premium", premium.Key)
	assert.Equal(t, float64(50), premium.TargetHourlyRate)
	assert.Equal(t, RiskMedium, premium.RiskLevel)
	assert.Equal(t, 3, premium.TimeframeMonths)

	assert.Equal(t, "efficiency", efficiency.Key)
	assert.Equal(t, float64(35), efficiency.TargetHourlyRate)
	assert.Equal(t, RiskLow, efficiency.RiskLevel)
	assert.Equal(t, 2, efficiency.TimeframeMonths)

	assert.Equal(t, "volume", volume.Key)
	assert.Equal(t, float64(25), volume.TargetHourlyRate)
	assert.Equal(t, RiskHigh, volume.RiskLevel)
	assert.Equal(t, 6, volume.TimeframeMonths)

	for _, s := range report.Strategies {
		assert.NotEmpty(t, s.Name, "strategy %s", s.Key)
		assert.NotEmpty(t, s.Description, "strategy %s", s.Key)
		assert.NotEmpty(t, s.Changes, "strategy %s", s.Key)
	}
}

// TestGenerateBusinessStrategies_CurrentRateAnnotation tests that every
// strategy carries the business's achieved hourly rate for context.
func TestGenerateBusinessStrategies_CurrentRateAnnotation(t *testing.T) {
	state := model.CalculatorState{
		HourlyRate: 20,
		Products: []model.Product{
			{
				ID:           "boards",
				SellingPrice: 50,
				MonthlyUnits: 20,
				TimeBreakdown: model.TimeBreakdown{Setup: 60},
			},
		},
	}

	expected := CalculateComprehensiveMetrics(state).AverageHourlyRate
	require.Positive(t, expected)

	report := GenerateBusinessStrategies(state)
	for _, s := range report.Strategies {
		assert.InDelta(t, expected, s.CurrentHourlyRate, 1e-9, "strategy %s", s.Key)
	}
}

// TestGenerateBusinessStrategies_CatalogIsStateIndependent tests that
// only the rate annotation varies with state.
func TestGenerateBusinessStrategies_CatalogIsStateIndependent(t *testing.T) {
	empty := GenerateBusinessStrategies(model.CalculatorState{})
	busy := GenerateBusinessStrategies(model.CalculatorState{
		HourlyRate: 20,
		Products: []model.Product{
			{ID: "boards", SellingPrice: 50, MonthlyUnits: 20, TimeBreakdown: model.TimeBreakdown{Setup: 60}},
		},
	})

	for i := range empty.Strategies {
		a, b := empty.Strategies[i], busy.Strategies[i]
		a.CurrentHourlyRate, b.CurrentHourlyRate = 0, 0
		assert.Equal(t, a, b)
	}
}
