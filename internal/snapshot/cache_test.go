package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerbooks/makerbooks/internal/model"
)

// TestCache_ReusesEntries tests that repeated lookups of the same
// snapshot keep a single cache entry while distinct snapshots add more.
func TestCache_ReusesEntries(t *testing.T) {
	cache := NewCache()
	state := model.CalculatorState{
		HourlyRate: 25,
		Products: []model.Product{
			{ID: "p1", Name: "boards", SellingPrice: 50, MonthlyUnits: 10},
		},
	}

	first := cache.Metrics(state)
	second := cache.Metrics(state)
	require.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	other := state
	other.HourlyRate = 30
	cache.Metrics(other)
	assert.Equal(t, 2, cache.Len())
}

// TestCache_MatchesDirectComputation tests that cached results agree
// with an uncached engine run.
func TestCache_MatchesDirectComputation(t *testing.T) {
	cache := NewCache()
	state := model.CalculatorState{
		HourlyRate: 20,
		Products: []model.Product{
			{ID: "p1", Name: "coasters", SellingPrice: 20, MonthlyUnits: 50,
				Costs: model.ProductCosts{Materials: 4}},
		},
	}

	cached := cache.Metrics(state)
	assert.InDelta(t, 1000.0, cached.TotalMonthlyRevenue, 1e-9)
	assert.Equal(t, 50, cached.TotalMonthlyUnits)
}
