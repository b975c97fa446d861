package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerbooks/makerbooks/internal/model"
)

// plState is a single-product workshop yielding round waterfall numbers:
// revenue 1000, gross profit 700.
func plState() model.CalculatorState {
	return model.CalculatorState{
		HourlyRate: 24,
		Products: []model.Product{
			{
				ID:           "boards",
				SellingPrice: 100,
				MonthlyUnits: 10,
				Costs:        model.ProductCosts{Materials: 10},
				TimeBreakdown: model.TimeBreakdown{Setup: 30, Machine: 20},
			},
		},
		BusinessExpenses: &model.BusinessExpenses{
			TaxReserve: model.TaxReserve{SelfEmploymentRate: 15, FederalRate: 10, StateRate: 5},
			PhysicalCosts: model.ItemizedCosts{Items: []model.CostItem{
				{Name: "rent", MonthlyCost: 200},
				{Name: "insurance", MonthlyCost: 50},
			}},
			SoftwareCosts: model.ItemizedCosts{Items: []model.CostItem{
				{Name: "cad", MonthlyCost: 30},
			}},
			Savings: model.SavingsGoal{Rate: 2},
		},
	}
}

// TestCalculatePL_Waterfall tests the full waterfall on a known state.
func TestCalculatePL_Waterfall(t *testing.T) {
	state := plState()
	metrics := CalculateComprehensiveMetrics(state)
	pl := CalculatePL(metrics, state, nil)

	assert.InDelta(t, 1000, pl.Revenue, 1e-9)
	assert.InDelta(t, 100, pl.MaterialsCost, 1e-9)
	assert.InDelta(t, 200, pl.DirectLaborCost, 1e-9) // 50 min at 24/hr, 10 units
	assert.Zero(t, pl.PlatformFeesCost)
	assert.InDelta(t, 300, pl.COGS, 1e-9)
	assert.InDelta(t, 700, pl.GrossProfit, 1e-9)

	assert.InDelta(t, 250, pl.PhysicalCosts, 1e-9)
	assert.InDelta(t, 30, pl.SoftwareCosts, 1e-9)
	assert.InDelta(t, 20, pl.SavingsAmount, 1e-9) // 2% of 1000

	// Operating before tax: 250 + 30 + 20 = 300; pre-tax 400.
	assert.InDelta(t, 400, pl.PreTaxProfit, 1e-9)
	assert.InDelta(t, 30, pl.TaxRate, 1e-9)
	assert.InDelta(t, 120, pl.TaxAmount, 1e-9)
	assert.InDelta(t, 420, pl.TotalOperatingExpenses, 1e-9)
	assert.InDelta(t, 280, pl.NetProfit, 1e-9)
}

// TestCalculatePL_TaxFloor tests that a pre-tax loss reserves zero tax,
// never a negative amount.
func TestCalculatePL_TaxFloor(t *testing.T) {
	state := plState()
	state.BusinessExpenses.PhysicalCosts = model.ItemizedCosts{Items: []model.CostItem{
		{Name: "expensive warehouse", MonthlyCost: 1200},
	}}
	state.BusinessExpenses.SoftwareCosts = model.ItemizedCosts{}
	state.BusinessExpenses.Savings = model.SavingsGoal{}

	metrics := CalculateComprehensiveMetrics(state)
	pl := CalculatePL(metrics, state, nil)

	require.InDelta(t, -500, pl.PreTaxProfit, 1e-9)
	assert.Zero(t, pl.TaxAmount, "tax floors at zero on a pre-tax loss")
	assert.InDelta(t, -500, pl.NetProfit, 1e-9)
}

// TestCalculatePL_NetProfitIdentity tests that net profit is exactly
// gross profit minus total operating expenses for assorted states.
func TestCalculatePL_NetProfitIdentity(t *testing.T) {
	states := []model.CalculatorState{
		plState(),
		{}, // fully empty
		func() model.CalculatorState {
			s := plState()
			s.Marketing = model.MarketingState{Channels: []model.MarketingChannel{
				{Name: "ads", MonthlySpend: 333.33, UnitsPerMonth: 7, IsActive: true},
			}}
			s.BusinessTasks = []model.BusinessTask{{ID: "books", HoursPerWeek: 1.5}}
			return s
		}(),
	}

	for i, state := range states {
		metrics := CalculateComprehensiveMetrics(state)
		pl := CalculatePL(metrics, state, nil)
		assert.InDelta(t, pl.GrossProfit-pl.TotalOperatingExpenses, pl.NetProfit, 1e-9, "state %d", i)
	}
}

// TestCalculatePL_ExpensesOverride tests that an explicit expense model
// wins over the state's own.
func TestCalculatePL_ExpensesOverride(t *testing.T) {
	state := plState()
	metrics := CalculateComprehensiveMetrics(state)

	override := &model.BusinessExpenses{
		TaxReserve: model.TaxReserve{FederalRate: 10},
	}
	pl := CalculatePL(metrics, state, override)

	assert.Zero(t, pl.PhysicalCosts)
	assert.InDelta(t, 10, pl.TaxRate, 1e-9)
}

// TestCalculatePL_NoExpenseModel tests that a state with no expense model
// still produces a defined waterfall.
func TestCalculatePL_NoExpenseModel(t *testing.T) {
	state := plState()
	state.BusinessExpenses = nil

	metrics := CalculateComprehensiveMetrics(state)
	pl := CalculatePL(metrics, state, nil)

	assert.InDelta(t, 700, pl.GrossProfit, 1e-9)
	assert.Zero(t, pl.TaxAmount)
	assert.InDelta(t, 700, pl.NetProfit, 1e-9)
}

// TestResolveDirectLabor_AggregatedTier tests tier one: the worker
// model's pre-aggregated total wins when present.
func TestResolveDirectLabor_AggregatedTier(t *testing.T) {
	state := plState()
	state.Workers = []model.Worker{{ID: "owner", HourlyRate: 40}}

	metrics := CalculateComprehensiveMetrics(state)
	require.NotNil(t, metrics.Labor)

	cost, source := resolveDirectLabor(metrics, state)
	assert.Equal(t, LaborSourceAggregated, source)
	// 30 hands-on minutes at 40/hr = 20/unit, 10 units.
	assert.InDelta(t, 200, cost, 1e-9)
}

// TestResolveDirectLabor_AssignmentsTier tests tier two: with a worker
// model but no pre-aggregated totals, labor is recomputed from
// assignments.
func TestResolveDirectLabor_AssignmentsTier(t *testing.T) {
	state := plState()
	state.Workers = []model.Worker{{ID: "owner", HourlyRate: 40}}

	metrics := CalculateComprehensiveMetrics(state)
	metrics.Labor = nil // strip the pre-aggregated picture

	cost, source := resolveDirectLabor(metrics, state)
	assert.Equal(t, LaborSourceAssignments, source)
	assert.InDelta(t, 200, cost, 1e-9)
}

// TestResolveDirectLabor_BreakdownTier tests tier three: with no worker
// model at all, the legacy per-product cost breakdown answers.
func TestResolveDirectLabor_BreakdownTier(t *testing.T) {
	state := plState()
	metrics := CalculateComprehensiveMetrics(state)

	cost, source := resolveDirectLabor(metrics, state)
	assert.Equal(t, LaborSourceBreakdown, source)
	// Flat rate prices all 50 minutes: 20/unit, 10 units.
	assert.InDelta(t, 200, cost, 1e-9)
}

// TestCalculatePL_MarketingBelowTheLine tests that marketing spend is an
// operating expense, not part of COGS.
func TestCalculatePL_MarketingBelowTheLine(t *testing.T) {
	state := plState()
	state.Marketing = model.MarketingState{Channels: []model.MarketingChannel{
		{Name: "ads", MonthlySpend: 100, UnitsPerMonth: 10, IsActive: true},
	}}

	metrics := CalculateComprehensiveMetrics(state)
	pl := CalculatePL(metrics, state, nil)

	assert.InDelta(t, 100, pl.MarketingCost, 1e-9)
	assert.InDelta(t, 300, pl.COGS, 1e-9, "CAC must not leak into COGS")
}

// TestCalculatePL_IndirectLabor tests that business-task labor lands in
// operating expenses via either labor path.
func TestCalculatePL_IndirectLabor(t *testing.T) {
	state := plState()
	state.BusinessTasks = []model.BusinessTask{{ID: "books", HoursPerWeek: 2}}

	// Flat-rate path.
	metrics := CalculateComprehensiveMetrics(state)
	pl := CalculatePL(metrics, state, nil)
	assert.InDelta(t, 2*4.33*24, pl.IndirectLaborCost, 1e-9)

	// Worker-model path.
	state.Workers = []model.Worker{{ID: "owner", HourlyRate: 40}}
	metrics = CalculateComprehensiveMetrics(state)
	pl = CalculatePL(metrics, state, nil)
	assert.InDelta(t, 2*4.33*40, pl.IndirectLaborCost, 1e-9)
}
