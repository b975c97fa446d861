package engine

import (
	"sort"

	"github.com/makerbooks/makerbooks/internal/model"
)

// DirectLaborSource identifies which tier of the direct-labor fallback
// chain priced COGS labor in a waterfall.
type DirectLaborSource string

const (
	// LaborSourceAggregated means the pre-aggregated labor totals from
	// the worker model were used.
	LaborSourceAggregated DirectLaborSource = "aggregated"

	// LaborSourceAssignments means direct labor was recomputed from
	// product assignments and worker rates.
	LaborSourceAssignments DirectLaborSource = "assignments"

	// LaborSourceBreakdown means direct labor was summed from each
	// product's legacy costBreakdown labor field.
	LaborSourceBreakdown DirectLaborSource = "costBreakdown"
)

// PLCalculation restates the aggregate metrics as a formal profit-and-loss
// waterfall: revenue, cost of goods sold, operating expenses, a tax
// reserve floored at zero, and net profit.
type PLCalculation struct {
	Revenue float64 `json:"revenue"`

	MaterialsCost    float64 `json:"materialsCost"`
	DirectLaborCost  float64 `json:"directLaborCost"`
	PlatformFeesCost float64 `json:"platformFeesCost"`
	COGS             float64 `json:"cogs"`

	GrossProfit float64 `json:"grossProfit"`

	IndirectLaborCost float64 `json:"indirectLaborCost"`
	MarketingCost     float64 `json:"marketingCost"`
	PhysicalCosts     float64 `json:"physicalCosts"`
	SoftwareCosts     float64 `json:"softwareCosts"`
	SavingsAmount     float64 `json:"savingsAmount"`

	PreTaxProfit float64 `json:"preTaxProfit"`
	TaxRate      float64 `json:"taxRate"`
	TaxAmount    float64 `json:"taxAmount"`

	TotalOperatingExpenses float64 `json:"totalOperatingExpenses"`
	NetProfit              float64 `json:"netProfit"`

	// DirectLaborSource records which fallback tier priced direct labor.
	DirectLaborSource DirectLaborSource `json:"directLaborSource"`
}

// directLaborResolver is one tier of the fallback chain. It reports the
// direct labor cost and whether this tier had enough data to answer.
type directLaborResolver struct {
	source  DirectLaborSource
	resolve func(metrics CalculatedMetrics, state model.CalculatorState) (float64, bool)
}

// directLaborChain is the ordered fallback chain for pricing COGS labor.
// Richer sources come first; the legacy per-product breakdown always
// answers, so the chain never falls through entirely.
var directLaborChain = []directLaborResolver{
	{
		source: LaborSourceAggregated,
		resolve: func(metrics CalculatedMetrics, _ model.CalculatorState) (float64, bool) {
			if metrics.Labor == nil {
				return 0, false
			}
			return metrics.Labor.DirectCost, true
		},
	},
	{
		source: LaborSourceAssignments,
		resolve: func(_ CalculatedMetrics, state model.CalculatorState) (float64, bool) {
			if !state.HasWorkerModel() {
				return 0, false
			}
			alloc := newLaborAllocator(state)
			var total float64
			for _, p := range state.Products {
				total += alloc.productLaborPerUnit(p) * float64(p.MonthlyUnits)
			}
			return total, true
		},
	},
	{
		source: LaborSourceBreakdown,
		resolve: func(metrics CalculatedMetrics, _ model.CalculatorState) (float64, bool) {
			var total float64
			for _, id := range sortedIDs(metrics.Products) {
				total += metrics.Products[id].Revenue.CostBreakdown.Labor
			}
			return total, true
		},
	},
}

// resolveDirectLabor walks the fallback chain in order and returns the
// first tier that answers.
func resolveDirectLabor(metrics CalculatedMetrics, state model.CalculatorState) (float64, DirectLaborSource) {
	for _, tier := range directLaborChain {
		if cost, ok := tier.resolve(metrics, state); ok {
			return cost, tier.source
		}
	}
	// Unreachable: the breakdown tier always answers.
	return 0, LaborSourceBreakdown
}

// CalculatePL computes the profit-and-loss waterfall from previously
// computed comprehensive metrics.
//
// expenses overrides the state's own BusinessExpenses when non-nil; when
// both are absent the waterfall runs with a zero overhead model rather
// than failing. The tax reserve is floored at zero: a pre-tax loss
// reserves nothing, it never refunds.
func CalculatePL(metrics CalculatedMetrics, state model.CalculatorState, expenses *model.BusinessExpenses) PLCalculation {
	state, _ = state.Normalized()

	if expenses == nil {
		expenses = state.BusinessExpenses
	}
	if expenses == nil {
		expenses = &model.BusinessExpenses{}
	}

	pl := PLCalculation{
		Revenue:     metrics.TotalMonthlyRevenue,
		GrossProfit: metrics.TotalGrossProfit,
	}

	// COGS is recomputed from the per-product cost breakdowns rather
	// than taken from TotalMonthlyCosts, which also carries amortized
	// marketing. Marketing belongs below the gross profit line.
	// Products are summed in ID order: float addition is not
	// associative, and map order must not leak into the result.
	for _, id := range sortedIDs(metrics.Products) {
		breakdown := metrics.Products[id].Revenue.CostBreakdown
		pl.MaterialsCost += breakdown.MaterialsTotal()
		pl.PlatformFeesCost += breakdown.PlatformFees
	}
	pl.DirectLaborCost, pl.DirectLaborSource = resolveDirectLabor(metrics, state)
	pl.COGS = pl.MaterialsCost + pl.DirectLaborCost + pl.PlatformFeesCost

	pl.IndirectLaborCost = indirectLaborCost(metrics, state)
	pl.MarketingCost = metrics.Marketing.TotalMonthlySpend
	pl.PhysicalCosts = expenses.PhysicalCosts.Total()
	pl.SoftwareCosts = expenses.SoftwareCosts.Total()
	pl.SavingsAmount = pl.Revenue * expenses.Savings.Rate / 100

	operatingBeforeTax := pl.IndirectLaborCost + pl.MarketingCost + pl.PhysicalCosts + pl.SoftwareCosts + pl.SavingsAmount

	pl.PreTaxProfit = pl.GrossProfit - operatingBeforeTax
	pl.TaxRate = expenses.TaxReserve.TotalRate()
	if pl.PreTaxProfit > 0 {
		pl.TaxAmount = pl.PreTaxProfit * pl.TaxRate / 100
	}

	pl.TotalOperatingExpenses = operatingBeforeTax + pl.TaxAmount
	pl.NetProfit = pl.GrossProfit - pl.TotalOperatingExpenses
	return pl
}

// sortedIDs returns the product report keys in ascending order.
func sortedIDs(products map[string]ProductReport) []string {
	ids := make([]string, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// indirectLaborCost prefers the pre-aggregated indirect total, falling
// back to pricing the state's business tasks directly.
func indirectLaborCost(metrics CalculatedMetrics, state model.CalculatorState) float64 {
	if metrics.Labor != nil {
		return metrics.Labor.IndirectCost
	}
	return newLaborAllocator(state).indirectLaborMonthly(state.BusinessTasks)
}
