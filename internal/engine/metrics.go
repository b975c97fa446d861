package engine

import "github.com/makerbooks/makerbooks/internal/model"

// ProductReport is one product's full entry in the comprehensive metrics:
// identity, per-unit economics, and monthly roll-ups. Unlike the
// standalone CalculateProductMetrics view, the per-unit figures here are
// worker-aware and carry the business-wide marketing cost per unit.
type ProductReport struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName,omitempty"`
	SellingPrice float64 `json:"sellingPrice"`
	MonthlyUnits int     `json:"monthlyUnits"`

	Metrics ProductMetrics `json:"metrics"`
	Revenue ProductRevenue `json:"revenue"`

	MarketingCostPerUnit float64 `json:"marketingCostPerUnit"`

	// FeeChannels is the display-only per-channel fee breakdown.
	FeeChannels []ChannelFee `json:"feeChannels,omitempty"`
}

// CalculatedMetrics is the engine's primary output: every product's
// report, the marketing blend, and business-wide monthly totals.
type CalculatedMetrics struct {
	Products  map[string]ProductReport `json:"products"`
	Marketing MarketingMetrics         `json:"marketing"`

	TotalMonthlyUnits   int     `json:"totalMonthlyUnits"`
	TotalMonthlyHours   float64 `json:"totalMonthlyHours"`
	TotalMonthlyRevenue float64 `json:"totalMonthlyRevenue"`
	TotalMonthlyCosts   float64 `json:"totalMonthlyCosts"`
	TotalGrossProfit    float64 `json:"totalGrossProfit"`

	// TotalBusinessCosts and TotalNetProfit are the legacy flat-overhead
	// picture. The profit-and-loss waterfall computes a richer one from
	// BusinessExpenses; the two are deliberately not reconciled.
	TotalBusinessCosts float64 `json:"totalBusinessCosts"`
	TotalNetProfit     float64 `json:"totalNetProfit"`

	AverageHourlyRate         float64 `json:"averageHourlyRate"`
	MonthlyGoal               float64 `json:"monthlyGoal"`
	GoalAchievementPercentage float64 `json:"goalAchievementPercentage"`

	// Labor is the pre-aggregated monthly labor picture, present only
	// when the state carries a worker model.
	Labor *LaborTotals `json:"labor,omitempty"`
}

// CalculateComprehensiveMetrics computes the complete business-wide metric
// set for one state snapshot.
//
// The input is normalized first (absent nested data zeroed, negative
// values clamped), so callers may pass raw deserialized state. The input
// is never mutated and repeated calls with an identical state produce
// bit-identical results.
func CalculateComprehensiveMetrics(state model.CalculatorState) CalculatedMetrics {
	state, _ = state.Normalized()
	alloc := newLaborAllocator(state)

	metrics := CalculatedMetrics{
		Products:    make(map[string]ProductReport, len(state.Products)),
		MonthlyGoal: state.MonthlyGoal,
	}

	// Revenue and unit totals do not depend on marketing, so they are
	// summed first to give the ROI estimate an average unit revenue.
	for _, p := range state.Products {
		metrics.TotalMonthlyUnits += p.MonthlyUnits
		metrics.TotalMonthlyRevenue += p.SellingPrice * float64(p.MonthlyUnits)
	}
	var avgRevenuePerUnit float64
	if metrics.TotalMonthlyUnits > 0 {
		avgRevenuePerUnit = metrics.TotalMonthlyRevenue / float64(metrics.TotalMonthlyUnits)
	}

	metrics.Marketing = BlendMarketing(state.Marketing, avgRevenuePerUnit)

	for _, p := range state.Products {
		u := computeUnitEconomics(p, alloc, metrics.Marketing.BlendedCAC)
		revenue := monthlyRevenue(p, u)

		metrics.Products[p.ID] = ProductReport{
			ProductID:            p.ID,
			ProductName:          p.Name,
			SellingPrice:         p.SellingPrice,
			MonthlyUnits:         p.MonthlyUnits,
			MarketingCostPerUnit: u.marketingCost,
			FeeChannels:          u.feeBlend.Channels,
			Metrics: ProductMetrics{
				TotalTimeMinutes: u.totalTimeMinutes,
				TotalTimeHours:   u.totalTimeHours,
				TotalCosts:       u.totalCost,
				LaborCosts:       u.laborCost,
				PlatformFees:     u.platformFee,
				GrossProfit:      u.grossProfit,
				ProfitMargin:     u.profitMargin,
				HourlyRate:       u.hourlyRate,
			},
			Revenue: revenue,
		}

		metrics.TotalMonthlyHours += revenue.MonthlyTimeHours
		metrics.TotalMonthlyCosts += revenue.MonthlyCosts
		metrics.TotalGrossProfit += revenue.MonthlyGrossProfit
	}

	metrics.TotalBusinessCosts = legacyOverhead(state.SelectedCosts, metrics.TotalMonthlyRevenue, metrics.TotalGrossProfit)
	metrics.TotalNetProfit = metrics.TotalGrossProfit - metrics.TotalBusinessCosts

	if metrics.TotalMonthlyHours > 0 {
		metrics.AverageHourlyRate = metrics.TotalGrossProfit / metrics.TotalMonthlyHours
	}
	if state.MonthlyGoal > 0 {
		metrics.GoalAchievementPercentage = metrics.TotalGrossProfit / state.MonthlyGoal * 100
	}

	metrics.Labor = alloc.totals(state)
	return metrics
}

// legacyOverhead prices the flat BusinessCost list. Percentage costs apply
// to revenue, except the "taxes" category which applies to gross profit;
// costs without a percentage add their fixed value.
func legacyOverhead(costs []model.BusinessCost, revenue, grossProfit float64) float64 {
	var total float64
	for _, cost := range costs {
		switch {
		case cost.Percentage > 0 && cost.Category == model.CostCategoryTaxes:
			total += grossProfit * cost.Percentage / 100
		case cost.Percentage > 0:
			total += revenue * cost.Percentage / 100
		default:
			total += cost.Value
		}
	}
	return total
}
