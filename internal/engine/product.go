package engine

import "github.com/makerbooks/makerbooks/internal/model"

// ProductMetrics is the per-unit economic snapshot of one product, before
// marketing spend is amortized in.
type ProductMetrics struct {
	TotalTimeMinutes float64 `json:"totalTimeMinutes"`
	TotalTimeHours   float64 `json:"totalTimeHours"`
	TotalCosts       float64 `json:"totalCosts"`
	LaborCosts       float64 `json:"laborCosts"`
	PlatformFees     float64 `json:"platformFees"`
	GrossProfit      float64 `json:"grossProfit"`
	ProfitMargin     float64 `json:"profitMargin"`
	HourlyRate       float64 `json:"hourlyRate"`
}

// CostBreakdown retains each cost component's monthly total for the
// profit-and-loss stage.
type CostBreakdown struct {
	Materials    float64 `json:"materials"`
	Finishing    float64 `json:"finishing"`
	Packaging    float64 `json:"packaging"`
	Shipping     float64 `json:"shipping"`
	Other        float64 `json:"other"`
	Labor        float64 `json:"labor"`
	PlatformFees float64 `json:"platformFees"`
	Marketing    float64 `json:"marketing"`
}

// MaterialsTotal sums the five physical cost components.
func (b CostBreakdown) MaterialsTotal() float64 {
	return b.Materials + b.Finishing + b.Packaging + b.Shipping + b.Other
}

// ProductRevenue is one product's monthly roll-up: per-unit economics
// multiplied out by monthly volume, marketing included.
type ProductRevenue struct {
	MonthlyRevenue     float64       `json:"monthlyRevenue"`
	MonthlyCosts       float64       `json:"monthlyCosts"`
	MonthlyGrossProfit float64       `json:"monthlyGrossProfit"`
	MonthlyTimeHours   float64       `json:"monthlyTimeHours"`
	CostBreakdown      CostBreakdown `json:"costBreakdown"`
}

// unitEconomics computes everything knowable about a single unit of a
// product: time, component costs, and profit. marketingCostPerUnit is the
// business-wide blended CAC, the same value for every product, because
// marketing spend is amortized across the whole catalog rather than
// attributed per product.
type unitEconomics struct {
	totalTimeMinutes float64
	totalTimeHours   float64
	materialCost     float64
	laborCost        float64
	platformFee      float64
	marketingCost    float64
	totalCost        float64
	grossProfit      float64
	profitMargin     float64
	hourlyRate       float64
	feeBlend         FeeBlend
}

func computeUnitEconomics(p model.Product, alloc laborAllocator, marketingCostPerUnit float64) unitEconomics {
	u := unitEconomics{
		totalTimeMinutes: p.TimeBreakdown.TotalMinutes(),
		materialCost:     p.Costs.Total(),
		laborCost:        alloc.productLaborPerUnit(p),
		marketingCost:    marketingCostPerUnit,
		feeBlend:         BlendPlatformFees(p.PlatformFees, p.SellingPrice, p.MonthlyUnits),
	}
	u.totalTimeHours = u.totalTimeMinutes / 60
	u.platformFee = u.feeBlend.FeePerUnit
	u.totalCost = u.materialCost + u.laborCost + u.platformFee + u.marketingCost
	u.grossProfit = p.SellingPrice - u.totalCost
	if p.SellingPrice > 0 {
		u.profitMargin = u.grossProfit / p.SellingPrice
	}
	if u.totalTimeHours > 0 {
		u.hourlyRate = u.grossProfit / u.totalTimeHours
	}
	return u
}

// CalculateProductMetrics computes a product's per-unit economics at a
// flat labor rate. Marketing cost is not included here: this is the quick
// per-product view the caller shows while a product is being edited,
// before any business-wide context exists.
//
// Zero-valued inputs degrade rather than fail: a zero selling price yields
// a zero margin and zero time yields a zero hourly rate, never NaN or Inf.
func CalculateProductMetrics(p model.Product, globalHourlyRate float64) ProductMetrics {
	alloc := laborAllocator{globalRate: globalHourlyRate}
	u := computeUnitEconomics(p, alloc, 0)
	return ProductMetrics{
		TotalTimeMinutes: u.totalTimeMinutes,
		TotalTimeHours:   u.totalTimeHours,
		TotalCosts:       u.totalCost,
		LaborCosts:       u.laborCost,
		PlatformFees:     u.platformFee,
		GrossProfit:      u.grossProfit,
		ProfitMargin:     u.profitMargin,
		HourlyRate:       u.hourlyRate,
	}
}

// CalculateProductRevenue rolls a product's per-unit economics up to
// monthly figures at a flat labor rate, charging the supplied blended CAC
// against every unit.
func CalculateProductRevenue(p model.Product, globalHourlyRate, blendedCAC float64) ProductRevenue {
	alloc := laborAllocator{globalRate: globalHourlyRate}
	return monthlyRevenue(p, computeUnitEconomics(p, alloc, blendedCAC))
}

// monthlyRevenue multiplies per-unit economics out by monthly volume.
func monthlyRevenue(p model.Product, u unitEconomics) ProductRevenue {
	units := float64(p.MonthlyUnits)
	return ProductRevenue{
		MonthlyRevenue:     p.SellingPrice * units,
		MonthlyCosts:       u.totalCost * units,
		MonthlyGrossProfit: (p.SellingPrice - u.totalCost) * units,
		MonthlyTimeHours:   u.totalTimeHours * units,
		CostBreakdown: CostBreakdown{
			Materials:    p.Costs.Materials * units,
			Finishing:    p.Costs.Finishing * units,
			Packaging:    p.Costs.Packaging * units,
			Shipping:     p.Costs.Shipping * units,
			Other:        p.Costs.Other * units,
			Labor:        u.laborCost * units,
			PlatformFees: u.platformFee * units,
			Marketing:    u.marketingCost * units,
		},
	}
}
