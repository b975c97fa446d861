package engine

import "github.com/makerbooks/makerbooks/internal/model"

// MarketingMetrics is the blended view of all active marketing channels.
type MarketingMetrics struct {
	TotalMonthlySpend float64 `json:"totalMonthlySpend"`
	TotalPaidUnits    float64 `json:"totalPaidUnits"`
	OrganicUnits      float64 `json:"organicUnits"`

	// AverageCAC is spend divided by paid-channel units only.
	AverageCAC float64 `json:"averageCAC"`

	// BlendedCAC amortizes spend across every unit sold, organic
	// included. This is the figure the unit-economics layer charges to
	// each product: marketing buys attention for the whole catalog, so
	// its cost is spread over the whole catalog's volume.
	BlendedCAC float64 `json:"blendedCAC"`

	// EstimatedROIPercent and CostPerChannel are display-only.
	EstimatedROIPercent float64            `json:"estimatedROIPercent"`
	CostPerChannel      map[string]float64 `json:"costPerChannel,omitempty"`
}

// BlendMarketing aggregates the active channels of either MarketingState
// shape into a blended customer-acquisition cost.
//
// avgRevenuePerUnit feeds only the display-only ROI estimate; pass 0 when
// it is unknown and the estimate reports 0.
func BlendMarketing(m model.MarketingState, avgRevenuePerUnit float64) MarketingMetrics {
	channels := m.ActiveChannels()

	metrics := MarketingMetrics{
		OrganicUnits: m.OrganicUnitsPerMonth,
	}
	if len(channels) > 0 {
		metrics.CostPerChannel = make(map[string]float64, len(channels))
	}

	for _, ch := range channels {
		metrics.TotalMonthlySpend += ch.MonthlySpend
		metrics.TotalPaidUnits += ch.UnitsPerMonth

		var perUnit float64
		if ch.UnitsPerMonth > 0 {
			perUnit = ch.MonthlySpend / ch.UnitsPerMonth
		}
		metrics.CostPerChannel[channelKey(ch)] = perUnit
	}

	if metrics.TotalPaidUnits > 0 {
		metrics.AverageCAC = metrics.TotalMonthlySpend / metrics.TotalPaidUnits
	}
	if allUnits := metrics.TotalPaidUnits + metrics.OrganicUnits; allUnits > 0 {
		metrics.BlendedCAC = metrics.TotalMonthlySpend / allUnits
	}
	if metrics.TotalMonthlySpend > 0 && avgRevenuePerUnit > 0 {
		paidRevenue := metrics.TotalPaidUnits * avgRevenuePerUnit
		metrics.EstimatedROIPercent = (paidRevenue - metrics.TotalMonthlySpend) / metrics.TotalMonthlySpend * 100
	}

	return metrics
}

// channelKey prefers the channel's stable ID, falling back to its name.
func channelKey(ch model.MarketingChannel) string {
	if ch.ID != "" {
		return ch.ID
	}
	return ch.Name
}
