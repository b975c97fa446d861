package model

import "fmt"

// Issue records one correction applied while normalizing a state. Issues
// are diagnostics, not errors: the normalized state is always usable.
type Issue struct {
	// Field is a dotted path into the state, e.g.
	// "products[0].costs.materials".
	Field string

	// Original is the value the caller supplied.
	Original float64

	// Message explains the correction.
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (was %v)", i.Field, i.Message, i.Original)
}

// Normalized returns a deep copy of the state with every negative currency,
// unit, time, or percentage input clamped to zero, plus the list of clamps
// applied.
//
// Negative inputs have no business meaning here (a negative material cost
// is a typo, not a subsidy). Clamping once at the boundary, rather than in
// every consumer, means downstream arithmetic can trust its inputs; the
// clamps are reported so a validation surface can show the user what was
// corrected.
func (s CalculatorState) Normalized() (CalculatorState, []Issue) {
	out := s.clone()
	var issues []Issue

	clamp := func(field string, v *float64) {
		if *v < 0 {
			issues = append(issues, Issue{Field: field, Original: *v, Message: "negative value clamped to 0"})
			*v = 0
		}
	}

	clamp("monthlyGoal", &out.MonthlyGoal)
	clamp("hourlyRate", &out.HourlyRate)

	for i := range out.Products {
		p := &out.Products[i]
		prefix := fmt.Sprintf("products[%d]", i)
		clamp(prefix+".sellingPrice", &p.SellingPrice)
		if p.MonthlyUnits < 0 {
			issues = append(issues, Issue{Field: prefix + ".monthlyUnits", Original: float64(p.MonthlyUnits), Message: "negative value clamped to 0"})
			p.MonthlyUnits = 0
		}
		clamp(prefix+".costs.materials", &p.Costs.Materials)
		clamp(prefix+".costs.finishing", &p.Costs.Finishing)
		clamp(prefix+".costs.packaging", &p.Costs.Packaging)
		clamp(prefix+".costs.shipping", &p.Costs.Shipping)
		clamp(prefix+".costs.other", &p.Costs.Other)
		clamp(prefix+".timeBreakdown.design", &p.TimeBreakdown.Design)
		clamp(prefix+".timeBreakdown.setup", &p.TimeBreakdown.Setup)
		clamp(prefix+".timeBreakdown.machine", &p.TimeBreakdown.Machine)
		clamp(prefix+".timeBreakdown.finishing", &p.TimeBreakdown.Finishing)
		clamp(prefix+".timeBreakdown.packaging", &p.TimeBreakdown.Packaging)
		for j := range p.PlatformFees {
			fee := &p.PlatformFees[j]
			feePrefix := fmt.Sprintf("%s.platformFees[%d]", prefix, j)
			clamp(feePrefix+".feePercentage", &fee.FeePercentage)
			clamp(feePrefix+".salesPercentage", &fee.SalesPercentage)
		}
	}

	clampChannels := func(prefix string, channels []MarketingChannel) {
		for i := range channels {
			ch := &channels[i]
			chPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			clamp(chPrefix+".monthlySpend", &ch.MonthlySpend)
			clamp(chPrefix+".unitsPerMonth", &ch.UnitsPerMonth)
		}
	}
	clampChannels("marketing.channels", out.Marketing.Channels)
	if out.Marketing.DigitalAdvertising != nil {
		clampChannels("marketing.digitalAdvertising.channels", out.Marketing.DigitalAdvertising.Channels)
	}
	if out.Marketing.EventsAndShows != nil {
		clampChannels("marketing.eventsAndShows.channels", out.Marketing.EventsAndShows.Channels)
	}
	clamp("marketing.organicUnitsPerMonth", &out.Marketing.OrganicUnitsPerMonth)

	for i := range out.Workers {
		clamp(fmt.Sprintf("workers[%d].hourlyRate", i), &out.Workers[i].HourlyRate)
	}
	for i := range out.BusinessTasks {
		task := &out.BusinessTasks[i]
		clamp(fmt.Sprintf("businessTasks[%d].hoursPerWeek", i), &task.HoursPerWeek)
		if task.AssignedWorkerID == "" {
			task.AssignedWorkerID = OwnerWorkerID
		}
	}

	for i := range out.SelectedCosts {
		prefix := fmt.Sprintf("selectedCosts[%d]", i)
		clamp(prefix+".percentage", &out.SelectedCosts[i].Percentage)
		clamp(prefix+".value", &out.SelectedCosts[i].Value)
	}

	if out.BusinessExpenses != nil {
		exp := out.BusinessExpenses
		clamp("businessExpenses.taxReserve.selfEmploymentRate", &exp.TaxReserve.SelfEmploymentRate)
		clamp("businessExpenses.taxReserve.federalRate", &exp.TaxReserve.FederalRate)
		clamp("businessExpenses.taxReserve.stateRate", &exp.TaxReserve.StateRate)
		clamp("businessExpenses.savings.rate", &exp.Savings.Rate)
		for i := range exp.PhysicalCosts.Items {
			clamp(fmt.Sprintf("businessExpenses.physicalCosts.items[%d].monthlyCost", i), &exp.PhysicalCosts.Items[i].MonthlyCost)
		}
		for i := range exp.SoftwareCosts.Items {
			clamp(fmt.Sprintf("businessExpenses.softwareCosts.items[%d].monthlyCost", i), &exp.SoftwareCosts.Items[i].MonthlyCost)
		}
	}

	return out, issues
}

// clone deep-copies the state so normalization never aliases caller memory.
func (s CalculatorState) clone() CalculatorState {
	out := s

	out.Products = append([]Product(nil), s.Products...)
	for i := range out.Products {
		out.Products[i].PlatformFees = append([]PlatformFee(nil), s.Products[i].PlatformFees...)
	}

	out.Marketing.Channels = append([]MarketingChannel(nil), s.Marketing.Channels...)
	if s.Marketing.DigitalAdvertising != nil {
		bucket := MarketingBucket{Channels: append([]MarketingChannel(nil), s.Marketing.DigitalAdvertising.Channels...)}
		out.Marketing.DigitalAdvertising = &bucket
	}
	if s.Marketing.EventsAndShows != nil {
		bucket := MarketingBucket{Channels: append([]MarketingChannel(nil), s.Marketing.EventsAndShows.Channels...)}
		out.Marketing.EventsAndShows = &bucket
	}

	out.Workers = append([]Worker(nil), s.Workers...)
	out.BusinessTasks = append([]BusinessTask(nil), s.BusinessTasks...)
	out.SelectedCosts = append([]BusinessCost(nil), s.SelectedCosts...)

	if s.ProductAssignments != nil {
		out.ProductAssignments = make(ProductAssignments, len(s.ProductAssignments))
		for k, v := range s.ProductAssignments {
			out.ProductAssignments[k] = v
		}
	}

	if s.BusinessExpenses != nil {
		exp := *s.BusinessExpenses
		exp.PhysicalCosts.Items = append([]CostItem(nil), s.BusinessExpenses.PhysicalCosts.Items...)
		exp.SoftwareCosts.Items = append([]CostItem(nil), s.BusinessExpenses.SoftwareCosts.Items...)
		out.BusinessExpenses = &exp
	}

	return out
}
