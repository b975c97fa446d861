package model

// OwnerWorkerID is the identity of the default worker. Every state is
// assumed to contain an owner: product assignments and business tasks that
// name no worker resolve to this ID.
const OwnerWorkerID = "owner"

// ProductCosts holds the per-unit currency cost of producing one item,
// split by component. Absent components are zero.
type ProductCosts struct {
	Materials float64 `json:"materials,omitempty" yaml:"materials,omitempty"`
	Finishing float64 `json:"finishing,omitempty" yaml:"finishing,omitempty"`
	Packaging float64 `json:"packaging,omitempty" yaml:"packaging,omitempty"`
	Shipping  float64 `json:"shipping,omitempty" yaml:"shipping,omitempty"`
	Other     float64 `json:"other,omitempty" yaml:"other,omitempty"`
}

// Total returns the summed per-unit material cost across all components.
func (c ProductCosts) Total() float64 {
	return c.Materials + c.Finishing + c.Packaging + c.Shipping + c.Other
}

// TimeBreakdown holds the per-unit production time in minutes, split by
// production stage. Machine minutes are unattended runtime; the remaining
// stages are hands-on labor.
type TimeBreakdown struct {
	Design    float64 `json:"design,omitempty" yaml:"design,omitempty"`
	Setup     float64 `json:"setup,omitempty" yaml:"setup,omitempty"`
	Machine   float64 `json:"machine,omitempty" yaml:"machine,omitempty"`
	Finishing float64 `json:"finishing,omitempty" yaml:"finishing,omitempty"`
	Packaging float64 `json:"packaging,omitempty" yaml:"packaging,omitempty"`
}

// TotalMinutes returns all per-unit minutes including machine runtime.
func (t TimeBreakdown) TotalMinutes() float64 {
	return t.Design + t.Setup + t.Machine + t.Finishing + t.Packaging
}

// HandsOnMinutes returns the per-unit minutes a person must spend on the
// item. Machine runtime is excluded: the machine works alone.
func (t TimeBreakdown) HandsOnMinutes() float64 {
	return t.Design + t.Setup + t.Finishing + t.Packaging
}

// PlatformFee describes one sales channel for a product: the marketplace's
// percentage cut and the share of the product's unit volume sold there.
//
// SalesPercentage values across a product's fee list need not sum to 100;
// the engine rescales them before blending.
type PlatformFee struct {
	Name            string  `json:"name" yaml:"name"`
	FeePercentage   float64 `json:"feePercentage" yaml:"feePercentage"`
	SalesPercentage float64 `json:"salesPercentage" yaml:"salesPercentage"`
}

// Product is one sellable item in the business model.
type Product struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
	SellingPrice float64       `json:"sellingPrice" yaml:"sellingPrice"`
	MonthlyUnits int           `json:"monthlyUnits" yaml:"monthlyUnits"`
	Costs        ProductCosts  `json:"costs,omitempty" yaml:"costs,omitempty"`
	TimeBreakdown TimeBreakdown `json:"timeBreakdown,omitempty" yaml:"timeBreakdown,omitempty"`
	PlatformFees []PlatformFee `json:"platformFees,omitempty" yaml:"platformFees,omitempty"`
}

// Worker is someone who can be assigned product or task labor.
type Worker struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	HourlyRate float64 `json:"hourlyRate" yaml:"hourlyRate"`
}

// BusinessTask is a recurring obligation (bookkeeping, photography, listing
// upkeep) that consumes hours every week regardless of unit volume. Task
// labor is always indirect: it never enters cost of goods sold.
type BusinessTask struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name,omitempty" yaml:"name,omitempty"`
	HoursPerWeek     float64 `json:"hoursPerWeek" yaml:"hoursPerWeek"`
	AssignedWorkerID string  `json:"assignedWorkerId,omitempty" yaml:"assignedWorkerId,omitempty"`
}

// ProductAssignments maps a product ID to the worker responsible for its
// labor. Products without an entry belong to the owner.
type ProductAssignments map[string]string

// TaxReserve is the set of percentage rates reserved against pre-tax profit.
type TaxReserve struct {
	SelfEmploymentRate float64 `json:"selfEmploymentRate,omitempty" yaml:"selfEmploymentRate,omitempty"`
	FederalRate        float64 `json:"federalRate,omitempty" yaml:"federalRate,omitempty"`
	StateRate          float64 `json:"stateRate,omitempty" yaml:"stateRate,omitempty"`
}

// TotalRate returns the blended reserve percentage.
func (t TaxReserve) TotalRate() float64 {
	return t.SelfEmploymentRate + t.FederalRate + t.StateRate
}

// CostItem is a named fixed monthly expense (rent, insurance, a software
// subscription).
type CostItem struct {
	Name        string  `json:"name" yaml:"name"`
	MonthlyCost float64 `json:"monthlyCost" yaml:"monthlyCost"`
}

// ItemizedCosts is a list of fixed monthly expenses of one kind.
type ItemizedCosts struct {
	Items []CostItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// Total returns the summed monthly amount of all items.
func (c ItemizedCosts) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.MonthlyCost
	}
	return total
}

// SavingsGoal is a percentage of revenue set aside each month.
type SavingsGoal struct {
	Rate float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
}

// BusinessExpenses is the rich overhead model used by the profit-and-loss
// waterfall: a tax reserve, itemized physical and software costs, and a
// savings rate.
type BusinessExpenses struct {
	TaxReserve    TaxReserve    `json:"taxReserve,omitempty" yaml:"taxReserve,omitempty"`
	PhysicalCosts ItemizedCosts `json:"physicalCosts,omitempty" yaml:"physicalCosts,omitempty"`
	SoftwareCosts ItemizedCosts `json:"softwareCosts,omitempty" yaml:"softwareCosts,omitempty"`
	Savings       SavingsGoal   `json:"savings,omitempty" yaml:"savings,omitempty"`
}

// BusinessCost is the legacy flat overhead entry. A cost applies either a
// percentage (of revenue, or of gross profit for the "taxes" category) or a
// fixed monthly amount, never both.
type BusinessCost struct {
	ID         string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Category   string  `json:"category,omitempty" yaml:"category,omitempty"`
	Percentage float64 `json:"percentage,omitempty" yaml:"percentage,omitempty"`
	Value      float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

// CostCategoryTaxes marks a legacy BusinessCost whose percentage applies to
// gross profit instead of revenue.
const CostCategoryTaxes = "taxes"

// CalculatorState is the aggregate root the engine computes over: one
// immutable snapshot of the user's description of their business. The
// engine never mutates a state; every calculation allocates fresh output.
type CalculatorState struct {
	MonthlyGoal float64   `json:"monthlyGoal,omitempty" yaml:"monthlyGoal,omitempty"`
	Products    []Product `json:"products,omitempty" yaml:"products,omitempty"`

	// HourlyRate is the fallback labor rate applied uniformly to all
	// product time when no Workers are supplied.
	HourlyRate float64 `json:"hourlyRate,omitempty" yaml:"hourlyRate,omitempty"`

	Marketing     MarketingState `json:"marketing,omitempty" yaml:"marketing,omitempty"`
	SelectedCosts []BusinessCost `json:"selectedCosts,omitempty" yaml:"selectedCosts,omitempty"`
	BusinessMode  string         `json:"businessMode,omitempty" yaml:"businessMode,omitempty"`

	Workers            []Worker           `json:"workers,omitempty" yaml:"workers,omitempty"`
	BusinessTasks      []BusinessTask     `json:"businessTasks,omitempty" yaml:"businessTasks,omitempty"`
	ProductAssignments ProductAssignments `json:"productAssignments,omitempty" yaml:"productAssignments,omitempty"`

	BusinessExpenses *BusinessExpenses `json:"businessExpenses,omitempty" yaml:"businessExpenses,omitempty"`
}

// WorkerByID returns the worker with the given ID and whether it exists.
func (s CalculatorState) WorkerByID(id string) (Worker, bool) {
	for _, w := range s.Workers {
		if w.ID == id {
			return w, true
		}
	}
	return Worker{}, false
}

// HasWorkerModel reports whether the state carries per-worker labor data.
// Without it, labor is priced at the flat global HourlyRate.
func (s CalculatorState) HasWorkerModel() bool {
	return len(s.Workers) > 0
}
