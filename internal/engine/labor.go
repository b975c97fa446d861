package engine

import "github.com/makerbooks/makerbooks/internal/model"

// WeeksPerMonth converts recurring weekly hours to monthly hours.
// 52 weeks / 12 months.
const WeeksPerMonth = 4.33

// LaborTotals is the pre-aggregated monthly labor picture produced when a
// state carries a worker model. Direct labor enters cost of goods sold;
// indirect labor enters operating expenses.
type LaborTotals struct {
	DirectCost   float64 `json:"directCost"`
	IndirectCost float64 `json:"indirectCost"`
}

// laborAllocator resolves which worker owns a product's or task's time and
// prices that time at the worker's rate.
//
// The direct/indirect split is structural, never identity-based: product
// minutes are direct labor whoever performs them, and business-task hours
// are indirect labor even when the owner does the books personally.
type laborAllocator struct {
	workers     map[string]model.Worker
	assignments model.ProductAssignments
	globalRate  float64
	hasWorkers  bool
}

func newLaborAllocator(state model.CalculatorState) laborAllocator {
	a := laborAllocator{
		assignments: state.ProductAssignments,
		globalRate:  state.HourlyRate,
		hasWorkers:  state.HasWorkerModel(),
	}
	if a.hasWorkers {
		a.workers = make(map[string]model.Worker, len(state.Workers))
		for _, w := range state.Workers {
			a.workers[w.ID] = w
		}
	}
	return a
}

// rateFor resolves an assigned worker ID to an hourly rate, defaulting to
// the owner when the assignment is empty or names an unknown worker.
func (a laborAllocator) rateFor(workerID string) float64 {
	if !a.hasWorkers {
		return a.globalRate
	}
	if workerID == "" {
		workerID = model.OwnerWorkerID
	}
	if w, ok := a.workers[workerID]; ok {
		return w.HourlyRate
	}
	if owner, ok := a.workers[model.OwnerWorkerID]; ok {
		return owner.HourlyRate
	}
	return a.globalRate
}

// productLaborPerUnit prices one unit's direct labor.
//
// With a worker model, only hands-on minutes count: the machine runs
// unattended, so nobody is paid for machine time. The flat-rate fallback
// predates that distinction and prices all product minutes uniformly.
func (a laborAllocator) productLaborPerUnit(p model.Product) float64 {
	if !a.hasWorkers {
		return p.TimeBreakdown.TotalMinutes() / 60 * a.globalRate
	}
	rate := a.rateFor(a.assignments[p.ID])
	return p.TimeBreakdown.HandsOnMinutes() / 60 * rate
}

// taskLaborMonthly prices one recurring task's monthly indirect labor.
func (a laborAllocator) taskLaborMonthly(t model.BusinessTask) float64 {
	return t.HoursPerWeek * WeeksPerMonth * a.rateFor(t.AssignedWorkerID)
}

// totals aggregates the monthly labor cost across all products and tasks.
// Returns nil when the state has no worker model: without one there is no
// pre-aggregated labor picture and downstream consumers fall back to
// per-product figures.
func (a laborAllocator) totals(state model.CalculatorState) *LaborTotals {
	if !a.hasWorkers {
		return nil
	}
	var totals LaborTotals
	for _, p := range state.Products {
		totals.DirectCost += a.productLaborPerUnit(p) * float64(p.MonthlyUnits)
	}
	for _, task := range state.BusinessTasks {
		totals.IndirectCost += a.taskLaborMonthly(task)
	}
	return &totals
}

// indirectLaborMonthly sums the monthly cost of all business tasks. Unlike
// totals, this works with or without a worker model (the flat rate prices
// task hours in the fallback path).
func (a laborAllocator) indirectLaborMonthly(tasks []model.BusinessTask) float64 {
	var total float64
	for _, task := range tasks {
		total += a.taskLaborMonthly(task)
	}
	return total
}
