package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerbooks/makerbooks/internal/model"
)

func workerState() model.CalculatorState {
	return model.CalculatorState{
		HourlyRate: 15,
		Workers: []model.Worker{
			{ID: "owner", Name: "Sam", HourlyRate: 30},
			{ID: "helper", Name: "Riley", HourlyRate: 20},
		},
		ProductAssignments: model.ProductAssignments{"coasters": "helper"},
	}
}

// TestLaborAllocator_FlatRateFallback tests that without a worker model
// all product minutes, machine time included, are priced at the global
// rate.
func TestLaborAllocator_FlatRateFallback(t *testing.T) {
	alloc := newLaborAllocator(model.CalculatorState{HourlyRate: 20})
	p := model.Product{
		ID: "signs",
		TimeBreakdown: model.TimeBreakdown{
			Design: 10, Setup: 20, Machine: 30, Finishing: 20, Packaging: 10,
		},
	}

	// 90 minutes at 20/hr.
	assert.InDelta(t, 30, alloc.productLaborPerUnit(p), 1e-9)
}

// TestLaborAllocator_WorkerModelExcludesMachineTime tests that with a
// worker model only hands-on minutes are priced.
func TestLaborAllocator_WorkerModelExcludesMachineTime(t *testing.T) {
	alloc := newLaborAllocator(workerState())
	p := model.Product{
		ID: "coasters",
		TimeBreakdown: model.TimeBreakdown{
			Design: 5, Setup: 10, Machine: 120, Finishing: 15, Packaging: 0,
		},
	}

	// 30 hands-on minutes at the helper's 20/hr; the 120 machine
	// minutes cost nothing.
	assert.InDelta(t, 10, alloc.productLaborPerUnit(p), 1e-9)
}

// TestLaborAllocator_DefaultsToOwner tests assignment resolution:
// unassigned products and unknown worker IDs both fall back to the owner.
func TestLaborAllocator_DefaultsToOwner(t *testing.T) {
	state := workerState()
	state.ProductAssignments["ornaments"] = "ghost-worker"
	alloc := newLaborAllocator(state)

	p := model.Product{ID: "unassigned", TimeBreakdown: model.TimeBreakdown{Setup: 60}}
	assert.InDelta(t, 30, alloc.productLaborPerUnit(p), 1e-9)

	p.ID = "ornaments"
	assert.InDelta(t, 30, alloc.productLaborPerUnit(p), 1e-9)
}

// TestLaborAllocator_TaskLaborMonthly tests the weekly-to-monthly
// conversion for recurring business tasks.
func TestLaborAllocator_TaskLaborMonthly(t *testing.T) {
	alloc := newLaborAllocator(workerState())

	owner := model.BusinessTask{ID: "books", HoursPerWeek: 2, AssignedWorkerID: "owner"}
	assert.InDelta(t, 2*4.33*30, alloc.taskLaborMonthly(owner), 1e-9)

	// Empty assignment defaults to the owner.
	unassigned := model.BusinessTask{ID: "photos", HoursPerWeek: 1}
	assert.InDelta(t, 4.33*30, alloc.taskLaborMonthly(unassigned), 1e-9)
}

// TestLaborAllocator_Totals tests the pre-aggregated monthly picture and
// that it only exists under a worker model.
func TestLaborAllocator_Totals(t *testing.T) {
	state := workerState()
	state.Products = []model.Product{
		{
			ID:           "coasters",
			MonthlyUnits: 10,
			TimeBreakdown: model.TimeBreakdown{Setup: 30, Machine: 60},
		},
	}
	state.BusinessTasks = []model.BusinessTask{
		{ID: "books", HoursPerWeek: 2, AssignedWorkerID: "owner"},
	}

	totals := newLaborAllocator(state).totals(state)
	require.NotNil(t, totals)
	// 30 hands-on minutes at helper 20/hr = 10 per unit, 10 units.
	assert.InDelta(t, 100, totals.DirectCost, 1e-9)
	assert.InDelta(t, 2*4.33*30, totals.IndirectCost, 1e-9)

	flat := model.CalculatorState{HourlyRate: 20, Products: state.Products}
	assert.Nil(t, newLaborAllocator(flat).totals(flat))
}

// TestLaborAllocator_IndirectWithFlatRate tests that task labor still
// prices under the flat-rate fallback.
func TestLaborAllocator_IndirectWithFlatRate(t *testing.T) {
	alloc := newLaborAllocator(model.CalculatorState{HourlyRate: 25})
	tasks := []model.BusinessTask{
		{ID: "books", HoursPerWeek: 2},
		{ID: "listings", HoursPerWeek: 1},
	}

	assert.InDelta(t, 3*4.33*25, alloc.indirectLaborMonthly(tasks), 1e-9)
}
