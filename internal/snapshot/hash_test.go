package snapshot

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerbooks/makerbooks/internal/model"
)

func hashState(t *testing.T, state model.CalculatorState) string {
	t.Helper()
	h, err := StateHash(state)
	require.NoError(t, err)
	return h
}

// TestStateHash_Stable tests that the same snapshot always hashes the
// same.
func TestStateHash_Stable(t *testing.T) {
	state := model.CalculatorState{
		HourlyRate: 25,
		Products: []model.Product{
			{ID: "p1", Name: "boards", SellingPrice: 50, MonthlyUnits: 20},
		},
	}

	assert.Equal(t, hashState(t, state), hashState(t, state))
}

// TestStateHash_SensitiveToChanges tests that any field change yields a
// different hash.
func TestStateHash_SensitiveToChanges(t *testing.T) {
	base := model.CalculatorState{HourlyRate: 25}
	baseHash := hashState(t, base)

	changed := base
	changed.HourlyRate = 26
	assert.NotEqual(t, baseHash, hashState(t, changed))

	withGoal := base
	withGoal.MonthlyGoal = 1000
	assert.NotEqual(t, baseHash, hashState(t, withGoal))
}

// TestStateHash_Format tests the hex digest shape.
func TestStateHash_Format(t *testing.T) {
	h := hashState(t, model.CalculatorState{})
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), h)
}
