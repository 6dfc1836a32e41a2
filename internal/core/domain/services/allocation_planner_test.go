package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levels(pairs ...any) []StockLevel {
	out := make([]StockLevel, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, StockLevel{
			LocationCode: pairs[i].(string),
			Available:    decimal.NewFromInt(int64(pairs[i+1].(int))),
		})
	}
	return out
}

func Test_Plan_SingleLocationBestFit(t *testing.T) {
	planner := NewAllocationPlanner()

	// A-02 (10) is the smallest location that covers 8; A-03 stays untouched
	placements, err := planner.Plan(decimal.NewFromInt(8),
		levels("A-01", 5, "A-02", 10, "A-03", 50))
	require.NoError(t, err)

	require.Len(t, placements, 1)
	assert.Equal(t, "A-02", placements[0].LocationCode)
	assert.True(t, placements[0].Quantity.Equal(decimal.NewFromInt(8)))
}

func Test_Plan_ExactFit(t *testing.T) {
	planner := NewAllocationPlanner()

	placements, err := planner.Plan(decimal.NewFromInt(5),
		levels("A-01", 5, "A-02", 50))
	require.NoError(t, err)

	require.Len(t, placements, 1)
	assert.Equal(t, "A-01", placements[0].LocationCode)
}

func Test_Plan_SplitsWhenNoSingleLocationSuffices(t *testing.T) {
	planner := NewAllocationPlanner()

	placements, err := planner.Plan(decimal.NewFromInt(12),
		levels("A-01", 4, "A-02", 8, "A-03", 3))
	require.NoError(t, err)

	// largest first: 8 from A-02, remainder from A-01
	require.Len(t, placements, 2)
	assert.Equal(t, "A-02", placements[0].LocationCode)
	assert.True(t, placements[0].Quantity.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, "A-01", placements[1].LocationCode)
	assert.True(t, placements[1].Quantity.Equal(decimal.NewFromInt(4)))
}

func Test_Plan_InsufficientStock(t *testing.T) {
	planner := NewAllocationPlanner()

	placements, err := planner.Plan(decimal.NewFromInt(100),
		levels("A-01", 4, "A-02", 8))
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, placements)
}

func Test_Plan_NoLocations(t *testing.T) {
	planner := NewAllocationPlanner()

	_, err := planner.Plan(decimal.NewFromInt(1), nil)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func Test_Plan_DeterministicTieBreak(t *testing.T) {
	planner := NewAllocationPlanner()

	// both locations hold 10; the lower code wins every time
	for range 10 {
		placements, err := planner.Plan(decimal.NewFromInt(7),
			levels("B-02", 10, "B-01", 10))
		require.NoError(t, err)
		require.Len(t, placements, 1)
		assert.Equal(t, "B-01", placements[0].LocationCode)
	}
}

func Test_Plan_RejectsNonPositiveRequest(t *testing.T) {
	planner := NewAllocationPlanner()

	_, err := planner.Plan(decimal.Zero, levels("A-01", 5))
	assert.Error(t, err)
	_, err = planner.Plan(decimal.NewFromInt(-2), levels("A-01", 5))
	assert.Error(t, err)
}
