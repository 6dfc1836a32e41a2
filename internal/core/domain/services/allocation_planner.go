// Package services holds stateless domain services that implement decision
// logic spanning more than one aggregate.
package services

import (
	"errors"
	"sort"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrInsufficientStock is returned by the planner when the available
// quantity across all locations cannot cover the requested quantity.
var ErrInsufficientStock = errors.New("available stock does not cover the requested quantity")

// StockLevel is the available quantity of one SKU at one stock location, as
// reported by the inventory adapter.
type StockLevel struct {
	LocationCode string
	Available    decimal.Decimal
}

// Placement is the planner's decision to reserve a quantity at a location.
type Placement struct {
	LocationCode string
	Quantity     decimal.Decimal
}

// AllocationPlanner decides which stock locations an order line is reserved
// from. Pure decision logic; the reservations themselves are made by the
// allocate command through the inventory adapter.
type AllocationPlanner interface {
	// Plan places the requested quantity across locations. It returns
	// ErrInsufficientStock when the combined availability falls short, in
	// which case no placements are returned.
	Plan(requested decimal.Decimal, levels []StockLevel) ([]Placement, error)
}

var _ AllocationPlanner = bestFitPlanner{}

type bestFitPlanner struct{}

// NewAllocationPlanner returns the best-fit planner: it prefers the single
// smallest location that can satisfy the whole quantity, keeping large
// locations free for large lines, and only splits across locations when no
// single one suffices. Ties break on location code, so the plan is
// deterministic for a given availability snapshot.
func NewAllocationPlanner() AllocationPlanner {
	return bestFitPlanner{}
}

func (bestFitPlanner) Plan(requested decimal.Decimal, levels []StockLevel) ([]Placement, error) {
	if !requested.IsPositive() {
		return nil, errors.New("requested quantity must be positive")
	}

	available := make([]decimal.Decimal, 0, len(levels))
	for _, lvl := range levels {
		available = append(available, lvl.Available)
	}
	if kernel.SumDecimals(available).LessThan(requested) {
		return nil, ErrInsufficientStock
	}

	// best fit: the smallest single location covering the whole quantity
	candidates := make([]StockLevel, len(levels))
	copy(candidates, levels)
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].Available.Equal(candidates[j].Available) {
			return candidates[i].Available.LessThan(candidates[j].Available)
		}
		return candidates[i].LocationCode < candidates[j].LocationCode
	})
	for _, lvl := range candidates {
		if lvl.Available.GreaterThanOrEqual(requested) {
			return []Placement{{LocationCode: lvl.LocationCode, Quantity: requested}}, nil
		}
	}

	// no single location suffices: drain the largest locations first to
	// keep the number of placements small
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].Available.Equal(candidates[j].Available) {
			return candidates[i].Available.GreaterThan(candidates[j].Available)
		}
		return candidates[i].LocationCode < candidates[j].LocationCode
	})

	var placements []Placement
	remaining := requested
	for _, lvl := range candidates {
		if remaining.IsZero() {
			break
		}
		if !lvl.Available.IsPositive() {
			continue
		}
		take := decimal.Min(lvl.Available, remaining)
		placements = append(placements, Placement{LocationCode: lvl.LocationCode, Quantity: take})
		remaining = remaining.Sub(take)
	}
	return placements, nil
}
