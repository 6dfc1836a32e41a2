// Package inventory provides implementations of the inventory adapter
// boundary: an in-memory adapter for development and tests, and a
// Redis-backed adapter for deployments with a shared stock pool.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MockAdapter is an in-memory InventoryAdapter. Stock levels are seeded at
// startup and mutated by reserve/release. Reservation IDs derive from the
// caller's reference, so reserve and release stay idempotent under retry.
//
// Safe for concurrent use.
type MockAdapter struct {
	mu           sync.Mutex
	stock        map[string]map[string]decimal.Decimal // sku -> location -> available
	reservations map[string]ports.Reservation          // reference -> reservation
}

// NewMockAdapter creates an empty in-memory inventory adapter.
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{
		stock:        make(map[string]map[string]decimal.Decimal),
		reservations: make(map[string]ports.Reservation),
	}
}

// SetStock seeds the available quantity of a SKU at a location, replacing
// any previous level.
func (a *MockAdapter) SetStock(sku, locationCode string, quantity decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stock[sku] == nil {
		a.stock[sku] = make(map[string]decimal.Decimal)
	}
	a.stock[sku][locationCode] = quantity
}

// CheckAvailability returns the locations holding the SKU, sorted by
// location code. Locations with no stock are omitted.
func (a *MockAdapter) CheckAvailability(_ context.Context, sku string) ([]ports.StockLocation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	locations := make([]ports.StockLocation, 0, len(a.stock[sku]))
	for code, available := range a.stock[sku] {
		if available.IsPositive() {
			locations = append(locations, ports.StockLocation{
				LocationCode: code,
				Available:    available,
			})
		}
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].LocationCode < locations[j].LocationCode
	})
	return locations, nil
}

// Reserve places a hold on stock. Repeating a request with the same
// reference returns the original reservation without taking more stock.
func (a *MockAdapter) Reserve(_ context.Context, req ports.ReserveRequest) (ports.Reservation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if existing, ok := a.reservations[req.Reference]; ok {
		return existing, nil
	}

	available := a.stock[req.SKU][req.LocationCode]
	if available.LessThan(req.Quantity) {
		return ports.Reservation{}, errs.NewAdapterError("reserve",
			fmt.Errorf("%s at %s: %s available, %s requested",
				req.SKU, req.LocationCode, available, req.Quantity))
	}

	reservation := ports.Reservation{
		ID:           reservationID(req.Reference),
		SKU:          req.SKU,
		LocationCode: req.LocationCode,
		Quantity:     req.Quantity,
	}
	a.stock[req.SKU][req.LocationCode] = available.Sub(req.Quantity)
	a.reservations[req.Reference] = reservation
	return reservation, nil
}

// Release returns a hold's quantity to its location. Releasing an unknown
// or already released reservation is a no-op.
func (a *MockAdapter) Release(_ context.Context, reservationID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	reference, ok := referenceFromID(reservationID)
	if !ok {
		return nil
	}

	reservation, ok := a.reservations[reference]
	if !ok {
		return nil
	}

	a.stock[reservation.SKU][reservation.LocationCode] =
		a.stock[reservation.SKU][reservation.LocationCode].Add(reservation.Quantity)
	delete(a.reservations, reference)
	return nil
}

const reservationIDPrefix = "RES-"

// reservationID derives the reservation identifier from the caller's
// reference. The mapping is reversible so Release can find the hold without
// extra bookkeeping.
func reservationID(reference string) string {
	return reservationIDPrefix + reference
}

func referenceFromID(id string) (string, bool) {
	if len(id) <= len(reservationIDPrefix) || id[:len(reservationIDPrefix)] != reservationIDPrefix {
		return "", false
	}
	return id[len(reservationIDPrefix):], true
}
