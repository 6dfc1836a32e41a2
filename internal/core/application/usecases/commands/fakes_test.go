package commands_test

import (
	"context"
	"fmt"
	"sort"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// fakeStore is a shared in-memory backing for the fake repositories, so a
// sequence of handlers sees each other's writes the way they would through
// a database.
type fakeStore struct {
	orders       map[string]*order.Order
	allocations  map[string]*allocation.Allocation
	pickingTasks map[string]*picking.Task
	packingTasks map[string]*packing.Task
	shipments    map[string]*shipment.Shipment
	audits       []*audit.Entry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:       map[string]*order.Order{},
		allocations:  map[string]*allocation.Allocation{},
		pickingTasks: map[string]*picking.Task{},
		packingTasks: map[string]*packing.Task{},
		shipments:    map[string]*shipment.Shipment{},
	}
}

type fakeUoW struct{ store *fakeStore }

func (u *fakeUoW) Begin(context.Context) error    { return nil }
func (u *fakeUoW) Commit(context.Context) error   { return nil }
func (u *fakeUoW) Rollback(context.Context) error { return nil }

func (u *fakeUoW) OrderRepository() ports.OrderRepository           { return &fakeOrderRepo{u.store} }
func (u *fakeUoW) AllocationRepository() ports.AllocationRepository { return &fakeAllocationRepo{u.store} }
func (u *fakeUoW) PickingRepository() ports.PickingRepository       { return &fakePickingRepo{u.store} }
func (u *fakeUoW) PackingRepository() ports.PackingRepository       { return &fakePackingRepo{u.store} }
func (u *fakeUoW) ShipmentRepository() ports.ShipmentRepository     { return &fakeShipmentRepo{u.store} }
func (u *fakeUoW) AuditRepository() ports.AuditRepository           { return &fakeAuditRepo{u.store} }

// One factory per UoW flavor; all hand out the same shared store.
type (
	orderUoWFactory        struct{ store *fakeStore }
	allocationUoWFactory   struct{ store *fakeStore }
	pickingUoWFactory      struct{ store *fakeStore }
	packingUoWFactory      struct{ store *fakeStore }
	shippingUoWFactory     struct{ store *fakeStore }
	cancellationUoWFactory struct{ store *fakeStore }
)

func (f orderUoWFactory) Create() commands.OrderUoW             { return &fakeUoW{f.store} }
func (f allocationUoWFactory) Create() commands.AllocationUoW   { return &fakeUoW{f.store} }
func (f pickingUoWFactory) Create() commands.PickingUoW         { return &fakeUoW{f.store} }
func (f packingUoWFactory) Create() commands.PackingUoW         { return &fakeUoW{f.store} }
func (f shippingUoWFactory) Create() commands.ShippingUoW       { return &fakeUoW{f.store} }
func (f cancellationUoWFactory) Create() commands.CancellationUoW { return &fakeUoW{f.store} }

type fakeOrderRepo struct{ store *fakeStore }

func (r *fakeOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	if _, ok := r.store.orders[aggregate.ID().String()]; ok {
		return fmt.Errorf("order %s already exists", aggregate.ID())
	}
	r.store.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, aggregate *order.Order) error {
	r.store.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	aggregate, ok := r.store.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return aggregate, nil
}

func (r *fakeOrderRepo) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	var out []*order.Order
	for _, aggregate := range r.store.orders {
		if aggregate.Status() == status {
			out = append(out, aggregate)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context) (map[order.Status]int64, error) {
	out := map[order.Status]int64{}
	for _, aggregate := range r.store.orders {
		out[aggregate.Status()]++
	}
	return out, nil
}

type fakeAllocationRepo struct{ store *fakeStore }

func (r *fakeAllocationRepo) Add(_ context.Context, aggregate *allocation.Allocation) error {
	r.store.allocations[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeAllocationRepo) Update(_ context.Context, aggregate *allocation.Allocation) error {
	r.store.allocations[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeAllocationRepo) Get(_ context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	aggregate, ok := r.store.allocations[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("allocationId", id.String())
	}
	return aggregate, nil
}

func (r *fakeAllocationRepo) GetAllForOrder(_ context.Context, orderID kernel.UUID) ([]*allocation.Allocation, error) {
	return r.forOrder(orderID, false), nil
}

func (r *fakeAllocationRepo) GetActiveForOrder(_ context.Context, orderID kernel.UUID) ([]*allocation.Allocation, error) {
	return r.forOrder(orderID, true), nil
}

func (r *fakeAllocationRepo) forOrder(orderID kernel.UUID, activeOnly bool) []*allocation.Allocation {
	var out []*allocation.Allocation
	for _, record := range r.store.allocations {
		if !record.OrderID().IsEqual(orderID) {
			continue
		}
		if activeOnly && !record.IsActive() {
			continue
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU() < out[j].SKU() })
	return out
}

type fakePickingRepo struct{ store *fakeStore }

func (r *fakePickingRepo) Add(_ context.Context, aggregate *picking.Task) error {
	r.store.pickingTasks[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakePickingRepo) Update(_ context.Context, aggregate *picking.Task) error {
	r.store.pickingTasks[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakePickingRepo) Get(_ context.Context, id kernel.UUID) (*picking.Task, error) {
	aggregate, ok := r.store.pickingTasks[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("pickingTaskId", id.String())
	}
	return aggregate, nil
}

func (r *fakePickingRepo) GetForOrder(_ context.Context, orderID kernel.UUID) (*picking.Task, error) {
	for _, task := range r.store.pickingTasks {
		if task.OrderID().IsEqual(orderID) {
			return task, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
}

func (r *fakePickingRepo) GetAllOpen(_ context.Context) ([]*picking.Task, error) {
	var out []*picking.Task
	for _, task := range r.store.pickingTasks {
		if !task.Status().IsTerminal() {
			out = append(out, task)
		}
	}
	return out, nil
}

type fakePackingRepo struct{ store *fakeStore }

func (r *fakePackingRepo) Add(_ context.Context, aggregate *packing.Task) error {
	r.store.packingTasks[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakePackingRepo) Update(_ context.Context, aggregate *packing.Task) error {
	r.store.packingTasks[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakePackingRepo) Get(_ context.Context, id kernel.UUID) (*packing.Task, error) {
	aggregate, ok := r.store.packingTasks[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("packingTaskId", id.String())
	}
	return aggregate, nil
}

func (r *fakePackingRepo) GetForOrder(_ context.Context, orderID kernel.UUID) (*packing.Task, error) {
	for _, task := range r.store.packingTasks {
		if task.OrderID().IsEqual(orderID) {
			return task, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
}

type fakeShipmentRepo struct{ store *fakeStore }

func (r *fakeShipmentRepo) Add(_ context.Context, aggregate *shipment.Shipment) error {
	r.store.shipments[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeShipmentRepo) Update(_ context.Context, aggregate *shipment.Shipment) error {
	r.store.shipments[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeShipmentRepo) Get(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	aggregate, ok := r.store.shipments[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipmentId", id.String())
	}
	return aggregate, nil
}

func (r *fakeShipmentRepo) GetForOrder(_ context.Context, orderID kernel.UUID) (*shipment.Shipment, error) {
	for _, s := range r.store.shipments {
		if s.OrderID().IsEqual(orderID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
}

type fakeAuditRepo struct{ store *fakeStore }

func (r *fakeAuditRepo) Add(_ context.Context, entry *audit.Entry) error {
	r.store.audits = append(r.store.audits, entry)
	return nil
}

func (r *fakeAuditRepo) GetAllForEntity(_ context.Context, entityID kernel.UUID) ([]*audit.Entry, error) {
	var out []*audit.Entry
	for _, entry := range r.store.audits {
		if entry.EntityID().IsEqual(entityID) {
			out = append(out, entry)
		}
	}
	return out, nil
}

// fakeInventory is an in-memory inventory adapter with real reserve and
// release semantics: stock decrements on reserve, returns on release, and
// both operations are idempotent the way the port demands.
type fakeInventory struct {
	stock        map[string]map[string]decimal.Decimal // sku -> location -> available
	reservations map[string]ports.Reservation          // reference -> reservation
	released     map[string]bool
	reserveErr   error
	releaseErr   error
	failSKU      string // Reserve calls for this SKU fail
	nextResID    int
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		stock:        map[string]map[string]decimal.Decimal{},
		reservations: map[string]ports.Reservation{},
		released:     map[string]bool{},
	}
}

func (f *fakeInventory) setStock(sku, location string, qty int64) {
	if f.stock[sku] == nil {
		f.stock[sku] = map[string]decimal.Decimal{}
	}
	f.stock[sku][location] = decimal.NewFromInt(qty)
}

func (f *fakeInventory) available(sku, location string) decimal.Decimal {
	return f.stock[sku][location]
}

func (f *fakeInventory) CheckAvailability(_ context.Context, sku string) ([]ports.StockLocation, error) {
	var out []ports.StockLocation
	for location, qty := range f.stock[sku] {
		if qty.IsPositive() {
			out = append(out, ports.StockLocation{LocationCode: location, Available: qty})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocationCode < out[j].LocationCode })
	return out, nil
}

func (f *fakeInventory) Reserve(_ context.Context, req ports.ReserveRequest) (ports.Reservation, error) {
	if f.reserveErr != nil {
		return ports.Reservation{}, f.reserveErr
	}
	if f.failSKU != "" && req.SKU == f.failSKU {
		return ports.Reservation{}, errs.NewAdapterError("reserve",
			fmt.Errorf("inventory backend rejected %s", req.SKU))
	}
	if existing, ok := f.reservations[req.Reference]; ok {
		return existing, nil
	}
	available := f.stock[req.SKU][req.LocationCode]
	if available.LessThan(req.Quantity) {
		return ports.Reservation{}, errs.NewAdapterError("reserve",
			fmt.Errorf("%s at %s: %s available, %s requested",
				req.SKU, req.LocationCode, available, req.Quantity))
	}

	f.nextResID++
	res := ports.Reservation{
		ID:           fmt.Sprintf("RES-%d", f.nextResID),
		SKU:          req.SKU,
		LocationCode: req.LocationCode,
		Quantity:     req.Quantity,
	}
	f.stock[req.SKU][req.LocationCode] = available.Sub(req.Quantity)
	f.reservations[req.Reference] = res
	return res, nil
}

func (f *fakeInventory) Release(_ context.Context, reservationID string) error {
	if f.releaseErr != nil {
		return f.releaseErr
	}
	if f.released[reservationID] {
		return nil
	}
	for reference, res := range f.reservations {
		if res.ID == reservationID {
			f.stock[res.SKU][res.LocationCode] = f.stock[res.SKU][res.LocationCode].Add(res.Quantity)
			f.released[reservationID] = true
			delete(f.reservations, reference)
			return nil
		}
	}
	return nil
}
