package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AllocateOrderCommandHandler reserves inventory for every line of an
// approved order. Allocation is all or nothing: the handler first plans
// placements for every line against a fresh availability snapshot, and only
// if every line can be covered does it reserve anything. If a reservation
// fails partway (another order won a race on the same stock), every
// reservation already made is released before the error is returned, so a
// failed allocation leaves no stock held.
type AllocateOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	inventory  ports.InventoryAdapter
	planner    services.AllocationPlanner
}

// NewAllocateOrderCommandHandler creates a handler for order allocation.
func NewAllocateOrderCommandHandler(
	uowFactory AllocationUoWFactory,
	inventory ports.InventoryAdapter,
	planner services.AllocationPlanner,
) AllocateOrderCommandHandler {
	return AllocateOrderCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
		planner:    planner,
	}
}

type plannedLine struct {
	item       *order.Item
	placements []services.Placement
}

// Handle processes the allocation command.
func (h *AllocateOrderCommandHandler) Handle(ctx context.Context, cmd AllocateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// check the transition before touching the inventory system so a
	// misrouted command never places holds it will immediately abandon
	previous := aggregate.Status()
	if !previous.CanTransitionTo(order.Allocated) {
		return errs.NewInvalidTransitionError("Order", previous.String(), order.Allocated.String())
	}

	lines, err := h.planLines(ctx, aggregate)
	if err != nil {
		return err
	}

	reservations, err := h.reserveLines(ctx, aggregate, lines)
	if err != nil {
		return err
	}

	for _, res := range reservations {
		if err = res.item.AddAllocated(res.reservation.Quantity); err != nil {
			return err
		}

		record, recordErr := allocation.NewAllocation(kernel.NewUUID(), aggregate.ID(),
			res.item.ID(), res.item.SKU(), res.reservation.LocationCode,
			res.reservation.Quantity, res.reservation.ID)
		if recordErr != nil {
			return recordErr
		}
		if err = uow.AllocationRepository().Add(ctx, record); err != nil {
			return err
		}

		if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityAllocation, record.ID(),
			audit.ActionAllocated, cmd.Actor(), nil, map[string]any{
				"sku":      record.SKU(),
				"location": record.LocationCode(),
				"quantity": record.Quantity().String(),
			}, record.ReservationID()); err != nil {
			return err
		}
	}

	if err = aggregate.MarkAllocated(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityOrder, aggregate.ID(),
		audit.ActionStatusChanged, cmd.Actor(),
		statusValues(previous.String()),
		statusValues(aggregate.Status().String()), ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// planLines builds a placement plan for every order line, or an
// InsufficientInventoryError listing every short line. Nothing is reserved
// while planning.
func (h *AllocateOrderCommandHandler) planLines(ctx context.Context, aggregate *order.Order) ([]plannedLine, error) {
	var (
		lines      []plannedLine
		shortfalls []errs.ItemShortfall
	)

	for _, item := range aggregate.Items() {
		remaining := item.RemainingToAllocate()
		if !remaining.IsPositive() {
			continue
		}

		locations, err := h.inventory.CheckAvailability(ctx, item.SKU())
		if err != nil {
			return nil, err
		}

		levels := make([]services.StockLevel, 0, len(locations))
		for _, loc := range locations {
			levels = append(levels, services.StockLevel{
				LocationCode: loc.LocationCode,
				Available:    loc.Available,
			})
		}

		placements, err := h.planner.Plan(remaining, levels)
		if errors.Is(err, services.ErrInsufficientStock) {
			available := make([]decimal.Decimal, 0, len(levels))
			for _, lvl := range levels {
				available = append(available, lvl.Available)
			}
			shortfalls = append(shortfalls, errs.ItemShortfall{
				SKU:       item.SKU(),
				Requested: remaining,
				Available: kernel.SumDecimals(available),
			})
			continue
		}
		if err != nil {
			return nil, err
		}

		lines = append(lines, plannedLine{item: item, placements: placements})
	}

	if len(shortfalls) > 0 {
		return nil, errs.NewInsufficientInventoryError(aggregate.ID().String(), shortfalls)
	}
	return lines, nil
}

type lineReservation struct {
	item        *order.Item
	reservation ports.Reservation
}

// reserveLines executes the plan against the inventory adapter. On any
// failure it releases everything reserved so far.
func (h *AllocateOrderCommandHandler) reserveLines(
	ctx context.Context,
	aggregate *order.Order,
	lines []plannedLine,
) ([]lineReservation, error) {
	var made []lineReservation

	for _, line := range lines {
		for _, placement := range line.placements {
			reservation, err := h.inventory.Reserve(ctx, ports.ReserveRequest{
				Reference:    reservationReference(aggregate.Number(), line.item.SKU(), placement.LocationCode),
				SKU:          line.item.SKU(),
				LocationCode: placement.LocationCode,
				Quantity:     placement.Quantity,
			})
			if err != nil {
				h.releaseAll(ctx, made)
				return nil, err
			}
			made = append(made, lineReservation{item: line.item, reservation: reservation})
		}
	}
	return made, nil
}

func (h *AllocateOrderCommandHandler) releaseAll(ctx context.Context, made []lineReservation) {
	for _, res := range made {
		_ = h.inventory.Release(ctx, res.reservation.ID)
	}
}

// reservationReference keys a reservation by order, SKU, and location, so a
// retried allocation reuses the hold instead of doubling it.
func reservationReference(orderNumber, sku, locationCode string) string {
	return fmt.Sprintf("%s/%s/%s", orderNumber, sku, locationCode)
}
