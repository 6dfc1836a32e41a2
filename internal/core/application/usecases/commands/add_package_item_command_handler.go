package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
)

// AddPackageItemCommandHandler puts a quantity of an order line into an
// open package. Two caps apply, both before anything is persisted: the
// order item's packed counter may not exceed its picked counter, and the
// package's projected gross weight may not exceed its cap.
type AddPackageItemCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewAddPackageItemCommandHandler creates a handler for packing quantities.
func NewAddPackageItemCommandHandler(uowFactory PackingUoWFactory) AddPackageItemCommandHandler {
	return AddPackageItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command.
func (h *AddPackageItemCommandHandler) Handle(ctx context.Context, cmd AddPackageItemCommand) error {
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

	task, err := uow.PackingRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	aggregate, err := uow.OrderRepository().Get(ctx, task.OrderID())
	if err != nil {
		return err
	}

	item, err := aggregate.Item(cmd.OrderItemID())
	if err != nil {
		return err
	}
	pkg, err := task.Package(cmd.PackageID())
	if err != nil {
		return err
	}

	// packed ≤ picked on the order line
	if err = item.AddPacked(cmd.Quantity()); err != nil {
		return err
	}

	content, err := packing.NewPackageItem(kernel.NewUUID(), item.ID(), item.SKU(),
		cmd.Quantity(), item.UnitWeight())
	if err != nil {
		return err
	}
	// weight cap on the package
	if err = pkg.AddItem(content); err != nil {
		return err
	}

	if err = uow.PackingRepository().Update(ctx, task); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPackage, pkg.ID(),
		audit.ActionItemPacked, cmd.Actor(), nil, map[string]any{
			"sku":         item.SKU(),
			"quantity":    cmd.Quantity().String(),
			"grossWeight": pkg.GrossWeight().String(),
		}, ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
