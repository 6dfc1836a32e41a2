package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/packing"
)

// OpenPackageCommandHandler opens a new empty package on a packing task.
type OpenPackageCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewOpenPackageCommandHandler creates a handler for opening packages.
func NewOpenPackageCommandHandler(uowFactory PackingUoWFactory) OpenPackageCommandHandler {
	return OpenPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open package command.
func (h *OpenPackageCommandHandler) Handle(ctx context.Context, cmd OpenPackageCommand) error {
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

	pkg, err := packing.NewPackage(cmd.PackageID(), cmd.PackageType(), cmd.Dimensions(), cmd.MaxWeight())
	if err != nil {
		return err
	}
	if err = task.OpenPackage(pkg); err != nil {
		return err
	}

	if err = uow.PackingRepository().Update(ctx, task); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPackage, pkg.ID(),
		audit.ActionCreated, cmd.Actor(), nil, map[string]any{
			"type":      pkg.Type().String(),
			"maxWeight": pkg.MaxWeight().String(),
		}, pkg.Number()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
