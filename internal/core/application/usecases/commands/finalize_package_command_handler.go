package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// FinalizePackageCommandHandler seals a package, freezing its contents and
// gross weight.
type FinalizePackageCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewFinalizePackageCommandHandler creates a handler for package finalization.
func NewFinalizePackageCommandHandler(uowFactory PackingUoWFactory) FinalizePackageCommandHandler {
	return FinalizePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalize command.
func (h *FinalizePackageCommandHandler) Handle(ctx context.Context, cmd FinalizePackageCommand) error {
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

	pkg, err := task.Package(cmd.PackageID())
	if err != nil {
		return err
	}
	if err = pkg.Finalize(); err != nil {
		return err
	}

	if err = uow.PackingRepository().Update(ctx, task); err != nil {
		return err
	}

	if err = writeAudit(ctx, uow.AuditRepository(), audit.EntityPackage, pkg.ID(),
		audit.ActionFinalized, cmd.Actor(), nil, map[string]any{
			"grossWeight": pkg.GrossWeight().String(),
		}, pkg.Number()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
