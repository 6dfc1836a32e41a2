package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// writeAudit records one audit entry inside the handler's open transaction.
func writeAudit(
	ctx context.Context,
	repo ports.AuditRepository,
	entityType string,
	entityID kernel.UUID,
	action string,
	actor string,
	oldValues map[string]any,
	newValues map[string]any,
	notes string,
) error {
	entry, err := audit.NewEntry(kernel.NewUUID(), entityType, entityID, action, actor,
		oldValues, newValues, notes)
	if err != nil {
		return err
	}
	return repo.Add(ctx, entry)
}

func statusValues(status string) map[string]any {
	return map[string]any{"status": status}
}
