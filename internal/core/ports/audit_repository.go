package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the audit trail.
// Entries are append-only; there is no update or delete.
type AuditRepository interface {
	// Add persists an audit entry in the surrounding transaction, so the
	// entry is recorded if and only if the change it describes commits.
	Add(ctx context.Context, entry *audit.Entry) error

	// GetAllForEntity retrieves every entry recorded for an entity,
	// oldest first.
	GetAllForEntity(ctx context.Context, entityID kernel.UUID) ([]*audit.Entry, error)
}
