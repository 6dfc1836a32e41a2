package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetAuditTrailQueryHandler reads an entity's audit history with raw SQL.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the query. An entity with no history yields an empty
// slice, not an error.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			entity_type,
			action,
			actor,
			old_values,
			new_values,
			notes,
			occurred_at
		FROM audit_entries
		WHERE entity_id = ?
		ORDER BY occurred_at
	`, query.EntityID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetAuditTrailQueryResponse, 0)
	for rows.Next() {
		var entry GetAuditTrailQueryResponse
		var oldRaw, newRaw []byte

		err = rows.Scan(&entry.EntityType, &entry.Action, &entry.Actor,
			&oldRaw, &newRaw, &entry.Notes, &entry.OccurredAt)
		if err != nil {
			return nil, err
		}

		if len(oldRaw) > 0 {
			if err = json.Unmarshal(oldRaw, &entry.OldValues); err != nil {
				return nil, err
			}
		}
		if len(newRaw) > 0 {
			if err = json.Unmarshal(newRaw, &entry.NewValues); err != nil {
				return nil, err
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
