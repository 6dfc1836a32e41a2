// Package auditrepo provides data transfer objects and mapping functions for
// the audit trail. Old and new values are stored as jsonb so entries stay
// queryable without a schema per entity type.
package auditrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditEntryDTO represents the database structure for one audit entry.
type AuditEntryDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EntityType string          `gorm:"index:idx_audit_entity"`
	EntityID   uuid.UUID       `gorm:"type:uuid;index:idx_audit_entity"`
	Action     string
	Actor      string
	OldValues  json.RawMessage `gorm:"type:jsonb"`
	NewValues  json.RawMessage `gorm:"type:jsonb"`
	Notes      string
	OccurredAt time.Time       `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "audit_entries".
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) (AuditEntryDTO, error) {
	oldValues, err := marshalValues(entry.OldValues())
	if err != nil {
		return AuditEntryDTO{}, err
	}
	newValues, err := marshalValues(entry.NewValues())
	if err != nil {
		return AuditEntryDTO{}, err
	}

	return AuditEntryDTO{
		ID:         entry.ID().Bytes(),
		EntityType: entry.EntityType(),
		EntityID:   entry.EntityID().Bytes(),
		Action:     entry.Action(),
		Actor:      entry.Actor(),
		OldValues:  oldValues,
		NewValues:  newValues,
		Notes:      entry.Notes(),
		OccurredAt: entry.OccurredAt(),
	}, nil
}

func toDomain(dto AuditEntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return nil, err
	}

	oldValues, err := unmarshalValues(dto.OldValues)
	if err != nil {
		return nil, err
	}
	newValues, err := unmarshalValues(dto.NewValues)
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(id, dto.EntityType, entityID, dto.Action,
		dto.Actor, oldValues, newValues, dto.Notes, dto.OccurredAt)
}

func marshalValues(values map[string]any) (json.RawMessage, error) {
	if values == nil {
		return nil, nil
	}
	return json.Marshal(values)
}

func unmarshalValues(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}
