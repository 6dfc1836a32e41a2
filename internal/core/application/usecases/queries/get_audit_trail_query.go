package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	ErrGetAuditTrailQueryIsNotConstructed = errors.New(
		"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
	)
)

// GetAuditTrailQuery retrieves the recorded history of one entity, oldest
// first.
type GetAuditTrailQuery struct {
	entityID kernel.UUID
}

// NewGetAuditTrailQuery creates an audit trail query for an entity.
func NewGetAuditTrailQuery(entityID kernel.UUID) (GetAuditTrailQuery, error) {
	if err := entityID.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}
	return GetAuditTrailQuery{entityID: entityID}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	if q.entityID.Validate() != nil {
		return ErrGetAuditTrailQueryIsNotConstructed
	}
	return nil
}

// EntityID returns the entity whose history to read.
func (q GetAuditTrailQuery) EntityID() kernel.UUID { return q.entityID }

// GetAuditTrailQueryResponse is one recorded change.
type GetAuditTrailQueryResponse struct {
	EntityType string
	Action     string
	Actor      string
	OldValues  map[string]any
	NewValues  map[string]any
	Notes      string
	OccurredAt time.Time
}
