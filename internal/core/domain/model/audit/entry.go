// Package audit records what happened to the fulfillment entities and who
// did it. Entries are append-only facts; they are written in the same
// transaction as the change they describe and are never updated or deleted.
package audit

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not
// created through the NewEntry or RestoreEntry factory functions.
var ErrEntryIsNotConstructed = errors.New("audit Entry must be created via NewEntry constructor")

// Entity types used in audit entries.
const (
	EntityOrder       = "Order"
	EntityAllocation  = "Allocation"
	EntityPickingTask = "PickingTask"
	EntityPackingTask = "PackingTask"
	EntityPackage     = "Package"
	EntityShipment    = "Shipment"
)

// Actions used in audit entries.
const (
	ActionCreated       = "Created"
	ActionStatusChanged = "StatusChanged"
	ActionAllocated     = "Allocated"
	ActionReleased      = "Released"
	ActionReleaseFailed = "ReleaseFailed"
	ActionConsumed      = "Consumed"
	ActionPickRecorded  = "PickRecorded"
	ActionItemPacked    = "ItemPacked"
	ActionFinalized     = "Finalized"
	ActionCancelled     = "Cancelled"
)

// SystemActor is recorded when a change was made by the engine itself
// rather than an identified user.
const SystemActor = "system"

// Entry is one audit trail record. OldValues and NewValues are free-form
// snapshots of the fields the action changed.
type Entry struct {
	id         kernel.UUID
	entityType string
	entityID   kernel.UUID
	action     string
	actor      string
	oldValues  map[string]any
	newValues  map[string]any
	notes      string
	occurredAt time.Time

	constructed bool
}

// NewEntry records a change. Actor defaults to SystemActor when empty.
func NewEntry(
	id kernel.UUID,
	entityType string,
	entityID kernel.UUID,
	action string,
	actor string,
	oldValues map[string]any,
	newValues map[string]any,
	notes string,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), entityID.Validate()); err != nil {
		return nil, err
	}
	if entityType == "" {
		return nil, errs.NewValueIsRequiredError("entity type")
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}
	if actor == "" {
		actor = SystemActor
	}

	return &Entry{
		id:          id,
		entityType:  entityType,
		entityID:    entityID,
		action:      action,
		actor:       actor,
		oldValues:   oldValues,
		newValues:   newValues,
		notes:       notes,
		occurredAt:  time.Now().UTC(),
		constructed: true,
	}, nil
}

// RestoreEntry reconstructs an audit record from persistence.
func RestoreEntry(
	id kernel.UUID,
	entityType string,
	entityID kernel.UUID,
	action string,
	actor string,
	oldValues map[string]any,
	newValues map[string]any,
	notes string,
	occurredAt time.Time,
) (*Entry, error) {
	entry, err := NewEntry(id, entityType, entityID, action, actor, oldValues, newValues, notes)
	if err != nil {
		return nil, err
	}
	entry.occurredAt = occurredAt
	return entry, nil
}

// Validate ensures the Entry was built through a factory function.
func (e *Entry) Validate() error {
	if e == nil || !e.constructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// EntityType returns the kind of entity the entry describes.
func (e *Entry) EntityType() string { return e.entityType }

// EntityID returns the described entity's identifier.
func (e *Entry) EntityID() kernel.UUID { return e.entityID }

// Action returns what happened.
func (e *Entry) Action() string { return e.action }

// Actor returns who made the change.
func (e *Entry) Actor() string { return e.actor }

// OldValues returns the changed fields before the action.
func (e *Entry) OldValues() map[string]any { return e.oldValues }

// NewValues returns the changed fields after the action.
func (e *Entry) NewValues() map[string]any { return e.newValues }

// Notes returns the optional free-form note.
func (e *Entry) Notes() string { return e.notes }

// OccurredAt returns when the change happened (UTC).
func (e *Entry) OccurredAt() time.Time { return e.occurredAt }
