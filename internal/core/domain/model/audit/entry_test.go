package audit

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewEntry(t *testing.T) {
	entry, err := NewEntry(
		kernel.NewUUID(),
		EntityOrder,
		kernel.NewUUID(),
		ActionStatusChanged,
		"alice",
		map[string]any{"status": "Created"},
		map[string]any{"status": "Approved"},
		"",
	)
	require.NoError(t, err)

	assert.NoError(t, entry.Validate())
	assert.Equal(t, EntityOrder, entry.EntityType())
	assert.Equal(t, ActionStatusChanged, entry.Action())
	assert.Equal(t, "alice", entry.Actor())
	assert.Equal(t, "Created", entry.OldValues()["status"])
	assert.Equal(t, "Approved", entry.NewValues()["status"])
	assert.False(t, entry.OccurredAt().IsZero())
}

func Test_NewEntry_DefaultsToSystemActor(t *testing.T) {
	entry, err := NewEntry(kernel.NewUUID(), EntityShipment, kernel.NewUUID(),
		ActionCreated, "", nil, nil, "")
	require.NoError(t, err)
	assert.Equal(t, SystemActor, entry.Actor())
}

func Test_NewEntry_Errors(t *testing.T) {
	_, err := NewEntry(kernel.NewUUID(), "", kernel.NewUUID(), ActionCreated, "", nil, nil, "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewEntry(kernel.NewUUID(), EntityOrder, kernel.NewUUID(), "", "", nil, nil, "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_Entry_Validate_NotConstructed(t *testing.T) {
	var entry *Entry
	assert.ErrorIs(t, entry.Validate(), ErrEntryIsNotConstructed)
	assert.ErrorIs(t, (&Entry{}).Validate(), ErrEntryIsNotConstructed)
}
