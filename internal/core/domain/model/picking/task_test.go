package picking

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine(t *testing.T, sku string, qty int64) *Item {
	t.Helper()
	item, err := NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		sku,
		"A-01-01",
		decimal.NewFromInt(qty),
	)
	require.NoError(t, err)
	return item
}

func testTask(t *testing.T, items ...*Item) *Task {
	t.Helper()
	if len(items) == 0 {
		items = []*Item{testLine(t, "SKU-001", 5)}
	}
	task, err := NewTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items)
	require.NoError(t, err)
	return task
}

func Test_NewTask(t *testing.T) {
	task := testTask(t, testLine(t, "SKU-001", 5), testLine(t, "SKU-002", 2))

	assert.NoError(t, task.Validate())
	assert.Equal(t, StatusPending, task.Status())
	assert.Empty(t, task.Picker())
	assert.Len(t, task.Items(), 2)
	assert.Nil(t, task.CompletedAt())
	assert.True(t, strings.HasPrefix(task.Number(), "PT-"), task.Number())
}

func Test_NewTask_RequiresItems(t *testing.T) {
	_, err := NewTask(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_Task_AssignPicker(t *testing.T) {
	task := testTask(t)

	require.NoError(t, task.AssignPicker("alice"))
	assert.Equal(t, StatusInProgress, task.Status())
	assert.Equal(t, "alice", task.Picker())

	// already in progress
	err := task.AssignPicker("bob")
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, "alice", task.Picker())
}

func Test_Task_AssignPicker_RequiresName(t *testing.T) {
	task := testTask(t)
	assert.ErrorIs(t, task.AssignPicker(""), errs.ErrValueIsRequired)
	assert.Equal(t, StatusPending, task.Status())
}

func Test_Task_RecordPick(t *testing.T) {
	line := testLine(t, "SKU-001", 5)
	task := testTask(t, line)
	require.NoError(t, task.AssignPicker("alice"))

	require.NoError(t, task.RecordPick(line.ID(), decimal.NewFromInt(3)))
	assert.True(t, line.QuantityPicked().Equal(decimal.NewFromInt(3)))
	assert.True(t, line.IsRecorded())

	// accumulates up to the reserved quantity
	require.NoError(t, task.RecordPick(line.ID(), decimal.NewFromInt(2)))
	assert.True(t, line.QuantityPicked().Equal(decimal.NewFromInt(5)))

	// over-pick is rejected
	err := task.RecordPick(line.ID(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.True(t, line.QuantityPicked().Equal(decimal.NewFromInt(5)))
}

func Test_Task_RecordPick_ZeroConfirmsShortPick(t *testing.T) {
	line := testLine(t, "SKU-001", 5)
	task := testTask(t, line)
	require.NoError(t, task.AssignPicker("alice"))

	assert.False(t, line.IsRecorded())
	require.NoError(t, task.RecordPick(line.ID(), decimal.Zero))
	assert.True(t, line.IsRecorded())
	assert.True(t, line.QuantityPicked().IsZero())
}

func Test_Task_RecordPick_RequiresInProgress(t *testing.T) {
	line := testLine(t, "SKU-001", 5)
	task := testTask(t, line)

	err := task.RecordPick(line.ID(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Task_RecordPick_UnknownItem(t *testing.T) {
	task := testTask(t)
	require.NoError(t, task.AssignPicker("alice"))

	err := task.RecordPick(kernel.NewUUID(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_Task_Complete(t *testing.T) {
	first := testLine(t, "SKU-001", 5)
	second := testLine(t, "SKU-002", 2)
	task := testTask(t, first, second)
	require.NoError(t, task.AssignPicker("alice"))
	require.NoError(t, task.RecordPick(first.ID(), decimal.NewFromInt(5)))

	// second line not recorded yet
	err := task.Complete()
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, StatusInProgress, task.Status())

	require.NoError(t, task.RecordPick(second.ID(), decimal.Zero))
	require.NoError(t, task.Complete())
	assert.Equal(t, StatusCompleted, task.Status())
	require.NotNil(t, task.CompletedAt())

	assert.ErrorIs(t, task.Complete(), errs.ErrInvalidTransition)
}

func Test_Task_Complete_RequiresInProgress(t *testing.T) {
	task := testTask(t)
	assert.ErrorIs(t, task.Complete(), errs.ErrInvalidTransition)
}

func Test_Task_Cancel(t *testing.T) {
	task := testTask(t)
	require.NoError(t, task.Cancel())
	assert.Equal(t, StatusCancelled, task.Status())

	inProgress := testTask(t)
	require.NoError(t, inProgress.AssignPicker("alice"))
	require.NoError(t, inProgress.Cancel())

	assert.ErrorIs(t, task.Cancel(), errs.ErrInvalidTransition)
}
