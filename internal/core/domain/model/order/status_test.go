package order

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Status_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		wantErr bool
	}{
		{"created", Created, false},
		{"approved", Approved, false},
		{"allocated", Allocated, false},
		{"picking", Picking, false},
		{"packing", Packing, false},
		{"shipped", Shipped, false},
		{"delivered", Delivered, false},
		{"cancelled", Cancelled, false},
		{"unknown", Unknown, true},
		{"out of range", Status(100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Status_HappyPath(t *testing.T) {
	path := []Status{Created, Approved, Allocated, Picking, Packing, Shipped, Delivered}

	for i := 0; i < len(path)-1; i++ {
		next, err := path[i].TransitionTo(path[i+1])
		require.NoError(t, err)
		assert.Equal(t, path[i+1], next)
	}
}

func Test_Status_CancelReachableFromEveryNonTerminal(t *testing.T) {
	for _, s := range []Status{Created, Approved, Allocated, Picking, Packing, Shipped} {
		t.Run(s.String(), func(t *testing.T) {
			next, err := s.TransitionTo(Cancelled)
			require.NoError(t, err)
			assert.Equal(t, Cancelled, next)
		})
	}
}

func Test_Status_TerminalStatesAllowNothing(t *testing.T) {
	all := []Status{Created, Approved, Allocated, Picking, Packing, Shipped, Delivered, Cancelled}

	for _, terminal := range []Status{Delivered, Cancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, target := range all {
			_, err := terminal.TransitionTo(target)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition,
				"%s -> %s must be rejected", terminal, target)
		}
	}
}

func Test_Status_NoSkippingStages(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
	}{
		{Created, Allocated},
		{Created, Shipped},
		{Approved, Picking},
		{Allocated, Packing},
		{Picking, Shipped},
		{Packing, Delivered},
	}

	for _, tt := range tests {
		_, err := tt.from.TransitionTo(tt.to)
		require.Error(t, err)

		var transitionErr *errs.InvalidTransitionError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, "Order", transitionErr.EntityType)
		assert.Equal(t, tt.from.String(), transitionErr.Current)
		assert.Equal(t, tt.to.String(), transitionErr.Requested)
	}
}

func Test_Status_NoBackwardTransitions(t *testing.T) {
	forward := []Status{Created, Approved, Allocated, Picking, Packing, Shipped}

	for i := 1; i < len(forward); i++ {
		for j := 0; j < i; j++ {
			_, err := forward[i].TransitionTo(forward[j])
			assert.ErrorIs(t, err, errs.ErrInvalidTransition,
				"%s -> %s must be rejected", forward[i], forward[j])
		}
	}
}

func Test_Status_String(t *testing.T) {
	assert.Equal(t, "Created", Created.String())
	assert.Equal(t, "Picking", Picking.String())
	assert.Equal(t, "Cancelled", Cancelled.String())
	assert.Equal(t, "Unknown", Status(100).String())
}

func Test_StatusFromString(t *testing.T) {
	status, err := StatusFromString("Shipped")
	require.NoError(t, err)
	assert.Equal(t, Shipped, status)

	_, err = StatusFromString("Teleported")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = StatusFromString("Unknown")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
