package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("sku")

		assert.Equal(t, "sku", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: sku", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("sku", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: sku (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be positive")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "value is invalid: quantity (cause: must be positive)", err.Error())
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("Order", "Created", "Picking")

	assert.Equal(t, "Order", err.EntityType)
	assert.Equal(t,
		"invalid status transition for Order: cannot move from Created to Picking",
		err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestInsufficientInventoryError(t *testing.T) {
	err := errs.NewInsufficientInventoryError("ORD-1", []errs.ItemShortfall{
		{SKU: "SKU-1", Requested: decimal.NewFromInt(10), Available: decimal.NewFromInt(4)},
	})

	assert.Len(t, err.Shortfalls, 1)
	assert.Equal(t, "insufficient inventory for order ORD-1: 1 item(s) short", err.Error())
	require.ErrorIs(t, err, errs.ErrInsufficientInventory)
}

func TestPackageOverweightError(t *testing.T) {
	err := errs.NewPackageOverweightError("PKG-1",
		decimal.RequireFromString("25.5"), decimal.RequireFromString("20"))

	assert.Equal(t, "package overweight: package PKG-1 would weigh 25.5, max is 20", err.Error())
	require.ErrorIs(t, err, errs.ErrPackageOverweight)
}

func TestAdapterError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewAdapterError("reserve", cause)

		assert.Equal(t, "inventory adapter failure during reserve (cause: connection refused)", err.Error())
		require.ErrorIs(t, err, errs.ErrAdapter)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewAdapterError("release", nil)
		assert.Equal(t, "inventory adapter failure during release", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewValueIsRequiredError("sku"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("qty"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("qty", 11, 0, 10), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "x"), errs.ErrObjectNotFound)
}
