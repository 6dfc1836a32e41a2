package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)
	assert.NotEqual(t, kernel.NewUUID(), id)
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
	})

	t.Run("zero value rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.Error(t, err)
	})

	t.Run("wrong length rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})
}

func TestUUIDValidate(t *testing.T) {
	var zero kernel.UUID
	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestValidatePositiveDecimal(t *testing.T) {
	require.NoError(t, kernel.ValidatePositiveDecimal("qty", decimal.NewFromInt(1)))
	require.Error(t, kernel.ValidatePositiveDecimal("qty", decimal.Zero))
	require.Error(t, kernel.ValidatePositiveDecimal("qty", decimal.NewFromInt(-1)))
}

func TestValidateNonNegativeDecimal(t *testing.T) {
	require.NoError(t, kernel.ValidateNonNegativeDecimal("weight", decimal.Zero))
	require.Error(t, kernel.ValidateNonNegativeDecimal("weight", decimal.NewFromInt(-1)))
}

func TestSumDecimals(t *testing.T) {
	assert.True(t, kernel.SumDecimals(nil).IsZero())

	sum := kernel.SumDecimals([]decimal.Decimal{
		decimal.RequireFromString("1.5"),
		decimal.RequireFromString("2.25"),
	})
	assert.True(t, sum.Equal(decimal.RequireFromString("3.75")))
}
