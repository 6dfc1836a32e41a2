package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// All quantity, money, and weight fields in the domain use fixed-point
// decimals (shopspring/decimal) rather than binary floating point, so that
// repeated aggregation across the fulfillment pipeline never drifts.

// ValidatePositiveDecimal fails unless d > 0.
func ValidatePositiveDecimal(paramName string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is not greater than 0", d))
	}
	return nil
}

// ValidateNonNegativeDecimal fails unless d >= 0.
func ValidateNonNegativeDecimal(paramName string, d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is negative", d))
	}
	return nil
}

// SumDecimals returns the sum of ds, decimal.Zero for an empty slice.
func SumDecimals(ds []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}
