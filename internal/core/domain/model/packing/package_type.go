package packing

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PackageType determines the container used for a package and its tare
// weight, which counts toward the package's gross weight.
type PackageType int

const (
	TypeUnknown PackageType = iota
	TypeEnvelope
	TypeBox
	TypePallet
	TypeContainer
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		TypeEnvelope:  "Envelope",
		TypeBox:       "Box",
		TypePallet:    "Pallet",
		TypeContainer: "Container",
	}
}

// getTareWeights maps each container to its empty weight in kilograms.
func getTareWeights() map[PackageType]decimal.Decimal {
	return map[PackageType]decimal.Decimal{
		TypeEnvelope:  decimal.NewFromFloat(0.02),
		TypeBox:       decimal.NewFromFloat(0.35),
		TypePallet:    decimal.NewFromInt(22),
		TypeContainer: decimal.NewFromInt(2200),
	}
}

// PackageTypeFromString parses a package type name, case-sensitively.
func PackageTypeFromString(s string) (PackageType, error) {
	for pt, str := range getPackageTypeStrings() {
		if str == s {
			return pt, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("package type",
		fmt.Errorf("%q is not a valid package type", s))
}

// Validate checks if the PackageType value is valid.
func (pt PackageType) Validate() error {
	if _, ok := getPackageTypeStrings()[pt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("package type",
			fmt.Errorf("%d is not a valid package type", pt))
	}
	return nil
}

// String returns the human-readable name of the package type.
func (pt PackageType) String() string {
	if str, ok := getPackageTypeStrings()[pt]; ok {
		return str
	}
	return "Unknown"
}

// TareWeight returns the container's empty weight in kilograms.
func (pt PackageType) TareWeight() decimal.Decimal {
	if w, ok := getTareWeights()[pt]; ok {
		return w
	}
	return decimal.Zero
}
