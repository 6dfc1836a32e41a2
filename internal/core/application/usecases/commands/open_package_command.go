package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOpenPackageCommandIsNotConstructed = errors.New(
	"OpenPackageCommand must be created via NewOpenPackageCommand constructor",
)

// OpenPackageCommand represents a request to open a new empty package on a
// packing task.
type OpenPackageCommand struct {
	taskID      kernel.UUID
	packageID   kernel.UUID
	packageType packing.PackageType
	dimensions  packing.Dimensions
	maxWeight   decimal.Decimal
	actor       string

	guard guard.ConstructorGuard
}

// NewOpenPackageCommand creates a command to open a package. The weight cap
// is per package and includes the container tare.
func NewOpenPackageCommand(
	taskID kernel.UUID,
	packageID kernel.UUID,
	packageType packing.PackageType,
	dimensions packing.Dimensions,
	maxWeight decimal.Decimal,
	actor string,
) (OpenPackageCommand, error) {
	if err := errors.Join(
		taskID.Validate(),
		packageID.Validate(),
		packageType.Validate(),
		dimensions.Validate(),
		kernel.ValidatePositiveDecimal("max weight", maxWeight),
	); err != nil {
		return OpenPackageCommand{}, err
	}

	return OpenPackageCommand{
		taskID:      taskID,
		packageID:   packageID,
		packageType: packageType,
		dimensions:  dimensions,
		maxWeight:   maxWeight,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenPackageCommand) Validate() error {
	return c.guard.Validate(ErrOpenPackageCommandIsNotConstructed)
}

// TaskID returns the packing task the package belongs to.
func (c OpenPackageCommand) TaskID() kernel.UUID { return c.taskID }

// PackageID returns the caller-supplied identifier for the new package.
func (c OpenPackageCommand) PackageID() kernel.UUID { return c.packageID }

// PackageType returns the container type.
func (c OpenPackageCommand) PackageType() packing.PackageType { return c.packageType }

// Dimensions returns the container's outer dimensions.
func (c OpenPackageCommand) Dimensions() packing.Dimensions { return c.dimensions }

// MaxWeight returns the gross weight cap for the package.
func (c OpenPackageCommand) MaxWeight() decimal.Decimal { return c.maxWeight }

// Actor returns who opened the package.
func (c OpenPackageCommand) Actor() string { return c.actor }
