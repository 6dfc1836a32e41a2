package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrFinalizePackageCommandIsNotConstructed = errors.New(
	"FinalizePackageCommand must be created via NewFinalizePackageCommand constructor",
)

// FinalizePackageCommand represents a request to seal a package.
type FinalizePackageCommand struct {
	taskID    kernel.UUID
	packageID kernel.UUID
	actor     string

	guard guard.ConstructorGuard
}

// NewFinalizePackageCommand creates a command to finalize a package.
func NewFinalizePackageCommand(taskID, packageID kernel.UUID, actor string) (FinalizePackageCommand, error) {
	if err := errors.Join(taskID.Validate(), packageID.Validate()); err != nil {
		return FinalizePackageCommand{}, err
	}

	return FinalizePackageCommand{
		taskID:    taskID,
		packageID: packageID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizePackageCommand) Validate() error {
	return c.guard.Validate(ErrFinalizePackageCommandIsNotConstructed)
}

// TaskID returns the packing task the package belongs to.
func (c FinalizePackageCommand) TaskID() kernel.UUID { return c.taskID }

// PackageID returns the package to seal.
func (c FinalizePackageCommand) PackageID() kernel.UUID { return c.packageID }

// Actor returns who sealed the package.
func (c FinalizePackageCommand) Actor() string { return c.actor }
