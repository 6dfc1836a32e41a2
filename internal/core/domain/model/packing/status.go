// Package packing models the packing task that turns picked goods into
// sealed packages. A task owns its packages; items are added to open
// packages under a weight cap, packages are finalized, and the task
// completes once every picked quantity is boxed and every package is
// finalized.
package packing

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a packing task.
type Status int

const (
	StatusUnknown Status = iota

	// StatusPending means the task exists but packing has not started.
	StatusPending

	// StatusInProgress means at least one package has been opened.
	StatusInProgress

	// StatusCompleted means all packages are finalized and every picked
	// quantity is packed. Terminal.
	StatusCompleted

	// StatusCancelled means the task was abandoned. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusInProgress, StatusCancelled},
		StatusInProgress: {StatusCompleted, StatusCancelled},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid packing task status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the task reached a final state.
func (s Status) IsTerminal() bool {
	return len(transitions()[s]) == 0 && s.Validate() == nil
}

// TransitionTo returns the requested status if the move is legal.
func (s Status) TransitionTo(requested Status) (Status, error) {
	for _, next := range transitions()[s] {
		if next == requested {
			return requested, nil
		}
	}
	return StatusUnknown, errs.NewInvalidTransitionError("PackingTask", s.String(), requested.String())
}
