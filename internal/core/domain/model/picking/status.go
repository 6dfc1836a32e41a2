// Package picking models the warehouse picking task generated for an
// allocated order. A task lists every reservation as a line to pick, gets
// assigned to a picker, accumulates recorded picks, and completes once every
// line has been recorded. Short picks are allowed; picking more than was
// reserved is not.
package picking

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a picking task.
type Status int

const (
	StatusUnknown Status = iota

	// StatusPending means the task exists but no picker has started it.
	StatusPending

	// StatusInProgress means a picker is working the task.
	StatusInProgress

	// StatusCompleted means every line has a recorded pick. Terminal.
	StatusCompleted

	// StatusCancelled means the task was abandoned, usually because the
	// order was cancelled. Terminal.
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
			fmt.Errorf("%d is not a valid picking task status", s))
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
	return StatusUnknown, errs.NewInvalidTransitionError("PickingTask", s.String(), requested.String())
}
