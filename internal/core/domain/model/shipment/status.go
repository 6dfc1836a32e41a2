// Package shipment models the handover of packed goods to a carrier. A
// shipment is created from a completed packing task, receives a tracking
// number when the carrier label is generated, and then moves forward through
// transit to delivery. Exception captures carrier-side failure and is
// terminal; recovery means creating a new shipment.
package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
type Status int

const (
	StatusUnknown Status = iota

	// StatusCreated means the shipment exists but no label has been bought.
	StatusCreated

	// StatusLabelGenerated means a carrier label and tracking number exist.
	StatusLabelGenerated

	// StatusInTransit means the carrier has the packages.
	StatusInTransit

	// StatusDelivered means the carrier confirmed delivery. Terminal.
	StatusDelivered

	// StatusException means the carrier reported a failure (lost, damaged,
	// returned). Terminal.
	StatusException
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusCreated:        "Created",
		StatusLabelGenerated: "LabelGenerated",
		StatusInTransit:      "InTransit",
		StatusDelivered:      "Delivered",
		StatusException:      "Exception",
	}
}

// transitions is forward-only: no status ever moves back toward Created.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated:        {StatusLabelGenerated, StatusException},
		StatusLabelGenerated: {StatusInTransit, StatusException},
		StatusInTransit:      {StatusDelivered, StatusException},
		StatusDelivered:      {},
		StatusException:      {},
	}
}

// StatusFromString parses a status name, case-sensitively.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment status", s))
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

// IsTerminal reports whether the shipment reached a final state.
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
	return StatusUnknown, errs.NewInvalidTransitionError("Shipment", s.String(), requested.String())
}
