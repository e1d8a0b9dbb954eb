package order

import (
	"fmt"

	"burgerpos/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Open ──> Submitted ──> Completed
//
// Open orders are being assembled at the till, Submitted orders sit on the active
// board waiting for the kitchen, and Completed is terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Open
	Submitted
	Completed
)

var statusNames = map[Status]string{
	Open:      "Open",
	Submitted: "Submitted",
	Completed: "Completed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateEdit reports whether items may still be added to or removed from the order.
func (s Status) ValidateEdit() error {
	if s != Open {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to change items", s),
		)
	}
	return nil
}

// Submit transitions Open -> Submitted.
func (s Status) Submit() (Status, error) {
	if s != Open {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to submit", s),
		)
	}
	return Submitted, nil
}

// Complete transitions Submitted -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Submitted {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return Completed, nil
}
