package delivery

import (
	"fmt"

	"hortifruti/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct courier workflow.
//
// State transitions:
//
//	AwaitingPickup ──> EnRoute ──┬──> Delivered
//	                             └──> Problem
//
// Delivered, Problem and Canceled are terminal: a delivery in any of these
// states is immutable except for read access. Canceled is never entered
// through this panel; it is produced by the backend when an order is
// cancelled before dispatch.
//
// Status is a value object that validates state transitions
// and provides string representations for the wire format and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAwaitingPickup is the initial status when the backend creates a
	// delivery for an order ready for dispatch. The assigned courier has not
	// yet collected the goods.
	StatusAwaitingPickup

	// StatusEnRoute indicates the courier has collected the goods and is on
	// the way to the customer.
	StatusEnRoute

	// StatusDelivered indicates the goods were handed to a recipient.
	// This is a terminal state.
	StatusDelivered

	// StatusProblem indicates the courier reported a problem that prevented
	// delivery. This is a terminal state.
	StatusProblem

	// StatusCanceled indicates the backend cancelled the delivery before
	// completion. This is a terminal state.
	StatusCanceled
)

// getStatusStrings returns a map of Status values to their display names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusAwaitingPickup: "AwaitingPickup",
		StatusEnRoute:        "EnRoute",
		StatusDelivered:      "Delivered",
		StatusProblem:        "Problem",
		StatusCanceled:       "Canceled",
	}
}

// getStatusWireNames returns a map of valid Status values to the names the
// backend uses on the wire. StatusUnknown is intentionally excluded.
func getStatusWireNames() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAwaitingPickup: "AWAITING_PICKUP",
		StatusEnRoute:        "EN_ROUTE",
		StatusDelivered:      "DELIVERED",
		StatusProblem:        "PROBLEM",
		StatusCanceled:       "CANCELED",
	}
}

// StatusFromWire parses a status name as delivered by the backend.
//
// Returns:
//   - the matching Status on success
//   - an error if the name is not a known wire status
func StatusFromWire(s string) (Status, error) {
	for status, name := range getStatusWireNames() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: AwaitingPickup, EnRoute, Delivered, Problem, Canceled.
// StatusUnknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., backend responses) are valid before use.
func (s Status) Validate() error {
	if _, ok := getStatusWireNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "AwaitingPickup", "EnRoute", "Delivered", "Problem" or "Canceled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// WireName returns the name the backend uses for the status on the wire,
// e.g. "AWAITING_PICKUP". Returns an empty string for invalid statuses.
func (s Status) WireName() string {
	return getStatusWireNames()[s]
}

// IsTerminal reports whether the status is final.
// Deliveries in a terminal status are immutable except for read access.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusProblem || s == StatusCanceled
}

// ValidateAssign checks if the status allows courier assignment without
// performing the assignment.
//
// Valid statuses for assignment:
//   - AwaitingPickup (initial assignment or reassignment before pickup)
//
// Any other status rejects assignment: once the courier is en route or the
// delivery reached a terminal state, the assignment is fixed.
//
// Returns:
//   - nil if assignment is allowed from the current status
//   - error with details if assignment is not allowed
func (s Status) ValidateAssign() error {
	if s != StatusAwaitingPickup {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to assign a courier", s.String()))
	}
	return nil
}

// StartRoute transitions the status to EnRoute.
//
// Valid transitions:
//   - AwaitingPickup -> EnRoute (courier collected the goods)
//
// Returns:
//   - (EnRoute, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) StartRoute() (Status, error) {
	if s != StatusAwaitingPickup {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to start the route", s.String()))
	}
	return StatusEnRoute, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - EnRoute -> Delivered (goods handed to a recipient)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != StatusEnRoute {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}
	return StatusDelivered, nil
}

// ReportProblem transitions the status to Problem.
//
// Valid transitions:
//   - EnRoute -> Problem (courier could not deliver)
//
// Returns:
//   - (Problem, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) ReportProblem() (Status, error) {
	if s != StatusEnRoute {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to report a problem", s.String()))
	}
	return StatusProblem, nil
}
