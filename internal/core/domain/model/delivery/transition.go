package delivery

import (
	"fmt"
	"strings"

	"hortifruti/internal/pkg/errs"
)

// Transition identifies a courier-initiated status change request.
// Each transition carries its own required payload fields, validated
// client-side before any request is sent:
//
//	StartRoute    (AwaitingPickup -> EnRoute)  requires nothing
//	Complete      (EnRoute -> Delivered)       requires recipient name and document
//	ReportProblem (EnRoute -> Problem)         requires a problem description
//
// Validation failures are reported as errs.TransitionValidationError keyed by
// transition and field, so callers never match on message substrings.
type Transition int

const (
	// TransitionUnknown represents an invalid or undefined transition.
	TransitionUnknown Transition = iota

	// TransitionStartRoute moves a delivery from AwaitingPickup to EnRoute.
	TransitionStartRoute

	// TransitionComplete moves a delivery from EnRoute to Delivered.
	TransitionComplete

	// TransitionReportProblem moves a delivery from EnRoute to Problem.
	TransitionReportProblem
)

// TransitionPayload carries the additional fields a status change may require.
// Only the fields required by the requested transition are consulted.
type TransitionPayload struct {
	// RecipientName is the name of the person who received the goods.
	// Required by TransitionComplete.
	RecipientName string

	// RecipientDocument is the identity document of the recipient.
	// Required by TransitionComplete.
	RecipientDocument string

	// ProblemDescription explains why the delivery could not be completed.
	// Required by TransitionReportProblem.
	ProblemDescription string
}

// getTransitionStrings returns a map of Transition values to their names.
func getTransitionStrings() map[Transition]string {
	return map[Transition]string{
		TransitionUnknown:       "Unknown",
		TransitionStartRoute:    "StartRoute",
		TransitionComplete:      "Complete",
		TransitionReportProblem: "ReportProblem",
	}
}

// TransitionFromString parses a transition name as submitted by the panel.
// Parsing is case-sensitive and accepts exactly the names produced by String
// on valid transitions.
func TransitionFromString(s string) (Transition, error) {
	for transition, name := range getTransitionStrings() {
		if transition == TransitionUnknown {
			continue
		}
		if name == s {
			return transition, nil
		}
	}
	return TransitionUnknown, errs.NewValueIsInvalidErrorWithCause("transition is invalid",
		fmt.Errorf("%q is not a valid transition", s))
}

// Validate checks if the Transition value is valid.
// TransitionUnknown (0) and any other values are invalid.
func (t Transition) Validate() error {
	switch t {
	case TransitionStartRoute, TransitionComplete, TransitionReportProblem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transition is invalid",
			fmt.Errorf("%d is not a valid transition", t))
	}
}

// String returns the name of the transition.
// It implements the fmt.Stringer interface and is safe to call on any value.
func (t Transition) String() string {
	if str, ok := getTransitionStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Target returns the status the transition leads to,
// or StatusUnknown for an invalid transition.
func (t Transition) Target() Status {
	switch t {
	case TransitionStartRoute:
		return StatusEnRoute
	case TransitionComplete:
		return StatusDelivered
	case TransitionReportProblem:
		return StatusProblem
	default:
		return StatusUnknown
	}
}

// ValidateTransition checks whether a transition with the given payload would
// be accepted from the given status, without performing it. The payload is
// checked first, then the state machine; the first failure wins.
//
// This is the client-side precondition used before any request is sent.
func ValidateTransition(from Status, t Transition, payload TransitionPayload) error {
	if err := t.ValidatePayload(payload); err != nil {
		return err
	}

	var err error
	switch t {
	case TransitionStartRoute:
		_, err = from.StartRoute()
	case TransitionComplete:
		_, err = from.Complete()
	case TransitionReportProblem:
		_, err = from.ReportProblem()
	default:
		err = t.Validate()
	}
	return err
}

// ValidatePayload checks that the payload carries every field the transition
// requires. Fields consisting only of whitespace count as missing.
//
// Returns:
//   - nil when the payload satisfies the transition
//   - errs.TransitionValidationError naming the first missing field otherwise
func (t Transition) ValidatePayload(payload TransitionPayload) error {
	switch t {
	case TransitionStartRoute:
		return nil
	case TransitionComplete:
		if strings.TrimSpace(payload.RecipientName) == "" {
			return errs.NewTransitionValidationError(t.String(), "recipientName")
		}
		if strings.TrimSpace(payload.RecipientDocument) == "" {
			return errs.NewTransitionValidationError(t.String(), "recipientDocument")
		}
		return nil
	case TransitionReportProblem:
		if strings.TrimSpace(payload.ProblemDescription) == "" {
			return errs.NewTransitionValidationError(t.String(), "problemDescription")
		}
		return nil
	default:
		return t.Validate()
	}
}
