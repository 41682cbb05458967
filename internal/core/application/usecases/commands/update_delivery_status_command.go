package commands

import (
	"errors"

	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand requests a status transition for one delivery.
// The transition payload is validated at construction time, so a command with
// a missing required field can never exist: the validation failure surfaces
// locally, before any network call.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand(id, delivery.TransitionComplete, delivery.TransitionPayload{
//	    RecipientName:     "Maria Souza",
//	    RecipientDocument: "123.456.789-00",
//	})
//	if err != nil {
//	    // errs.TransitionValidationError: a required field is missing
//	}
type UpdateDeliveryStatusCommand struct {
	deliveryID kernel.UUID
	transition delivery.Transition
	payload    delivery.TransitionPayload

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a validated transition request.
// Returns an error if the delivery ID is invalid, the transition is not part
// of the courier workflow, or the payload misses a required field.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	transition delivery.Transition,
	payload delivery.TransitionPayload,
) (UpdateDeliveryStatusCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if err := transition.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if err := transition.ValidatePayload(payload); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		deliveryID: deliveryID,
		transition: transition,
		payload:    payload,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the target delivery's identifier.
func (c *UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Transition returns the requested transition.
func (c *UpdateDeliveryStatusCommand) Transition() delivery.Transition {
	return c.transition
}

// Payload returns the transition payload.
func (c *UpdateDeliveryStatusCommand) Payload() delivery.TransitionPayload {
	return c.payload
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c *UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(
		ErrUpdateDeliveryStatusCommandIsNotConstructed,
	)
}
