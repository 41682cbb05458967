package commands

import (
	"errors"

	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand associates a courier with a delivery that is still
// awaiting pickup. This is the one delivery mutation reserved for managers.
type AssignCourierCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a validated assignment request.
func NewAssignCourierCommand(deliveryID, courierID kernel.UUID) (AssignCourierCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return AssignCourierCommand{}, err
	}
	if err := courierID.Validate(); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the target delivery's identifier.
func (c *AssignCourierCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CourierID returns the courier to assign.
func (c *AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c *AssignCourierCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignCourierCommandIsNotConstructed,
	)
}
