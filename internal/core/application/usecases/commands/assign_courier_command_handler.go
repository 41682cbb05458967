package commands

import (
	"context"

	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/pkg/errs"
)

// AssignCourierCommandHandler submits courier assignments to the backend.
// Requires the Manager role; the check fails locally without a network call.
type AssignCourierCommandHandler struct {
	backend ports.BackendClient
	session Session
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(backend ports.BackendClient, session Session) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		backend: backend,
		session: session,
	}
}

// Handle processes the assignment request and returns the backend's updated
// representation of the delivery.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if !h.session.Identity().HasRole(identity.RoleManager) {
		return nil, errs.NewAuthorizationDeniedError(
			"assign courier", identity.RoleManager.String(), actualRole(h.session))
	}

	token, ok := h.session.Credential()
	if !ok {
		return nil, errs.NewAuthenticationError("no active credential")
	}

	return h.backend.AssignCourier(ctx, token, command.DeliveryID(), command.CourierID())
}
