package commands

import (
	"context"

	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler submits delivery status transitions to
// the backend. It enforces two client-side preconditions before any request
// is sent: the active identity must carry the Courier role, and the requested
// transition must be legal from the delivery's current status.
//
// Example:
//
//	handler := NewUpdateDeliveryStatusCommandHandler(backend, session)
//	updated, err := handler.Handle(ctx, cmd, current)
//	switch {
//	case errors.Is(err, errs.ErrAuthorizationDenied):
//	    // not a courier; no request was sent
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // transition not allowed from the current status; no request was sent
//	case err != nil:
//	    // backend rejected the transition
//	}
type UpdateDeliveryStatusCommandHandler struct {
	backend ports.BackendClient
	session Session
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status transitions.
func NewUpdateDeliveryStatusCommandHandler(backend ports.BackendClient, session Session) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		backend: backend,
		session: session,
	}
}

// Handle processes the transition request against the delivery's current
// local representation and returns the backend's updated representation.
// Role and transition preconditions fail locally without a network call.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateDeliveryStatusCommand,
	current *delivery.Delivery,
) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if !h.session.Identity().HasRole(identity.RoleCourier) {
		return nil, errs.NewAuthorizationDeniedError(
			"update delivery status", identity.RoleCourier.String(), actualRole(h.session))
	}

	if err := delivery.ValidateTransition(current.Status(), command.Transition(), command.Payload()); err != nil {
		return nil, err
	}

	token, ok := h.session.Credential()
	if !ok {
		return nil, errs.NewAuthenticationError("no active credential")
	}

	return h.backend.UpdateDeliveryStatus(ctx, token, command.DeliveryID(), command.Transition(), command.Payload())
}
