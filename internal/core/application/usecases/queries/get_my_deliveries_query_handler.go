package queries

import (
	"context"

	"hortifruti/internal/core/application/usecases/commands"
	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/pkg/errs"
)

// GetMyDeliveriesQueryHandler fetches the authenticated courier's deliveries.
// Requires the Courier role; the check fails locally without a network call.
type GetMyDeliveriesQueryHandler struct {
	backend ports.BackendClient
	session commands.Session
}

// NewGetMyDeliveriesQueryHandler creates a handler for the courier's delivery list.
func NewGetMyDeliveriesQueryHandler(backend ports.BackendClient, session commands.Session) GetMyDeliveriesQueryHandler {
	return GetMyDeliveriesQueryHandler{
		backend: backend,
		session: session,
	}
}

// Handle fetches the courier's current delivery list from the backend.
func (h GetMyDeliveriesQueryHandler) Handle(ctx context.Context, query GetMyDeliveriesQuery) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ident := h.session.Identity()
	if !ident.HasRole(identity.RoleCourier) {
		role := identity.RoleUnknown.String()
		if ident != nil {
			role = ident.Role().String()
		}
		return nil, errs.NewAuthorizationDeniedError(
			"list my deliveries", identity.RoleCourier.String(), role)
	}

	token, ok := h.session.Credential()
	if !ok {
		return nil, errs.NewAuthenticationError("no active credential")
	}

	return h.backend.ListMyDeliveries(ctx, token)
}
