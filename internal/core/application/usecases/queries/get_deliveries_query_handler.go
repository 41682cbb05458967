package queries

import (
	"context"

	"hortifruti/internal/core/application/usecases/commands"
	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/pkg/errs"
)

// GetDeliveriesQueryHandler fetches filtered delivery listings for managers.
// Requires the Manager role; the check fails locally without a network call.
type GetDeliveriesQueryHandler struct {
	backend ports.BackendClient
	session commands.Session
}

// NewGetDeliveriesQueryHandler creates a handler for manager delivery listings.
func NewGetDeliveriesQueryHandler(backend ports.BackendClient, session commands.Session) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{
		backend: backend,
		session: session,
	}
}

// Handle fetches deliveries matching the query's filters from the backend.
func (h GetDeliveriesQueryHandler) Handle(ctx context.Context, query GetDeliveriesQuery) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ident := h.session.Identity()
	if !ident.HasRole(identity.RoleManager) {
		role := identity.RoleUnknown.String()
		if ident != nil {
			role = ident.Role().String()
		}
		return nil, errs.NewAuthorizationDeniedError(
			"list deliveries", identity.RoleManager.String(), role)
	}

	token, ok := h.session.Credential()
	if !ok {
		return nil, errs.NewAuthenticationError("no active credential")
	}

	return h.backend.ListDeliveries(ctx, token, ports.DeliveryFilter{
		Status:    query.Status(),
		CourierID: query.CourierID(),
	})
}
