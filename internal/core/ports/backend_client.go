package ports

import (
	"context"

	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/domain/model/kernel"
)

// DeliveryFilter narrows a manager-scoped delivery listing.
// Nil fields are not applied.
type DeliveryFilter struct {
	Status    *delivery.Status
	CourierID *kernel.UUID
}

// BackendClient is the outbound port to the retail REST API, the source of
// truth for identities, orders and deliveries.
//
// Every method takes the bearer credential explicitly; the client never holds
// ambient authentication state, so unrelated call sites cannot observe each
// other's credentials. Methods return domain objects reconstructed from the
// backend representation, and classify failures as:
//   - errs.AuthenticationError for rejected logins
//   - errs.ObjectNotFoundError for 404 responses
//   - errs.RequestFailureError for network errors and other non-2xx responses,
//     preferring the server-supplied message when one is present
type BackendClient interface {
	// Authenticate submits email and secret and returns the bearer token.
	Authenticate(ctx context.Context, email, secret string) (string, error)

	// CurrentIdentity fetches the identity the token belongs to.
	CurrentIdentity(ctx context.Context, token string) (*identity.Identity, error)

	// ListMyDeliveries returns the deliveries assigned to the authenticated
	// courier. Scoping happens server-side from the token.
	ListMyDeliveries(ctx context.Context, token string) ([]*delivery.Delivery, error)

	// ListDeliveries returns deliveries matching the filter. Manager scope.
	ListDeliveries(ctx context.Context, token string, filter DeliveryFilter) ([]*delivery.Delivery, error)

	// UpdateDeliveryStatus submits a status transition and returns the
	// backend's updated representation of the delivery.
	UpdateDeliveryStatus(
		ctx context.Context,
		token string,
		deliveryID kernel.UUID,
		transition delivery.Transition,
		payload delivery.TransitionPayload,
	) (*delivery.Delivery, error)

	// AssignCourier associates a courier with a delivery and returns the
	// backend's updated representation. Manager scope.
	AssignCourier(ctx context.Context, token string, deliveryID, courierID kernel.UUID) (*delivery.Delivery, error)
}
