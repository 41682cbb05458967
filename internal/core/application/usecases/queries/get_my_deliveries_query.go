package queries

import (
	"errors"

	"hortifruti/internal/pkg/guard"
)

var ErrGetMyDeliveriesQueryIsNotConstructed = errors.New(
	"GetMyDeliveriesQuery must be created via NewGetMyDeliveriesQuery constructor",
)

// GetMyDeliveriesQuery requests the authenticated courier's current delivery
// list. The backend scopes the result server-side from the bearer token, so
// the query itself carries no parameters.
type GetMyDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMyDeliveriesQuery creates a new query for the courier's deliveries.
func NewGetMyDeliveriesQuery() GetMyDeliveriesQuery {
	return GetMyDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyDeliveriesQueryIsNotConstructed if validation fails.
func (q *GetMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(
		ErrGetMyDeliveriesQueryIsNotConstructed,
	)
}
