package queries

import (
	"errors"

	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery requests a manager-scoped delivery listing, optionally
// narrowed by status and assigned courier.
type GetDeliveriesQuery struct {
	status    *delivery.Status
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a validated listing query.
// Nil filter values mean "do not filter".
func NewGetDeliveriesQuery(status *delivery.Status, courierID *kernel.UUID) (GetDeliveriesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}

	return GetDeliveriesQuery{
		status:    status,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status filter, or nil when not filtering.
func (q *GetDeliveriesQuery) Status() *delivery.Status {
	return q.status
}

// CourierID returns the courier filter, or nil when not filtering.
func (q *GetDeliveriesQuery) CourierID() *kernel.UUID {
	return q.courierID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesQueryIsNotConstructed if validation fails.
func (q *GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(
		ErrGetDeliveriesQueryIsNotConstructed,
	)
}
