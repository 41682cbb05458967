package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
	// through a factory method. This ensures all deliveries are properly validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")
)

// Delivery represents a courier-assigned unit of work tied to one customer
// order, tracked through a fixed status lifecycle. It is the aggregate root
// of the courier workflow.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier and a constructed order snapshot
//   - Must have a non-empty delivery address
//   - Belongs to exactly one order and, once assigned, to exactly one courier
//   - Status transitions follow the Status state machine
//   - The completion timestamp is set exactly when a terminal status is entered
//   - Becomes immutable once in a terminal status, except for read access
//   - Can only be created through NewDelivery or RestoreDelivery
//
// The backend remains the source of truth: the panel validates transitions
// client-side as a precondition, then defers to the backend's returned
// representation on every refresh.
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// order is the read-only customer order snapshot
	order Order

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// address is the delivery destination
	address string

	// status represents the current state in the delivery lifecycle
	status Status

	// completedAt is set only when a terminal status is entered
	completedAt *time.Time

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a new Delivery in AwaitingPickup status with no courier.
// This mirrors how the backend creates a delivery when an order is ready for
// dispatch; the panel uses it mainly in tests and fixtures.
//
// Parameters:
//   - id: Unique identifier for the delivery (must be valid UUID)
//   - order: Constructed order snapshot
//   - address: Delivery destination (must be non-empty)
//
// Returns:
//   - *Delivery: The created delivery if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDelivery(id kernel.UUID, order Order, address string) (*Delivery, error) {
	d := &Delivery{
		status:        StatusAwaitingPickup,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrder(order),
		d.setAddress(address),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from a backend representation.
// Unlike NewDelivery it accepts any valid status, an optional assigned courier
// and an optional completion timestamp, and enforces consistency between them:
// a completion timestamp is only valid on a terminal status.
func RestoreDelivery(
	id kernel.UUID,
	order Order,
	address string,
	status Status,
	courierID *kernel.UUID,
	completedAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrder(order),
		d.setAddress(address),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cid := *courierID
		d.courierID = &cid
	}

	if completedAt != nil {
		if !status.IsTerminal() {
			return nil, errs.NewValueIsInvalidErrorWithCause("completedAt",
				fmt.Errorf("%s is not a terminal status", status.String()))
		}
		ts := *completedAt
		d.completedAt = &ts
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Order returns the read-only customer order snapshot.
func (d *Delivery) Order() Order {
	return d.order
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (d *Delivery) Courier() *kernel.UUID {
	return d.courierID
}

// Address returns the delivery destination.
func (d *Delivery) Address() string {
	return d.address
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// CompletedAt returns the completion timestamp,
// or nil while the delivery is not in a terminal status.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// AssignCourier assigns the delivery to a courier.
//
// This method enforces the following business rules:
//   - The courier ID must be valid
//   - The delivery must be in AwaitingPickup status
//   - Reassignment before pickup is allowed
//
// Assignment is a manager operation; every other mutation comes from the
// assigned courier through Apply.
func (d *Delivery) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := d.status.ValidateAssign(); err != nil {
		return err
	}

	d.courierID = &courierID
	return nil
}

// Apply performs a courier-initiated status transition.
//
// The payload is validated first, without touching the state; then the
// Status state machine decides whether the transition is allowed from the
// current status. Entering a terminal status records now as the completion
// timestamp.
//
// Returns:
//   - nil on success
//   - errs.TransitionValidationError if a required payload field is missing
//   - a status validation error if the transition is not allowed
func (d *Delivery) Apply(transition Transition, payload TransitionPayload, now time.Time) error {
	if err := transition.ValidatePayload(payload); err != nil {
		return err
	}

	var (
		next Status
		err  error
	)
	switch transition {
	case TransitionStartRoute:
		next, err = d.status.StartRoute()
	case TransitionComplete:
		next, err = d.status.Complete()
	case TransitionReportProblem:
		next, err = d.status.ReportProblem()
	default:
		return transition.Validate()
	}
	if err != nil {
		return err
	}

	d.status = next
	if next.IsTerminal() {
		ts := now
		d.completedAt = &ts
	}
	return nil
}

// setID validates and sets the delivery's unique identifier.
// This is a private method used only during construction.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setOrder validates and sets the order snapshot.
func (d *Delivery) setOrder(order Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	d.order = order
	return nil
}

// setAddress validates and sets the delivery destination.
func (d *Delivery) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

// setStatus validates and sets the current status.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
