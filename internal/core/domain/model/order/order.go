package order

import (
	"errors"
	"time"

	"orders/internal/pkg/errs"
)

// MaxIDLength bounds the caller-assigned order identifier.
const MaxIDLength = 64

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a tracked order in the system. It is the aggregate root that
// manages the order lifecycle from creation through its status transitions.
//
// Order follows these invariants:
//   - The identifier is an opaque caller-assigned string, immutable once created
//   - Status is always a value reachable from creation via the transition table
//   - Version starts at 0 and is incremented by exactly 1 on every successful
//     transition; it never decreases and never skips
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the caller-assigned identifier for the order
	id string

	// status represents the current state in the order lifecycle
	status Status

	// version counts the successful transitions applied since creation
	version int

	// updatedAt is the timestamp of the last mutation, set by the store
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. Creation is
// unconditional with respect to the state machine: any valid status is an
// acceptable starting point, and the version always starts at 0.
//
// Parameters:
//   - id: Caller-assigned identifier (non-empty, at most MaxIDLength characters)
//   - status: Initial status (must be a valid Status value)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	o, err := order.NewOrder("ORD-1", order.Created)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id string, status Status) (*Order, error) {
	o := &Order{
		version:       0,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Used by the
// storage adapter when mapping rows back to the domain.
//
// Unlike NewOrder it accepts an existing version and timestamp, but it still
// validates the identifier and status so corrupted rows never become live
// aggregates.
func RestoreOrder(id string, status Status, version int, updatedAt time.Time) (*Order, error) {
	o := &Order{
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder/RestoreOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's caller-assigned identifier.
func (o *Order) ID() string {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the number of successful transitions applied since creation.
func (o *Order) Version() int {
	return o.version
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus applies a status transition to the order.
//
// This method enforces the following business rules:
//   - The requested status must be reachable from the current status per the
//     transition table (self-transitions are rejected)
//   - Every successful transition increments the version by exactly 1
//
// Returns:
//   - nil on successful transition
//   - *errs.InvalidTransitionError if the move is not allowed
//
// Example:
//
//	if err := o.ChangeStatus(order.Shipped); err != nil {
//	    // Transition not permitted from the current status
//	}
func (o *Order) ChangeStatus(requested Status) error {
	if err := o.status.ValidateTransition(requested); err != nil {
		return err
	}

	o.status = requested
	o.version++
	return nil
}

// setID validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	if len(id) > MaxIDLength {
		return errs.NewValueIsInvalidError("id")
	}
	o.id = id
	return nil
}

// setStatus validates and sets the order's status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setVersion validates and sets the order's version.
// Version must be non-negative.
// This is a private method used only during restoration.
func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidError("version")
	}
	o.version = version
	return nil
}
