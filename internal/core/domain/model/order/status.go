package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a fixed state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Updated ──┬──> Shipped ──> Delivered
//	          │              │
//	          ├──────────────┴──> Cancelled
//	          └──> Shipped ──────> Delivered
//
// Delivered and Cancelled are terminal. Repeating the current status is not
// listed in the table and is rejected like any other forbidden move.
//
// Status is a value object: the transition table is pure data and the
// decision functions have no side effects.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first registered.
	Created

	// Updated indicates the order details were amended after creation.
	Updated

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Updated:   "UPDATED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Updated:   "UPDATED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getAllowedTransitions returns the permitted next-states per current state.
// The table is the single source of truth for the order workflow; states
// mapped to an empty slice are terminal.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {Updated, Cancelled, Shipped},
		Updated:   {Shipped, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a wire-format status name ("CREATED", "SHIPPED", ...).
//
// Returns:
//   - the matching Status if the name is valid
//   - (Unknown, error) for any other input, including lowercase variants
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Updated, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
//
// Returns:
//   - "CREATED", "UPDATED", "SHIPPED", "DELIVERED" or "CANCELLED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible from this status.
func (s Status) IsTerminal() bool {
	next, ok := getAllowedTransitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to the requested one. Same inputs always produce the same
// decision; no hidden state is consulted.
func (s Status) CanTransitionTo(requested Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == requested {
			return true
		}
	}
	return false
}

// ValidateTransition checks that the requested status is reachable from the
// current one per the transition table.
//
// Self-transitions are rejected: the table never lists a status as its own
// successor, so repeating the current status fails like any other forbidden move.
//
// Returns:
//   - nil if the transition is allowed
//   - *errs.ValueIsInvalidError if the requested status itself is invalid
//   - *errs.InvalidTransitionError if the move is not in the table
//
// Example:
//
//	if err := row.Status().ValidateTransition(order.Delivered); err != nil {
//	    // UPDATED cannot reach DELIVERED directly
//	    return err
//	}
func (s Status) ValidateTransition(requested Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(requested) {
		return errs.NewInvalidTransitionError(s.String(), requested.String())
	}
	return nil
}
