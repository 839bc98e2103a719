package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to transition an order to a
// new status. ExpectedVersion is the optional optimistic-concurrency check: a
// caller-supplied version used to detect a stale read before writing. Meta is
// an opaque pass-through object attached to the resulting notification.
//
// Example:
//
//	expected := 1
//	cmd, err := NewUpdateOrderStatusCommand("ORD-1", order.Shipped, &expected, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, publisher)
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         string
	newStatus       order.Status
	expectedVersion *int
	meta            map[string]any

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order's status.
// Validates the order id, the requested status value, and that the expected
// version, when supplied, is non-negative. Whether the transition itself is
// permitted is decided later, against the currently locked row.
func NewUpdateOrderStatusCommand(
	orderID string,
	newStatus order.Status,
	expectedVersion *int,
	meta map[string]any,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		meta:  meta,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// ExpectedVersion returns the optional optimistic-concurrency version check.
// Nil means the caller opted out of version enforcement.
func (c UpdateOrderStatusCommand) ExpectedVersion() *int {
	return c.expectedVersion
}

// Meta returns the opaque metadata attached to the transition.
func (c UpdateOrderStatusCommand) Meta() map[string]any {
	return c.meta
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	if len(orderID) > order.MaxIDLength {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setExpectedVersion(expectedVersion *int) error {
	if expectedVersion != nil && *expectedVersion < 0 {
		return errs.NewValueIsInvalidError("expectedVersion")
	}

	c.expectedVersion = expectedVersion
	return nil
}
