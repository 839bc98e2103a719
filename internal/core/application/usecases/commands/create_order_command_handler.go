package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderResult carries the outcome of an idempotent order creation.
// WasCreated distinguishes a fresh row from a pre-existing one; the returned
// aggregate is the authoritative row either way.
type CreateOrderResult struct {
	Order      *order.Order
	WasCreated bool
}

// CreateOrderCommandHandler handles the business logic for order creation.
// CreateIfAbsent is the sole write: re-creating an existing id returns the
// existing row untouched, so the operation is safe to retry.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand("ORD-1", order.Created)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// result.WasCreated tells whether the row was just inserted
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for the post-commit order.created notification.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Creation is unconditional (the state machine always permits it) and
// idempotent. The order.created event is handed to the publisher only after
// the transaction has committed, and only for a genuinely new row; the
// publish outcome never affects the returned result.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Status())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	row, wasCreated, err := uow.OrderRepository().CreateIfAbsent(ctx, aggregate)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	if wasCreated {
		h.publisher.PublishOrderCreated(order.NewCreatedEvent(row))
	}

	return CreateOrderResult{Order: row, WasCreated: wasCreated}, nil
}
