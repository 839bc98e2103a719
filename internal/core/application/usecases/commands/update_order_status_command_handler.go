package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler is the only entry point that mutates an
// order's status. It enforces the lost-update and invalid-transition
// invariants inside one short transaction scope:
//
//	row lock -> transition check -> conditional update -> commit -> publish
//
// The lock scope is deliberately minimal: no network call happens while the
// row lock is held, so broker latency can never gate store throughput.
// Concurrent transitions on different ids proceed fully in parallel;
// transitions on the same id serialize at the lock and observe each other's
// committed version, which makes a lost update impossible.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for the post-commit order.status.updated notification.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes a status transition request.
//
// Outcomes are distinct and never coerced into one another:
//   - *errs.ObjectNotFoundError: no order with the given id
//   - *errs.VersionConflictError: the row exists but does not match the
//     caller-supplied expected version
//   - *errs.InvalidTransitionError: the requested status is not reachable
//     from the current one; the transaction is aborted with no partial write
//
// On success the returned aggregate is the freshly committed row. The
// order.status.updated event is dispatched only after the commit and its
// outcome does not alter the result already determined.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	row, err := h.lockRow(ctx, repo, cmd)
	if err != nil {
		return nil, err
	}

	if err = row.Status().ValidateTransition(cmd.NewStatus()); err != nil {
		return nil, err
	}

	updated, err := repo.ConditionalUpdate(ctx, cmd.OrderID(), cmd.NewStatus())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishOrderStatusChanged(order.NewStatusChangedEvent(updated, cmd.Meta()))

	return updated, nil
}

// lockRow acquires the row-scope lock, with or without the optimistic version
// filter. A conditional miss is disambiguated through a lock-free existence
// probe: an existing row means the caller's version is stale, anything else
// is a genuine not-found.
func (h *UpdateOrderStatusCommandHandler) lockRow(
	ctx context.Context,
	repo ports.OrderRepository,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	expected := cmd.ExpectedVersion()
	if expected == nil {
		return repo.GetForUpdate(ctx, cmd.OrderID())
	}

	row, err := repo.GetForUpdateWithVersion(ctx, cmd.OrderID(), *expected)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	exists, existsErr := repo.Exists(ctx, cmd.OrderID())
	if existsErr != nil {
		return nil, existsErr
	}
	if exists {
		return nil, errs.NewVersionConflictError(cmd.OrderID(), *expected)
	}

	return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
}
