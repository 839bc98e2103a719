package commands_test

import (
	"errors"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, id string, status order.Status, version int) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, status, version, time.Now())
	require.NoError(t, err)
	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORD-1", order.Updated, nil, map[string]any{"actor": "ops"})
	locked := restoredOrder(t, "ORD-1", order.Created, 0)
	updated := restoredOrder(t, "ORD-1", order.Updated, 1)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, "ORD-1").Return(locked, nil).Once(),
		repo.On("ConditionalUpdate", mock.Anything, "ORD-1", order.Updated).Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderStatusChanged", order.StatusChangedEvent{
		OrderID:   "ORD-1",
		NewStatus: order.Updated,
		Version:   1,
		Meta:      map[string]any{"actor": "ops"},
	}).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Updated, result.Status())
	assert.Equal(t, 1, result.Version())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_WithExpectedVersion(t *testing.T) {
	ctx := t.Context()
	expected := 1
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORD-1", order.Shipped, &expected, nil)
	locked := restoredOrder(t, "ORD-1", order.Updated, 1)
	updated := restoredOrder(t, "ORD-1", order.Shipped, 2)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdateWithVersion", mock.Anything, "ORD-1", 1).Return(locked, nil).Once(),
		repo.On("ConditionalUpdate", mock.Anything, "ORD-1", order.Shipped).Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderStatusChanged", mock.AnythingOfType("order.StatusChangedEvent")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Version())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORD-404", order.Updated, nil, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, "ORD-404").
			Return(nil, errs.NewObjectNotFoundError("orderID", "ORD-404")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFoundWithExpectedVersion(t *testing.T) {
	ctx := t.Context()
	expected := 0
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORD-404", order.Updated, &expected, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdateWithVersion", mock.Anything, "ORD-404", 0).
			Return(nil, errs.NewObjectNotFoundError("orderID", "ORD-404")).Once(),
		repo.On("Exists", mock.Anything, "ORD-404").Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NotErrorIs(t, err, errs.ErrVersionConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	expected := 0
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORD-1", order.Delivered, &expected, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdateWithVersion", mock.Anything, "ORD-1", 0).
			Return(nil, errs.NewObjectNotFoundError("orderID", "ORD-1")).Once(),
		repo.On("Exists", mock.Anything, "ORD-1").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionConflict)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)

	var conflict *errs.VersionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "ORD-1", conflict.ID)
	assert.Equal(t, 0, conflict.ExpectedVersion)
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORD-1", order.Delivered, nil, nil)
	locked := restoredOrder(t, "ORD-1", order.Updated, 1)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, "ORD-1").Return(locked, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	// No partial write: the conditional update is never reached.
	repo.AssertNotCalled(t, "ConditionalUpdate", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand("ORD-1", order.Updated, nil, nil)
	locked := restoredOrder(t, "ORD-1", order.Created, 0)
	updated := restoredOrder(t, "ORD-1", order.Updated, 1)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, "ORD-1").Return(locked, nil).Once(),
		repo.On("ConditionalUpdate", mock.Anything, "ORD-1", order.Updated).Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	// Nothing committed means nothing published.
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)
	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
