package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
//
// The four failure modes of a status transition stay distinct on the wire:
// 400 malformed payload, 404 unknown order, 409 stale expected version,
// 422 transition forbidden by the state machine.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves the current order state.
func (s *Server) GetOrder(ctx echo.Context, orderId string) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "order not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:      snapshot.ID,
		Status:  servers.OrderStatus(snapshot.Status.String()),
		Version: snapshot.Version,
	})
}

// CreateOrder handles POST /api/v1/orders - registers an order idempotently.
// A fresh row answers 201, an already existing one answers 200 untouched.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status := order.Created
	if newOrder.Status != nil {
		parsed, err := order.StatusFromString(string(*newOrder.Status))
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + err.Error(),
			})
		}
		status = parsed
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.Id, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	code := http.StatusOK
	if result.WasCreated {
		code = http.StatusCreated
	}

	return ctx.JSON(code, servers.CreateOrderResponse{
		Created: result.WasCreated,
		Id:      result.Order.ID(),
		Status:  result.Order.Status().String(),
		Version: result.Order.Version(),
	})
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status - transitions
// an order's status with optional optimistic concurrency control.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId string) error {
	var body servers.UpdateOrderStatus
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	var meta map[string]any
	if body.Meta != nil {
		meta = *body.Meta
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderId, newStatus, body.Version, meta)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition request: " + err.Error(),
		})
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.transitionError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UpdateOrderStatusResponse{
		Ok:      true,
		Id:      updated.ID(),
		Status:  updated.Status().String(),
		Version: updated.Version(),
	})
}

// transitionError maps the transition failure modes to their status codes.
func (s *Server) transitionError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrVersionConflict):
		return ctx.JSON(http.StatusConflict, servers.ConflictError{
			Ok:       false,
			Conflict: true,
			Reason:   "version mismatch",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update order status",
		})
	}
}
