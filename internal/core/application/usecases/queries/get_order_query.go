// Package queries contains read-only operations over the order store.
// Query handlers read through GORM directly instead of the repository ports:
// they take no locks and never mutate state, so they bypass the unit of work.
package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its caller-assigned identifier.
//
// Example:
//
//	query, err := NewGetOrderQuery("ORD-1")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
// Validates that the order id is present and within length limits.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	if len(orderID) > order.MaxIDLength {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("orderID")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// GetOrderQueryResponse represents the order snapshot returned to callers.
type GetOrderQueryResponse struct {
	ID      string
	Status  order.Status
	Version int
}
