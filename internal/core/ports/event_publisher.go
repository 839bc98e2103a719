package ports

import (
	"orders/internal/core/domain/model/order"
)

// EventPublisher is the best-effort, fire-and-forget notification sink for
// order lifecycle events.
//
// Both methods must be called strictly after the surrounding transaction has
// committed, never inside it. Implementations never return an error and never
// block the caller beyond handing the event off: transport, serialization and
// connectivity failures are caught, logged and discarded. With no transport
// configured, publishing is a silent no-op. Delivery is at-most-once; loss on
// transport failure is an accepted outcome, not an error.
type EventPublisher interface {
	// PublishOrderCreated announces a genuinely created order
	// (topic order.created).
	PublishOrderCreated(event order.CreatedEvent)

	// PublishOrderStatusChanged announces a committed status transition
	// (topic order.status.updated).
	PublishOrderStatusChanged(event order.StatusChangedEvent)
}
