// Package order provides domain entities and business logic for order lifecycle
// tracking. It implements the Order aggregate root with optimistic versioning
// and a fixed status state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, status, and version
//   - Status: A state machine that enforces valid order status transitions
//   - CreatedEvent / StatusChangedEvent: ephemeral values handed to the
//     notification publisher after a commit; their loss is tolerated
//
// Key business rules:
//   - Orders must have a valid caller-assigned identifier (opaque string)
//   - Order status follows the fixed workflow table in status.go; Delivered
//     and Cancelled are terminal and repeating the current status is rejected
//   - Version starts at 0 and counts successful transitions exactly
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
