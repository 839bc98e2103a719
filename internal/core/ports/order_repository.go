package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The locking methods only make sense inside a unit of work: the row-scope
// lock they acquire is held for the remainder of the active transaction and
// released strictly at commit or rollback.
type OrderRepository interface {
	// GetForUpdate retrieves an order by id while acquiring an exclusive
	// row-scope lock for the rest of the transaction. Concurrent writers and
	// readers-for-update on the same id block until the lock is released;
	// plain reads are unaffected.
	// Returns *errs.ObjectNotFoundError if the order does not exist.
	GetForUpdate(ctx context.Context, id string) (*order.Order, error)

	// GetForUpdateWithVersion has the same lock semantics as GetForUpdate,
	// but the row must additionally match expectedVersion. A row with a
	// different version yields *errs.ObjectNotFoundError; the caller must
	// disambiguate not-found from version-conflict via Exists.
	GetForUpdateWithVersion(ctx context.Context, id string, expectedVersion int) (*order.Order, error)

	// ConditionalUpdate sets the new status, increments version by exactly 1
	// and refreshes updated_at, all under the lock already held on the row.
	// The returned aggregate reflects the increment just applied; it is never
	// re-read from a stale snapshot.
	ConditionalUpdate(ctx context.Context, id string, newStatus order.Status) (*order.Order, error)

	// CreateIfAbsent persists the aggregate unless a row with the same id
	// already exists. Idempotent: re-creating an existing id returns the
	// existing row with wasCreated=false and never resets it.
	CreateIfAbsent(ctx context.Context, aggregate *order.Order) (*order.Order, bool, error)

	// Exists reports whether an order with the given id exists, without
	// taking any lock. Used only to disambiguate not-found from
	// version-conflict after a failed GetForUpdateWithVersion.
	Exists(ctx context.Context, id string) (bool, error)
}
