package orderrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// When constructed from an active unit of work the db handle is the open
// transaction, which gives SELECT ... FOR UPDATE its row-scope lock semantics:
// the lock is held until that transaction commits or rolls back.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository bound to the
// given connection or transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// GetForUpdate retrieves an order by id under SELECT ... FOR UPDATE.
// Concurrent writers and readers-for-update on the same id block until the
// surrounding transaction releases the lock; plain reads are unaffected.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdateWithVersion retrieves an order by id and version under
// SELECT ... FOR UPDATE. A row that exists with a different version behaves
// like an absent row here; callers disambiguate via Exists.
func (r *GormOrderRepository) GetForUpdateWithVersion(
	ctx context.Context,
	id string,
	expectedVersion int,
) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ? AND version = ?", id, expectedVersion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ConditionalUpdate applies the status change under the lock already held on
// the row: status = newStatus, version = version + 1, updated_at = now. The
// UPDATE ... RETURNING clause yields the freshly written row, so the returned
// version reflects the increment just applied rather than any stale snapshot.
func (r *GormOrderRepository) ConditionalUpdate(
	ctx context.Context,
	id string,
	newStatus order.Status,
) (*order.Order, error) {
	var dto OrderDTO
	result := r.db.WithContext(ctx).
		Model(&dto).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     newStatus.String(),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}

	return toDomain(dto)
}

// CreateIfAbsent persists a new order row unless one with the same id already
// exists (INSERT ... ON CONFLICT DO NOTHING). Idempotent: when the row exists
// it is returned untouched with wasCreated=false, regardless of the desired
// initial status on the incoming aggregate.
func (r *GormOrderRepository) CreateIfAbsent(
	ctx context.Context,
	aggregate *order.Order,
) (*order.Order, bool, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, false, err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return nil, false, result.Error
	}

	if result.RowsAffected == 0 {
		var existing OrderDTO
		if err := r.db.WithContext(ctx).First(&existing, "id = ?", dto.ID).Error; err != nil {
			return nil, false, err
		}

		restored, err := toDomain(existing)
		return restored, false, err
	}

	created, err := toDomain(dto)
	return created, true, err
}

// Exists reports whether an order row with the given id exists.
// Plain read, no lock taken.
func (r *GormOrderRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
