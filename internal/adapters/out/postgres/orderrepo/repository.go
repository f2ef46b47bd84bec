package orderrepo

import (
	"context"
	"errors"

	"zinger/internal/core/domain/model/order"
	"zinger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order by ID with SELECT ... FOR UPDATE. The lock
// is held until the surrounding transaction commits or rolls back.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id string) (*order.Order, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) first(db *gorm.DB, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) UpdateSecretKey(ctx context.Context, aggregate *order.Order) error {
	return r.update(ctx, aggregate, "secret_key", aggregate.SecretKey())
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	return r.update(ctx, aggregate, "status", aggregate.Status().String())
}

func (r *GormOrderRepository) UpdateRating(ctx context.Context, aggregate *order.Order) error {
	return r.update(ctx, aggregate, "rating", aggregate.Rating())
}

// update writes a single column of an existing order.
func (r *GormOrderRepository) update(ctx context.Context, aggregate *order.Order, column string, value any) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", aggregate.ID()).Update(column, value)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ListByStatus retrieves all orders in status, oldest first.
func (r *GormOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
