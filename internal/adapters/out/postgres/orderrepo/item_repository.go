package orderrepo

import (
	"context"

	"zinger/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderItemRepository implements ports.OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db *gorm.DB
}

func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// Add saves one order line.
func (r *GormOrderItemRepository) Add(ctx context.Context, item order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder retrieves the lines of an order in the order they were written.
func (r *GormOrderItemRepository) ListByOrder(ctx context.Context, orderID string) ([]order.Item, error) {
	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
