// Package catalogrepo reads live menu item prices for order pricing.
package catalogrepo

import (
	"context"
	"errors"

	"zinger/internal/core/domain/model/catalog"
	"zinger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemDTO struct {
	ID          int64           `gorm:"primaryKey"`
	ShopID      int64           `gorm:"index;not null"`
	Name        string          `gorm:"type:varchar(128);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsAvailable bool            `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "items"
}

// GormCatalogRepository implements ports.CatalogPriceOracle using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) GetItem(ctx context.Context, itemID int64) (catalog.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Item{}, errs.NewObjectNotFoundError("item", itemID)
		}
		return catalog.Item{}, err
	}

	return catalog.Item{
		ID:          dto.ID,
		ShopID:      dto.ShopID,
		Name:        dto.Name,
		Price:       dto.Price,
		IsAvailable: dto.IsAvailable,
	}, nil
}
