package shoprepo

import (
	"context"
	"errors"

	"zinger/internal/core/domain/model/shop"
	"zinger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShopRepository implements ports.ShopRepository using GORM.
type GormShopRepository struct {
	db *gorm.DB
}

func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// Get retrieves a shop together with its place.
func (r *GormShopRepository) Get(ctx context.Context, id int64) (shop.Shop, error) {
	var dto ShopDTO
	if err := r.db.WithContext(ctx).Preload("Place").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shop.Shop{}, errs.NewObjectNotFoundError("shop", id)
		}
		return shop.Shop{}, err
	}

	return shopToDomain(dto), nil
}

// AddRating folds rating into the shop's average in a single UPDATE, so
// concurrent raters never lose each other's contribution.
func (r *GormShopRepository) AddRating(ctx context.Context, shopID int64, rating float64) error {
	result := r.db.WithContext(ctx).Model(&ShopDTO{}).Where("id = ?", shopID).Updates(map[string]any{
		"rating":       gorm.Expr("(rating * rating_count + ?) / (rating_count + 1)", rating),
		"rating_count": gorm.Expr("rating_count + 1"),
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shop", shopID)
	}

	return nil
}

// GormConfigurationRepository implements ports.ConfigurationProvider using GORM.
type GormConfigurationRepository struct {
	db *gorm.DB
}

func NewGormConfigurationRepository(db *gorm.DB) *GormConfigurationRepository {
	return &GormConfigurationRepository{db: db}
}

func (r *GormConfigurationRepository) GetByShop(ctx context.Context, shopID int64) (shop.Configuration, error) {
	var dto ConfigurationDTO
	if err := r.db.WithContext(ctx).First(&dto, "shop_id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shop.Configuration{}, errs.NewObjectNotFoundError("shop configuration", shopID)
		}
		return shop.Configuration{}, err
	}

	return configurationToDomain(dto), nil
}
