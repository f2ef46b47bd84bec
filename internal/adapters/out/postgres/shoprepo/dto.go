// Package shoprepo persists shops, the places they belong to, and their
// ordering configuration.
package shoprepo

import (
	"zinger/internal/core/domain/model/shop"

	"github.com/shopspring/decimal"
)

type PlaceDTO struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(128);not null"`
	Address string `gorm:"type:text"`
}

func (PlaceDTO) TableName() string {
	return "places"
}

// ShopDTO keeps the running rating average next to the number of ratings
// folded into it.
type ShopDTO struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(128);not null"`
	Mobile      string    `gorm:"type:varchar(20)"`
	PhotoURL    string    `gorm:"type:text"`
	Rating      float64   `gorm:"not null;default:0"`
	RatingCount int       `gorm:"not null;default:0"`
	PlaceID     *int64    `gorm:"index"`
	Place       *PlaceDTO `gorm:"foreignKey:PlaceID"`
}

func (ShopDTO) TableName() string {
	return "shops"
}

type ConfigurationDTO struct {
	ShopID              int64           `gorm:"primaryKey"`
	IsOrderTaken        bool            `gorm:"not null"`
	IsDeliveryAvailable bool            `gorm:"not null"`
	DeliveryPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MerchantID          string          `gorm:"type:varchar(64);not null"`
}

func (ConfigurationDTO) TableName() string {
	return "shop_configurations"
}

func shopToDomain(dto ShopDTO) shop.Shop {
	s := shop.Shop{
		ID:          dto.ID,
		Name:        dto.Name,
		Mobile:      dto.Mobile,
		PhotoURL:    dto.PhotoURL,
		Rating:      dto.Rating,
		RatingCount: dto.RatingCount,
	}
	if dto.Place != nil {
		s.Place = &shop.Place{ID: dto.Place.ID, Name: dto.Place.Name, Address: dto.Place.Address}
	}
	return s
}

func configurationToDomain(dto ConfigurationDTO) shop.Configuration {
	return shop.Configuration{
		ShopID:              dto.ShopID,
		IsOrderTaken:        dto.IsOrderTaken,
		IsDeliveryAvailable: dto.IsDeliveryAvailable,
		DeliveryPrice:       dto.DeliveryPrice,
		MerchantID:          dto.MerchantID,
	}
}
