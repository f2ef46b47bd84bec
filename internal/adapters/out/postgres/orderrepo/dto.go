// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate and its lines, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"zinger/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by name so that rows stay readable and reordering the
// domain constants never corrupts data.
type OrderDTO struct {
	ID               string           `gorm:"type:varchar(64);primaryKey"`
	UserMobile       string           `gorm:"type:varchar(20);index;not null"`
	ShopID           int64            `gorm:"index;not null"`
	Price            decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	DeliveryPrice    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryLocation string           `gorm:"type:text"`
	CookingInfo      string           `gorm:"type:text"`
	Status           string           `gorm:"type:varchar(32);index;not null"`
	SecretKey        *string          `gorm:"type:varchar(6)"`
	Rating           *float64         `gorm:"type:real"`
	CreatedAt        time.Time        `gorm:"index;not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line.
type OrderItemDTO struct {
	ID       uint            `gorm:"primaryKey;autoIncrement"`
	OrderID  string          `gorm:"type:varchar(64);index;not null"`
	ItemID   int64           `gorm:"not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:               o.ID(),
		UserMobile:       o.UserMobile(),
		ShopID:           o.ShopID(),
		Price:            o.Price(),
		DeliveryPrice:    o.DeliveryPrice(),
		DeliveryLocation: o.DeliveryLocation(),
		CookingInfo:      o.CookingInfo(),
		Status:           o.Status().String(),
		SecretKey:        o.SecretKey(),
		Rating:           o.Rating(),
		CreatedAt:        o.CreatedAt(),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, so a row that breaks
// an order invariant is reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		Draft: order.Draft{
			ID:               dto.ID,
			UserMobile:       dto.UserMobile,
			ShopID:           dto.ShopID,
			Price:            dto.Price,
			DeliveryPrice:    dto.DeliveryPrice,
			DeliveryLocation: dto.DeliveryLocation,
			CookingInfo:      dto.CookingInfo,
		},
		Status:    status,
		SecretKey: dto.SecretKey,
		Rating:    dto.Rating,
		CreatedAt: dto.CreatedAt,
	})
}

func itemFromDomain(i order.Item) OrderItemDTO {
	return OrderItemDTO{
		OrderID:  i.OrderID(),
		ItemID:   i.ItemID(),
		Quantity: i.Quantity(),
		Price:    i.Price(),
	}
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	return order.NewItem(dto.OrderID, dto.ItemID, dto.Quantity, dto.Price)
}
