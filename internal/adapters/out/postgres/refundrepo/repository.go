// Package refundrepo records refunds owed to customers.
package refundrepo

import (
	"context"
	"time"

	"zinger/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RefundDTO struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     string          `gorm:"type:varchar(64);index;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason      string          `gorm:"type:varchar(32);not null"`
	RequestedAt time.Time       `gorm:"autoCreateTime"`
}

func (RefundDTO) TableName() string {
	return "refunds"
}

// GormRefundLedger implements ports.RefundLedger using GORM.
type GormRefundLedger struct {
	db *gorm.DB
}

func NewGormRefundLedger(db *gorm.DB) *GormRefundLedger {
	return &GormRefundLedger{db: db}
}

func (l *GormRefundLedger) Record(ctx context.Context, req ports.RefundRequest) error {
	dto := RefundDTO{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Reason:  req.Reason.String(),
	}
	return l.db.WithContext(ctx).Create(&dto).Error
}
