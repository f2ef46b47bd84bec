// Package transactionrepo persists payment transactions, one per accepted order.
package transactionrepo

import (
	"time"

	"zinger/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// TransactionDTO is the stored gateway report of an accepted order. The
// order id is the primary key, which makes a second transaction for the
// same order a constraint violation.
type TransactionDTO struct {
	OrderID           string          `gorm:"type:varchar(64);primaryKey"`
	TransactionID     string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	BankTransactionID string          `gorm:"type:varchar(64)"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency          string          `gorm:"type:varchar(8);not null"`
	ResponseCode      string          `gorm:"type:varchar(8);not null"`
	ResponseMessage   string          `gorm:"type:text"`
	GatewayName       string          `gorm:"type:varchar(64)"`
	BankName          string          `gorm:"type:varchar(64)"`
	PaymentMode       string          `gorm:"type:varchar(32)"`
	ChecksumHash      string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
}

func (TransactionDTO) TableName() string {
	return "transactions"
}

func fromDomain(txn payment.Transaction) TransactionDTO {
	d := txn.Details()
	return TransactionDTO{
		OrderID:           d.OrderID,
		TransactionID:     d.TransactionID,
		BankTransactionID: d.BankTransactionID,
		Amount:            d.Amount,
		Currency:          d.Currency,
		ResponseCode:      d.ResponseCode,
		ResponseMessage:   d.ResponseMessage,
		GatewayName:       d.GatewayName,
		BankName:          d.BankName,
		PaymentMode:       d.PaymentMode,
		ChecksumHash:      d.ChecksumHash,
	}
}

func toDomain(dto TransactionDTO) (payment.Transaction, error) {
	return payment.NewTransaction(payment.GatewayStatus{
		OrderID:           dto.OrderID,
		TransactionID:     dto.TransactionID,
		BankTransactionID: dto.BankTransactionID,
		Amount:            dto.Amount,
		Currency:          dto.Currency,
		ResponseCode:      dto.ResponseCode,
		ResponseMessage:   dto.ResponseMessage,
		GatewayName:       dto.GatewayName,
		BankName:          dto.BankName,
		PaymentMode:       dto.PaymentMode,
		ChecksumHash:      dto.ChecksumHash,
	})
}
