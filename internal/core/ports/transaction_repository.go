package ports

import (
	"context"

	"zinger/internal/core/domain/model/payment"
)

// Page selects a window of a listing. A zero Size means no limit.
type Page struct {
	Number int
	Size   int
}

// Unbounded reports whether the page selects everything.
func (p Page) Unbounded() bool {
	return p.Size <= 0
}

// Offset is the number of rows skipped before the page. Page numbers start at 1.
func (p Page) Offset() int {
	if p.Unbounded() || p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// TransactionRepository stores one payment transaction per accepted order.
type TransactionRepository interface {
	Add(ctx context.Context, txn payment.Transaction) error

	// Get returns the transaction of an order, or errs.ErrObjectNotFound.
	Get(ctx context.Context, orderID string) (payment.Transaction, error)

	// ListByMobile returns the transactions of a user's orders, newest first.
	ListByMobile(ctx context.Context, mobile string, page Page) ([]payment.Transaction, error)

	// ListByShop returns the transactions of a shop's orders, newest first.
	ListByShop(ctx context.Context, shopID int64, page Page) ([]payment.Transaction, error)
}
