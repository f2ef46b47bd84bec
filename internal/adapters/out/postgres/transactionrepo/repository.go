package transactionrepo

import (
	"context"
	"errors"

	"zinger/internal/core/domain/model/payment"
	"zinger/internal/core/ports"
	"zinger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements ports.TransactionRepository using GORM.
// Listings join the orders table and are ordered by order creation time,
// newest first.
type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) Add(ctx context.Context, txn payment.Transaction) error {
	if err := txn.Validate(); err != nil {
		return err
	}

	dto := fromDomain(txn)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTransactionRepository) Get(ctx context.Context, orderID string) (payment.Transaction, error) {
	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payment.Transaction{}, errs.NewObjectNotFoundError("transaction", orderID)
		}
		return payment.Transaction{}, err
	}

	return toDomain(dto)
}

func (r *GormTransactionRepository) ListByMobile(
	ctx context.Context,
	mobile string,
	page ports.Page,
) ([]payment.Transaction, error) {
	return r.list(ctx, "orders.user_mobile = ?", mobile, page)
}

func (r *GormTransactionRepository) ListByShop(
	ctx context.Context,
	shopID int64,
	page ports.Page,
) ([]payment.Transaction, error) {
	return r.list(ctx, "orders.shop_id = ?", shopID, page)
}

func (r *GormTransactionRepository) list(ctx context.Context, cond string, arg any, page ports.Page) ([]payment.Transaction, error) {
	q := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Select("transactions.*").
		Joins("JOIN orders ON orders.id = transactions.order_id").
		Where(cond, arg).
		Order("orders.created_at DESC").
		Order("transactions.order_id DESC")
	if !page.Unbounded() {
		q = q.Limit(page.Size).Offset(page.Offset())
	}

	var dtos []TransactionDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	txns := make([]payment.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		txn, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}
