package ports

import (
	"context"

	"zinger/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly admitted order. The order id must be unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends, so concurrent status updates on one order serialize.
	GetForUpdate(ctx context.Context, id string) (*order.Order, error)

	// UpdateSecretKey writes the key currently held by the aggregate.
	UpdateSecretKey(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus writes the status currently held by the aggregate.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// UpdateRating writes the rating currently held by the aggregate.
	UpdateRating(ctx context.Context, aggregate *order.Order) error

	// ListByStatus returns every order in status, oldest first.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}

// OrderItemRepository stores order lines. Lines are written once and never updated.
type OrderItemRepository interface {
	Add(ctx context.Context, item order.Item) error

	// ListByOrder returns the lines of an order in insertion order.
	ListByOrder(ctx context.Context, orderID string) ([]order.Item, error)
}
