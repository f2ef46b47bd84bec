// Package commands contains the order workflow operations that modify state.
// Every handler validates its command, verifies the caller, runs its
// mutations inside one unit of work and returns an outcome.Outcome. Errors
// and panics never leave a handler.
package commands

import (
	"context"

	"zinger/internal/core/domain/services"
	"zinger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order stores bound to a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
		OrderItemRepository() ports.OrderItemRepository
	}

	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// UoW manages transactions across the order, transaction and shop stores.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TransactionRepoFactory
		ShopRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// OrderPricer decides whether a submitted order is admissible.
type OrderPricer interface {
	Verify(ctx context.Context, req services.PricingRequest) (services.Verification, error)
}

// SecretKeyIssuer produces fresh secret keys.
type SecretKeyIssuer interface {
	Next() string
}
