package commands

import (
	"context"
	"errors"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/ports"
)

// changeStatus moves a locked order to next and persists the change. A key
// issued for READY or OUT_FOR_DELIVERY is written before the status. Returns
// outcome.Success or the code of the first failure.
func changeStatus(
	ctx context.Context,
	repo ports.OrderRepository,
	keys SecretKeyIssuer,
	o *order.Order,
	next order.Status,
	suppliedKey string,
) (outcome.Code, error) {
	if err := o.Status().ValidateTransition(next); err != nil {
		return outcome.InvalidStatusTransition, err
	}

	if next.IssuesSecretKey() {
		if err := o.IssueSecretKey(next, keys.Next()); err != nil {
			return outcome.OrderPersistFailed, err
		}
		if err := repo.UpdateSecretKey(ctx, o); err != nil {
			return outcome.OrderPersistFailed, err
		}
	}

	if err := o.ChangeStatus(next, suppliedKey); err != nil {
		switch {
		case errors.Is(err, order.ErrSecretKeyMismatch):
			return outcome.SecretKeyMismatch, err
		case errors.Is(err, order.ErrInvalidStatusTransition):
			return outcome.InvalidStatusTransition, err
		default:
			return outcome.OrderPersistFailed, err
		}
	}

	if err := repo.UpdateStatus(ctx, o); err != nil {
		return outcome.OrderPersistFailed, err
	}

	return outcome.Success, nil
}
