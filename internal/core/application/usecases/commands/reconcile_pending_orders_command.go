package commands

import (
	"errors"
	"time"

	"zinger/internal/pkg/errs"
	"zinger/internal/pkg/guard"
)

var ErrReconcilePendingOrdersCommandIsNotConstructed = errors.New(
	"ReconcilePendingOrdersCommand must be created via NewReconcilePendingOrdersCommand constructor",
)

// ReconcilePendingOrdersCommand sweeps PENDING orders against the gateway.
// Orders whose payment succeeded more than Timeout ago are refunded and failed.
type ReconcilePendingOrdersCommand struct {
	timeout time.Duration

	guard guard.ConstructorGuard
}

func NewReconcilePendingOrdersCommand(timeout time.Duration) (ReconcilePendingOrdersCommand, error) {
	if timeout <= 0 {
		return ReconcilePendingOrdersCommand{}, errs.NewValueIsRequiredError("pending order timeout")
	}

	return ReconcilePendingOrdersCommand{
		timeout: timeout,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcilePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePendingOrdersCommandIsNotConstructed)
}

func (c ReconcilePendingOrdersCommand) Timeout() time.Duration { return c.timeout }
