package commands

import (
	"errors"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests one state-machine move. SecretKey is
// required only when the target is COMPLETED or DELIVERED.
type UpdateOrderStatusCommand struct {
	caller    user.Caller
	orderID   string
	status    order.Status
	secretKey string

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	caller user.Caller,
	orderID string,
	status order.Status,
	secretKey string,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		kernel.ValidateOrderID(orderID),
		status.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		caller:    caller,
		orderID:   orderID,
		status:    status,
		secretKey: secretKey,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Caller() user.Caller { return c.caller }
func (c UpdateOrderStatusCommand) OrderID() string { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
func (c UpdateOrderStatusCommand) SecretKey() string { return c.secretKey }
