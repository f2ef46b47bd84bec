package commands

import (
	"errors"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand reconciles an order with its gateway transaction and
// moves it to ACCEPTED.
type AcceptOrderCommand struct {
	caller  user.Caller
	orderID string

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(caller user.Caller, orderID string) (AcceptOrderCommand, error) {
	if err := kernel.ValidateOrderID(orderID); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		caller:  caller,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) Caller() user.Caller { return c.caller }
func (c AcceptOrderCommand) OrderID() string { return c.orderID }
