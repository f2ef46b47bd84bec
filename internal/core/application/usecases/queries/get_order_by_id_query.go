package queries

import (
	"errors"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

type GetOrderByIDQuery struct {
	caller  user.Caller
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderByIDQuery(caller user.Caller, orderID string) (GetOrderByIDQuery, error) {
	if err := kernel.ValidateOrderID(orderID); err != nil {
		return GetOrderByIDQuery{}, err
	}
	return GetOrderByIDQuery{caller: caller, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

func (q GetOrderByIDQuery) Caller() user.Caller { return q.caller }
func (q GetOrderByIDQuery) OrderID() string { return q.orderID }
