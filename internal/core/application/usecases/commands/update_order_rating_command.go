package commands

import (
	"errors"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/pkg/errs"
	"zinger/internal/pkg/guard"
)

var ErrUpdateOrderRatingCommandIsNotConstructed = errors.New(
	"UpdateOrderRatingCommand must be created via NewUpdateOrderRatingCommand constructor",
)

// UpdateOrderRatingCommand rates a finished order on behalf of its owner.
type UpdateOrderRatingCommand struct {
	caller  user.Caller
	orderID string
	rating  float64

	guard guard.ConstructorGuard
}

func NewUpdateOrderRatingCommand(caller user.Caller, orderID string, rating float64) (UpdateOrderRatingCommand, error) {
	var rangeErr error
	if rating < order.MinRating || rating > order.MaxRating {
		rangeErr = errs.NewValueIsOutOfRangeError("rating", rating, order.MinRating, order.MaxRating)
	}

	if err := errors.Join(kernel.ValidateOrderID(orderID), rangeErr); err != nil {
		return UpdateOrderRatingCommand{}, err
	}

	return UpdateOrderRatingCommand{
		caller:  caller,
		orderID: orderID,
		rating:  rating,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderRatingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderRatingCommandIsNotConstructed)
}

func (c UpdateOrderRatingCommand) Caller() user.Caller { return c.caller }
func (c UpdateOrderRatingCommand) OrderID() string { return c.orderID }
func (c UpdateOrderRatingCommand) Rating() float64 { return c.rating }
