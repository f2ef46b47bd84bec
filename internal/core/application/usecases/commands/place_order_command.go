package commands

import (
	"errors"
	"fmt"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/pkg/errs"
	"zinger/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderLine is one submitted line of a new order. Its unit price is taken
// from the catalog on admission.
type OrderLine struct {
	ItemID   int64
	Quantity int
}

// PlaceOrderCommand admits a new order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(caller, order.Draft{
//	    ShopID:        7,
//	    Price:         kernel.MustMoney("110"),
//	    DeliveryPrice: &deliveryFee,
//	}, []OrderLine{{ItemID: 1, Quantity: 2}})
//	if err != nil {
//	    return err
//	}
//	res := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	caller user.Caller
	draft  order.Draft
	lines  []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand fills in a generated order id and the caller's mobile
// when the draft leaves them empty.
func NewPlaceOrderCommand(caller user.Caller, draft order.Draft, lines []OrderLine) (PlaceOrderCommand, error) {
	if draft.ID == "" {
		draft.ID = kernel.NewOrderID()
	}
	if draft.UserMobile == "" {
		draft.UserMobile = caller.Mobile
	}

	if err := errors.Join(
		kernel.ValidateOrderID(draft.ID),
		validateLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		caller: caller,
		draft:  draft,
		lines:  append([]OrderLine(nil), lines...),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Caller() user.Caller { return c.caller }
func (c PlaceOrderCommand) Draft() order.Draft { return c.draft }
func (c PlaceOrderCommand) Lines() []OrderLine { return c.lines }
func (c PlaceOrderCommand) OrderID() string { return c.draft.ID }

func validateLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	var err error
	for i, l := range lines {
		if l.ItemID <= 0 {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].itemId", i), fmt.Errorf("%d is not greater than 0", l.ItemID)))
		}
		if l.Quantity <= 0 {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i), fmt.Errorf("%d is not greater than 0", l.Quantity)))
		}
	}
	return err
}
