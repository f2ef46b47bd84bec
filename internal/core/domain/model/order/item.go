package order

import (
	"errors"
	"fmt"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/pkg/errs"
	"zinger/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is one order line. Price is the catalog unit price at admission time
// and is never revalidated afterwards.
type Item struct {
	orderID  string
	itemID   int64
	quantity int
	price    kernel.Money

	guard guard.ConstructorGuard
}

func NewItem(orderID string, itemID int64, quantity int, price kernel.Money) (Item, error) {
	if err := errors.Join(
		kernel.ValidateOrderID(orderID),
		validateItemID(itemID),
		validateQuantity(quantity),
		kernel.ValidatePrice("item price", price),
	); err != nil {
		return Item{}, err
	}

	return Item{
		orderID:  orderID,
		itemID:   itemID,
		quantity: quantity,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) OrderID() string { return i.orderID }
func (i Item) ItemID() int64 { return i.itemID }
func (i Item) Quantity() int { return i.quantity }
func (i Item) Price() kernel.Money { return i.price }

// Total is quantity × unit price.
func (i Item) Total() kernel.Money {
	return kernel.LineTotal(i.price, i.quantity)
}

func (i Item) String() string {
	return fmt.Sprintf("item %d x%d @ %s", i.itemID, i.quantity, i.price.String())
}

func validateItemID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func validateQuantity(q int) error {
	if q <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", q))
	}
	return nil
}
