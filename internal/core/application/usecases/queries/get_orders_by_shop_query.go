package queries

import (
	"errors"
	"fmt"

	"zinger/internal/core/domain/model/user"
	"zinger/internal/core/ports"
	"zinger/internal/pkg/errs"
	"zinger/internal/pkg/guard"
)

var ErrGetOrdersByShopQueryIsNotConstructed = errors.New(
	"GetOrdersByShopQuery must be created via NewGetOrdersByShopQuery constructor",
)

// GetOrdersByShopQuery lists a shop's orders, newest first. A zero page
// returns every order.
type GetOrdersByShopQuery struct {
	caller user.Caller
	shopID int64
	page   ports.Page

	guard guard.ConstructorGuard
}

func NewGetOrdersByShopQuery(caller user.Caller, shopID int64, page ports.Page) (GetOrdersByShopQuery, error) {
	if shopID <= 0 {
		return GetOrdersByShopQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"shop id", fmt.Errorf("%d is not greater than 0", shopID))
	}
	if page != (ports.Page{}) {
		if err := validatePage(page); err != nil {
			return GetOrdersByShopQuery{}, err
		}
	}

	return GetOrdersByShopQuery{
		caller: caller,
		shopID: shopID,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersByShopQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByShopQueryIsNotConstructed)
}

func (q GetOrdersByShopQuery) Caller() user.Caller { return q.caller }
func (q GetOrdersByShopQuery) ShopID() int64 { return q.shopID }
func (q GetOrdersByShopQuery) Page() ports.Page { return q.page }
