package queries

import (
	"errors"

	"zinger/internal/core/domain/model/user"
	"zinger/internal/core/ports"
	"zinger/internal/pkg/errs"
	"zinger/internal/pkg/guard"
)

var ErrGetOrdersByMobileQueryIsNotConstructed = errors.New(
	"GetOrdersByMobileQuery must be created via NewGetOrdersByMobileQuery constructor",
)

// GetOrdersByMobileQuery lists a customer's orders, newest first, one page at a time.
//
// Example:
//
//	query, err := NewGetOrdersByMobileQuery(caller, "9876543210", ports.Page{Number: 1, Size: 10})
//	if err != nil {
//	    return err
//	}
//	res := handler.Handle(ctx, query)
//	for _, details := range res.Data {
//	    fmt.Println(details.Order.ID, details.Order.Shop.Name)
//	}
type GetOrdersByMobileQuery struct {
	caller user.Caller
	mobile string
	page   ports.Page

	guard guard.ConstructorGuard
}

func NewGetOrdersByMobileQuery(caller user.Caller, mobile string, page ports.Page) (GetOrdersByMobileQuery, error) {
	if mobile == "" {
		return GetOrdersByMobileQuery{}, errs.NewValueIsRequiredError("mobile")
	}
	if err := validatePage(page); err != nil {
		return GetOrdersByMobileQuery{}, err
	}

	return GetOrdersByMobileQuery{
		caller: caller,
		mobile: mobile,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersByMobileQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByMobileQueryIsNotConstructed)
}

func (q GetOrdersByMobileQuery) Caller() user.Caller { return q.caller }
func (q GetOrdersByMobileQuery) Mobile() string { return q.mobile }
func (q GetOrdersByMobileQuery) Page() ports.Page { return q.page }

func validatePage(page ports.Page) error {
	if page.Number < 1 {
		return errs.NewValueIsOutOfRangeError("page number", page.Number, 1, "unbounded")
	}
	if page.Size < 1 {
		return errs.NewValueIsOutOfRangeError("page size", page.Size, 1, "unbounded")
	}
	return nil
}
