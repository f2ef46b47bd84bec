// Package shop holds the shop read model and its per-shop ordering configuration.
package shop

import (
	"fmt"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/pkg/errs"
)

// Place is the campus or locality a shop belongs to.
type Place struct {
	ID      int64
	Name    string
	Address string
}

// Shop is the hydrated shop attached to order read models.
type Shop struct {
	ID          int64
	Name        string
	Mobile      string
	PhotoURL    string
	Rating      float64
	RatingCount int
	Place       *Place
}

// WithoutPlace returns a copy of the shop with its location removed.
func (s Shop) WithoutPlace() Shop {
	s.Place = nil
	return s
}

// Configuration is the per-shop ordering switchboard.
type Configuration struct {
	ShopID              int64
	IsOrderTaken        bool
	IsDeliveryAvailable bool
	DeliveryPrice       kernel.Money
	MerchantID          string
}

func (c Configuration) Validate() error {
	if c.ShopID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shop id", fmt.Errorf("%d is not greater than 0", c.ShopID))
	}
	if c.MerchantID == "" {
		return errs.NewValueIsRequiredError("merchant id")
	}
	return kernel.ValidatePrice("delivery price", c.DeliveryPrice)
}
