// Package catalog holds the live catalog view of a menu item used for pricing.
package catalog

import "zinger/internal/core/domain/model/kernel"

// Item is the current catalog state of a menu item.
type Item struct {
	ID          int64
	ShopID      int64
	Name        string
	Price       kernel.Money
	IsAvailable bool
}
