package ports

import (
	"context"

	"zinger/internal/core/domain/model/shop"
	"zinger/internal/core/domain/model/user"
)

type UserRepository interface {
	Get(ctx context.Context, mobile string) (user.User, error)
}

type ShopRepository interface {
	Get(ctx context.Context, id int64) (shop.Shop, error)

	// AddRating folds one more rating into the shop's running average.
	AddRating(ctx context.Context, shopID int64, rating float64) error
}

// IdentityVerifier confirms that a caller is who the request says it is.
// Any error means the caller is rejected.
type IdentityVerifier interface {
	Verify(ctx context.Context, caller user.Caller) error
}
