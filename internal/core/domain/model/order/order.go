package order

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/pkg/errs"
	"zinger/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order built without NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	ErrSecretKeyMismatch  = errors.New("secret key mismatch")
	ErrSecretKeyNotIssued = errors.New("secret key not issued")
	ErrOrderNotRateable   = errors.New("order cannot be rated in its current status")
)

const (
	MinRating = 1.0
	MaxRating = 5.0
)

var secretKeyPattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// Draft carries the caller-submitted fields of a new order.
type Draft struct {
	ID               string
	UserMobile       string
	ShopID           int64
	Price            kernel.Money
	DeliveryPrice    *kernel.Money
	DeliveryLocation string
	CookingInfo      string
}

// Snapshot is the complete persisted state of an order.
type Snapshot struct {
	Draft
	Status    Status
	SecretKey *string
	Rating    *float64
	CreatedAt time.Time
}

// Order is the aggregate root of the ordering domain. It is mutated only
// through its methods, which enforce the status state machine and the
// secret-key rules.
type Order struct {
	id               string
	userMobile       string
	shopID           int64
	price            kernel.Money
	deliveryPrice    *kernel.Money
	deliveryLocation string
	cookingInfo      string
	status           Status
	secretKey        *string
	rating           *float64
	createdAt        time.Time

	guard guard.ConstructorGuard
}

// NewOrder admits a new order in PENDING status.
func NewOrder(d Draft, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:           Pending,
		deliveryLocation: d.DeliveryLocation,
		cookingInfo:      d.CookingInfo,
		createdAt:        createdAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(d.ID),
		o.setUserMobile(d.UserMobile),
		o.setShopID(d.ShopID),
		o.setPrice(d.Price, d.DeliveryPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage and checks the secret-key invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	o, err := NewOrder(s.Draft, s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = s.Status.Validate(); err != nil {
		return nil, err
	}

	if s.Status.HoldsSecretKey() && s.SecretKey == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("secret key", fmt.Errorf("%s order has no secret key", s.Status))
	}
	if !s.Status.HoldsSecretKey() && s.SecretKey != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("secret key", fmt.Errorf("%s order cannot hold a secret key", s.Status))
	}

	o.status = s.Status
	o.secretKey = s.SecretKey
	o.rating = s.Rating
	return o, nil
}

// Validate ensures the order went through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() string { return o.id }
func (o *Order) UserMobile() string { return o.userMobile }
func (o *Order) ShopID() int64 { return o.shopID }
func (o *Order) Price() kernel.Money { return o.price }
func (o *Order) DeliveryPrice() *kernel.Money { return o.deliveryPrice }
func (o *Order) DeliveryLocation() string { return o.deliveryLocation }
func (o *Order) CookingInfo() string { return o.cookingInfo }
func (o *Order) Status() Status { return o.status }
func (o *Order) SecretKey() *string { return o.secretKey }
func (o *Order) Rating() *float64 { return o.rating }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) HasDelivery() bool { return o.deliveryPrice != nil }

// Snapshot exports the order state for persistence and read models.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		Draft: Draft{
			ID:               o.id,
			UserMobile:       o.userMobile,
			ShopID:           o.shopID,
			Price:            o.price,
			DeliveryPrice:    o.deliveryPrice,
			DeliveryLocation: o.deliveryLocation,
			CookingInfo:      o.cookingInfo,
		},
		Status:    o.status,
		SecretKey: o.secretKey,
		Rating:    o.rating,
		CreatedAt: o.createdAt,
	}
}

// IssueSecretKey stores key ahead of a transition into next. next must be a
// legal successor that issues keys (READY or OUT_FOR_DELIVERY).
func (o *Order) IssueSecretKey(next Status, key string) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}
	if !next.IssuesSecretKey() {
		return errs.NewValueIsInvalidErrorWithCause("secret key", fmt.Errorf("%s does not issue a secret key", next))
	}
	if !secretKeyPattern.MatchString(key) {
		return errs.NewValueIsInvalidErrorWithCause("secret key", fmt.Errorf("%q is not a 6-digit key", key))
	}

	o.secretKey = &key
	return nil
}

// ChangeStatus moves the order to next. Entering READY or OUT_FOR_DELIVERY
// requires a key issued beforehand; entering COMPLETED or DELIVERED requires
// suppliedKey to match the stored key. The status is unchanged on error.
func (o *Order) ChangeStatus(next Status, suppliedKey string) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	if next.IssuesSecretKey() && o.secretKey == nil {
		return ErrSecretKeyNotIssued
	}

	if next.RequiresSecretKey() && (o.secretKey == nil || *o.secretKey != suppliedKey) {
		return ErrSecretKeyMismatch
	}

	o.status = next
	return nil
}

// Rate records the customer's rating of a finished order.
func (o *Order) Rate(rating float64) error {
	if !o.status.IsRateable() {
		return fmt.Errorf("%w: %s", ErrOrderNotRateable, o.status)
	}
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	o.rating = &rating
	return nil
}

func (o *Order) setID(id string) error {
	if err := kernel.ValidateOrderID(id); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("user mobile")
	}
	o.userMobile = mobile
	return nil
}

func (o *Order) setShopID(shopID int64) error {
	if shopID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shop id", fmt.Errorf("%d is not greater than 0", shopID))
	}
	o.shopID = shopID
	return nil
}

func (o *Order) setPrice(price kernel.Money, deliveryPrice *kernel.Money) error {
	if err := kernel.ValidatePrice("price", price); err != nil {
		return err
	}
	if deliveryPrice != nil {
		if err := kernel.ValidatePrice("delivery price", *deliveryPrice); err != nil {
			return err
		}
		dp := *deliveryPrice
		o.deliveryPrice = &dp
	}
	o.price = price
	return nil
}
