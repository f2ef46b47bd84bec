package services

import (
	"context"
	"errors"
	"fmt"

	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/ports"
)

// ErrConfigurationUnavailable is returned when the shop configuration cannot be read.
var ErrConfigurationUnavailable = errors.New("shop configuration not available")

// Reason names why an order was priced out.
type Reason string

const (
	ReasonOrderNotTaken         Reason = "order not being taken"
	ReasonDeliveryNotAvailable  Reason = "delivery not available"
	ReasonDeliveryPriceMismatch Reason = "delivery price mismatch"
	ReasonItemPriceMismatch     Reason = "item price mismatch"
	ReasonItemNotAvailable      Reason = "item not available"
	ReasonOrderPriceMismatch    Reason = "order price mismatch"
)

// PricingError is a rejection with a reason the caller can show verbatim.
type PricingError struct {
	Reason Reason
	ItemID int64
	Cause  error
}

func (e *PricingError) Error() string {
	if e.ItemID != 0 {
		return fmt.Sprintf("%s: item %d", e.Reason, e.ItemID)
	}
	return string(e.Reason)
}

func (e *PricingError) Unwrap() error {
	return e.Cause
}

// PricingLine is one submitted order line.
type PricingLine struct {
	ItemID   int64
	Quantity int
}

// PricingRequest is the submitted order as the verifier sees it.
type PricingRequest struct {
	ShopID        int64
	Price         kernel.Money
	DeliveryPrice *kernel.Money
	Lines         []PricingLine
}

// Verification is the result of an admissible order.
type Verification struct {
	MerchantID string

	// UnitPrices holds the catalog price of every submitted item, frozen
	// into the order lines on admission.
	UnitPrices map[int64]kernel.Money
}

// PricingVerifier decides whether a submitted order matches live catalog
// pricing and the shop's configuration.
type PricingVerifier struct {
	configurations ports.ConfigurationProvider
	catalog        ports.CatalogPriceOracle
}

func NewPricingVerifier(configurations ports.ConfigurationProvider, catalog ports.CatalogPriceOracle) PricingVerifier {
	return PricingVerifier{configurations: configurations, catalog: catalog}
}

// Verify returns ErrConfigurationUnavailable when the configuration lookup
// fails and a *PricingError for every rejection. Checks run in order:
// order taking, delivery, item availability and prices, total.
func (v PricingVerifier) Verify(ctx context.Context, req PricingRequest) (Verification, error) {
	cfg, err := v.configurations.GetByShop(ctx, req.ShopID)
	if err != nil {
		return Verification{}, fmt.Errorf("%w: %w", ErrConfigurationUnavailable, err)
	}

	if !cfg.IsOrderTaken {
		return Verification{}, &PricingError{Reason: ReasonOrderNotTaken}
	}

	delivery := kernel.Zero
	if req.DeliveryPrice != nil {
		if !cfg.IsDeliveryAvailable {
			return Verification{}, &PricingError{Reason: ReasonDeliveryNotAvailable}
		}
		if !cfg.DeliveryPrice.Equal(*req.DeliveryPrice) {
			return Verification{}, &PricingError{Reason: ReasonDeliveryPriceMismatch}
		}
		delivery = *req.DeliveryPrice
	}

	total, unitPrices, err := v.recompute(ctx, req.Lines)
	if err != nil {
		return Verification{}, err
	}

	if !total.Add(delivery).Equal(req.Price) {
		return Verification{}, &PricingError{Reason: ReasonOrderPriceMismatch}
	}

	return Verification{MerchantID: cfg.MerchantID, UnitPrices: unitPrices}, nil
}

func (v PricingVerifier) recompute(ctx context.Context, lines []PricingLine) (kernel.Money, map[int64]kernel.Money, error) {
	total := kernel.Zero
	unitPrices := make(map[int64]kernel.Money, len(lines))

	for _, line := range lines {
		item, err := v.catalog.GetItem(ctx, line.ItemID)
		if err != nil {
			return kernel.Zero, nil, &PricingError{Reason: ReasonItemPriceMismatch, ItemID: line.ItemID, Cause: err}
		}
		if !item.IsAvailable {
			return kernel.Zero, nil, &PricingError{Reason: ReasonItemNotAvailable, ItemID: line.ItemID}
		}

		unitPrices[line.ItemID] = item.Price
		total = total.Add(kernel.LineTotal(item.Price, line.Quantity))
	}

	return total, unitPrices, nil
}
