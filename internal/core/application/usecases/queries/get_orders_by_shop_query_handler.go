package queries

import (
	"context"
	"log/slog"
	"strconv"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/ports"
)

// GetOrdersByShopQueryHandler serves a shop's order board. Customers are
// rejected. Each order carries its user and no shop.
type GetOrdersByShopQueryHandler struct {
	stores   Stores
	identity ports.IdentityVerifier
	recorder *outcome.Recorder
	logger   *slog.Logger
}

func NewGetOrdersByShopQueryHandler(
	stores Stores,
	identity ports.IdentityVerifier,
	recorder *outcome.Recorder,
	logger *slog.Logger,
) GetOrdersByShopQueryHandler {
	return GetOrdersByShopQueryHandler{
		stores:   stores,
		identity: identity,
		recorder: recorder,
		logger:   logger.With("component", "orders_by_shop"),
	}
}

func (h GetOrdersByShopQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByShopQuery,
) (result outcome.Outcome[[]OrderDetailsResponse]) {
	shopID := strconv.FormatInt(query.ShopID(), 10)
	subject := outcome.Subject{CallerMobile: query.Caller().Mobile, ID: shopID, Payload: shopID}
	defer outcome.Audit(ctx, h.recorder, subject, &result)
	defer outcome.Guard(ctx, h.logger, &result)

	if err := query.Validate(); err != nil {
		return outcome.Fail[[]OrderDetailsResponse](outcome.InvalidOrder)
	}

	if err := h.identity.Verify(ctx, query.Caller()); err != nil {
		return outcome.Fail[[]OrderDetailsResponse](outcome.InvalidCaller)
	}
	if query.Caller().IsCustomer() {
		return outcome.Fail[[]OrderDetailsResponse](outcome.InvalidCaller)
	}

	txns, err := h.stores.Transactions.ListByShop(ctx, query.ShopID(), query.Page())
	if err != nil {
		h.logger.ErrorContext(ctx, "transactions not listed", "shop_id", query.ShopID(), "error", err)
		return outcome.Fail[[]OrderDetailsResponse](outcome.OrderDetailNotAvailable)
	}

	return h.stores.hydrateAll(ctx, txns, shopView)
}
