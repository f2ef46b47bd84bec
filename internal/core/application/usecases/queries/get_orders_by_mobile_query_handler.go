package queries

import (
	"context"
	"fmt"
	"log/slog"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/ports"
)

// GetOrdersByMobileQueryHandler serves a customer's order history. Only the
// owner of the mobile number may read it. Each order carries its shop
// without the shop's place and no user.
type GetOrdersByMobileQueryHandler struct {
	stores   Stores
	identity ports.IdentityVerifier
	recorder *outcome.Recorder
	logger   *slog.Logger
}

func NewGetOrdersByMobileQueryHandler(
	stores Stores,
	identity ports.IdentityVerifier,
	recorder *outcome.Recorder,
	logger *slog.Logger,
) GetOrdersByMobileQueryHandler {
	return GetOrdersByMobileQueryHandler{
		stores:   stores,
		identity: identity,
		recorder: recorder,
		logger:   logger.With("component", "orders_by_mobile"),
	}
}

func (h GetOrdersByMobileQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByMobileQuery,
) (result outcome.Outcome[[]OrderDetailsResponse]) {
	subject := outcome.Subject{
		CallerMobile: query.Caller().Mobile,
		Payload:      fmt.Sprintf("%s-%d", query.Mobile(), query.Page().Number),
	}
	defer outcome.Audit(ctx, h.recorder, subject, &result)
	defer outcome.Guard(ctx, h.logger, &result)

	if err := query.Validate(); err != nil {
		return outcome.Fail[[]OrderDetailsResponse](outcome.InvalidOrder)
	}

	if err := h.identity.Verify(ctx, query.Caller()); err != nil {
		return outcome.Fail[[]OrderDetailsResponse](outcome.InvalidCaller)
	}
	if query.Caller().Mobile != query.Mobile() {
		return outcome.Fail[[]OrderDetailsResponse](outcome.InvalidCaller)
	}

	txns, err := h.stores.Transactions.ListByMobile(ctx, query.Mobile(), query.Page())
	if err != nil {
		h.logger.ErrorContext(ctx, "transactions not listed", "mobile", query.Mobile(), "error", err)
		return outcome.Fail[[]OrderDetailsResponse](outcome.TransactionDetailNotAvailable)
	}

	return h.stores.hydrateAll(ctx, txns, customerView)
}
