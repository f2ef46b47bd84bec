package queries

import (
	"context"
	"log/slog"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/ports"
)

// GetOrderByIDQueryHandler returns one order with both its user and its
// shop attached. A customer may only read their own orders.
type GetOrderByIDQueryHandler struct {
	stores   Stores
	identity ports.IdentityVerifier
	recorder *outcome.Recorder
	logger   *slog.Logger
}

func NewGetOrderByIDQueryHandler(
	stores Stores,
	identity ports.IdentityVerifier,
	recorder *outcome.Recorder,
	logger *slog.Logger,
) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{
		stores:   stores,
		identity: identity,
		recorder: recorder,
		logger:   logger.With("component", "order_by_id"),
	}
}

func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (result outcome.Outcome[*OrderDetailsResponse]) {
	subject := outcome.Subject{CallerMobile: query.Caller().Mobile, ID: query.OrderID()}
	defer outcome.Audit(ctx, h.recorder, subject, &result)
	defer outcome.Guard(ctx, h.logger, &result)

	if err := query.Validate(); err != nil {
		return outcome.Fail[*OrderDetailsResponse](outcome.InvalidOrder)
	}

	if err := h.identity.Verify(ctx, query.Caller()); err != nil {
		return outcome.Fail[*OrderDetailsResponse](outcome.InvalidCaller)
	}

	txn, err := h.stores.Transactions.Get(ctx, query.OrderID())
	if err != nil {
		return outcome.Fail[*OrderDetailsResponse](outcome.TransactionDetailNotAvailable)
	}

	details, code := h.stores.hydrate(ctx, txn, fullView)
	if code != outcome.Success {
		return outcome.Fail[*OrderDetailsResponse](code)
	}

	if query.Caller().IsCustomer() && details.Order.UserMobile != query.Caller().Mobile {
		return outcome.Fail[*OrderDetailsResponse](outcome.InvalidCaller)
	}

	// The key confirms the hand-over, only the customer holds it.
	if !query.Caller().IsCustomer() {
		details.Order.SecretKey = nil
	}

	return outcome.Ok(&details)
}
