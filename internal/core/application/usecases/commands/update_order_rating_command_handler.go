package commands

import (
	"context"
	"errors"
	"log/slog"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/ports"
)

// UpdateOrderRatingCommandHandler stores the rating on the order and folds
// it into the shop's rating in the same transaction. Only the order's owner
// may rate it.
type UpdateOrderRatingCommandHandler struct {
	uowFactory UoWFactory
	identity   ports.IdentityVerifier
	recorder   *outcome.Recorder
	logger     *slog.Logger
}

func NewUpdateOrderRatingCommandHandler(
	uowFactory UoWFactory,
	identity ports.IdentityVerifier,
	recorder *outcome.Recorder,
	logger *slog.Logger,
) UpdateOrderRatingCommandHandler {
	return UpdateOrderRatingCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		recorder:   recorder,
		logger:     logger.With("component", "update_order_rating"),
	}
}

func (h UpdateOrderRatingCommandHandler) Handle(
	ctx context.Context,
	command UpdateOrderRatingCommand,
) (result outcome.Outcome[string]) {
	subject := outcome.Subject{
		CallerMobile: command.Caller().Mobile,
		ID:           command.OrderID(),
		Payload:      map[string]float64{"rating": command.Rating()},
	}
	defer outcome.Audit(ctx, h.recorder, subject, &result)
	defer outcome.Guard(ctx, h.logger, &result)

	if err := command.Validate(); err != nil {
		return outcome.Fail[string](outcome.InvalidOrder)
	}

	if err := h.identity.Verify(ctx, command.Caller()); err != nil {
		return outcome.Fail[string](outcome.InvalidCaller)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return outcome.Fail[string](outcome.UnexpectedInternalFault)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	aggregate, err := orders.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return outcome.Fail[string](outcome.OrderDetailNotAvailable)
	}

	if aggregate.UserMobile() != command.Caller().Mobile {
		return outcome.Fail[string](outcome.InvalidCaller)
	}

	if err = aggregate.Rate(command.Rating()); err != nil {
		if errors.Is(err, order.ErrOrderNotRateable) {
			return outcome.Fail[string](outcome.OrderNotRateable)
		}
		return outcome.FailWith[string](outcome.InvalidOrder, err.Error())
	}

	if err = orders.UpdateRating(ctx, aggregate); err != nil {
		return outcome.Fail[string](outcome.OrderPersistFailed)
	}

	if err = uow.ShopRepository().AddRating(ctx, aggregate.ShopID(), command.Rating()); err != nil {
		h.logger.ErrorContext(ctx, "shop rating not updated", "shop_id", aggregate.ShopID(), "error", err)
		return outcome.FailWith[string](outcome.OrderPersistFailed, "shop rating not updated")
	}

	if err = uow.Commit(ctx); err != nil {
		return outcome.Fail[string](outcome.OrderPersistFailed)
	}

	return outcome.Ok(aggregate.ID())
}
