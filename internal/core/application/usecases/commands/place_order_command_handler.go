package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/services"
	"zinger/internal/core/ports"
	"zinger/internal/pkg/errs"
)

// PlaceOrderCommandHandler admits orders. Steps, each short-circuiting with
// its own outcome:
//  1. verify the caller
//  2. price the order against the catalog and the shop configuration
//  3. refuse an order id that is already stored
//  4. open a gateway transaction for (order id, merchant id)
//  5. write the order and all of its lines in one transaction
//
// On success the outcome carries the gateway transaction token.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	identity   ports.IdentityVerifier
	pricer     OrderPricer
	gateway    ports.PaymentGateway
	recorder   *outcome.Recorder
	logger     *slog.Logger
	clock      func() time.Time
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	identity ports.IdentityVerifier,
	pricer OrderPricer,
	gateway ports.PaymentGateway,
	recorder *outcome.Recorder,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		pricer:     pricer,
		gateway:    gateway,
		recorder:   recorder,
		logger:     logger.With("component", "place_order"),
		clock:      time.Now,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (result outcome.Outcome[string]) {
	subject := outcome.Subject{CallerMobile: command.Caller().Mobile, ID: command.OrderID(), Payload: command.Draft()}
	defer outcome.Audit(ctx, h.recorder, subject, &result)
	defer outcome.Guard(ctx, h.logger, &result)

	if err := command.Validate(); err != nil {
		return outcome.Fail[string](outcome.InvalidOrder)
	}

	if err := h.identity.Verify(ctx, command.Caller()); err != nil {
		return outcome.Fail[string](outcome.InvalidCaller)
	}

	aggregate, err := order.NewOrder(command.Draft(), h.clock())
	if err != nil {
		return outcome.FailWith[string](outcome.InvalidOrder, err.Error())
	}

	verification, err := h.pricer.Verify(ctx, pricingRequest(command))
	if err != nil {
		return pricingOutcome(err)
	}

	items, err := orderItems(aggregate.ID(), command.Lines(), verification.UnitPrices)
	if err != nil {
		return outcome.FailWith[string](outcome.InvalidOrder, err.Error())
	}

	if res := h.checkUnclaimed(ctx, aggregate.ID()); !res.IsSuccess() {
		return res
	}

	token, err := h.gateway.Initiate(ctx, aggregate.ID(), verification.MerchantID, aggregate.Price())
	if err != nil {
		h.logger.ErrorContext(ctx, "transaction initiation failed", "order_id", aggregate.ID(), "error", err)
		return outcome.Fail[string](outcome.TransactionInitiationFailed)
	}

	if res := h.persist(ctx, aggregate, items); !res.IsSuccess() {
		return res
	}

	return outcome.Ok(token)
}

// checkUnclaimed refuses an order id that is already stored, before the
// gateway is asked for a payment under it.
func (h PlaceOrderCommandHandler) checkUnclaimed(ctx context.Context, orderID string) outcome.Outcome[string] {
	_, err := h.uowFactory.Create().OrderRepository().Get(ctx, orderID)
	switch {
	case err == nil:
		return outcome.FailWith[string](outcome.InvalidOrder, "order id already exists")
	case errors.Is(err, errs.ErrObjectNotFound):
		return outcome.Ok("")
	default:
		h.logger.ErrorContext(ctx, "order id lookup failed", "order_id", orderID, "error", err)
		return outcome.Fail[string](outcome.OrderDetailNotAvailable)
	}
}

func (h PlaceOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order, items []order.Item) outcome.Outcome[string] {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return outcome.Fail[string](outcome.OrderPersistFailed)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		h.logger.ErrorContext(ctx, "order not persisted", "order_id", aggregate.ID(), "error", err)
		return outcome.Fail[string](outcome.OrderPersistFailed)
	}

	itemRepo := uow.OrderItemRepository()
	for _, item := range items {
		if err := itemRepo.Add(ctx, item); err != nil {
			h.logger.ErrorContext(ctx, "order item not persisted",
				"order_id", aggregate.ID(), "item_id", item.ItemID(), "error", err)
			return outcome.FailWith[string](outcome.OrderItemPersistFailed,
				fmt.Sprintf("%s: item %d", outcome.OrderItemPersistFailed.Message(), item.ItemID()))
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return outcome.Fail[string](outcome.OrderPersistFailed)
	}

	return outcome.Ok("")
}

func pricingRequest(command PlaceOrderCommand) services.PricingRequest {
	draft := command.Draft()
	lines := make([]services.PricingLine, 0, len(command.Lines()))
	for _, l := range command.Lines() {
		lines = append(lines, services.PricingLine{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	return services.PricingRequest{
		ShopID:        draft.ShopID,
		Price:         draft.Price,
		DeliveryPrice: draft.DeliveryPrice,
		Lines:         lines,
	}
}

func pricingOutcome(err error) outcome.Outcome[string] {
	if errors.Is(err, services.ErrConfigurationUnavailable) {
		return outcome.Fail[string](outcome.ConfigurationUnavailable)
	}

	var pe *services.PricingError
	if !errors.As(err, &pe) {
		return outcome.Fail[string](outcome.UnexpectedInternalFault)
	}

	switch pe.Reason {
	case services.ReasonOrderNotTaken:
		return outcome.Fail[string](outcome.OrderNotTaken)
	case services.ReasonDeliveryNotAvailable:
		return outcome.Fail[string](outcome.DeliveryNotAvailable)
	case services.ReasonItemNotAvailable:
		return outcome.FailWith[string](outcome.ItemUnavailable, string(pe.Reason))
	default:
		return outcome.FailWith[string](outcome.PricingMismatch, string(pe.Reason))
	}
}

func orderItems(orderID string, lines []OrderLine, unitPrices map[int64]kernel.Money) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		price, ok := unitPrices[l.ItemID]
		if !ok {
			return nil, fmt.Errorf("no catalog price for item %d", l.ItemID)
		}
		item, err := order.NewItem(orderID, l.ItemID, l.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
