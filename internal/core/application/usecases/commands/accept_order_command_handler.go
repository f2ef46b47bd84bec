package commands

import (
	"context"
	"errors"
	"log/slog"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/payment"
	"zinger/internal/core/ports"
	"zinger/internal/pkg/errs"
)

// AcceptOrderCommandHandler accepts a paid order. Inside one transaction it
// locks the order, checks the live gateway status (and, when amount checking
// is enabled, that the paid amount equals the order price), stores the
// transaction exactly once and moves the order to ACCEPTED, passing through
// PLACED if it is still PENDING.
type AcceptOrderCommandHandler struct {
	uowFactory  UoWFactory
	identity    ports.IdentityVerifier
	gateway     ports.PaymentGateway
	keys        SecretKeyIssuer
	checkAmount bool
	recorder    *outcome.Recorder
	logger      *slog.Logger
}

func NewAcceptOrderCommandHandler(
	uowFactory UoWFactory,
	identity ports.IdentityVerifier,
	gateway ports.PaymentGateway,
	keys SecretKeyIssuer,
	checkAmount bool,
	recorder *outcome.Recorder,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:  uowFactory,
		identity:    identity,
		gateway:     gateway,
		keys:        keys,
		checkAmount: checkAmount,
		recorder:    recorder,
		logger:      logger.With("component", "accept_order"),
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) (result outcome.Outcome[string]) {
	subject := outcome.Subject{CallerMobile: command.Caller().Mobile, ID: command.OrderID()}
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
	transactions := uow.TransactionRepository()

	aggregate, err := orders.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return outcome.Fail[string](outcome.OrderDetailNotAvailable)
	}

	status, err := h.gateway.Status(ctx, aggregate.ID())
	if err != nil {
		h.logger.ErrorContext(ctx, "gateway status unavailable", "order_id", aggregate.ID(), "error", err)
		return outcome.Fail[string](outcome.TransactionDetailNotAvailable)
	}

	if err = payment.VerifySettled(status, aggregate.Price(), h.checkAmount); err != nil {
		if errors.Is(err, payment.ErrAmountMismatch) {
			return outcome.FailWith[string](outcome.PaymentNotSettled, payment.ErrAmountMismatch.Error())
		}
		return outcome.Fail[string](outcome.PaymentNotSettled)
	}

	_, err = transactions.Get(ctx, aggregate.ID())
	switch {
	case err == nil:
		return outcome.FailWith[string](outcome.TransactionPersistFailed, "transaction already recorded")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return outcome.Fail[string](outcome.TransactionDetailNotAvailable)
	}

	txn, err := payment.NewTransaction(status)
	if err != nil {
		return outcome.Fail[string](outcome.TransactionPersistFailed)
	}
	if err = transactions.Add(ctx, txn); err != nil {
		h.logger.ErrorContext(ctx, "transaction not persisted", "order_id", aggregate.ID(), "error", err)
		return outcome.Fail[string](outcome.TransactionPersistFailed)
	}

	if aggregate.Status() == order.Pending {
		if code, err := changeStatus(ctx, orders, h.keys, aggregate, order.Placed, ""); err != nil {
			return outcome.Fail[string](code)
		}
	}

	if code, err := changeStatus(ctx, orders, h.keys, aggregate, order.Accepted, ""); err != nil {
		return outcome.Fail[string](code)
	}

	if err = uow.Commit(ctx); err != nil {
		return outcome.Fail[string](outcome.OrderPersistFailed)
	}

	return outcome.Ok(aggregate.Status().String())
}
