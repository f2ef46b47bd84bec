package commands

import (
	"context"
	"log/slog"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/ports"
)

// UpdateOrderStatusCommandHandler drives an order through the status state
// machine on a caller's request. The order row is locked for the
// read-validate-write sequence. Moves out of PENDING are refused here, and the
// order must carry its payment transaction. A cancellation records a refund request once the status change has
// committed; a refund-ledger failure is logged only.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	identity   ports.IdentityVerifier
	keys       SecretKeyIssuer
	refunds    ports.RefundLedger
	recorder   *outcome.Recorder
	logger     *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	identity ports.IdentityVerifier,
	keys SecretKeyIssuer,
	refunds ports.RefundLedger,
	recorder *outcome.Recorder,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		keys:       keys,
		refunds:    refunds,
		recorder:   recorder,
		logger:     logger.With("component", "update_order_status"),
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateOrderStatusCommand,
) (result outcome.Outcome[string]) {
	subject := outcome.Subject{
		CallerMobile: command.Caller().Mobile,
		ID:           command.OrderID(),
		Payload:      map[string]string{"status": command.Status().String()},
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

	if !aggregate.Status().CallerMayMove(command.Status()) {
		h.logger.InfoContext(ctx, "status change refused for caller",
			"order_id", aggregate.ID(), "from", aggregate.Status().String(), "to", command.Status().String())
		return outcome.Fail[string](outcome.InvalidStatusTransition)
	}

	if _, err = uow.TransactionRepository().Get(ctx, aggregate.ID()); err != nil {
		return outcome.Fail[string](outcome.TransactionDetailNotAvailable)
	}

	if code, err := changeStatus(ctx, orders, h.keys, aggregate, command.Status(), command.SecretKey()); err != nil {
		h.logger.InfoContext(ctx, "status change rejected",
			"order_id", aggregate.ID(), "from", aggregate.Status().String(), "to", command.Status().String(), "error", err)
		return outcome.Fail[string](code)
	}

	if err = uow.Commit(ctx); err != nil {
		return outcome.Fail[string](outcome.OrderPersistFailed)
	}

	if aggregate.Status().RequiresRefund() {
		req := ports.RefundRequest{OrderID: aggregate.ID(), Amount: aggregate.Price(), Reason: aggregate.Status()}
		if err = h.refunds.Record(ctx, req); err != nil {
			h.logger.ErrorContext(ctx, "refund not recorded", "order_id", aggregate.ID(), "error", err)
		}
	}

	return outcome.Ok(aggregate.Status().String())
}
