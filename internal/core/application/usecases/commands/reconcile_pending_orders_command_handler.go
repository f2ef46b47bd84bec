package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/payment"
	"zinger/internal/core/ports"
)

// ReconcileReport counts what one sweep did.
type ReconcileReport struct {
	Scanned  int
	Placed   int
	Failed   int
	Refunded int
}

// ReconcilePendingOrdersCommandHandler moves PENDING orders on from the
// live gateway status:
//   - success within the timeout: PLACED
//   - success older than the timeout: refund request, then TXN_FAILURE
//   - failure codes: TXN_FAILURE
//   - pending codes: untouched
//
// Each order is reconciled in its own transaction. A failing order is
// logged and does not stop the sweep.
type ReconcilePendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.PaymentGateway
	refunds    ports.RefundLedger
	keys       SecretKeyIssuer
	logger     *slog.Logger
	clock      func() time.Time
}

func NewReconcilePendingOrdersCommandHandler(
	uowFactory UoWFactory,
	gateway ports.PaymentGateway,
	refunds ports.RefundLedger,
	keys SecretKeyIssuer,
	logger *slog.Logger,
) ReconcilePendingOrdersCommandHandler {
	return ReconcilePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		refunds:    refunds,
		keys:       keys,
		logger:     logger.With("component", "reconcile_pending_orders"),
		clock:      time.Now,
	}
}

func (h ReconcilePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	command ReconcilePendingOrdersCommand,
) (ReconcileReport, error) {
	if err := command.Validate(); err != nil {
		return ReconcileReport{}, err
	}

	pending, err := h.uowFactory.Create().OrderRepository().ListByStatus(ctx, order.Pending)
	if err != nil {
		return ReconcileReport{}, err
	}

	report := ReconcileReport{Scanned: len(pending)}
	var failures error
	for _, o := range pending {
		next, refund, err := h.reconcile(ctx, o.ID(), command.Timeout())
		if err != nil {
			h.logger.ErrorContext(ctx, "pending order not reconciled", "order_id", o.ID(), "error", err)
			failures = errors.Join(failures, err)
			continue
		}

		switch next {
		case order.Placed:
			report.Placed++
		case order.TxnFailure:
			report.Failed++
		}
		if refund {
			report.Refunded++
		}
	}

	return report, failures
}

// reconcile returns the status the order was moved to (Unknown when left
// alone) and whether a refund was requested.
func (h ReconcilePendingOrdersCommandHandler) reconcile(
	ctx context.Context,
	orderID string,
	timeout time.Duration,
) (order.Status, bool, error) {
	status, err := h.gateway.Status(ctx, orderID)
	if err != nil {
		return order.Unknown, false, fmt.Errorf("gateway status: %w", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.Unknown, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	aggregate, err := orders.GetForUpdate(ctx, orderID)
	if err != nil {
		return order.Unknown, false, err
	}
	if aggregate.Status() != order.Pending {
		return order.Unknown, false, nil
	}

	next := payment.StatusFor(status.ResponseCode)
	expired := status.IsSuccess() && h.clock().Sub(aggregate.CreatedAt()) > timeout
	if expired {
		next = order.TxnFailure
	}
	if next == order.Pending {
		return order.Unknown, false, nil
	}

	if _, err = changeStatus(ctx, orders, h.keys, aggregate, next, ""); err != nil {
		return order.Unknown, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, false, err
	}

	if expired {
		req := ports.RefundRequest{OrderID: aggregate.ID(), Amount: status.Amount, Reason: order.TxnFailure}
		if err = h.refunds.Record(ctx, req); err != nil {
			h.logger.ErrorContext(ctx, "refund not recorded", "order_id", aggregate.ID(), "error", err)
			return next, false, nil
		}
	}

	return next, expired, nil
}
