package jobs

import (
	"context"
	"log/slog"
	"time"

	"zinger/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type PendingOrderReconciler interface {
	Handle(ctx context.Context, command commands.ReconcilePendingOrdersCommand) (commands.ReconcileReport, error)
}

// PendingOrderSweepJob runs the pending-order reconciliation on a cron schedule.
type PendingOrderSweepJob struct {
	handler  PendingOrderReconciler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewPendingOrderSweepJob(
	handler PendingOrderReconciler,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *PendingOrderSweepJob {
	return &PendingOrderSweepJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_order_sweep_job"),
	}
}

func (j *PendingOrderSweepJob) Name() string {
	return "pending order sweep"
}

// Start registers the sweep and starts the scheduler. It fails on an
// invalid schedule or timeout without starting anything.
func (j *PendingOrderSweepJob) Start() error {
	if _, err := commands.NewReconcilePendingOrdersCommand(j.timeout); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order sweep job started",
		"schedule", j.schedule, "timeout", j.timeout)
	return nil
}

// Run performs a single sweep.
func (j *PendingOrderSweepJob) Run(ctx context.Context) {
	cmd, err := commands.NewReconcilePendingOrdersCommand(j.timeout)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order sweep misconfigured", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order sweep failed", "error", err,
			"scanned", report.Scanned, "placed", report.Placed, "failed", report.Failed)
		return
	}

	if report.Scanned > 0 {
		j.logger.InfoContext(ctx, "Pending order sweep finished",
			"scanned", report.Scanned,
			"placed", report.Placed,
			"failed", report.Failed,
			"refunded", report.Refunded,
		)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PendingOrderSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order sweep job stopped")
}
