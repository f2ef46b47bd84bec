// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six-field specs with a
// leading seconds field).
//
// # Available Jobs
//
// PendingOrderSweepJob reconciles PENDING orders against the payment gateway:
// settled payments move the order to PLACED, failed ones to TXN_FAILURE, and
// payments settled after the pending timeout are refunded.
//
// # Usage
//
//	sweep := jobs.NewPendingOrderSweepJob(handler, "0 */5 * * * *", 30*time.Minute, logger)
//	jobManager := jobs.NewJobManager(logger, sweep)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep logs orders it could not reconcile and carries on; a failed run
// is retried on the next tick. Failed job starts stop any already running jobs.
package jobs
