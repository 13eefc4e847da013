package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RefundSweepJob manages the scheduled refund sweep. On each run it moves
// cancelled and failed orders that outlived the grace period to refunded.
type RefundSweepJob struct {
	handler     commands.RefundStaleOrdersCommandHandler
	schedule    string
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewRefundSweepJob creates a new job for the refund sweep.
// The schedule is a standard five-field cron expression; the grace period
// is how long an order may sit cancelled or failed before it is refunded.
func NewRefundSweepJob(
	handler commands.RefundStaleOrdersCommandHandler,
	schedule string,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *RefundSweepJob {
	return &RefundSweepJob{
		handler:     handler,
		schedule:    schedule,
		gracePeriod: gracePeriod,
		cron:        cron.New(),
		logger:      logger.With("component", "refund_sweep_job"),
	}
}

// Start begins the refund sweep job on its configured schedule.
func (j *RefundSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRefundStaleOrdersCommand(j.gracePeriod)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Refund sweep command is invalid", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Refund sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Refund sweep job started",
		"schedule", j.schedule, "grace_period", j.gracePeriod)
	return nil
}

// Stop stops the refund sweep job.
func (j *RefundSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Refund sweep job stopped")
}
