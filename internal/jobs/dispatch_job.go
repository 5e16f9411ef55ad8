package jobs

import (
	"context"
	"errors"
	"log/slog"

	"courierdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchJob sweeps pending shipments and assigns them to free couriers.
// Runs every thirty seconds so manual dispatch from the back office stays
// optional.
type DispatchJob struct {
	handler commands.DispatchPendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates a new job for dispatching pending shipments.
func NewDispatchJob(handler commands.DispatchPendingCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job to run every thirty seconds.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingShipments) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every 30 seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
