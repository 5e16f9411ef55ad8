package jobs

import (
	"context"
	"log/slog"
	"time"

	"courierdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueInvoicesJob sweeps sent invoices past their due date and marks them
// overdue. Runs hourly; the sweep is idempotent, so overlapping runs after a
// restart are harmless.
type OverdueInvoicesJob struct {
	handler commands.MarkOverdueInvoicesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueInvoicesJob creates a new job for flagging overdue invoices.
func NewOverdueInvoicesJob(handler commands.MarkOverdueInvoicesCommandHandler, logger *slog.Logger) *OverdueInvoicesJob {
	return &OverdueInvoicesJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_invoices_job"),
	}
}

// Start begins the overdue sweep to run at the top of every hour.
func (j *OverdueInvoicesJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewMarkOverdueInvoicesCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Overdue invoices job failed to build command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue invoices job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue invoices job started (running hourly)")
	return nil
}

// Stop stops the overdue sweep.
func (j *OverdueInvoicesJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue invoices job stopped")
}
