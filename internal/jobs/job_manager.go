// Package jobs provides the scheduled background tasks of the back office:
// the dispatch sweep that assigns pending shipments to free couriers, and the
// overdue sweep that flags sent invoices past their due date. Jobs run on
// github.com/robfig/cron/v3 schedules and are coordinated through JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"courierdesk/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob        *DispatchJob
	overdueInvoicesJob *OverdueInvoicesJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchPendingCommandHandler,
	markOverdueHandler commands.MarkOverdueInvoicesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchJob:        NewDispatchJob(dispatchHandler, logger),
		overdueInvoicesJob: NewOverdueInvoicesJob(markOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	if err := jm.overdueInvoicesJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start overdue invoices job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchJob.Stop()
	jm.overdueInvoicesJob.Stop()
}
