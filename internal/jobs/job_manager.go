package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderReportJob *StaleOrderReportJob
}

// StaleOrderSettings configures the stale-order report.
type StaleOrderSettings struct {
	After    time.Duration
	Schedule string
}

func NewJobManager(activeOrders ActiveOrdersReader, staleOrders StaleOrderSettings, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleOrderReportJob: NewStaleOrderReportJob(activeOrders, staleOrders.After, staleOrders.Schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running reports to finish.
func (jm *JobManager) StopAll() {
	jm.staleOrderReportJob.Stop()
}
