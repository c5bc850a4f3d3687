package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleTransitJob *StaleTransitJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleTransitHandler queries.GetStaleTransitOrdersQueryHandler,
	notifier ports.Notifier,
	arbiterID kernel.UUID,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleTransitJob: NewStaleTransitJob(staleTransitHandler, notifier, arbiterID, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleTransitJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale transit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleTransitJob.Stop()
}
