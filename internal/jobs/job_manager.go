package jobs

import (
	"fmt"
	"log/slog"

	"gasdelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduleGenerationJob *ScheduleGenerationJob
}

// NewJobManager creates a job manager wired to the generation handler.
// spec is a standard five-field cron expression; horizonDays is how far ahead
// each run materializes orders.
func NewJobManager(
	generateHandler commands.GenerateSchedulesCommandHandler,
	spec string,
	horizonDays int,
	logger *slog.Logger,
) (*JobManager, error) {
	generationJob, err := NewScheduleGenerationJob(generateHandler, spec, horizonDays, logger)
	if err != nil {
		return nil, err
	}

	return &JobManager{scheduleGenerationJob: generationJob}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.scheduleGenerationJob.Start(); err != nil {
		return fmt.Errorf("failed to start schedule generation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.scheduleGenerationJob.Stop()
}
