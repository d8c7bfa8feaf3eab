package jobs

import (
	"context"
	"log/slog"
	"time"

	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// ScheduleGenerationJob materializes upcoming delivery orders from active
// subscriptions on a cron schedule. Generation is idempotent, so overlapping
// runs and restarts are safe.
type ScheduleGenerationJob struct {
	handler     commands.GenerateSchedulesCommandHandler
	cron        *cron.Cron
	spec        string
	horizonDays int
	actor       kernel.Actor
	logger      *slog.Logger
}

// NewScheduleGenerationJob creates a generation job that fires on the given
// cron spec and fills the order book horizonDays ahead. The job acts under a
// synthetic admin identity since generation is an admin-only operation.
func NewScheduleGenerationJob(
	handler commands.GenerateSchedulesCommandHandler,
	spec string,
	horizonDays int,
	logger *slog.Logger,
) (*ScheduleGenerationJob, error) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &ScheduleGenerationJob{
		handler:     handler,
		cron:        cron.New(),
		spec:        spec,
		horizonDays: horizonDays,
		actor:       actor,
		logger:      logger.With("component", "schedule_generation_job"),
	}, nil
}

// Start registers the cron entry and begins the scheduler. It also runs one
// generation pass immediately so a freshly deployed engine has orders to serve
// before the first scheduled tick.
func (j *ScheduleGenerationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	go j.run()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Schedule generation job started",
		"spec", j.spec, "horizonDays", j.horizonDays)
	return nil
}

// Stop stops the schedule generation job.
func (j *ScheduleGenerationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Schedule generation job stopped")
}

func (j *ScheduleGenerationJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewGenerateSchedulesCommand(j.actor, time.Now().UTC(), j.horizonDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Schedule generation command is invalid", "error", err)
		return
	}

	created, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Schedule generation failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Schedule generation completed", "created", created)
}
