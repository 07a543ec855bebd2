package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/tracker/repository"
	"golang-portfolio-sentiment/internal/tracker/strategy"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/robfig/cron/v3"
)

// ErrUnknownJob is returned for a job type without a registered strategy.
var ErrUnknownJob = errors.New("unknown job type")

// Runner triggers job strategies on cron schedules and records every execution.
type Runner struct {
	cron       *cron.Cron
	parser     cron.Parser
	strategies map[string]strategy.JobStrategy
	history    repository.JobExecutionRepository
	clock      utils.Clock
	timeout    time.Duration
	logger     *logger.Logger
	baseCtx    context.Context
}

// NewRunner creates a Runner. Each execution is bounded by timeout when it is positive.
// history may be nil, in which case executions are only logged.
func NewRunner(strategies []strategy.JobStrategy, history repository.JobExecutionRepository, clock utils.Clock, timeout time.Duration, log *logger.Logger) *Runner {
	strategyMap := make(map[string]strategy.JobStrategy)
	for _, s := range strategies {
		strategyMap[s.GetType()] = s
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Runner{
		cron:       cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		parser:     parser,
		strategies: strategyMap,
		history:    history,
		clock:      clock,
		timeout:    timeout,
		logger:     log,
		baseCtx:    context.Background(),
	}
}

// Schedule registers jobType under the cron expression. An empty expression is a no-op.
func (r *Runner) Schedule(jobType, expr string) error {
	if expr == "" {
		r.logger.Info("Job disabled", logger.StringField("job_type", jobType))
		return nil
	}
	if _, ok := r.strategies[jobType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, jobType)
	}
	if _, err := r.parser.Parse(expr); err != nil {
		return fmt.Errorf("failed to parse cron expression %q: %w", expr, err)
	}

	_, err := r.cron.AddFunc(expr, func() {
		_, _ = r.run(r.baseCtx, jobType, entity.JobTriggerCron)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", jobType, err)
	}
	r.logger.Info("Job scheduled", logger.StringField("job_type", jobType), logger.StringField("cron", expr))
	return nil
}

// RunJob executes the strategy for jobType once, outside the cron schedule.
func (r *Runner) RunJob(ctx context.Context, jobType string) (string, error) {
	return r.run(ctx, jobType, entity.JobTriggerManual)
}

// Executions lists recorded executions, newest first.
func (r *Runner) Executions(ctx context.Context, jobType string, limit int) ([]entity.JobExecution, error) {
	if r.history == nil {
		return []entity.JobExecution{}, nil
	}
	executions, err := r.history.List(ctx, jobType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list job executions: %w", err)
	}
	return executions, nil
}

func (r *Runner) run(ctx context.Context, jobType string, trigger entity.JobTrigger) (string, error) {
	s, ok := r.strategies[jobType]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownJob, jobType)
		r.logger.Error("Job execution failed", logger.ErrorField(err))
		return "", err
	}

	execution := &entity.JobExecution{
		JobType:   jobType,
		Trigger:   trigger,
		Status:    entity.JobStatusRunning,
		StartedAt: r.clock.Now(),
	}
	r.record(ctx, execution, true)

	execCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	output, err := s.Execute(execCtx)
	execution.Output = output
	execution.CompletedAt.Time = r.clock.Now()
	execution.CompletedAt.Valid = true
	if err != nil {
		r.logger.Error("Job execution failed", logger.ErrorField(err), logger.StringField("job_type", jobType), logger.StringField("trigger", string(trigger)))
		execution.Status = entity.JobStatusFailed
		execution.ErrorMessage = err.Error()
	} else {
		r.logger.Info("Job executed successfully",
			logger.StringField("job_type", jobType),
			logger.StringField("trigger", string(trigger)),
			logger.StringField("output", output),
			logger.Field("duration", execution.CompletedAt.Time.Sub(execution.StartedAt)))
		execution.Status = entity.JobStatusCompleted
	}
	r.record(ctx, execution, false)

	return output, err
}

func (r *Runner) record(ctx context.Context, execution *entity.JobExecution, create bool) {
	if r.history == nil {
		return
	}
	// the run context may already be cancelled by the job timeout
	ctx = context.WithoutCancel(ctx)

	var err error
	if create {
		err = r.history.Create(ctx, execution)
	} else {
		err = r.history.Update(ctx, execution)
	}
	if err != nil {
		r.logger.Error("Failed to record job execution", logger.ErrorField(err), logger.StringField("job_type", execution.JobType))
	}
}

// Start runs the cron loop until ctx is done, then waits for running jobs.
func (r *Runner) Start(ctx context.Context) {
	r.baseCtx = ctx
	r.cron.Start()
	r.logger.Info("Scheduler started", logger.IntField("jobs", len(r.cron.Entries())))

	<-ctx.Done()
	r.logger.Info("Scheduler stopping")
	<-r.cron.Stop().Done()
}
