package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-portfolio-sentiment/internal/entity"
	"golang-portfolio-sentiment/internal/tracker/strategy"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStrategy struct {
	jobType string
	output  string
	err     error
	calls   int
	hadDead bool
}

func (f *fakeStrategy) GetType() string { return f.jobType }

func (f *fakeStrategy) Execute(ctx context.Context) (string, error) {
	f.calls++
	_, f.hadDead = ctx.Deadline()
	return f.output, f.err
}

// memoryHistory keeps copies of every state an execution passed through.
type memoryHistory struct {
	created []entity.JobExecution
	updated []entity.JobExecution
	err     error
}

func (m *memoryHistory) Create(ctx context.Context, execution *entity.JobExecution) error {
	if m.err != nil {
		return m.err
	}
	execution.ID = uint(len(m.created) + 1)
	m.created = append(m.created, *execution)
	return nil
}

func (m *memoryHistory) Update(ctx context.Context, execution *entity.JobExecution) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, *execution)
	return nil
}

func (m *memoryHistory) List(ctx context.Context, jobType string, limit int) ([]entity.JobExecution, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.updated, nil
}

func TestRunner_RunJob(t *testing.T) {
	ok := &fakeStrategy{jobType: "ok", output: `{"updated":1}`}
	bad := &fakeStrategy{jobType: "bad", err: errors.New("boom")}
	r := NewRunner([]strategy.JobStrategy{ok, bad}, nil, nil, time.Minute, logger.NewNop())

	out, err := r.RunJob(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, `{"updated":1}`, out)
	assert.Equal(t, 1, ok.calls)
	assert.True(t, ok.hadDead)

	_, err = r.RunJob(context.Background(), "bad")
	assert.EqualError(t, err, "boom")

	_, err = r.RunJob(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestRunner_NoTimeout(t *testing.T) {
	s := &fakeStrategy{jobType: "ok"}
	r := NewRunner([]strategy.JobStrategy{s}, nil, nil, 0, logger.NewNop())

	_, err := r.RunJob(context.Background(), "ok")
	require.NoError(t, err)
	assert.False(t, s.hadDead)
}

func TestRunner_RecordsExecutions(t *testing.T) {
	clock := &utils.FixedClock{T: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	history := &memoryHistory{}
	ok := &fakeStrategy{jobType: "ok", output: "done"}
	bad := &fakeStrategy{jobType: "bad", err: errors.New("boom")}
	r := NewRunner([]strategy.JobStrategy{ok, bad}, history, clock, 0, logger.NewNop())

	_, err := r.RunJob(context.Background(), "ok")
	require.NoError(t, err)
	_, err = r.RunJob(context.Background(), "bad")
	require.Error(t, err)

	require.Len(t, history.created, 2)
	assert.Equal(t, entity.JobStatusRunning, history.created[0].Status)
	assert.Equal(t, entity.JobTriggerManual, history.created[0].Trigger)
	assert.Equal(t, clock.T, history.created[0].StartedAt)

	require.Len(t, history.updated, 2)
	assert.Equal(t, entity.JobStatusCompleted, history.updated[0].Status)
	assert.Equal(t, "done", history.updated[0].Output)
	assert.True(t, history.updated[0].CompletedAt.Valid)
	assert.Equal(t, uint(1), history.updated[0].ID)

	assert.Equal(t, entity.JobStatusFailed, history.updated[1].Status)
	assert.Equal(t, "boom", history.updated[1].ErrorMessage)

	executions, err := r.Executions(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Len(t, executions, 2)
}

func TestRunner_HistoryFailureDoesNotFailJob(t *testing.T) {
	history := &memoryHistory{err: errors.New("db down")}
	r := NewRunner([]strategy.JobStrategy{&fakeStrategy{jobType: "ok", output: "done"}}, history, nil, 0, logger.NewNop())

	out, err := r.RunJob(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, "done", out)

	_, err = r.Executions(context.Background(), "ok", 5)
	assert.Error(t, err)
}

func TestRunner_ExecutionsWithoutHistory(t *testing.T) {
	r := NewRunner(nil, nil, nil, 0, logger.NewNop())

	executions, err := r.Executions(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, executions)
}

func TestRunner_Schedule(t *testing.T) {
	r := NewRunner([]strategy.JobStrategy{&fakeStrategy{jobType: "ok"}}, nil, nil, 0, logger.NewNop())

	tests := []struct {
		name    string
		jobType string
		expr    string
		wantErr bool
	}{
		{name: "valid", jobType: "ok", expr: "*/15 * * * *"},
		{name: "descriptor", jobType: "ok", expr: "@hourly"},
		{name: "disabled", jobType: "ok", expr: ""},
		{name: "invalid expression", jobType: "ok", expr: "not a cron", wantErr: true},
		{name: "seconds field rejected", jobType: "ok", expr: "0 */5 * * * *", wantErr: true},
		{name: "unknown job", jobType: "missing", expr: "@daily", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Schedule(tt.jobType, tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
	assert.Len(t, r.cron.Entries(), 2)
}

func TestRunner_StartStopsOnCancel(t *testing.T) {
	r := NewRunner(nil, nil, nil, 0, logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
