package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilintux/skyforge/pkg/logger"
)

// fakeJob is a configurable Job for tests
type fakeJob struct {
	name     string
	schedule string
	runs     atomic.Int32
	failures int32 // fail this many runs before succeeding
	done     chan struct{}
}

func newFakeJob(name string, failures int32) *fakeJob {
	return &fakeJob{
		name:     name,
		schedule: "0 0 6 * * *",
		failures: failures,
		done:     make(chan struct{}, 10),
	}
}

func (j *fakeJob) Name() string     { return j.name }
func (j *fakeJob) Schedule() string { return j.schedule }

func (j *fakeJob) Run(_ context.Context) error {
	n := j.runs.Add(1)
	defer func() { j.done <- struct{}{} }()
	if n <= j.failures {
		return errors.New("transient failure")
	}
	return nil
}

func waitForRuns(t *testing.T, j *fakeJob, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-j.done:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for run %d of %s", i+1, j.name)
		}
	}
}

func TestAddJob(t *testing.T) {
	s := New(logger.NewNop())

	require.NoError(t, s.AddJob(newFakeJob("daily-report", 0)))
	assert.Equal(t, []string{"daily-report"}, s.JobNames())
}

func TestAddJobDuplicate(t *testing.T) {
	s := New(logger.NewNop())

	require.NoError(t, s.AddJob(newFakeJob("daily-report", 0)))
	err := s.AddJob(newFakeJob("daily-report", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddJobBadSchedule(t *testing.T) {
	s := New(logger.NewNop())

	job := newFakeJob("broken", 0)
	job.schedule = "not a cron spec"
	assert.Error(t, s.AddJob(job))
}

func TestJobNamesSorted(t *testing.T) {
	s := New(logger.NewNop())

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, s.AddJob(newFakeJob(name, 0)))
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, s.JobNames())
}

func TestRunJobNotFound(t *testing.T) {
	s := New(logger.NewNop())

	err := s.RunJob("ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRunJobRecordsSuccess(t *testing.T) {
	s := New(logger.NewNop())
	job := newFakeJob("daily-report", 0)
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunJob("daily-report"))
	waitForRuns(t, job, 1)

	// history write happens right after the run signal
	assert.Eventually(t, func() bool {
		stats, ok := s.Stats()["daily-report"]
		return ok && stats.TotalRuns == 1 && stats.SuccessCount == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRunJobRetriesUntilSuccess(t *testing.T) {
	s := New(logger.NewNop())
	s.retryDelay = time.Millisecond

	job := newFakeJob("flaky", 2)
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunJob("flaky"))
	waitForRuns(t, job, 3)

	assert.Eventually(t, func() bool {
		stats, ok := s.Stats()["flaky"]
		return ok && stats.TotalRuns == 1 && stats.SuccessCount == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(3), job.runs.Load())
}

func TestRunJobFailsAfterRetries(t *testing.T) {
	s := New(logger.NewNop())
	s.retryDelay = time.Millisecond
	s.maxRetries = 1

	job := newFakeJob("doomed", 100)
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunJob("doomed"))
	waitForRuns(t, job, 2)

	assert.Eventually(t, func() bool {
		stats, ok := s.Stats()["doomed"]
		return ok && stats.TotalRuns == 1 && stats.FailureCount == 1 &&
			stats.LastError == "transient failure"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStartStop(t *testing.T) {
	s := New(logger.NewNop())
	require.NoError(t, s.AddJob(newFakeJob("daily-report", 0)))

	s.Start()
	s.Stop()
}

func TestJobHistoryAddResultCap(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: "j", Success: i%2 == 0})
	}
	assert.Len(t, h.Results, 100)
}

func TestJobHistoryLastResult(t *testing.T) {
	h := &JobHistory{}

	_, ok := h.LastResult()
	assert.False(t, ok)

	h.AddResult(JobResult{JobName: "j", Success: false, Error: "boom"})
	h.AddResult(JobResult{JobName: "j", Success: true})

	last, ok := h.LastResult()
	require.True(t, ok)
	assert.True(t, last.Success)
}

func TestJobHistorySuccessRate(t *testing.T) {
	h := &JobHistory{}
	assert.Equal(t, 0.0, h.SuccessRate())

	h.AddResult(JobResult{Success: true})
	h.AddResult(JobResult{Success: true})
	h.AddResult(JobResult{Success: false})
	h.AddResult(JobResult{Success: false})
	assert.Equal(t, 0.5, h.SuccessRate())
}
