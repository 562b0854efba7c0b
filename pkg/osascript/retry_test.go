package osascript

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var busyResponse = spawnResponse{
	stderr: "execution error: Notes got an error: AppleEvent timed out. (-1712)",
	err:    errors.New("exit status 1"),
}

var notFoundResponse = spawnResponse{
	stderr: `execution error: Notes got an error: Can't get note "Gone". (-1728)`,
	err:    errors.New("exit status 1"),
}

func newRetryRunner(spawn *spySpawn) (*Runner, *[]time.Duration) {
	r := NewRunner(RunnerOptions{Logger: zap.NewNop()})
	r.spawn = spawn.fn
	var delays []time.Duration
	r.sleep = func(d time.Duration) { delays = append(delays, d) }
	return r, &delays
}

func TestExecuteWithRetrySucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()
	spawn := &spySpawn{responses: []spawnResponse{
		busyResponse,
		busyResponse,
		{stdout: "done"},
	}}
	r, delays := newRetryRunner(spawn)

	out := r.ExecuteWithRetry(context.Background(), Command{
		Script:           "make new note",
		MaxAttempts:      5,
		RetryBaseDelayMs: 100,
	})

	assert.True(t, out.Success)
	assert.Equal(t, "done", out.Output)
	assert.Len(t, spawn.calls, 3, "process invoked exactly N times")
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *delays)
}

func TestExecuteWithRetryStopsOnNonRetryable(t *testing.T) {
	t.Parallel()
	spawn := &spySpawn{responses: []spawnResponse{notFoundResponse}}
	r, delays := newRetryRunner(spawn)

	out := r.ExecuteWithRetry(context.Background(), Command{
		Script:      "get note",
		MaxAttempts: 5,
	})

	assert.False(t, out.Success)
	require.NotNil(t, out.Err)
	assert.Equal(t, KindNotFound, out.Err.Kind)
	assert.Len(t, spawn.calls, 1, "non-retryable errors must not be retried")
	assert.Empty(t, *delays)
}

func TestExecuteWithRetryExhaustsBudget(t *testing.T) {
	t.Parallel()
	spawn := &spySpawn{responses: []spawnResponse{busyResponse, busyResponse, busyResponse}}
	r, delays := newRetryRunner(spawn)

	out := r.ExecuteWithRetry(context.Background(), Command{
		Script:           "make new note",
		MaxAttempts:      3,
		RetryBaseDelayMs: 50,
	})

	assert.False(t, out.Success)
	require.NotNil(t, out.Err)
	assert.Equal(t, KindTransientBusy, out.Err.Kind, "outcome is the last attempt's")
	assert.Len(t, spawn.calls, 3)
	assert.Equal(t, []time.Duration{50 * time.Millisecond, 100 * time.Millisecond}, *delays)
}

func TestExecuteWithRetryDefaultsToSingleAttempt(t *testing.T) {
	t.Parallel()
	spawn := &spySpawn{responses: []spawnResponse{busyResponse}}
	r, delays := newRetryRunner(spawn)

	out := r.ExecuteWithRetry(context.Background(), Command{Script: "make new note"})

	assert.False(t, out.Success)
	assert.Len(t, spawn.calls, 1)
	assert.Empty(t, *delays)
}

func TestExecuteWithRetryTimeoutIsRetryable(t *testing.T) {
	t.Parallel()
	spawn := &spySpawn{responses: []spawnResponse{
		{hang: true},
		{stdout: "recovered"},
	}}
	r, _ := newRetryRunner(spawn)

	out := r.ExecuteWithRetry(context.Background(), Command{
		Script:           "delay 3600",
		TimeoutMs:        50,
		MaxAttempts:      2,
		RetryBaseDelayMs: 10,
	})

	assert.True(t, out.Success)
	assert.Equal(t, "recovered", out.Output)
	assert.Len(t, spawn.calls, 2)
}

func TestBackoffDelayDoubles(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1000*time.Millisecond, backoffDelay(1000, 1))
	assert.Equal(t, 2000*time.Millisecond, backoffDelay(1000, 2))
	assert.Equal(t, 4000*time.Millisecond, backoffDelay(1000, 3))
	assert.Equal(t, 8000*time.Millisecond, backoffDelay(1000, 4))
}
