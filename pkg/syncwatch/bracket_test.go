package syncwatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// sequenceProbe plays back one result per probe call.
type sequenceProbe struct {
	calls   int
	results []probeResult
}

func (p *sequenceProbe) fn() probeResult {
	if p.calls >= len(p.results) {
		panic("sequenceProbe: more probe calls than scripted results")
	}
	res := p.results[p.calls]
	p.calls++
	return res
}

func quiet(clock *fakeClock) probeResult {
	return probeResult{reachable: true, modTime: clock.t.Add(-time.Hour), hasModTime: true}
}

func pending(n int, clock *fakeClock) probeResult {
	res := quiet(clock)
	res.pending = n
	return res
}

func recent(clock *fakeClock) probeResult {
	return probeResult{reachable: true, modTime: clock.t.Add(-time.Second), hasModTime: true}
}

func newBracketMonitor(clock *fakeClock, probe *sequenceProbe) *Monitor {
	m := New(Options{Logger: zap.NewNop(), StorePath: "/nonexistent/NoteStore.sqlite"})
	m.now = clock.now
	m.probe = probe.fn
	return m
}

func TestBracketReportsPendingDeltaInterference(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	probe := &sequenceProbe{results: []probeResult{pending(2, clock), pending(5, clock)}}
	m := newBracketMonitor(clock, probe)

	obs, err := Bracket(context.Background(), m, "create note", func(context.Context) (string, error) {
		return "created", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "created", obs.Result)
	assert.True(t, obs.Interference)
	assert.Contains(t, obs.Note, "+3")
	assert.Equal(t, 2, obs.Before.PendingCount)
	assert.Equal(t, 5, obs.After.PendingCount)
}

func TestBracketNoInterferenceWhenQuiet(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	probe := &sequenceProbe{results: []probeResult{quiet(clock), quiet(clock)}}
	m := newBracketMonitor(clock, probe)

	obs, err := Bracket(context.Background(), m, "list notes", func(context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, obs.Result)
	assert.False(t, obs.Interference)
	assert.Empty(t, obs.Note)
}

func TestBracketIdenticalPendingCountNoInterference(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	probe := &sequenceProbe{results: []probeResult{pending(4, clock), pending(4, clock)}}
	m := newBracketMonitor(clock, probe)

	obs, err := Bracket(context.Background(), m, "read note", func(context.Context) (string, error) {
		return "body", nil
	})

	require.NoError(t, err)
	assert.False(t, obs.Interference, "unchanged pending count is not interference")
}

func TestBracketContinuousRecentActivity(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	probe := &sequenceProbe{results: []probeResult{recent(clock), recent(clock)}}
	m := newBracketMonitor(clock, probe)

	obs, err := Bracket(context.Background(), m, "search", func(context.Context) (string, error) {
		return "", nil
	})

	require.NoError(t, err)
	assert.True(t, obs.Interference)
	assert.Contains(t, obs.Note, "continuous background sync")
}

func TestBracketAfterReadIsForcedFresh(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	probe := &sequenceProbe{results: []probeResult{quiet(clock), quiet(clock)}}
	m := newBracketMonitor(clock, probe)

	_, err := Bracket(context.Background(), m, "noop", func(context.Context) (struct{}, error) {
		return struct{}{}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, probe.calls, "the after read must bypass the still-fresh cache")
}

func TestBracketPassesThroughOperationError(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	probe := &sequenceProbe{results: []probeResult{quiet(clock), quiet(clock)}}
	m := newBracketMonitor(clock, probe)

	opErr := errors.New("boom")
	obs, err := Bracket(context.Background(), m, "delete note", func(context.Context) (string, error) {
		return "", opErr
	})

	assert.ErrorIs(t, err, opErr)
	assert.False(t, obs.Interference)
}
