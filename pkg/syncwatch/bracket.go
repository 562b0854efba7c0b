// pkg/syncwatch/bracket.go

package syncwatch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Observed pairs an operation's result with the activity snapshots taken
// around it. Interference means background sync overlapped the operation
// closely enough that its result may already be stale.
type Observed[T any] struct {
	Result       T
	Before       Status
	After        Status
	Interference bool
	Note         string
}

// Bracket captures activity before op runs (cache-eligible read), executes
// op, then forces a fresh read. The op's error passes through untouched;
// the snapshots are attached either way so callers can report staleness
// even for failed operations.
func Bracket[T any](ctx context.Context, m *Monitor, label string, op func(context.Context) (T, error)) (Observed[T], error) {
	before := m.Status(true)
	result, err := op(ctx)
	after := m.Status(false)

	obs := Observed[T]{
		Result: result,
		Before: before,
		After:  after,
	}

	delta := after.PendingCount - before.PendingCount
	switch {
	case before.ActivityDetected && delta != 0:
		obs.Interference = true
		obs.Note = fmt.Sprintf("pending sync count changed by %+d during %s", delta, label)
	case before.RecentActivity && after.RecentActivity:
		obs.Interference = true
		obs.Note = fmt.Sprintf("continuous background sync spanned %s", label)
	}

	if obs.Interference {
		m.log.Warn("sync interference detected",
			zap.String("operation", label),
			zap.Int("pending_before", before.PendingCount),
			zap.Int("pending_after", after.PendingCount),
			zap.Int("pending_delta", delta))
	}

	return obs, err
}
