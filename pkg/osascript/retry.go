// pkg/osascript/retry.go

package osascript

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExecuteWithRetry runs the command up to MaxAttempts times, sleeping
// base * 2^(attempt-1) between attempts. It returns on the first success,
// on the first non-retryable failure, or after exhausting the budget; the
// returned outcome is always the last attempt's.
func (r *Runner) ExecuteWithRetry(ctx context.Context, cmd Command) Outcome {
	cmd = cmd.withDefaults()

	var out Outcome
	for attempt := 1; attempt <= cmd.MaxAttempts; attempt++ {
		out = r.executeAttempt(ctx, cmd, attempt)
		if out.Success {
			return out
		}
		if !out.Err.Retryable || attempt == cmd.MaxAttempts {
			return out
		}

		delay := backoffDelay(cmd.RetryBaseDelayMs, attempt)
		r.log.Info("retrying automation command",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cmd.MaxAttempts),
			zap.Duration("delay", delay),
			zap.String("kind", out.Err.Kind.String()))
		r.sleep(delay)
	}
	return out
}

func backoffDelay(baseMs, attempt int) time.Duration {
	delay := time.Duration(baseMs) * time.Millisecond
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	return delay
}
