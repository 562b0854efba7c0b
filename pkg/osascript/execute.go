// pkg/osascript/execute.go

package osascript

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// interpreterPath is the fixed automation interpreter. The escaped script
// is passed as a single quoted argument on a shell command line because
// osascript receives the script text exactly as the Notes automation
// dictionary expects it.
const interpreterPath = "osascript"

// previewLimit bounds script and output fragments in log lines.
const previewLimit = 120

// spawnFunc runs one shell command line and returns captured stdout and
// stderr. Injectable so tests never start a real subprocess.
type spawnFunc func(ctx context.Context, shellLine string) (stdout, stderr string, err error)

// sleepFunc is the blocking backoff primitive. Injectable so retry tests
// run in virtual time.
type sleepFunc func(d time.Duration)

// RunnerOptions configures a Runner once at construction.
type RunnerOptions struct {
	Logger  *zap.Logger
	Verbose bool

	// BreakerThreshold enables the interpreter circuit breaker when > 0:
	// that many consecutive hard interpreter failures trip it.
	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// Runner executes automation commands against the Notes application.
// It is stateless per call apart from the logger and the optional
// circuit breaker.
type Runner struct {
	log     *zap.Logger
	verbose bool
	spawn   spawnFunc
	sleep   sleepFunc
	breaker *interpreterBreaker
}

// NewRunner builds a Runner with the real subprocess spawner and
// time.Sleep as the backoff primitive.
func NewRunner(opts RunnerOptions) *Runner {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{
		log:     log,
		verbose: opts.Verbose,
		spawn:   defaultSpawn,
		sleep:   time.Sleep,
	}
	if opts.BreakerThreshold > 0 {
		r.breaker = newInterpreterBreaker(opts.BreakerThreshold, opts.BreakerCooldown)
	}
	return r
}

// Execute runs one automation command: validate, escape, spawn, classify.
// Every failure path is converted into Outcome.Err; Execute never returns
// a Go error to its caller.
func (r *Runner) Execute(ctx context.Context, cmd Command) Outcome {
	return r.executeAttempt(ctx, cmd.withDefaults(), 1)
}

func (r *Runner) executeAttempt(ctx context.Context, cmd Command, attempt int) Outcome {
	script := strings.TrimSpace(cmd.Script)
	if script == "" {
		return failure(newErrorInfo(KindSyntax, "", "Empty automation command. This is a caller bug; nothing was sent to Notes."))
	}

	shellLine := fmt.Sprintf("%s -e '%s'", interpreterPath, Escape(script))

	if r.breaker != nil && !r.breaker.allow() {
		r.log.Warn("osascript call rejected, circuit open",
			zap.Int("attempt", attempt),
			zap.String("script", preview(script)))
		return failure(&ErrorInfo{
			Kind:    KindConnectionLost,
			Message: "Notes automation is failing repeatedly; holding off new attempts for a moment. Check that the Notes app is running.",
			// Retrying into an open breaker is pointless; the breaker's
			// half-open cycle is the recovery path.
			Retryable: false,
		})
	}

	if ctx == nil {
		ctx = context.Background()
	}
	timeout := time.Duration(cmd.TimeoutMs) * time.Millisecond
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, err := r.spawn(cctx, shellLine)
	duration := time.Since(start)

	if err == nil {
		if r.breaker != nil {
			r.breaker.recordSuccess()
		}
		if r.verbose {
			r.log.Info("osascript succeeded",
				zap.Int("attempt", attempt),
				zap.Duration("duration", duration),
				zap.String("script", preview(script)),
				zap.String("output", preview(stdout)))
		}
		return Outcome{Success: true, Output: strings.TrimSpace(stdout)}
	}

	// Timeout is detected before generic classification on purpose: a
	// killed subprocess leaves stderr that could match an unrelated rule.
	var info *ErrorInfo
	if cctx.Err() == context.DeadlineExceeded {
		info = timeoutError(cmd.TimeoutMs)
	} else {
		raw := strings.TrimSpace(stderr)
		if raw == "" {
			raw = err.Error()
		}
		info = Classify(raw)
	}

	if r.breaker != nil {
		r.breaker.record(info.Kind)
	}

	r.log.Warn("osascript failed",
		zap.Int("attempt", attempt),
		zap.Duration("duration", duration),
		zap.String("kind", info.Kind.String()),
		zap.String("script", preview(script)),
		zap.String("error", preview(info.Message)))

	return failure(info)
}

func timeoutError(timeoutMs int) *ErrorInfo {
	return newErrorInfo(KindTimeout, "", fmt.Sprintf(
		"Automation command timed out after %d seconds. Notes may be unresponsive; give it a moment or reopen the app.",
		timeoutMs/1000))
}

func defaultSpawn(ctx context.Context, shellLine string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", shellLine)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func preview(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= previewLimit {
		return s
	}
	return s[:previewLimit] + "..."
}
