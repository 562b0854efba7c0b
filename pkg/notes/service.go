// pkg/notes/service.go

package notes

import (
	"context"

	cerr "github.com/cockroachdb/errors"

	"github.com/sweetrb/mcp-apple-notes/pkg/config"
	"github.com/sweetrb/mcp-apple-notes/pkg/osascript"
)

// Runner is the slice of the execution layer the operations need.
type Runner interface {
	ExecuteWithRetry(ctx context.Context, cmd osascript.Command) osascript.Outcome
}

// Service exposes the note, folder, and account operations. Every method
// is a single-shot call through the execution layer: build a script, run
// it with the configured retry budget, parse the delimited output.
type Service struct {
	runner   Runner
	defaults osascript.Command
}

// NewService wires a Service to a runner with per-call execution
// configuration taken from the process config.
func NewService(runner Runner, cfg config.Config) *Service {
	return &Service{
		runner: runner,
		defaults: osascript.Command{
			TimeoutMs:        cfg.TimeoutMs,
			MaxAttempts:      cfg.MaxAttempts,
			RetryBaseDelayMs: cfg.RetryBaseDelayMs,
		},
	}
}

// run executes a script with the service defaults and converts a failed
// outcome into an error carrying the classified, user-facing message.
func (s *Service) run(ctx context.Context, script string) (string, error) {
	cmd := s.defaults
	cmd.Script = script
	out := s.runner.ExecuteWithRetry(ctx, cmd)
	if !out.Success {
		return "", automationError(out.Err)
	}
	return out.Output, nil
}

func automationError(info *osascript.ErrorInfo) error {
	if info == nil {
		return cerr.New("automation failed with no error detail")
	}
	return cerr.WithDetailf(cerr.New(info.Message), "kind: %s", info.Kind)
}
