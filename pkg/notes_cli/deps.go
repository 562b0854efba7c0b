// pkg/notes_cli/deps.go

package notes_cli

import (
	"github.com/sweetrb/mcp-apple-notes/pkg/config"
	"github.com/sweetrb/mcp-apple-notes/pkg/logger"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes"
	"github.com/sweetrb/mcp-apple-notes/pkg/osascript"
	"github.com/sweetrb/mcp-apple-notes/pkg/syncwatch"
)

// NewService builds the operations service over a real osascript runner,
// both configured from the process config.
func NewService() *notes.Service {
	cfg := config.Load()
	runner := osascript.NewRunner(osascript.RunnerOptions{
		Logger:           logger.L(),
		Verbose:          cfg.Verbose,
		BreakerThreshold: cfg.BreakerThreshold,
		BreakerCooldown:  cfg.BreakerCooldown(),
	})
	return notes.NewService(runner, cfg)
}

// NewMonitor builds the sync activity monitor from the process config.
func NewMonitor() *syncwatch.Monitor {
	cfg := config.Load()
	return syncwatch.New(syncwatch.Options{
		Logger:          logger.L(),
		StorePath:       cfg.StorePath,
		TTL:             cfg.SyncTTL(),
		RecentThreshold: cfg.RecentThreshold(),
	})
}
