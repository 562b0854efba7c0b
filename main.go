// main.go

package main

import (
	"github.com/sweetrb/mcp-apple-notes/cmd"
	"github.com/sweetrb/mcp-apple-notes/pkg/logger"
	"github.com/sweetrb/mcp-apple-notes/pkg/telemetry"
	"go.uber.org/zap"
)

func main() {
	logger.Initialize(false)
	if err := telemetry.Init("mcp-apple-notes"); err != nil {
		logger.L().Warn("telemetry disabled", zap.Error(err))
	}
	cmd.Execute()
}
