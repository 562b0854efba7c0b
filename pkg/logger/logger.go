// pkg/logger/logger.go

package logger

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Initialize sets up the process-wide logger: a console core on stderr
// plus, when a writable path exists, a JSON file core. It also installs
// the otelzap global so packages can log through otelzap.Ctx with trace
// correlation. Initialize never fails; it degrades to console-only.
func Initialize(verbose bool) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = ParseLogLevel(env)
	}

	// Console to stderr so command output on stdout stays clean.
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}
	if path := resolveLogPath(); path != "" {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
			jsonCfg := zap.NewProductionEncoderConfig()
			jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(jsonCfg),
				zapcore.AddSync(f),
				level,
			))
		}
	}

	log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(log)
	otelzap.ReplaceGlobals(otelzap.New(log))
}

// L returns the process logger; it never returns nil.
func L() *zap.Logger {
	if log == nil {
		Initialize(false)
	}
	return log
}

func ParseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

// resolveLogPath returns the first writable log file path, or "" for
// console-only logging.
func resolveLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(home, "Library", "Logs", "mcp-apple-notes", "bridge.log"),
		filepath.Join(home, ".mcp-apple-notes", "bridge.log"),
	}
	for _, path := range candidates {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			continue
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			continue
		}
		_ = f.Close()
		return path
	}
	return ""
}
