// pkg/config/config.go

package config

import (
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries every tunable the bridge reads. It is resolved exactly
// once at process start so a value can never change mid-run; per-command
// flags may still override individual fields on their local copy.
type Config struct {
	// Automation command execution.
	TimeoutMs        int
	MaxAttempts      int
	RetryBaseDelayMs int
	Verbose          bool

	// Interpreter circuit breaker; 0 threshold disables it.
	BreakerThreshold  int
	BreakerCooldownMs int

	// Sync activity monitoring.
	SyncTTLMs         int
	RecentThresholdMs int
	StorePath         string
}

var (
	once   sync.Once
	loaded Config
	flags  *pflag.FlagSet
)

// BindFlags registers a parsed flag set whose values take precedence over
// environment variables. Must be called before the first Load.
func BindFlags(fs *pflag.FlagSet) {
	flags = fs
}

// Load resolves configuration from NOTES_BRIDGE_* environment variables
// with package defaults. Subsequent calls return the same snapshot.
func Load() Config {
	once.Do(func() {
		v := viper.New()
		v.SetEnvPrefix("NOTES_BRIDGE")
		v.AutomaticEnv()
		if flags != nil {
			_ = v.BindPFlags(flags)
		}

		v.SetDefault("timeout_ms", 30000)
		v.SetDefault("max_attempts", 3)
		v.SetDefault("retry_base_delay_ms", 1000)
		v.SetDefault("verbose", false)
		v.SetDefault("breaker_threshold", 5)
		v.SetDefault("breaker_cooldown_ms", 30000)
		v.SetDefault("sync_ttl_ms", 2000)
		v.SetDefault("recent_threshold_ms", 5000)
		v.SetDefault("store_path", "")

		loaded = Config{
			TimeoutMs:         v.GetInt("timeout_ms"),
			MaxAttempts:       v.GetInt("max_attempts"),
			RetryBaseDelayMs:  v.GetInt("retry_base_delay_ms"),
			Verbose:           v.GetBool("verbose"),
			BreakerThreshold:  v.GetInt("breaker_threshold"),
			BreakerCooldownMs: v.GetInt("breaker_cooldown_ms"),
			SyncTTLMs:         v.GetInt("sync_ttl_ms"),
			RecentThresholdMs: v.GetInt("recent_threshold_ms"),
			StorePath:         v.GetString("store_path"),
		}
	})
	return loaded
}

func (c Config) BreakerCooldown() time.Duration {
	return time.Duration(c.BreakerCooldownMs) * time.Millisecond
}

func (c Config) SyncTTL() time.Duration {
	return time.Duration(c.SyncTTLMs) * time.Millisecond
}

func (c Config) RecentThreshold() time.Duration {
	return time.Duration(c.RecentThresholdMs) * time.Millisecond
}
