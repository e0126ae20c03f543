package listener

import (
	"fmt"

	"github.com/dmitrymomot/listeners/core/config"
)

// Config holds the environment-tunable registry settings.
type Config struct {
	// MaxListeners is the per-event count above which a leak warning is logged.
	MaxListeners int `env:"LISTENER_MAX_LISTENERS" envDefault:"0"`

	// IgnoreUnresolved skips named methods missing on their target.
	IgnoreUnresolved bool `env:"LISTENER_IGNORE_UNRESOLVED" envDefault:"false"`
}

// ConfigFromEnv loads Config from the environment (and a .env file, if any).
// The result is cached for the lifetime of the process.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("load listener config: %w", err)
	}
	return cfg, nil
}
