package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type envOverrides struct {
	GamePath  string `env:"STORYFINDER_GAME_PATH"`
	LogLevel  string `env:"STORYFINDER_LOG_LEVEL"`
	LogFormat string `env:"STORYFINDER_LOG_FORMAT"`
}

// applyEnv layers environment variables over file values.
func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if value := strings.TrimSpace(overrides.GamePath); value != "" {
		c.Install.GamePath = value
	}
	if value := strings.TrimSpace(overrides.LogLevel); value != "" {
		c.Logging.Level = value
	}
	if value := strings.TrimSpace(overrides.LogFormat); value != "" {
		c.Logging.Format = value
	}
	return nil
}
