// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Addr           string        `env:"INHOME_ADDR" envDefault:":8080"`
	APIBaseURL     string        `env:"INHOME_API_BASE_URL,required"`
	SessionDBPath  string        `env:"INHOME_SESSION_DB" envDefault:"./data/sessions.db"`
	WebDir         string        `env:"INHOME_WEB_DIR" envDefault:"web"`
	LogLevel       string        `env:"INHOME_LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"INHOME_API_TIMEOUT" envDefault:"15s"`
	Env            string        `env:"INHOME_ENV" envDefault:"development"`
}

// IsDevelopment returns true if the application runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if !strings.HasPrefix(cfg.APIBaseURL, "http://") && !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		return nil, fmt.Errorf("INHOME_API_BASE_URL must be an http(s) URL, got %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("INHOME_API_TIMEOUT must be positive, got %v", cfg.RequestTimeout)
	}
	return cfg, nil
}
