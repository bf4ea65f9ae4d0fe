package app

import (
	"context"
	"fmt"

	"github.com/vk/sumsquares/internal/config"
)

// DefaultBound is the upper limit used when no bound is configured.
const DefaultBound int64 = 10

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Bound   int64
	Checked bool // report overflow instead of wrapping

	ConfigPath string // optional HCL settings file
	LogFormat  string
	LogLevel   string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Bound:     DefaultBound,
		Checked:   true,
		LogFormat: "text",
		LogLevel:  "warn",
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}

// ApplyFile loads the HCL file at cfg.ConfigPath, if any, and copies every
// attribute it sets into cfg unless that field is listed in locked.
func ApplyFile(ctx context.Context, cfg *Config, locked map[string]bool) error {
	if cfg.ConfigPath == "" {
		return nil
	}
	f, err := config.Load(ctx, cfg.ConfigPath)
	if err != nil {
		return err
	}

	if f.Bound != nil && !locked["n"] {
		cfg.Bound = *f.Bound
	}
	if f.Checked != nil && !locked["checked"] {
		cfg.Checked = *f.Checked
	}
	if f.LogLevel != nil && !locked["log-level"] {
		cfg.LogLevel = *f.LogLevel
	}
	if f.LogFormat != nil && !locked["log-format"] {
		cfg.LogFormat = *f.LogFormat
	}
	return nil
}
