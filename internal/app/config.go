package app

import (
	"errors"
	"fmt"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TaskPaths []string // hcl files or directories

	LogFormat string
	LogLevel  string
	Output    string // report format
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.TaskPaths) == 0 {
		return nil, errors.New("at least one task path is required")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = FormatText
	}
	if cfg.LogFormat != FormatText && cfg.LogFormat != FormatJSON {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Output == "" {
		cfg.Output = FormatText
	}
	if cfg.Output != FormatText && cfg.Output != FormatJSON {
		return nil, fmt.Errorf("invalid output format %q: must be 'text' or 'json'", cfg.Output)
	}

	paths := make([]string, len(cfg.TaskPaths))
	copy(paths, cfg.TaskPaths)
	cfg.TaskPaths = paths

	return &cfg, nil
}
