package config

import (
	"errors"
	"fmt"
)

const maxTraceDepth = 256

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Trace.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	switch l.Backend {
	case "slog", "zap":
		// Valid backends.
	default:
		errs = append(errs, fmt.Errorf("log.backend must be one of: slog, zap; got %q", l.Backend))
	}

	return errors.Join(errs...)
}

func (t *TraceConfig) validate() error {
	if !t.Capture {
		return nil
	}

	if t.MaxDepth < 1 || t.MaxDepth > maxTraceDepth {
		return fmt.Errorf("trace.max_depth must be between 1 and %d, got %d", maxTraceDepth, t.MaxDepth)
	}

	return nil
}
