// Package config loads the settings used to build loggers, sinks, and trace
// capture options. Configuration is layered: defaults -> optional YAML file
// -> environment variables (REJECT_ prefix).
package config

import (
	"github.com/next-trace/scg-reject/reject"
)

// Config holds all configuration for the rejection tooling.
type Config struct {
	Log   LogConfig   `koanf:"log"`
	Trace TraceConfig `koanf:"trace"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level   string `koanf:"level"`
	Format  string `koanf:"format"`
	Backend string `koanf:"backend"`
}

// TraceConfig controls baseline trace capture for message-only records.
type TraceConfig struct {
	Capture  bool `koanf:"capture"`
	MaxDepth int  `koanf:"max_depth"`
}

// Options maps the trace settings to reject options.
func (t TraceConfig) Options() []reject.Option {
	return []reject.Option{
		reject.WithCapture(t.Capture),
		reject.WithMaxDepth(t.MaxDepth),
	}
}
