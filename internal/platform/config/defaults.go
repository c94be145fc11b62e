package config

const defaultTraceMaxDepth = 32

// defaults returns the default configuration values.
// These are loaded first and can be overridden by the YAML file and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":   "info",
		"log.format":  "json",
		"log.backend": "slog",

		"trace.capture":   true,
		"trace.max_depth": defaultTraceMaxDepth,
	}
}
