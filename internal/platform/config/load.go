package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "REJECT_"

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	file string
}

// WithFile sets the YAML file layered over the defaults. An empty path skips
// the file layer.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// Load reads configuration using a 3-layer hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. YAML file (only when WithFile is given a path)
//  3. Environment variables (REJECT_ prefix)
//
// Environment variable mapping resolves against the known keys so that
// field-internal underscores survive:
//
//	REJECT_LOG_LEVEL        -> log.level
//	REJECT_TRACE_MAX_DEPTH  -> trace.max_depth
func Load(opts ...Option) (*Config, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: defaults.
	dflt := defaults()
	for key, value := range dflt {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	// Layer 2: YAML file.
	if o.file != "" {
		if err := k.Load(file.Provider(o.file), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", o.file, err)
		}
	}

	// Layer 3: environment variables.
	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// buildEnvLookup maps env-style keys ("trace_max_depth") to koanf dotted
// keys ("trace.max_depth").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
