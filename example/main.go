// Package main demonstrates usage of the reject package: it stacks a chain of
// rejection messages and reports the result through the configured sink.
//
//	rejectlog stack "write failed" "disk full"
//	rejectlog --backend zap wrap "sync failed" "connection reset"
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/next-trace/scg-reject/contract"
	"github.com/next-trace/scg-reject/internal/platform/config"
	"github.com/next-trace/scg-reject/internal/platform/logging"
	"github.com/next-trace/scg-reject/reject"
	"github.com/next-trace/scg-reject/sink"
)

type cli struct {
	Config  string `short:"c" help:"YAML configuration file." type:"path"`
	Level   string `help:"Override log.level (debug, info, warn, error)."`
	Format  string `help:"Override log.format (json, text)."`
	Backend string `help:"Override log.backend (slog, zap)."`

	Stack struct {
		Message string   `arg:"" help:"Message of the outermost rejection."`
		Causes  []string `arg:"" optional:"" help:"Causes, outermost first."`
	} `cmd:"" help:"Stack a chain of messages and log the result."`

	Wrap struct {
		Message string `arg:"" help:"Context message."`
		Cause   string `arg:"" help:"Text of the plain error being wrapped."`
	} `cmd:"" help:"Wrap a plain Go error and log the result."`
}

func main() {
	var c cli

	kctx := kong.Parse(&c,
		kong.Name("rejectlog"),
		kong.Description("Build stacked rejections and log them."),
		kong.UsageOnError(),
	)

	if err := run(&c, kctx.Command()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli, command string) error {
	cfg, err := config.Load(config.WithFile(c.Config))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	c.applyOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating flags: %w", err)
	}

	s, flush, err := newSink(cfg.Log)
	if err != nil {
		return err
	}
	defer flush()

	opts := cfg.Trace.Options()

	switch name, _, _ := strings.Cut(command, " "); name {
	case "stack":
		reject.LogReject(chain(c.Stack.Message, c.Stack.Causes, opts...), s)
	case "wrap":
		reject.LogError(reject.Wrap(errors.New(c.Wrap.Cause), c.Wrap.Message, opts...), s)
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}

func (c *cli) applyOverrides(cfg *config.Config) {
	if c.Level != "" {
		cfg.Log.Level = c.Level
	}
	if c.Format != "" {
		cfg.Log.Format = c.Format
	}
	if c.Backend != "" {
		cfg.Log.Backend = c.Backend
	}
}

// newSink builds the sink for the configured backend. flush must be called
// before exit.
func newSink(lc config.LogConfig) (contract.Sink, func(), error) {
	if lc.Backend == "zap" {
		zl, err := logging.NewZap(lc.Level)
		if err != nil {
			return nil, nil, err
		}

		return sink.NewZap(zl), func() { _ = zl.Sync() }, nil
	}

	return sink.NewSlog(logging.New(lc.Level, lc.Format, os.Stderr)), func() {}, nil
}

// chain stacks message over causes, where causes[0] is the direct cause and
// the last entry is the root.
func chain(message string, causes []string, opts ...reject.Option) *reject.Record {
	var prev reject.Input

	for i := len(causes) - 1; i >= 0; i-- {
		if prev == nil {
			prev = reject.Message(causes[i])
			continue
		}

		prev = reject.Stack(reject.Message(causes[i]), prev, opts...)
	}

	return reject.Stack(reject.Message(message), prev, opts...)
}
