// Package promise runs context-aware tasks and turns their failures into
// stacked rejection records.
package promise

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/next-trace/scg-reject/contract"
	"github.com/next-trace/scg-reject/reject"
)

// Task is a unit of work that may fail.
type Task func(ctx context.Context) error

// All runs tasks concurrently and waits for them. The first failure cancels
// the context passed to the others and is returned as a *reject.Record.
// Panicking tasks fail with a record whose trace is the goroutine stack.
func All(ctx context.Context, tasks ...Task) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		g.Go(func() error {
			return run(gctx, task)
		})
	}

	if err := g.Wait(); err != nil {
		return reject.Ensure(err)
	}

	return nil
}

// Settle runs every task to completion and returns one result per task, in
// order: nil on success, a *reject.Record on failure. Tasks share ctx and are
// not cancelled by each other's failures.
func Settle(ctx context.Context, tasks ...Task) []error {
	results := make([]error, len(tasks))

	var g errgroup.Group

	for i, task := range tasks {
		g.Go(func() error {
			if err := run(ctx, task); err != nil {
				results[i] = reject.Ensure(err)
			}
			return nil
		})
	}

	_ = g.Wait()

	return results
}

// Then runs task and stacks any failure under message. The baseline trace of
// the new record starts at the caller of Then.
func Then(ctx context.Context, message string, task Task) error {
	return reject.Wrap(run(ctx, task), message, reject.WithCallerSkip(1))
}

// Catch runs task and reports a failure to sink. It is a terminal handler:
// the failure is not returned, only whether one happened.
func Catch(ctx context.Context, sink contract.Sink, task Task) bool {
	err := run(ctx, task)
	if err == nil {
		return false
	}

	reject.LogError(err, sink)

	return true
}

// run calls task, converting a panic into a record.
func run(ctx context.Context, task Task) (err error) {
	if task == nil {
		return nil
	}

	defer func() {
		if p := recover(); p != nil {
			msg := fmt.Sprintf("panic: %v", p)
			err = reject.FromTrace(msg, msg+"\n"+string(debug.Stack()))
		}
	}()

	return task(ctx)
}
