package reject

import (
	"errors"
)

// Wrap stacks cause under a new record built from message. If cause is nil,
// Wrap returns nil so it can be used directly on a function's error result.
// The original cause stays reachable for errors.Is / errors.As via Unwrap.
func Wrap(cause error, message string, opts ...Option) error {
	if cause == nil {
		return nil
	}

	return stack(Message(message), fromError(cause), newOptions(opts))
}

// Ensure converts any error to *Record.
//
// Behavior:
//   - nil input => nil output
//   - if err is or wraps a *Record => that record (same pointer)
//   - otherwise adapt it with FromError
func Ensure(err error) *Record {
	if err == nil {
		return nil
	}

	var r *Record

	if errors.As(err, &r) && r != nil {
		return r
	}

	return fromError(err)
}
