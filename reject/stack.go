package reject

import (
	"errors"
)

// New creates a record from a message with a baseline trace captured at the
// caller.
func New(message string, opts ...Option) *Record {
	return stack(Message(message), nil, newOptions(opts))
}

// Stack builds a new record from current and, when previous is non-nil,
// appends a "Caused By:" line followed by previous's trace. A previous record
// without a trace contributes its message; a previous Message contributes the
// raw string.
//
// A Message current gets a baseline trace. A *Record current is copied, never
// modified. A nil current behaves like Message(""). Stack never fails and
// has no side effects.
func Stack(current, previous Input, opts ...Option) *Record {
	return stack(current, previous, newOptions(opts))
}

func stack(current, previous Input, o options) *Record {
	r := base(current, o)

	seg, cause, ok := segment(previous)
	if !ok {
		return r
	}

	head := r.trace
	if head == "" {
		head = r.message
	}

	r.trace = appendCause(head, seg)

	if r.cause != nil && cause != nil {
		r.cause = errors.Join(r.cause, cause)
	} else if cause != nil {
		r.cause = cause
	}

	return r
}

// base must call captureTrace directly so that baseSkip stays accurate.
func base(current Input, o options) *Record {
	switch c := current.(type) {
	case *Record:
		if c != nil {
			return c.clone()
		}
	case Message:
		return &Record{message: string(c), trace: captureTrace(string(c), o)}
	}

	return &Record{trace: captureTrace("", o)}
}

// segment returns the text appended after "Caused By:" and the error kept as
// cause. ok is false when there is nothing to append.
func segment(previous Input) (seg string, cause error, ok bool) {
	switch p := previous.(type) {
	case *Record:
		if p == nil {
			return "", nil, false
		}

		if p.trace != "" {
			return p.trace, p, true
		}

		return p.message, p, true
	case Message:
		return string(p), p, true
	}

	return "", nil, false
}
