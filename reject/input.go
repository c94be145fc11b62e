package reject

import (
	"errors"

	"github.com/next-trace/scg-reject/contract"
)

// Input is what Stack and LogReject accept: either a Message or a *Record.
// The set of cases is closed.
type Input interface {
	isInput()
}

// Message is a plain message string used as an Input. It also satisfies
// error, so it can serve as the cause of a stacked record.
type Message string

func (m Message) isInput() {}

func (m Message) Error() string { return string(m) }

// FromError adapts any error to an Input.
//
// Behavior:
//   - nil input => nil output
//   - *Record => returned as-is
//   - an error wrapping a contract.Record => a record with the outer message
//     and the inner trace, caused by err
//   - otherwise a record with err.Error() as message, no trace, caused by err
func FromError(err error) Input {
	if err == nil {
		return nil
	}

	return fromError(err)
}

func fromError(err error) *Record {
	if r, ok := err.(*Record); ok {
		if r == nil {
			return &Record{message: r.Error()}
		}

		return r
	}

	if direct, ok := err.(contract.Record); ok {
		return &Record{message: direct.Message(), trace: direct.Trace(), cause: direct.Unwrap()}
	}

	var inner contract.Record
	if errors.As(err, &inner) {
		return &Record{message: err.Error(), trace: inner.Trace(), cause: err}
	}

	return &Record{message: err.Error(), cause: err}
}
