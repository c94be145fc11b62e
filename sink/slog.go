package sink

import (
	"log/slog"

	"github.com/next-trace/scg-reject/contract"
)

// slogReserved are the keys written by every slog record plus the trace.
var slogReserved = []string{TraceKey, slog.TimeKey, slog.LevelKey, slog.MessageKey, slog.SourceKey}

// Slog reports rejections through a *slog.Logger.
type Slog struct {
	logger *slog.Logger
	msg    string
}

var _ contract.FieldSink = (*Slog)(nil)

// NewSlog returns a sink writing to logger, or slog.Default() when nil.
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}

	return &Slog{logger: logger, msg: DefaultMessage}
}

// WithMessage returns a copy of the sink that logs under msg.
func (s *Slog) WithMessage(msg string) *Slog {
	return &Slog{logger: s.logger, msg: msg}
}

func (s *Slog) Error(value string) {
	s.logger.Error(s.msg, slog.String(TraceKey, value))
}

func (s *Slog) ErrorFields(value string, fields map[string]any) {
	args := make([]any, 0, len(fields)+1)
	args = append(args, slog.String(TraceKey, value))

	for _, k := range sortedKeys(fields) {
		args = append(args, slog.Any(fieldKey(k, slogReserved), fields[k]))
	}

	s.logger.Error(s.msg, args...)
}
