package sink

import (
	"go.uber.org/zap"

	"github.com/next-trace/scg-reject/contract"
)

// zapReserved are the trace key and the keys of zap's production encoder.
var zapReserved = []string{TraceKey, "level", "ts", "msg", "caller", "logger", "stacktrace"}

// Zap reports rejections through a *zap.Logger.
type Zap struct {
	logger *zap.Logger
	msg    string
}

var _ contract.FieldSink = (*Zap)(nil)

// NewZap returns a sink writing to logger, or zap.L() when nil.
func NewZap(logger *zap.Logger) *Zap {
	if logger == nil {
		logger = zap.L()
	}

	return &Zap{logger: logger, msg: DefaultMessage}
}

func (z *Zap) Error(value string) {
	z.logger.Error(z.msg, zap.String(TraceKey, value))
}

func (z *Zap) ErrorFields(value string, fields map[string]any) {
	zf := make([]zap.Field, 0, len(fields)+1)
	zf = append(zf, zap.String(TraceKey, value))

	for _, k := range sortedKeys(fields) {
		zf = append(zf, zap.Any(fieldKey(k, zapReserved), fields[k]))
	}

	z.logger.Error(z.msg, zf...)
}
