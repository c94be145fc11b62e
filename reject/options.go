package reject

// Option configures baseline trace capture for message-only records.
type Option func(*options)

const (
	// defaultMaxDepth is the number of call frames captured by default.
	defaultMaxDepth = 32

	// baseSkip drops runtime.Callers, captureTrace, base, stack and the public
	// entry point, so the first frame is the caller of New, Stack or Wrap.
	baseSkip = 5
)

type options struct {
	capture  bool
	maxDepth int
	skip     int
}

func newOptions(opts []Option) options {
	o := options{
		capture:  true,
		maxDepth: defaultMaxDepth,
		skip:     baseSkip,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxDepth caps the number of frames recorded in a baseline trace.
// Zero or negative values behave like WithoutCallers.
func WithMaxDepth(n int) Option { return func(o *options) { o.maxDepth = n } }

// WithCallerSkip skips n additional frames, for helpers that wrap Stack.
func WithCallerSkip(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.skip += n
		}
	}
}

// WithCapture toggles call frame capture.
func WithCapture(enabled bool) Option { return func(o *options) { o.capture = enabled } }

// WithoutCallers reduces a baseline trace to its "Error: <message>" line.
func WithoutCallers() Option { return WithCapture(false) }
