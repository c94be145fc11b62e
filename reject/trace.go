package reject

import (
	"runtime"
	"strconv"
	"strings"
)

const (
	tracePrefix    = "Error: "
	causedBy       = "Caused By:"
	frameIndent    = "    at "
	traceSeparator = "\n"
)

// captureTrace renders the baseline trace of a message-only record:
//
//	Error: <message>
//	    at <function> (<file>:<line>)
func captureTrace(message string, o options) string {
	var b strings.Builder

	b.WriteString(tracePrefix)
	b.WriteString(message)

	if !o.capture || o.maxDepth <= 0 {
		return b.String()
	}

	pcs := make([]uintptr, o.maxDepth)

	n := runtime.Callers(o.skip, pcs)
	if n == 0 {
		return b.String()
	}

	frames := runtime.CallersFrames(pcs[:n])

	for {
		f, more := frames.Next()
		if f.Function != "" {
			b.WriteString(traceSeparator)
			b.WriteString(frameIndent)
			b.WriteString(f.Function)
			b.WriteString(" (")
			b.WriteString(f.File)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(f.Line))
			b.WriteByte(')')
		}

		if !more {
			break
		}
	}

	return b.String()
}

// appendCause joins a base trace and a cause segment with the delimiter line.
func appendCause(head, segment string) string {
	return head + traceSeparator + causedBy + traceSeparator + segment
}
