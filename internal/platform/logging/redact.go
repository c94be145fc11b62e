package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

const redacted = "[REDACTED]"

// bearerPattern matches "Bearer <token>" strings that appear inside traces.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment so dotted Go function names in traces
// are left alone.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// apiKeyInlinePattern matches inline "api_key=<value>" or "apikey:<value>".
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

var inlinePatterns = []*regexp.Regexp{bearerPattern, jwtPattern, apiKeyInlinePattern}

// newRedactAttr returns the ReplaceAttr function for slog.HandlerOptions.
//
// Sensitive field names are masked whole by masq. Inline secrets in string
// values are masked in place, so a multi-line trace keeps every other line.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	byName := masq.New(
		masq.WithFieldName("authorization"),
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
	)

	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Value.Kind() == slog.KindString {
			if v, changed := redactInline(a.Value.String()); changed {
				a = slog.String(a.Key, v)
			}
		}

		return byName(groups, a)
	}
}

// redactInline replaces each inline secret in s with the redaction marker.
func redactInline(s string) (string, bool) {
	out := s
	for _, p := range inlinePatterns {
		out = p.ReplaceAllString(out, redacted)
	}

	return out, out != s
}
