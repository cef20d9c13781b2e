package piilog

import (
	"log/slog"
)

// ReplaceAttr is a function for slog.HandlerOptions.ReplaceAttr. It lets the stock slog handlers apply the same redaction as the Formatter:
//
//   - an attribute whose key is a configured field gets the redaction text as value
//   - the message and every other string attribute are run through Redact
//
// Other kinds of values pass through unchanged.
func (x *Redactor) ReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.SourceKey:
			return a
		case slog.MessageKey:
			return slog.String(a.Key, x.Redact(a.Value.String()))
		}
	}

	if x.Has(a.Key) {
		return slog.String(a.Key, x.redaction)
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, x.Redact(a.Value.String()))
	}

	return a
}
