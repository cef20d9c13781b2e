// Package piizerolog redacts personal data fields in zerolog console output.
package piizerolog

import (
	"io"

	"github.com/m-mizutani/piilog"
	"github.com/rs/zerolog"
)

// NewConsoleWriter returns a zerolog.ConsoleWriter writing to w that redacts the message and fields of every event with r.
func NewConsoleWriter(w io.Writer, r *piilog.Redactor, options ...func(w *zerolog.ConsoleWriter)) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: w}
	for _, opt := range options {
		opt(&cw)
	}
	prepare := cw.FormatPrepare
	cw.FormatPrepare = func(evt map[string]interface{}) error {
		Redact(r, evt)
		if prepare != nil {
			return prepare(evt)
		}
		return nil
	}
	return cw
}

// Redact rewrites a decoded zerolog event in place: values of configured fields become the redaction text, and the message and other string values are run through r.
func Redact(r *piilog.Redactor, evt map[string]interface{}) {
	for k, v := range evt {
		switch k {
		case zerolog.TimestampFieldName, zerolog.LevelFieldName, zerolog.CallerFieldName:
			continue
		case zerolog.MessageFieldName:
			if s, ok := v.(string); ok {
				evt[k] = r.Redact(s)
			}
			continue
		}

		if r.Has(k) {
			evt[k] = r.Redaction()
			continue
		}
		if s, ok := v.(string); ok {
			evt[k] = r.Redact(s)
		}
	}
}
