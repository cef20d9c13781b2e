// Package piilogrus redacts personal data fields in logrus entries.
package piilogrus

import (
	"github.com/m-mizutani/piilog"
	"github.com/sirupsen/logrus"
)

// Formatter is a logrus.Formatter that redacts the entry before Base formats it.
type Formatter struct {
	// Base formats the redacted entry. If nil, a logrus.TextFormatter is used.
	Base     logrus.Formatter
	Redactor *piilog.Redactor
}

var _ logrus.Formatter = (*Formatter)(nil)

// New returns a Formatter wrapping base.
func New(base logrus.Formatter, r *piilog.Redactor) *Formatter {
	return &Formatter{Base: base, Redactor: r}
}

// Format redacts the message and the string fields of a copy of entry, then delegates to Base. entry itself is not modified.
func (x *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	base := x.Base
	if base == nil {
		base = &logrus.TextFormatter{}
	}
	if x.Redactor == nil {
		return base.Format(entry)
	}

	redacted := *entry
	redacted.Message = x.Redactor.Redact(entry.Message)
	redacted.Data = make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		switch {
		case x.Redactor.Has(k):
			redacted.Data[k] = x.Redactor.Redaction()
		default:
			if s, ok := v.(string); ok {
				redacted.Data[k] = x.Redactor.Redact(s)
			} else {
				redacted.Data[k] = v
			}
		}
	}

	return base.Format(&redacted)
}
