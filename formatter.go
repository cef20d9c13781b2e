package piilog

import (
	"log/slog"
	"strings"
	"time"
)

const (
	// DefaultFormat is the line template used when WithFormat is not given.
	DefaultFormat = "[HOLBERTON] {name} {level} {time}: {message}"
	// TimeLayout renders the {time} placeholder with millisecond precision.
	TimeLayout = "2006-01-02 15:04:05,000"
)

// Record is a single log event handed to a Formatter.
type Record struct {
	Name    string
	Level   slog.Level
	Time    time.Time
	Message string
}

// Formatter renders records into lines after redacting their message. The field list is fixed at construction, so a Formatter is safe for concurrent use.
type Formatter struct {
	redactor *Redactor
	filters  Filters
	tmpl     lineTemplate
}

// NewFormatter builds a Formatter that redacts fields. Configuration errors are reported here and never while rendering.
func NewFormatter(fields []string, options ...Option) (*Formatter, error) {
	cfg := newConfig(options...)

	redactor, err := newRedactor(fields, cfg)
	if err != nil {
		return nil, err
	}

	tmpl, err := parseTemplate(cfg.format)
	if err != nil {
		return nil, err
	}

	filters := Filters{redactor.Redact}
	filters = append(filters, cfg.filters...)
	for _, re := range cfg.regexes {
		filters = append(filters, newRegexFilter(re, cfg.redaction))
	}

	return &Formatter{
		redactor: redactor,
		filters:  filters,
		tmpl:     tmpl,
	}, nil
}

// Redact runs msg through field redaction and then the extra filters.
func (x *Formatter) Redact(msg string) string {
	return x.filters.ReplaceString(msg)
}

// Render redacts rec.Message and then fills the template with it.
func (x *Formatter) Render(rec Record) string {
	rec.Message = x.Redact(rec.Message)

	var b strings.Builder
	x.tmpl.render(&b, rec)
	return b.String()
}

// Redactor returns the field redactor used by the Formatter.
func (x *Formatter) Redactor() *Redactor {
	return x.redactor
}
