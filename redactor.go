package piilog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

const (
	// Redaction is the default text written in place of a redacted value.
	Redaction = "***"
	// Separator is the default delimiter between key=value pairs.
	Separator = ";"
)

// ErrInvalidConfiguration is returned when a Redactor, Formatter or logger can not be built from the given fields, separator or template.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Redactor replaces the values of configured fields in `key=value` messages. It is immutable and safe for concurrent use.
type Redactor struct {
	fields    []string
	redaction string
	separator string
	pattern   *regexp.Regexp
}

// NewRedactor builds a Redactor for fields. It returns ErrInvalidConfiguration if fields is empty, if a field is empty or contains `=`, white space or the separator, or if the separator is empty or contains `=`.
func NewRedactor(fields []string, options ...Option) (*Redactor, error) {
	return newRedactor(fields, newConfig(options...))
}

func newRedactor(fields []string, cfg *config) (*Redactor, error) {
	switch {
	case cfg.separator == "":
		return nil, fmt.Errorf("%w: separator must not be empty", ErrInvalidConfiguration)
	case strings.Contains(cfg.separator, "="):
		return nil, fmt.Errorf("%w: separator %q must not contain '='", ErrInvalidConfiguration, cfg.separator)
	}

	uniq := make([]string, 0, len(fields))
	for _, field := range fields {
		if err := validateField(field, cfg.separator); err != nil {
			return nil, err
		}
		if !slices.Contains(uniq, field) {
			uniq = append(uniq, field)
		}
	}
	if len(uniq) == 0 {
		return nil, fmt.Errorf("%w: no field to redact", ErrInvalidConfiguration)
	}

	return &Redactor{
		fields:    uniq,
		redaction: cfg.redaction,
		separator: cfg.separator,
		pattern:   keyPattern(uniq, cfg.separator, cfg.boundary),
	}, nil
}

func validateField(field, separator string) error {
	switch {
	case field == "":
		return fmt.Errorf("%w: field name must not be empty", ErrInvalidConfiguration)
	case strings.Contains(field, "="):
		return fmt.Errorf("%w: field name %q must not contain '='", ErrInvalidConfiguration, field)
	case strings.Contains(field, separator):
		return fmt.Errorf("%w: field name %q must not contain separator %q", ErrInvalidConfiguration, field, separator)
	case strings.IndexFunc(field, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: field name %q must not contain white space", ErrInvalidConfiguration, field)
	}
	return nil
}

// keyPattern matches `<field>=` and captures the field name in group 1. Field names and the separator are quoted, so they never act as pattern syntax.
func keyPattern(fields []string, separator string, boundary bool) *regexp.Regexp {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = regexp.QuoteMeta(field)
	}
	key := "(" + strings.Join(quoted, "|") + ")="

	if boundary {
		return regexp.MustCompile(`(?:^|` + regexp.QuoteMeta(separator) + `)[ \t]*` + key)
	}
	return regexp.MustCompile(key)
}

// Redact returns message with the value of every configured field replaced by the redaction text. A value runs from the `=` up to the nearest following separator or the end of message. Field names and the `=` are kept.
func (x *Redactor) Redact(message string) string {
	matches := x.pattern.FindAllStringSubmatchIndex(message, -1)
	if len(matches) == 0 {
		return message
	}

	var b strings.Builder
	b.Grow(len(message))

	last := 0
	for _, m := range matches {
		// m[2] is the start of the field name, m[1] the end of `=`.
		if m[2] < last {
			continue
		}

		valueStart := m[1]
		b.WriteString(message[last:valueStart])
		b.WriteString(x.redaction)

		end := strings.Index(message[valueStart:], x.separator)
		if end < 0 {
			last = len(message)
			break
		}
		last = valueStart + end
	}
	b.WriteString(message[last:])

	return b.String()
}

// Fields returns a copy of the configured field names, duplicates removed.
func (x *Redactor) Fields() []string {
	return slices.Clone(x.fields)
}

// Redaction returns the replacement text.
func (x *Redactor) Redaction() string {
	return x.redaction
}

// Separator returns the pair delimiter.
func (x *Redactor) Separator() string {
	return x.separator
}

// Has reports whether field is one of the configured field names.
func (x *Redactor) Has(field string) bool {
	return slices.Contains(x.fields, field)
}
