package piilog

import (
	"regexp"
)

type config struct {
	redaction string
	separator string
	boundary  bool
	format    string
	filters   Filters
	regexes   []*regexp.Regexp
}

// Option configures a Redactor or a Formatter. Options that only make sense for the Formatter (WithFormat, WithFilter, WithRegex) are ignored by NewRedactor.
type Option func(c *config)

func newConfig(options ...Option) *config {
	c := &config{
		redaction: Redaction,
		separator: Separator,
		boundary:  true,
		format:    DefaultFormat,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// WithRedaction is an option to set the text written in place of a redacted value. The default is `***`. The text is written as is, `$` and `\` have no special meaning.
func WithRedaction(redaction string) Option {
	return func(c *config) {
		c.redaction = redaction
	}
}

// WithSeparator is an option to set the delimiter between key=value pairs. The default is `;`. It is matched literally.
func WithSeparator(separator string) Option {
	return func(c *config) {
		c.separator = separator
	}
}

// WithoutBoundary is an option to match field names anywhere in the message. By default a field name only matches at the start of the message or right after a separator (optionally followed by spaces), so `username=` is not taken for field `name`.
func WithoutBoundary() Option {
	return func(c *config) {
		c.boundary = false
	}
}

// WithFormat is an option to set the line template of the Formatter. Placeholders are `{name}`, `{level}`, `{time}` and `{message}`. `{{` and `}}` write literal braces. The template must contain `{message}`.
func WithFormat(format string) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithFilter is an option to add a filter applied to the message after field redaction.
func WithFilter(filter Filter) Option {
	return func(c *config) {
		c.filters = append(c.filters, filter)
	}
}

// WithRegex is an option to replace every match of target in the message with the redaction text, after field redaction.
func WithRegex(target *regexp.Regexp) Option {
	return func(c *config) {
		c.regexes = append(c.regexes, target)
	}
}
