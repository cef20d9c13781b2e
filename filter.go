package piilog

import (
	"regexp"
	"strings"
)

// Filter rewrites a log message.
type Filter func(s string) string

// Filters is a chain of Filter applied in order.
type Filters []Filter

// ReplaceString runs s through every filter in order.
func (x Filters) ReplaceString(s string) string {
	for _, f := range x {
		s = f(s)
	}
	return s
}

// newRegexFilter replaces every match of target with replaced, written literally.
func newRegexFilter(target *regexp.Regexp, replaced string) Filter {
	return func(s string) string {
		return target.ReplaceAllLiteralString(s, replaced)
	}
}

// FilterDatum returns message with the values of fields replaced by redaction. Pairs are delimited by separator. Field names are literal strings and only match at the start of message or after a separator.
//
//	FilterDatum([]string{"password"}, "xxx", "user=bob;password=1234;", ";")
//	// "user=bob;password=xxx;"
func FilterDatum(fields []string, redaction, message, separator string) (string, error) {
	r, err := NewRedactor(fields, WithRedaction(redaction), WithSeparator(separator))
	if err != nil {
		return "", err
	}
	return r.Redact(message), nil
}

// Pairs joins keys and values into `k=v` pairs each terminated by separator. An odd trailing key gets an empty value.
func Pairs(separator string, kvs ...string) string {
	var b strings.Builder
	for i := 0; i < len(kvs); i += 2 {
		b.WriteString(kvs[i])
		b.WriteByte('=')
		if i+1 < len(kvs) {
			b.WriteString(kvs[i+1])
		}
		b.WriteString(separator)
	}
	return b.String()
}
