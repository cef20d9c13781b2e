package piilog

import (
	"fmt"
	"strings"
)

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentName
	segmentLevel
	segmentTime
	segmentMessage
)

var placeholders = map[string]segmentKind{
	"name":    segmentName,
	"level":   segmentLevel,
	"time":    segmentTime,
	"message": segmentMessage,
}

type segment struct {
	kind segmentKind
	text string
}

// lineTemplate is a parsed Formatter template.
type lineTemplate []segment

func parseTemplate(format string) (lineTemplate, error) {
	var (
		tmpl       lineTemplate
		literal    strings.Builder
		hasMessage bool
	)

	flush := func() {
		if literal.Len() > 0 {
			tmpl = append(tmpl, segment{kind: segmentLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '{' && i+1 < len(format) && format[i+1] == '{':
			literal.WriteByte('{')
			i++

		case c == '}' && i+1 < len(format) && format[i+1] == '}':
			literal.WriteByte('}')
			i++

		case c == '{':
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated placeholder at offset %d in %q", ErrInvalidConfiguration, i, format)
			}
			name := format[i+1 : i+1+end]
			kind, ok := placeholders[name]
			if !ok {
				return nil, fmt.Errorf("%w: unknown placeholder {%s} in %q", ErrInvalidConfiguration, name, format)
			}
			if kind == segmentMessage {
				hasMessage = true
			}
			flush()
			tmpl = append(tmpl, segment{kind: kind})
			i += end + 1

		case c == '}':
			return nil, fmt.Errorf("%w: unmatched '}' at offset %d in %q", ErrInvalidConfiguration, i, format)

		default:
			literal.WriteByte(c)
		}
	}
	flush()

	if !hasMessage {
		return nil, fmt.Errorf("%w: template %q has no {message} placeholder", ErrInvalidConfiguration, format)
	}

	return tmpl, nil
}

func (x lineTemplate) render(b *strings.Builder, rec Record) {
	for _, seg := range x {
		switch seg.kind {
		case segmentLiteral:
			b.WriteString(seg.text)
		case segmentName:
			b.WriteString(rec.Name)
		case segmentLevel:
			b.WriteString(rec.Level.String())
		case segmentTime:
			b.WriteString(rec.Time.Format(TimeLayout))
		case segmentMessage:
			b.WriteString(rec.Message)
		}
	}
}
