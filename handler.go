package piilog

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// HandlerOptions are options for a Handler. A zero HandlerOptions consists entirely of default values.
type HandlerOptions struct {
	// Name is the logger name written in the {name} placeholder.
	Name string

	// Level reports the minimum record level that will be logged. If Level is nil, the handler assumes slog.LevelInfo.
	Level slog.Leveler
}

// Handler is a slog.Handler that writes each record as one line rendered by a Formatter. Attributes are appended to the message as `key=value` pairs. An attribute whose key, bare or qualified by its groups, is a configured field is written with the redaction in place of its value. Other values are redacted like pairs written inline.
type Handler struct {
	formatter *Formatter
	opts      HandlerOptions
	w         io.Writer

	// preformatted holds pairs from WithAttrs, each terminated by the separator.
	preformatted string
	groupPrefix  string

	mu *sync.Mutex
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a Handler that writes to w, using f to render lines.
func NewHandler(w io.Writer, f *Formatter, opts *HandlerOptions) *Handler {
	h := &Handler{
		formatter: f,
		w:         w,
		mu:        &sync.Mutex{},
	}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *Handler) clone() *Handler {
	return &Handler{
		formatter:    h.formatter,
		opts:         h.opts,
		w:            h.w,
		preformatted: h.preformatted,
		groupPrefix:  h.groupPrefix,
		mu:           h.mu, // shared among all clones
	}
}

// WithName returns a copy of h that writes name in the {name} placeholder.
func (h *Handler) WithName(name string) *Handler {
	h2 := h.clone()
	h2.opts.Name = name
	return h2
}

// Enabled reports whether level is at least the configured minimum level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()

	var b strings.Builder
	b.WriteString(h.preformatted)
	for _, a := range attrs {
		h.appendAttr(&b, h.groupPrefix, a)
	}
	h2.preformatted = b.String()
	return h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groupPrefix = h.groupPrefix + name + "."
	return h2
}

// Handle renders r and writes it as a single line. The raw message and attributes never reach the writer.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	sep := h.formatter.redactor.separator

	var b strings.Builder
	b.WriteString(r.Message)
	if r.NumAttrs() > 0 || h.preformatted != "" {
		if b.Len() > 0 && !strings.HasSuffix(r.Message, sep) {
			b.WriteString(sep)
		}
		b.WriteString(h.preformatted)
		r.Attrs(func(a slog.Attr) bool {
			h.appendAttr(&b, h.groupPrefix, a)
			return true
		})
	}

	line := h.formatter.Render(Record{
		Name:    h.opts.Name,
		Level:   r.Level,
		Time:    r.Time,
		Message: b.String(),
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

func (h *Handler) appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return
		}
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range attrs {
			h.appendAttr(b, prefix, ga)
		}
		return
	}

	if a.Key == "" {
		return
	}

	r := h.formatter.redactor
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	if r.Has(prefix+a.Key) || r.Has(a.Key) {
		b.WriteString(r.redaction)
	} else {
		b.WriteString(a.Value.String())
	}
	b.WriteString(r.separator)
}
