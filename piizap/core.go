// Package piizap redacts personal data fields in zap log entries.
package piizap

import (
	"github.com/m-mizutani/piilog"
	"go.uber.org/zap/zapcore"
)

type core struct {
	zapcore.Core
	redactor *piilog.Redactor
}

// NewCore wraps c so that entry messages and string fields are redacted by r before c writes them.
func NewCore(c zapcore.Core, r *piilog.Redactor) zapcore.Core {
	return &core{Core: c, redactor: r}
}

func (x *core) With(fields []zapcore.Field) zapcore.Core {
	return &core{
		Core:     x.Core.With(x.redactFields(fields)),
		redactor: x.redactor,
	}
}

func (x *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if x.Enabled(ent.Level) {
		return ce.AddCore(ent, x)
	}
	return ce
}

func (x *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Message = x.redactor.Redact(ent.Message)
	return x.Core.Write(ent, x.redactFields(fields))
}

func (x *core) redactFields(fields []zapcore.Field) []zapcore.Field {
	redacted := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		switch {
		case f.Type == zapcore.NamespaceType:
			// namespace keys carry no value
		case x.redactor.Has(f.Key):
			f = zapcore.Field{Key: f.Key, Type: zapcore.StringType, String: x.redactor.Redaction()}
		case f.Type == zapcore.StringType:
			f.String = x.redactor.Redact(f.String)
		}
		redacted[i] = f
	}
	return redacted
}
