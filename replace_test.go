package piilog_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/piilog"
)

func newJSONLogger(w io.Writer, f func(groups []string, a slog.Attr) slog.Attr) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: f,
	}))
}

type fixedTimeWriter struct {
	buf []byte
}

func (x *fixedTimeWriter) Write(p []byte) (n int, err error) {
	x.buf = append(x.buf, p...)
	return len(p), nil
}

func (x *fixedTimeWriter) Flush() {
	var m map[string]any
	if err := json.Unmarshal(x.buf, &m); err != nil {
		panic("failed to unmarshal")
	}
	m["time"] = "2022-12-25T09:00:00.123456789"

	raw, err := json.Marshal(m)
	if err != nil {
		panic("failed to marshal")
	}

	if _, err := os.Stdout.Write(raw); err != nil {
		panic("can not output")
	}
}

func ExampleRedactor_ReplaceAttr() {
	out := &fixedTimeWriter{}

	r, err := piilog.NewRedactor(piilog.PIIFields())
	if err != nil {
		panic(err)
	}

	logger := newJSONLogger(out, r.ReplaceAttr)
	logger.Info("name=John;city=NYC;", "email", "john@example.com", "note", "ssn=123-45-6789;ok=1")
	out.Flush()
	// Output:
	// {"email":"***","level":"INFO","msg":"name=***;city=NYC;","note":"ssn=***;ok=1","time":"2022-12-25T09:00:00.123456789"}
}

func TestReplaceAttrKinds(t *testing.T) {
	r, err := piilog.NewRedactor(piilog.PIIFields())
	gt.NoError(t, err)

	var buf bytes.Buffer
	logger := newJSONLogger(&buf, r.ReplaceAttr)
	logger.Info("hello",
		"phone", 5551234,
		"count", 3,
		slog.Group("user", "name", "John", "id", "u1"),
	)

	var m map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	gt.V(t, m["phone"]).Equal("***")
	gt.V(t, m["count"]).Equal(float64(3))
	gt.V(t, m["msg"]).Equal("hello")
	gt.V(t, m["level"]).Equal("INFO")
	gt.V(t, m["user"]).Equal(map[string]any{"name": "***", "id": "u1"})
}

func TestReplaceAttrBuiltinKeys(t *testing.T) {
	r, err := piilog.NewRedactor([]string{"time", "level"})
	gt.NoError(t, err)

	var buf bytes.Buffer
	logger := newJSONLogger(&buf, r.ReplaceAttr)
	logger.Warn("level=debug;", slog.Group("g", "level", "x"))

	var m map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	gt.V(t, m["level"]).Equal("WARN")
	gt.V(t, m["msg"]).Equal("level=***;")
	gt.V(t, m["g"]).Equal(map[string]any{"level": "***"})
	gt.V(t, m["time"]).NotEqual("***")
}

func TestReplaceAttrText(t *testing.T) {
	r, err := piilog.NewRedactor(piilog.PIIFields())
	gt.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: r.ReplaceAttr}))
	logger.Info("login", "email", "john@example.com")
	gt.S(t, buf.String()).Contains("email=***")
	gt.S(t, buf.String()).NotContains("john@example.com")
}
