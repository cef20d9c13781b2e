package piilog_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/piilog"
)

func TestNewRedactorDefaults(t *testing.T) {
	r, err := piilog.NewRedactor([]string{"name", "email", "name"})
	gt.NoError(t, err)
	gt.V(t, r.Fields()).Equal([]string{"name", "email"})
	gt.V(t, r.Redaction()).Equal("***")
	gt.V(t, r.Separator()).Equal(";")
	gt.B(t, r.Has("email")).True()
	gt.B(t, r.Has("phone")).False()
}

func TestRedactorFieldsIsCopy(t *testing.T) {
	fields := []string{"name"}
	r, err := piilog.NewRedactor(fields)
	gt.NoError(t, err)

	fields[0] = "email"
	got := r.Fields()
	got[0] = "phone"
	gt.V(t, r.Redact("name=John;email=a@b.com;")).Equal("name=***;email=a@b.com;")
}

func TestRedactorBoundary(t *testing.T) {
	msg := "username=bob;name=John;nickname=jj;"

	t.Run("anchored by default", func(t *testing.T) {
		r, err := piilog.NewRedactor([]string{"name"})
		gt.NoError(t, err)
		gt.V(t, r.Redact(msg)).Equal("username=bob;name=***;nickname=jj;")
	})

	t.Run("without boundary", func(t *testing.T) {
		r, err := piilog.NewRedactor([]string{"name"}, piilog.WithoutBoundary())
		gt.NoError(t, err)
		gt.V(t, r.Redact(msg)).Equal("username=***;name=***;nickname=***;")
	})

	t.Run("field name inside a value", func(t *testing.T) {
		r, err := piilog.NewRedactor([]string{"note", "name"}, piilog.WithoutBoundary())
		gt.NoError(t, err)
		gt.V(t, r.Redact("note=name=x;name=y;")).Equal("note=***;name=***;")
	})
}

func TestRedactorPrefixFields(t *testing.T) {
	r, err := piilog.NewRedactor([]string{"name", "name_full"})
	gt.NoError(t, err)
	gt.V(t, r.Redact("name_full=John Smith;name=John;")).Equal("name_full=***;name=***;")
}

func TestRedactorCustomSeparator(t *testing.T) {
	r, err := piilog.NewRedactor([]string{"ssn"}, piilog.WithSeparator("&"), piilog.WithRedaction("[REDACTED]"))
	gt.NoError(t, err)
	gt.V(t, r.Redact("id=1&ssn=123-45-6789&x=1;2")).Equal("id=1&ssn=[REDACTED]&x=1;2")
}

func TestRedactorProperties(t *testing.T) {
	r, err := piilog.NewRedactor(piilog.PIIFields())
	gt.NoError(t, err)

	messages := []string{
		"name=John;email=john@example.com;phone=555-1234;ssn=123-45-6789;credit_card=4111111111111111;",
		"id=42;name=Jane Doe;last_login=2019-11-14;user_agent=Mozilla/5.0;",
		"ip=10.0.0.1;email=;phone=+1 555 0000",
		"nothing to see here",
		"",
	}

	for _, msg := range messages {
		got := r.Redact(msg)

		t.Run("idempotent: "+msg, func(t *testing.T) {
			gt.V(t, r.Redact(got)).Equal(got)
		})

		t.Run("order and count preserved: "+msg, func(t *testing.T) {
			gotPairs := strings.Split(got, ";")
			msgPairs := strings.Split(msg, ";")
			gt.V(t, len(gotPairs)).Equal(len(msgPairs))
			for i := range msgPairs {
				key, value, ok := strings.Cut(msgPairs[i], "=")
				if !ok {
					gt.V(t, gotPairs[i]).Equal(msgPairs[i])
					continue
				}
				if r.Has(key) {
					gt.V(t, gotPairs[i]).Equal(key + "=***")
					if value != "" && value != "***" {
						gt.S(t, got).NotContains(value)
					}
				} else {
					gt.V(t, gotPairs[i]).Equal(msgPairs[i])
				}
			}
		})
	}
}

func TestRedactorConcurrent(t *testing.T) {
	r, err := piilog.NewRedactor(piilog.PIIFields())
	gt.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				gt.V(t, r.Redact("email=a@b.com;x=1;")).Equal("email=***;x=1;")
			}
		}()
	}
	wg.Wait()
}

func TestNewRedactorErrorMessage(t *testing.T) {
	_, err := piilog.NewRedactor([]string{"credit card"})
	gt.B(t, errors.Is(err, piilog.ErrInvalidConfiguration)).True()
	gt.S(t, err.Error()).Contains(`"credit card"`)
}

func TestKeyPattern(t *testing.T) {
	gt.V(t, piilog.KeyPattern([]string{"a.b", "c"}, "|", false)).Equal(`(a\.b|c)=`)
	gt.V(t, piilog.KeyPattern([]string{"a"}, "|", true)).Equal(`(?:^|\|)[ \t]*(a)=`)
}
