// Package testutil provides test helpers for structured logging and
// parse diagnostics.
package testutil

import (
	"log/slog"
	"testing"

	"github.com/tabmark-labs/tabmark/pkg/tabular"
)

// NewTestLogger returns a logger that writes through t.Log, so output only
// surfaces on failure or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// NewTestSink returns a diagnostic sink backed by the test logger, for
// exercising fail-soft parse paths without real output.
func NewTestSink(t testing.TB) tabular.DiagnosticSink {
	t.Helper()
	return tabular.NewSlogSink(NewTestLogger(t))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
