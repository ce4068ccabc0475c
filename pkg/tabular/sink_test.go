package tabular_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabmark-labs/tabmark/internal/testutil"
	"github.com/tabmark-labs/tabmark/pkg/tabular"
)

func TestSlogSink_ReportsThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	sink := tabular.NewSlogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	sink.Error("parse blew up", errors.New("underlying cause"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "parse blew up")
	assert.Contains(t, out, "underlying cause")
}

func TestNewSlogSink_NilLoggerDiscards(t *testing.T) {
	sink := tabular.NewSlogSink(nil)
	assert.NotPanics(t, func() {
		sink.Error("nobody listens", errors.New("still fine"))
	})
}

func TestTryParse_WithTestSink(t *testing.T) {
	_, ok := tabular.TryParse("bad\xffencoding", tabular.ParseOptions{}, testutil.NewTestSink(t))
	assert.False(t, ok)
}
