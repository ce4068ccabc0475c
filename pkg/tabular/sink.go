package tabular

import (
	"io"
	"log/slog"
)

// DiagnosticSink receives whole-operation failures from TryParse.
// Implementations must be safe for concurrent use if the caller parses
// concurrently; this package never retains the sink between calls.
type DiagnosticSink interface {
	Error(msg string, err error)
}

// SlogSink adapts a *slog.Logger to the DiagnosticSink interface.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink returns a sink that reports through logger. A nil logger
// yields a sink that discards everything.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Error(msg string, err error) {
	s.logger.Error(msg, slog.Any("error", err))
}
