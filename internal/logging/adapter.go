package logging

import (
	"log/slog"
)

// Logger is the leveled logging interface handed to subsystems such as
// the HTTP transport. Arguments follow slog's alternating key-value
// convention.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// SlogAdapter backs Logger with an slog.Logger, keeping the scheduler's
// structured attributes while callers stay decoupled from slog.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps the given slog.Logger; nil means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Debug(msg string, args ...interface{}) {
	a.logger.Debug(msg, args...)
}

func (a *SlogAdapter) Info(msg string, args ...interface{}) {
	a.logger.Info(msg, args...)
}

func (a *SlogAdapter) Warn(msg string, args ...interface{}) {
	a.logger.Warn(msg, args...)
}

func (a *SlogAdapter) Error(msg string, args ...interface{}) {
	a.logger.Error(msg, args...)
}

// Logger exposes the underlying slog.Logger for call sites that need
// slog.Attr-based logging.
func (a *SlogAdapter) Logger() *slog.Logger {
	return a.logger
}

// DefaultLogger returns an adapter over the process-wide slog.Logger.
func DefaultLogger() *SlogAdapter {
	return NewSlogAdapter(slog.Default())
}

// ForComponent returns an adapter whose every record carries a
// component attribute, so transport and engine lines stay separable in
// aggregated output.
func ForComponent(component string) *SlogAdapter {
	return NewSlogAdapter(slog.Default().With(slog.String("component", component)))
}
