package logging

import "github.com/mojiscan/mojiscan/pkg/mojiscan"

// NullLogger discards everything. Handy in tests and in callers that
// want scanning without any diagnostics at all.
type NullLogger struct{}

// NewNullLogger returns the no-op logger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}
func (l *NullLogger) Info(format string, args ...interface{}) {}
func (l *NullLogger) Error(format string, args ...interface{}) {}

var _ mojiscan.Logger = (*NullLogger)(nil)
