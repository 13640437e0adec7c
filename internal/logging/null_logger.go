package logging

import "github.com/vvka-141/msgetl/pkg/msgetl"

// NullLogger discards every message.
// Used by tests and by library callers that want a silent pipeline.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}
func (l *NullLogger) Info(format string, args ...interface{})    {}
func (l *NullLogger) Error(format string, args ...interface{})   {}

var (
	_ msgetl.Logger = (*NullLogger)(nil)
	_ msgetl.Logger = (*ConsoleLogger)(nil)
)
