// Package logging provides concrete implementations of the msgetl.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes progress to stdout and errors to stderr, with
//     colored prefixes when stdout is a terminal
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
