// Package logging provides concrete implementations of the mojiscan.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Scan results are written to stdout by the scan service, so loggers
// must never write there. All logger implementations are safe for
// concurrent use by multiple goroutines.
package logging
