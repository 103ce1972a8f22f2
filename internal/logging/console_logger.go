package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

// ConsoleLogger writes log messages to stderr, keeping stdout clean for
// scan results. Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	mu      sync.Mutex
}

// NewConsoleLogger returns a logger whose Verbose method only emits
// output when verbose is set.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{verbose: verbose}
}

// emit writes one prefixed line to stderr under the mutex. A call without
// args prints the format string literally, so messages containing % are
// safe to pass through.
func (l *ConsoleLogger) emit(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
		return
	}
	fmt.Fprint(os.Stderr, prefix+format+"\n")
}

// Verbose emits per-file diagnostics when verbose mode is on.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.emit("[VERBOSE] ", format, args)
}

// Info emits a plain line without any prefix.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.emit("", format, args)
}

// Error emits a line marked with the [ERROR] prefix.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.emit("[ERROR] ", format, args)
}

var _ mojiscan.Logger = (*ConsoleLogger)(nil)
