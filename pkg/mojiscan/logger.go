package mojiscan

// Logger is the pluggable logging surface the scanner writes its
// diagnostics through. Implementations must tolerate concurrent calls,
// and every line must land on stderr: stdout belongs to scan results.
type Logger interface {
	// Verbose carries per-file detail and is dropped unless verbose
	// mode is on.
	Verbose(format string, args ...interface{})

	// Info carries normal progress messages.
	Info(format string, args ...interface{})

	// Error carries failures worth surfacing even in quiet runs.
	Error(format string, args ...interface{})
}
