package mojiscan

// Exit codes returned by the mojiscan CLI.
// These follow Unix/GNU conventions:
//   - 0: success
//   - 1: general runtime errors
//   - 2: command line usage errors
//   - 3+: specific error categories
const (
	// ExitSuccess indicates successful completion (findings or not).
	ExitSuccess = 0

	// ExitGeneralError indicates a general runtime error.
	ExitGeneralError = 1

	// ExitUsageError indicates invalid command line usage.
	ExitUsageError = 2

	// ExitPanic indicates an unrecovered internal error.
	ExitPanic = 3

	// ExitConfigError indicates invalid scan configuration.
	ExitConfigError = 10

	// ExitRootError indicates the scan root is missing or not a directory.
	ExitRootError = 11

	// ExitConfigExists indicates an init would overwrite an existing config file.
	ExitConfigExists = 12
)

// ReplacementRune is the Unicode replacement character (U+FFFD).
// A file is flagged when decoding its contents as UTF-8 yields at
// least one occurrence, either because the raw bytes already contain
// one or because invalid byte sequences were substituted during
// decoding.
const ReplacementRune = '�'

// defaultSkipExtensions lists file extensions excluded from scanning.
// Matching is exact and case sensitive: ".png" is skipped, ".PNG" is
// scanned. Entries include the leading dot, mirroring filepath.Ext.
var defaultSkipExtensions = []string{
	".png",
	".jpg",
	".jpeg",
	".gif",
	".pdf",
	".zip",
	".ico",
	".woff",
	".woff2",
	".ttf",
}

// DefaultSkipExtensions returns the built-in skip list for binary-like
// file types. The returned slice is a copy; callers may append to it
// freely.
func DefaultSkipExtensions() []string {
	exts := make([]string, len(defaultSkipExtensions))
	copy(exts, defaultSkipExtensions)
	return exts
}
