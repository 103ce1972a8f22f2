package mojiscan

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScanConfig holds the resolved settings for a single scan.
type ScanConfig struct {
	// Root is the directory to scan recursively.
	Root string

	// SkipExtensions lists file extensions excluded from scanning.
	// Entries include the leading dot and match case sensitively
	// against filepath.Ext of each file name.
	SkipExtensions []string

	// Verbose enables diagnostic logging to stderr.
	Verbose bool
}

// Validate checks the configuration for correctness.
// Returns an error wrapping ErrInvalidConfig describing all problems found.
func (c *ScanConfig) Validate() error {
	var errs []error

	if c.Root == "" {
		errs = append(errs, fmt.Errorf("Root is required: %w", ErrInvalidConfig))
	}

	for _, ext := range c.SkipExtensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("skip extension %q must start with a dot followed by at least one character: %w", ext, ErrInvalidConfig))
			continue
		}
		if strings.ContainsAny(ext, `/\`) {
			errs = append(errs, fmt.Errorf("skip extension %q must not contain path separators: %w", ext, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// Finding describes a single file whose contents decode to text
// containing the Unicode replacement character.
type Finding struct {
	// ID is a deterministic UUIDv5 derived from RelPath. The same file
	// produces the same ID across runs, so findings can be tracked
	// between scans.
	ID uuid.UUID

	// Path is the display path printed to stdout: the scan root joined
	// with RelPath, using forward slashes.
	Path string

	// RelPath is the path relative to the scan root, using forward
	// slashes on all platforms.
	RelPath string

	// SizeBytes is the file size as reported by the filesystem.
	SizeBytes int64

	// Line is the 1-based line number of the first replacement
	// character in the decoded text.
	Line int

	// Column is the 1-based rune column of the first replacement
	// character within that line.
	Column int
}

// ScanSummary aggregates counters for a completed scan.
type ScanSummary struct {
	// FilesScanned is the number of files read and decoded, including
	// flagged files.
	FilesScanned int

	// FilesFlagged is the number of files reported as findings.
	FilesFlagged int

	// FilesSkipped is the number of entries bypassed without reading:
	// skip-list extensions and non-regular files.
	FilesSkipped int

	// FilesFailed is the number of files that could not be read or
	// decoded. These are diagnostic only and never abort a scan.
	FilesFailed int

	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
}
