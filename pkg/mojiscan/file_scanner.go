package mojiscan

import "context"

// FileScanner walks a directory tree and reports files whose contents
// decode to text containing the Unicode replacement character.
type FileScanner interface {
	// ScanDirectory recursively scans cfg.Root in deterministic walk
	// order, invoking report once per flagged file as it is found. A
	// non-nil error from report aborts the scan and is returned.
	//
	// Per-file read and decode failures are counted and skipped; only
	// an unusable root or a cancelled context fails the scan.
	ScanDirectory(ctx context.Context, cfg ScanConfig, report func(Finding) error) (*ScanSummary, error)
}
