package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

// ScanService orchestrates the scan workflow: validate the configuration,
// walk the tree through the injected FileScanner, and write one flagged
// path per line to the output writer.
// Thread-Safety: safe for concurrent Run() calls; the service holds no
// mutable state.
type ScanService struct {
	scanner mojiscan.FileScanner
	logger  mojiscan.Logger
}

// NewScanService creates a new ScanService with all dependencies injected.
//
// Panic vs. Error Boundary Rationale:
//   - Panics on nil dependencies: These are programmer errors that should fail loudly
//     at application startup, not during request handling. Fail-fast at construction
//     time prevents cryptic nil pointer dereferences deep in call stacks.
//   - Returns errors for runtime conditions: Configuration validation, unreadable
//     roots, and output write failures are recoverable runtime conditions that should
//     be handled by the caller, not panics.
func NewScanService(scanner mojiscan.FileScanner, logger mojiscan.Logger) *ScanService {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &ScanService{
		scanner: scanner,
		logger:  logger,
	}
}

// Run executes a scan using the provided configuration.
// Flagged paths go to out, one per line; all diagnostics go through the logger.
func (s *ScanService) Run(ctx context.Context, cfg mojiscan.ScanConfig, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	s.logger.Verbose("Scanning directory '%s'", cfg.Root)
	if len(cfg.SkipExtensions) > 0 {
		s.logger.Verbose("Skipping extensions: %s", strings.Join(cfg.SkipExtensions, ", "))
	}

	summary, err := s.scanner.ScanDirectory(ctx, cfg, func(f mojiscan.Finding) error {
		if _, writeErr := fmt.Fprintln(out, f.Path); writeErr != nil {
			return fmt.Errorf("failed to write finding: %w", writeErr)
		}
		s.logger.Verbose("U+FFFD in %s at line %d, column %d", f.Path, f.Line, f.Column)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Verbose("Scanned %d file(s) in %s: %d flagged, %d skipped, %d unreadable",
		summary.FilesScanned, summary.Elapsed.Round(time.Millisecond),
		summary.FilesFlagged, summary.FilesSkipped, summary.FilesFailed)
	return nil
}
