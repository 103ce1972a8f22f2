package scanner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mojiscan/mojiscan/internal/decode"
	"github.com/mojiscan/mojiscan/internal/extset"
	"github.com/mojiscan/mojiscan/internal/files/filesystem"
	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

// Scanner walks a directory tree and reports files whose contents
// decode to text containing the Unicode replacement character.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided decoder, fsProvider, and logger are also thread-safe.
type Scanner struct {
	decoder    decode.Decoder
	fsProvider filesystem.FileSystemProvider
	logger     mojiscan.Logger
}

// NewScanner creates a new file scanner with the given decoder.
// Uses OS filesystem by default.
// Panics if decoder or logger is nil.
func NewScanner(decoder decode.Decoder, logger mojiscan.Logger) *Scanner {
	if decoder == nil {
		panic("decoder cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		decoder:    decoder,
		fsProvider: filesystem.NewOSFileSystem(),
		logger:     logger,
	}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if any dependency is nil.
func NewScannerWithFS(decoder decode.Decoder, logger mojiscan.Logger, fsProvider filesystem.FileSystemProvider) *Scanner {
	if decoder == nil {
		panic("decoder cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		decoder:    decoder,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ScanDirectory recursively scans cfg.Root and reports each file whose
// decoded contents contain U+FFFD through the report callback, in walk
// order. Files whose extension is in cfg.SkipExtensions (exact,
// case-sensitive match) and non-regular files are bypassed without
// reading.
//
// Per-file read and decode failures are counted, logged at verbose
// level, and skipped. Only three things fail a scan: a root that
// cannot be opened, a cancelled context, and a non-nil error from
// report.
func (s *Scanner) ScanDirectory(ctx context.Context, cfg mojiscan.ScanConfig, report func(mojiscan.Finding) error) (*mojiscan.ScanSummary, error) {
	info, err := s.fsProvider.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan root %s (%v): %w", cfg.Root, err, mojiscan.ErrRootNotFound)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", cfg.Root, mojiscan.ErrRootNotDirectory)
	}

	dir, err := s.fsProvider.Open(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan root: %w", err)
	}

	skip := extset.New(cfg.SkipExtensions...)
	summary := &mojiscan.ScanSummary{}
	start := time.Now()

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			// Unreadable subtrees are diagnostic only; returning nil
			// makes the walker move past them.
			summary.FilesFailed++
			s.logger.Verbose("skipping unreadable path: %v", walkErr)
			return nil
		}

		if file.Info().IsDir() {
			return nil
		}

		if !file.Info().Mode().IsRegular() {
			summary.FilesSkipped++
			return nil
		}

		if skip.Contains(filepath.Ext(file.Info().Name())) {
			summary.FilesSkipped++
			return nil
		}

		finding, err := s.processFile(file, cfg.Root)
		if err != nil {
			summary.FilesFailed++
			s.logger.Verbose("skipping %s: %v", file.RelativePath(), err)
			return nil
		}

		summary.FilesScanned++
		if finding != nil {
			summary.FilesFlagged++
			if err := report(*finding); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(start)
	return summary, nil
}

// processFile reads and decodes a single file. Returns a finding when
// the decoded text contains at least one replacement character, or nil
// when the file is clean.
func (s *Scanner) processFile(file filesystem.File, root string) (*mojiscan.Finding, error) {
	content, err := file.ReadContent()
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := s.decoder.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}

	if !decode.ContainsReplacement(text) {
		return nil, nil
	}

	line, column := decode.Locate(text)
	relPath := filepath.ToSlash(file.RelativePath())

	return &mojiscan.Finding{
		ID:        GenerateFindingID(relPath),
		Path:      filepath.ToSlash(filepath.Join(root, file.RelativePath())),
		RelPath:   relPath,
		SizeBytes: file.Info().Size(),
		Line:      line,
		Column:    column,
	}, nil
}

// Verify Scanner implements the interface at compile time
var _ mojiscan.FileScanner = (*Scanner)(nil)
