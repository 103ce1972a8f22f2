package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// osFile defers reading to os.ReadFile, so an entry the caller rules
// out costs nothing beyond the stat the walk already performed.
type osFile struct {
	abs  string
	rel  string
	info fs.FileInfo
}

func (f *osFile) Path() string         { return f.abs }
func (f *osFile) RelativePath() string { return f.rel }
func (f *osFile) Info() fs.FileInfo    { return f.info }

func (f *osFile) ReadContent() ([]byte, error) {
	return os.ReadFile(f.abs)
}

// osDirectory traverses the host filesystem via filepath.WalkDir:
// lexical order, symbolic links reported but never followed.
type osDirectory struct {
	abs string
}

func (d *osDirectory) Path() string { return d.abs }

func (d *osDirectory) Walk(fn func(File, error) error) error {
	return filepath.WalkDir(d.abs, func(entryPath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return guardedWalkFn(fn, nil, walkErr, entryPath)
		}

		info, err := entry.Info()
		if err != nil {
			return guardedWalkFn(fn, nil, fmt.Errorf("stat %s: %w", entryPath, err), entryPath)
		}

		rel, err := filepath.Rel(d.abs, entryPath)
		if err != nil {
			return guardedWalkFn(fn, nil, fmt.Errorf("relative path for %s: %w", entryPath, err), entryPath)
		}

		return guardedWalkFn(fn, &osFile{abs: entryPath, rel: rel, info: info}, nil, entryPath)
	})
}

// OSFileSystem is the FileSystemProvider backed by the host filesystem.
type OSFileSystem struct{}

// NewOSFileSystem returns a provider backed by the host filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Open(dirPath string) (Directory, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	abs, err := filepath.Abs(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return &osDirectory{abs: abs}, nil
}

func (p *OSFileSystem) ReadFile(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

func (p *OSFileSystem) ReadDir(dirPath string) ([]fs.FileInfo, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	infos := make([]fs.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (p *OSFileSystem) Stat(statPath string) (fs.FileInfo, error) {
	return os.Stat(statPath)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
