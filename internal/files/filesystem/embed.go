package filesystem

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// EmbedFileSystem serves a subtree of an embed.FS through the
// FileSystemProvider interface. Compiled-in assets can then flow
// through the same code paths as real directories.
type EmbedFileSystem struct {
	tree fs.FS
}

// NewEmbedFileSystem wraps the subdirectory root of embedFS. The root
// must exist in the embedded tree; it is fixed at compile time, so a
// missing one is a programming error and panics.
func NewEmbedFileSystem(embedFS embed.FS, root string) *EmbedFileSystem {
	sub, err := fs.Sub(embedFS, cleanEmbedPath(root))
	if err != nil {
		panic(fmt.Sprintf("embed root %q: %v", root, err))
	}
	return &EmbedFileSystem{tree: sub}
}

// cleanEmbedPath normalizes a caller-supplied path to the slash-only,
// rooted-at-"." form io/fs expects. Backslashes are tolerated so
// Windows-style callers still resolve.
func cleanEmbedPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimPrefix(path.Clean(p), "/")
	if p == "" {
		return "."
	}
	return p
}

// embedFile reads its content back out of the embedded tree on demand.
type embedFile struct {
	tree fs.FS
	name string
	rel  string
	info fs.FileInfo
}

func (f *embedFile) Path() string         { return f.name }
func (f *embedFile) RelativePath() string { return f.rel }
func (f *embedFile) Info() fs.FileInfo    { return f.info }

func (f *embedFile) ReadContent() ([]byte, error) {
	return fs.ReadFile(f.tree, f.name)
}

type embedDirectory struct {
	tree fs.FS
	base string
}

func (d *embedDirectory) Path() string { return d.base }

func (d *embedDirectory) Walk(fn func(File, error) error) error {
	return fs.WalkDir(d.tree, d.base, func(entryPath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return guardedWalkFn(fn, nil, walkErr, entryPath)
		}

		info, err := entry.Info()
		if err != nil {
			return guardedWalkFn(fn, nil, fmt.Errorf("stat %s: %w", entryPath, err), entryPath)
		}

		rel := entryPath
		if d.base != "." {
			rel = strings.TrimPrefix(strings.TrimPrefix(entryPath, d.base), "/")
			if rel == "" {
				rel = "."
			}
		}

		file := &embedFile{tree: d.tree, name: entryPath, rel: rel, info: info}
		return guardedWalkFn(fn, file, nil, entryPath)
	})
}

func (efs *EmbedFileSystem) Open(dirPath string) (Directory, error) {
	p := cleanEmbedPath(dirPath)

	info, err := fs.Stat(efs.tree, p)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}
	return &embedDirectory{tree: efs.tree, base: p}, nil
}

func (efs *EmbedFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := fs.ReadFile(efs.tree, cleanEmbedPath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

func (efs *EmbedFileSystem) ReadDir(dirPath string) ([]fs.FileInfo, error) {
	entries, err := fs.ReadDir(efs.tree, cleanEmbedPath(dirPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
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

func (efs *EmbedFileSystem) Stat(statPath string) (fs.FileInfo, error) {
	info, err := fs.Stat(efs.tree, cleanEmbedPath(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}

var _ FileSystemProvider = (*EmbedFileSystem)(nil)
