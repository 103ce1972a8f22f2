package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memEntry is the stored state of one node in the in-memory tree.
// Directories carry fs.ModeDir and no content.
type memEntry struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
	readErr error
}

// memInfo adapts a memEntry to fs.FileInfo on demand.
type memInfo struct {
	name  string
	entry *memEntry
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return int64(len(i.entry.content)) }
func (i memInfo) Mode() fs.FileMode  { return i.entry.mode }
func (i memInfo) ModTime() time.Time { return i.entry.modTime }
func (i memInfo) IsDir() bool        { return i.entry.mode.IsDir() }
func (i memInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	abs   string
	rel   string
	entry *memEntry
}

func (f *memoryFile) Path() string         { return f.abs }
func (f *memoryFile) RelativePath() string { return f.rel }

func (f *memoryFile) Info() fs.FileInfo {
	return memInfo{name: path.Base(f.abs), entry: f.entry}
}

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.entry.readErr != nil {
		return nil, f.entry.readErr
	}
	return f.entry.content, nil
}

type memoryDirectory struct {
	abs string
	fs  *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.abs }

// Walk visits the directory and everything below it, sorted by path so
// traversal order matches the lexical order of the OS walker.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	prefix := d.abs + "/"
	if d.abs == "/" {
		prefix = "/"
	}

	var paths []string
	for p := range d.fs.entries {
		if p == d.abs || strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	for _, p := range paths {
		rel := "."
		if p != d.abs {
			rel = strings.TrimPrefix(p, prefix)
		}
		file := &memoryFile{abs: p, rel: rel, entry: d.fs.entries[p]}
		if err := guardedWalkFn(fn, file, nil, p); err != nil {
			return err
		}
	}
	return nil
}

// MemoryFileSystem is an in-memory FileSystemProvider for tests. Paths
// always use forward slashes; relative paths resolve against the root
// the filesystem was created with.
//
// Not safe for concurrent mutation; build the tree first, then hand it
// to the code under test.
type MemoryFileSystem struct {
	root    string
	entries map[string]*memEntry
}

// NewMemoryFileSystem creates an empty in-memory tree rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	return &MemoryFileSystem{
		root: root,
		entries: map[string]*memEntry{
			root: {mode: fs.ModeDir | 0755, modTime: time.Now()},
		},
	}
}

// resolve maps a caller-supplied path onto the in-memory namespace.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	switch {
	case p == "" || p == ".":
		return mfs.root
	case strings.HasPrefix(p, "/"):
		return path.Clean(p)
	default:
		return path.Join(mfs.root, p)
	}
}

// AddFile stores a regular file. Parent directories come into being
// automatically.
func (mfs *MemoryFileSystem) AddFile(filePath, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime stores a regular file with an explicit modification time.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath, content string, modTime time.Time) {
	mfs.put(filePath, &memEntry{content: []byte(content), mode: 0644, modTime: modTime})
}

// AddFileWithMode stores a file with an explicit mode. Non-regular
// modes (fs.ModeSymlink, fs.ModeSocket, ...) let tests exercise how a
// walker treats special entries.
func (mfs *MemoryFileSystem) AddFileWithMode(filePath, content string, mode fs.FileMode) {
	mfs.put(filePath, &memEntry{content: []byte(content), mode: mode, modTime: time.Now()})
}

// AddFileWithReadError stores a file whose ReadContent and ReadFile
// always fail with readErr, for exercising unreadable-file handling.
func (mfs *MemoryFileSystem) AddFileWithReadError(filePath string, readErr error) {
	mfs.put(filePath, &memEntry{mode: 0644, modTime: time.Now(), readErr: readErr})
}

func (mfs *MemoryFileSystem) put(filePath string, entry *memEntry) {
	abs := mfs.resolve(filePath)
	mfs.entries[abs] = entry

	for dir := path.Dir(abs); len(dir) > len(mfs.root); dir = path.Dir(dir) {
		if _, ok := mfs.entries[dir]; ok {
			break
		}
		mfs.entries[dir] = &memEntry{mode: fs.ModeDir | 0755, modTime: time.Now()}
	}
}

func (mfs *MemoryFileSystem) Open(dirPath string) (Directory, error) {
	abs := mfs.resolve(dirPath)

	entry, ok := mfs.entries[abs]
	if !ok {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !entry.mode.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}
	return &memoryDirectory{abs: abs, fs: mfs}, nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	abs := mfs.resolve(filePath)

	entry, ok := mfs.entries[abs]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if entry.mode.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if entry.readErr != nil {
		return nil, entry.readErr
	}
	return entry.content, nil
}

// ReadDir lists immediate children only, sorted by name.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]fs.FileInfo, error) {
	abs := mfs.resolve(dirPath)

	entry, ok := mfs.entries[abs]
	if !ok {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !entry.mode.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	prefix := abs + "/"
	if abs == "/" {
		prefix = "/"
	}

	var children []string
	for p := range mfs.entries {
		if p == abs || !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(p[len(prefix):], "/") {
			continue
		}
		children = append(children, p)
	}
	sort.Strings(children)

	infos := make([]fs.FileInfo, 0, len(children))
	for _, p := range children {
		infos = append(infos, memInfo{name: path.Base(p), entry: mfs.entries[p]})
	}
	return infos, nil
}

func (mfs *MemoryFileSystem) Stat(statPath string) (fs.FileInfo, error) {
	abs := mfs.resolve(statPath)

	entry, ok := mfs.entries[abs]
	if !ok {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return memInfo{name: path.Base(abs), entry: entry}, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
