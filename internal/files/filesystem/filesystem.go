package filesystem

import "io/fs"

// File is a single entry yielded during a walk. Metadata is captured at
// discovery time, while content is loaded only when ReadContent is
// called, so a caller can rule a file out by extension or mode without
// paying for the read.
type File interface {
	// Path returns the absolute path of the entry.
	Path() string

	// RelativePath returns the entry's path relative to the walked root.
	RelativePath() string

	// Info returns the entry's metadata.
	Info() fs.FileInfo

	// ReadContent loads and returns the file's bytes.
	ReadContent() ([]byte, error)
}

// Directory is a traversable handle obtained from a provider's Open.
type Directory interface {
	// Path returns the absolute path of the directory.
	Path() string

	// Walk visits every entry under the directory in lexical order,
	// the directory itself included. A traversal error for an entry is
	// handed to fn with a nil File. A non-nil error returned from fn
	// stops the walk and is returned from Walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider abstracts filesystem access so the same scan logic
// runs against the real OS tree, an in-memory fixture, or embedded
// assets.
type FileSystemProvider interface {
	// Open returns a traversable handle for the directory at path.
	Open(path string) (Directory, error)

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// ReadDir lists the immediate children of the directory at path.
	ReadDir(path string) ([]fs.FileInfo, error)

	// Stat returns metadata for the entry at path.
	Stat(path string) (fs.FileInfo, error)
}
