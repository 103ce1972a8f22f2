// Package filesystem abstracts directory traversal and file access for
// the scanner.
//
// The scanner never touches the os package directly. It speaks to a
// FileSystemProvider, so the same scan logic runs against the real
// filesystem in production, an in-memory tree in tests, and embedded
// assets in examples. Walks are lexical in every implementation, which
// keeps scan output deterministic and diffable across runs.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual file with metadata and lazy content
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for corpus fixtures
//   - EmbedFileSystem: Read-only implementation over embed.FS assets
package filesystem
