// Package scanner provides recursive file discovery and mojibake detection.
//
// The scanner package is responsible for:
//   - Recursively walking a directory tree in deterministic order
//   - Skipping excluded extensions and non-regular files without reading them
//   - Decoding file contents as UTF-8 with replacement substitution
//   - Reporting files whose decoded text contains U+FFFD, with a stable
//     per-path finding identity
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
