// Package files groups the filesystem-facing side of mojiscan.
//
// Its sub-packages split the work along one seam:
//   - filesystem holds the File/Directory/FileSystemProvider abstraction
//     with OS, in-memory, and embedded implementations, so everything
//     above it can run against fake trees in tests.
//   - scanner walks a Directory, decodes each file, and turns U+FFFD
//     sightings into findings.
//
// A typical caller wires them like this:
//
//	fileScanner := scanner.NewScanner(decode.New(), logger)
//	summary, err := fileScanner.ScanDirectory(ctx, cfg, report)
package files
