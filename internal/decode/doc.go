// Package decode provides lossy UTF-8 decoding for file contents.
//
// The package implements mojiscan's substitution strategy: raw bytes
// are always decoded to a string, and every byte sequence that is not
// valid UTF-8 becomes the Unicode replacement character (U+FFFD). A
// file is considered damaged when its decoded text contains at least
// one replacement character, whether it came from substitution or was
// already present as a literal U+FFFD in the source bytes.
//
// # Decoding Strategy
//
// Decoding uses golang.org/x/text/encoding/unicode's UTF-8 decoder:
//  1. Valid UTF-8 passes through unchanged
//  2. Invalid byte sequences are substituted with U+FFFD
//  3. A byte order mark is preserved as U+FEFF, never stripped
//
// Substitution keeps position information intact, so the first
// replacement character in the decoded text marks where the damage
// starts in the original file.
//
// # Example Usage
//
//	decoder := decode.New()
//	text, err := decoder.Decode(fileContent)
//	if err == nil && decode.ContainsReplacement(text) {
//	    line, col := decode.Locate(text)
//	    // report the file
//	}
//
// # Thread Safety
//
// UTF8 is safe for concurrent use by multiple goroutines.
package decode
