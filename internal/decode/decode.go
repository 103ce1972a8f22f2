package decode

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Decoder is an interface for decoding raw file bytes into text.
// This abstraction allows for different decoding strategies.
type Decoder interface {
	// Decode converts raw bytes into a string. Byte sequences that are
	// not valid in the target encoding are substituted with U+FFFD
	// rather than causing an error.
	Decode(content []byte) (string, error)
}

// UTF8 implements lossy UTF-8 decoding. Invalid byte sequences are
// replaced with the Unicode replacement character (U+FFFD), matching
// the substitution behavior of encoding/unicode's UTF-8 decoder. A
// leading byte order mark is kept as U+FEFF, not stripped.
//
// UTF8 is a zero-size type and is safe for concurrent use by multiple
// goroutines. Using value semantics (pass by value) eliminates heap
// allocations.
type UTF8 struct{}

// New creates a new UTF-8 decoder.
// Returns by value to avoid heap allocation (UTF8 is a zero-size type).
func New() UTF8 {
	return UTF8{}
}

// Decode converts content to a string, substituting U+FFFD for every
// byte sequence that is not valid UTF-8.
func (d UTF8) Decode(content []byte) (string, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("failed to decode content: %w", err)
	}
	return string(decoded), nil
}

// ContainsReplacement reports whether text contains at least one
// Unicode replacement character. After a lossy Decode this is true
// when the original bytes were not clean UTF-8 or already carried a
// literal U+FFFD.
func ContainsReplacement(text string) bool {
	return strings.ContainsRune(text, utf8.RuneError)
}

// Locate returns the 1-based line and rune column of the first
// replacement character in text. Returns (0, 0) when text contains
// none. Lines are separated by '\n'; a '\r' before it counts as a
// regular column character.
func Locate(text string) (line, column int) {
	idx := strings.IndexRune(text, utf8.RuneError)
	if idx < 0 {
		return 0, 0
	}

	prefix := text[:idx]
	line = 1 + strings.Count(prefix, "\n")

	lineStart := 0
	if nl := strings.LastIndexByte(prefix, '\n'); nl >= 0 {
		lineStart = nl + 1
	}
	column = utf8.RuneCountInString(prefix[lineStart:]) + 1

	return line, column
}
