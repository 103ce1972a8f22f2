// Package fixtures builds in-memory file trees with known encodings
// for scanner tests. Each content helper returns bytes whose decode
// outcome is fixed, so tests can assert exactly which paths a scan
// flags without hand-writing byte literals everywhere.
package fixtures

import (
	"github.com/mojiscan/mojiscan/internal/files/filesystem"
)

// CleanUTF8 returns well-formed UTF-8 text spanning several scripts.
// A scan never flags it.
func CleanUTF8() string {
	return "Grüße, 世界. Ça roule, everything here decodes cleanly.\n"
}

// Latin1Mojibake returns "café au lait" as latin-1 bytes. The 0xE9 is
// not valid UTF-8, so decoding substitutes U+FFFD and the file is
// flagged.
func Latin1Mojibake() string {
	return "caf\xe9 au lait\n"
}

// TruncatedRune returns text ending in the first two bytes of a
// three-byte euro sign. The incomplete sequence decodes to U+FFFD.
func TruncatedRune() string {
	return "price: \xe2\x82"
}

// LiteralReplacement returns valid UTF-8 that already contains U+FFFD,
// the fossil of an earlier lossy conversion. Flagged even though every
// byte decodes.
func LiteralReplacement() string {
	return "recovered from backup: �\n"
}

// PNGStub returns a PNG magic number followed by binary junk. Skipped
// under the default skip list; flagged when the skip list is empty.
func PNGStub() string {
	return "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\xde\xad\xbe\xef"
}

// CorpusBuilder provides a fluent API for building mock filesystem
// corpora used in scan tests.
//
// Example usage:
//
//	fs := NewCorpusBuilder().
//	    AddClean("docs/guide.md").
//	    AddDamaged("docs/legacy.txt").
//	    AddBinary("assets/logo.png").
//	    Build()
type CorpusBuilder struct {
	files map[string]string // path -> content
}

// NewCorpusBuilder creates a new corpus builder with a clean README.md
// pre-populated, since every corpus needs at least one scannable file.
func NewCorpusBuilder() *CorpusBuilder {
	return &CorpusBuilder{
		files: map[string]string{
			"README.md": CleanUTF8(),
		},
	}
}

// AddFile adds a file with arbitrary content at the specified path.
// Directories in the path are implied.
func (b *CorpusBuilder) AddFile(path, content string) *CorpusBuilder {
	b.files[path] = content
	return b
}

// AddClean adds a file that decodes without replacement characters.
func (b *CorpusBuilder) AddClean(path string) *CorpusBuilder {
	return b.AddFile(path, CleanUTF8())
}

// AddDamaged adds a file with invalid UTF-8 that a scan flags.
func (b *CorpusBuilder) AddDamaged(path string) *CorpusBuilder {
	return b.AddFile(path, Latin1Mojibake())
}

// AddBinary adds a binary file. Whether it is flagged depends on the
// scan's skip list.
func (b *CorpusBuilder) AddBinary(path string) *CorpusBuilder {
	return b.AddFile(path, PNGStub())
}

// Build generates the filesystem.FileSystemProvider from the
// accumulated files.
func (b *CorpusBuilder) Build() filesystem.FileSystemProvider {
	fs := filesystem.NewMemoryFileSystem("/")

	for path, content := range b.files {
		fs.AddFile(path, content)
	}

	return fs
}

// ============================================================================
// Pre-built Fixtures
// ============================================================================

// MixedTree creates a corpus with damage scattered through a small
// project tree:
//   - README.md, docs/guide.md, src/main.go: clean
//   - docs/legacy.txt: latin-1 mojibake, always flagged
//   - notes/recovered.md: literal U+FFFD, always flagged
//   - assets/logo.png: binary, skipped under the default skip list
//     and flagged without it
func MixedTree() filesystem.FileSystemProvider {
	return NewCorpusBuilder().
		AddClean("docs/guide.md").
		AddClean("src/main.go").
		AddDamaged("docs/legacy.txt").
		AddFile("notes/recovered.md", LiteralReplacement()).
		AddBinary("assets/logo.png").
		Build()
}

// CleanTree creates a corpus where nothing is flagged.
func CleanTree() filesystem.FileSystemProvider {
	return NewCorpusBuilder().
		AddClean("docs/intro.md").
		AddClean("src/app.go").
		Build()
}

// DeepDamage creates a corpus whose only damaged file sits four
// directories down, exercising recursive descent.
func DeepDamage() filesystem.FileSystemProvider {
	return NewCorpusBuilder().
		AddClean("a/top.txt").
		AddFile("a/b/c/d/broken.txt", TruncatedRune()).
		Build()
}
