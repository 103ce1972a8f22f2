// Package extset provides case-sensitive file extension sets used to
// decide which files a scan skips.
//
// Extensions carry their leading dot and match exactly: ".png" and
// ".PNG" are different entries. This mirrors filepath.Ext, which
// returns the suffix verbatim.
package extset

import (
	"sort"
	"strings"
)

// Set is a case-sensitive set of file extensions including the leading dot.
type Set map[string]struct{}

// New creates a set from the given extensions. Duplicates collapse.
func New(exts ...string) Set {
	s := make(Set, len(exts))
	s.Add(exts...)
	return s
}

// Add inserts extensions into the set.
func (s Set) Add(exts ...string) {
	for _, ext := range exts {
		s[ext] = struct{}{}
	}
}

// Contains reports whether ext is in the set. The empty extension
// (a file without a suffix) is never contained unless explicitly added.
func (s Set) Contains(ext string) bool {
	_, ok := s[ext]
	return ok
}

// Sorted returns the set's entries in lexical order. Useful for
// deterministic display and serialization.
func (s Set) Sorted() []string {
	exts := make([]string, 0, len(s))
	for ext := range s {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ParseList splits a comma-separated extension list as accepted by the
// MOJISCAN_SKIP_EXT environment variable and config files. Entries are
// trimmed of surrounding whitespace; empty entries are dropped.
func ParseList(raw string) []string {
	if raw == "" {
		return nil
	}

	var exts []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		exts = append(exts, part)
	}
	return exts
}

// Merge combines extension groups into one deduplicated, sorted list.
// Later groups extend earlier ones; nothing is ever removed.
func Merge(groups ...[]string) []string {
	s := make(Set)
	for _, group := range groups {
		s.Add(group...)
	}
	return s.Sorted()
}
