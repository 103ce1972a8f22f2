package scanner

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceFindingIdentity is the fixed UUID namespace for generating
// deterministic finding identities from file paths. This namespace is
// derived from the string "mojiscan.dev/finding-identity/v1" using
// UUID v5 with the URL namespace.
//
// This ensures that:
//   - The same file path always generates the same finding ID across runs
//   - The namespace is unique to mojiscan (no collisions with other systems)
//   - Users can independently verify deterministic ID generation
var NamespaceFindingIdentity uuid.UUID

// init generates the namespace UUID from the canonical string on package load.
// This is computed once at startup for efficiency.
func init() {
	NamespaceFindingIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("mojiscan.dev/finding-identity/v1"))
}

// GenerateFindingID creates a deterministic UUID v5 from a normalized
// root-relative path, giving findings a stable identity across scans.
//
// Path Normalization:
//  1. Convert to lowercase (case-insensitive filesystems compatibility)
//  2. Remove leading "./" prefix (consistent root reference)
//
// Forward slashes are already enforced by the scanner.
//
// Examples:
//   - "docs/readme.txt"   → uuid_v5(namespace, "docs/readme.txt")
//   - "./Docs/README.txt" → uuid_v5(namespace, "docs/readme.txt")
func GenerateFindingID(relPath string) uuid.UUID {
	normalized := normalizePath(relPath)
	return uuid.NewSHA1(NamespaceFindingIdentity, []byte(normalized))
}

// normalizePath converts a relative path to canonical form for
// deterministic UUID generation.
func normalizePath(path string) string {
	normalized := strings.ToLower(path)
	normalized = strings.TrimPrefix(normalized, "./")
	return normalized
}
