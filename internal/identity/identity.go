// Package identity derives deterministic node identities from tree paths.
package identity

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// NamespaceNodeIdentity is the UUID namespace for node identities, derived
// from the string "fstree/node-identity/v1" using UUID v5 with the URL
// namespace. Fixing the namespace means a path always yields the same UUID
// across builds and machines.
var NamespaceNodeIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("fstree/node-identity/v1"))

// ForPath returns a deterministic UUID v5 for a path relative to the build root.
//
// Examples:
//   - "." and "" -> identity of the root
//   - "./c/d.txt" and "c/d.txt" -> same identity
//   - "C/D.txt" and "c/d.txt" -> different identities (paths are case-sensitive)
func ForPath(relPath string) uuid.UUID {
	return uuid.NewSHA1(NamespaceNodeIdentity, []byte(normalizePath(relPath)))
}

// normalizePath converts a relative path to canonical form:
// forward slashes, cleaned, without a leading "./".
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return "."
	}
	return strings.TrimPrefix(path.Clean(p), "./")
}
