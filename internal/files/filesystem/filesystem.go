package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider exposes the filesystem capabilities the tree builder
// consumes. Paths returned by ListEntries use the provider's own separator
// convention and can be passed back to any other method.
type FileSystemProvider interface {
	// ListEntries returns the paths of the immediate entries of path, ordered
	// as the provider lists them. A path that is not a directory yields an
	// empty slice and no error.
	ListEntries(path string) ([]string, error)

	// Stat returns file information for the given path, following symbolic links.
	// A missing path yields an error matching fs.ErrNotExist.
	Stat(path string) (FileInfo, error)

	// Canonical returns the absolute, symlink-free form of path.
	Canonical(path string) (string, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// BaseName returns the last element of path.
	BaseName(path string) string

	// Rel returns target relative to base, using forward slashes.
	Rel(base, target string) (string, error)
}

// Exists reports whether path resolves to an existing entry.
func Exists(p FileSystemProvider, path string) bool {
	_, err := p.Stat(path)
	return err == nil
}
