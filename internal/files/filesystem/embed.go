package filesystem

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// EmbedFileSystem implements FileSystemProvider for embed.FS.
// embed.FS has no symbolic links, so Canonical only cleans the path.
type EmbedFileSystem struct {
	embedFS embed.FS
	root    string // root path within the embed.FS (always uses forward slashes)
}

// NewEmbedFileSystem creates a new filesystem provider wrapping an embed.FS.
// The root parameter specifies the subdirectory within the embed.FS to treat as the root.
// All paths are normalized to use forward slashes for consistency with embed.FS.
func NewEmbedFileSystem(embedFS embed.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{
		embedFS: embedFS,
		root:    path.Clean(root),
	}
}

// resolve maps a caller path onto a path inside the embed.FS.
func (efs *EmbedFileSystem) resolve(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	switch {
	case p == "." || p == "":
		return efs.root
	case strings.HasPrefix(p, "/"):
		// Absolute paths are already relative to the embed.FS root
		return path.Clean(strings.TrimPrefix(p, "/"))
	case p == efs.root || strings.HasPrefix(p, efs.root+"/"):
		return path.Clean(p)
	default:
		return path.Join(efs.root, p)
	}
}

// ListEntries implements FileSystemProvider.ListEntries
func (efs *EmbedFileSystem) ListEntries(listPath string) ([]string, error) {
	absPath := efs.resolve(listPath)
	info, err := fs.Stat(efs.embedFS, absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", listPath, err)
	}
	if !info.IsDir() {
		return []string{}, nil
	}

	entries, err := efs.embedFS.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", listPath, err)
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, path.Join(absPath, entry.Name()))
	}
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (efs *EmbedFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(efs.embedFS, efs.resolve(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}

// Canonical implements FileSystemProvider.Canonical
func (efs *EmbedFileSystem) Canonical(p string) (string, error) {
	absPath := efs.resolve(p)
	if _, err := fs.Stat(efs.embedFS, absPath); err != nil {
		return "", fmt.Errorf("failed to stat path %s: %w", p, err)
	}
	return absPath, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (efs *EmbedFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := efs.embedFS.ReadFile(efs.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

// BaseName implements FileSystemProvider.BaseName
func (efs *EmbedFileSystem) BaseName(p string) string {
	return path.Base(efs.resolve(p))
}

// Rel implements FileSystemProvider.Rel
func (efs *EmbedFileSystem) Rel(base, target string) (string, error) {
	base, target = efs.resolve(base), efs.resolve(target)
	if base == target {
		return ".", nil
	}
	if base == "." {
		return target, nil
	}
	if !strings.HasPrefix(target, base+"/") {
		return "", errors.New(target + " is not under " + base)
	}
	return strings.TrimPrefix(target, base+"/"), nil
}

// Verify EmbedFileSystem implements the interface at compile time
var _ FileSystemProvider = (*EmbedFileSystem)(nil)
