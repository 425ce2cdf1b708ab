package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// maxSymlinkHops bounds symlink resolution, mirroring the kernel's ELOOP limit.
const maxSymlinkHops = 40

type memoryKind int

const (
	kindFile memoryKind = iota
	kindDir
	kindSymlink
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a single file, directory or symlink
type memoryEntry struct {
	kind    memoryKind
	content []byte
	target  string // symlink target, absolute or relative to the link's directory
	modTime time.Time
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Listings are sorted by name, so builds over it are deterministic.
// MemoryFileSystem is not safe for concurrent mutation.
type MemoryFileSystem struct {
	entries  map[string]*memoryEntry // absolute path -> entry
	failures map[string]error        // absolute path -> injected failure
	root     string                  // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	if !path.IsAbs(root) {
		root = "/" + root
	}

	mfs := &MemoryFileSystem{
		entries:  make(map[string]*memoryEntry),
		failures: make(map[string]error),
		root:     root,
	}
	mfs.entries["/"] = &memoryEntry{kind: kindDir, modTime: time.Now()}
	mfs.ensureDirectoriesExist(path.Join(root, "_"))
	return mfs
}

// Root returns the directory relative paths are resolved against.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file to the in-memory filesystem, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.abs(filePath)
	mfs.entries[absPath] = &memoryEntry{
		kind:    kindFile,
		content: []byte(content),
		modTime: modTime,
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an (empty) directory, creating parent directories.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)
	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = &memoryEntry{kind: kindDir, modTime: time.Now()}
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddSymlink adds a symbolic link at linkPath pointing to target.
// A relative target is resolved against the link's directory.
func (mfs *MemoryFileSystem) AddSymlink(linkPath, target string) {
	absPath := mfs.abs(linkPath)
	mfs.entries[absPath] = &memoryEntry{
		kind:    kindSymlink,
		target:  filepath.ToSlash(target),
		modTime: time.Now(),
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailOn makes every ListEntries, Stat and ReadFile call on p return err.
// Used to simulate permission errors and entries vanishing mid-walk.
func (mfs *MemoryFileSystem) FailOn(p string, err error) {
	mfs.failures[mfs.abs(p)] = err
}

// Remove deletes p and everything below it.
func (mfs *MemoryFileSystem) Remove(p string) {
	absPath := mfs.abs(p)
	for key := range mfs.entries {
		if key == absPath || strings.HasPrefix(key, absPath+"/") {
			delete(mfs.entries, key)
		}
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.entries[dir] = &memoryEntry{kind: kindDir, modTime: time.Now()}
	mfs.ensureDirectoriesExist(dir)
}

// abs normalizes p to a clean absolute slash path within the virtual filesystem.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// resolve follows symlinks in every component of p.
func (mfs *MemoryFileSystem) resolve(p string) (string, error) {
	current := mfs.abs(p)
	for hops := 0; hops <= maxSymlinkHops; hops++ {
		next, followed := mfs.followFirstLink(current)
		if !followed {
			return current, nil
		}
		current = next
	}
	return "", &fs.PathError{Op: "resolve", Path: p, Err: fmt.Errorf("too many levels of symbolic links")}
}

// followFirstLink replaces the first symlink prefix of p with its target.
func (mfs *MemoryFileSystem) followFirstLink(p string) (string, bool) {
	if p == "/" {
		return p, false
	}
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	prefix := "/"
	for i, part := range parts {
		prefix = path.Join(prefix, part)
		entry, exists := mfs.entries[prefix]
		if !exists || entry.kind != kindSymlink {
			continue
		}
		target := entry.target
		if !path.IsAbs(target) {
			target = path.Join(path.Dir(prefix), target)
		}
		rest := append([]string{target}, parts[i+1:]...)
		return path.Clean(path.Join(rest...)), true
	}
	return p, false
}

func (mfs *MemoryFileSystem) lookup(op, p string) (string, *memoryEntry, error) {
	absPath := mfs.abs(p)
	if err, failing := mfs.failures[absPath]; failing {
		return "", nil, &fs.PathError{Op: op, Path: p, Err: err}
	}
	resolved, err := mfs.resolve(absPath)
	if err != nil {
		return "", nil, err
	}
	entry, exists := mfs.entries[resolved]
	if !exists {
		return "", nil, &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
	}
	return resolved, entry, nil
}

// ListEntries implements FileSystemProvider.ListEntries.
// Returned paths are children of p as given, not of its resolved form.
func (mfs *MemoryFileSystem) ListEntries(p string) ([]string, error) {
	resolved, entry, err := mfs.lookup("readdir", p)
	if err != nil {
		return nil, err
	}
	if entry.kind != kindDir {
		return []string{}, nil
	}

	var names []string
	for key := range mfs.entries {
		if key != "/" && key != resolved && path.Dir(key) == resolved {
			names = append(names, path.Base(key))
		}
	}
	sort.Strings(names)

	listed := mfs.abs(p)
	result := make([]string, 0, len(names))
	for _, name := range names {
		result = append(result, path.Join(listed, name))
	}
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	_, entry, err := mfs.lookup("stat", p)
	if err != nil {
		return nil, err
	}

	info := &memoryFileInfo{
		name:    path.Base(mfs.abs(p)),
		size:    int64(len(entry.content)),
		mode:    0644,
		modTime: entry.modTime,
	}
	if entry.kind == kindDir {
		info.mode = 0755 | fs.ModeDir
		info.isDir = true
	}
	return info, nil
}

// Canonical implements FileSystemProvider.Canonical
func (mfs *MemoryFileSystem) Canonical(p string) (string, error) {
	resolved, _, err := mfs.lookup("canonical", p)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	_, entry, err := mfs.lookup("read", p)
	if err != nil {
		return nil, err
	}
	if entry.kind == kindDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", p)
	}
	return entry.content, nil
}

// BaseName implements FileSystemProvider.BaseName
func (mfs *MemoryFileSystem) BaseName(p string) string {
	return path.Base(filepath.ToSlash(p))
}

// Rel implements FileSystemProvider.Rel
func (mfs *MemoryFileSystem) Rel(base, target string) (string, error) {
	base, target = mfs.abs(base), mfs.abs(target)
	if base == target {
		return ".", nil
	}
	prefix := strings.TrimSuffix(base, "/") + "/"
	if !strings.HasPrefix(target, prefix) {
		return "", fmt.Errorf("%s is not under %s", target, base)
	}
	return strings.TrimPrefix(target, prefix), nil
}

// Verify MemoryFileSystem implements the interface at compile time
var _ FileSystemProvider = (*MemoryFileSystem)(nil)
