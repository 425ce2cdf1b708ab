package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestOSFileSystem_ListEntries(t *testing.T) {
	dir := t.TempDir()

	// Create a tree:
	//   dir/
	//     b.txt
	//     c/
	//       d.txt
	sub := filepath.Join(dir, "c")
	os.Mkdir(sub, 0755)
	os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0644)
	os.WriteFile(filepath.Join(sub, "d.txt"), []byte("d"), 0644)

	fs := NewOSFileSystem()

	entries, err := fs.ListEntries(dir)
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	want := []string{filepath.Join(dir, "b.txt"), sub}
	if len(entries) != len(want) {
		t.Fatalf("ListEntries() = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestOSFileSystem_ListEntries_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	entries, err := NewOSFileSystem().ListEntries(filePath)
	if err != nil {
		t.Fatalf("ListEntries(file) error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("ListEntries(file) = %v, want empty", entries)
	}
}

func TestOSFileSystem_ListEntries_Nonexistent(t *testing.T) {
	_, err := NewOSFileSystem().ListEntries(filepath.Join(t.TempDir(), "nonexistent"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ListEntries(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test.txt")
	expected := "hello"
	os.WriteFile(filePath, []byte(expected), 0644)

	data, err := NewOSFileSystem().ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test.txt")
	os.WriteFile(filePath, []byte("hello"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "test.txt" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "test.txt")
	}

	if !Exists(fs, dir) {
		t.Error("Exists(dir) should be true")
	}
	if Exists(fs, filepath.Join(dir, "nope")) {
		t.Error("Exists(nonexistent) should be false")
	}
}

func TestOSFileSystem_Canonical_ResolvesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	os.Mkdir(target, 0755)
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Symlink() error = %v", err)
	}

	fs := NewOSFileSystem()
	gotLink, err := fs.Canonical(link)
	if err != nil {
		t.Fatalf("Canonical(link) error = %v", err)
	}
	gotTarget, err := fs.Canonical(target)
	if err != nil {
		t.Fatalf("Canonical(target) error = %v", err)
	}
	if gotLink != gotTarget {
		t.Errorf("Canonical(link) = %q, want %q", gotLink, gotTarget)
	}
}

func TestOSFileSystem_BaseNameAndRel(t *testing.T) {
	fs := NewOSFileSystem()
	base := filepath.Join("tmp", "a")
	target := filepath.Join(base, "c", "d.txt")

	if got := fs.BaseName(target); got != "d.txt" {
		t.Errorf("BaseName() = %q, want %q", got, "d.txt")
	}
	rel, err := fs.Rel(base, target)
	if err != nil {
		t.Fatalf("Rel() error = %v", err)
	}
	if rel != "c/d.txt" {
		t.Errorf("Rel() = %q, want %q", rel, "c/d.txt")
	}
}
