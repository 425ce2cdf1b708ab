package filetree

import (
	"io/fs"
	"time"
)

// Entry is the content of a file tree node.
type Entry struct {
	Path     string      // Path as produced by the filesystem provider
	RelPath  string      // Path relative to the build root, forward slashes; "." for the root
	IsDir    bool        // True for directories, including symlinks to directories
	Size     int64       // Size in bytes as reported by Stat
	Mode     fs.FileMode // File mode bits
	ModTime  time.Time   // Last modification time
	Checksum string      // Normalized content checksum; empty unless requested
}

// NewEntry builds an Entry from file metadata.
func NewEntry(path, relPath string, info fs.FileInfo) Entry {
	return Entry{
		Path:    path,
		RelPath: relPath,
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}
}
