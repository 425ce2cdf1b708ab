// Package render writes file trees as an indented text tree, JSON or YAML.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// Renderer writes a file tree to w.
type Renderer interface {
	Render(w io.Writer, t *filetree.FileTree) error
}

// Options tune the output. Text-only fields are ignored by JSON and YAML.
type Options struct {
	Color     bool // Text: ANSI colors
	Checksums bool // Text: show checksums next to files
	Sizes     bool // Text: show file sizes
}

// New returns the renderer for format ("text", "json" or "yaml").
func New(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &Text{Options: opts}, nil
	case "json":
		return &JSON{}, nil
	case "yaml", "yml":
		return &YAML{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (valid: text, json, yaml): %w", format, fstree.ErrInvalidConfig)
}

// Summary describes a tree the way tree(1) does, e.g. "2 directories, 3 files".
func Summary(t *filetree.FileTree) string {
	stats := t.Stats()
	dirs := stats.Dirs
	if t.Content().IsDir {
		dirs-- // the root is not counted
	}
	return fmt.Sprintf("%d %s, %d %s", dirs, plural(dirs, "directory", "directories"), stats.Files, plural(stats.Files, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
