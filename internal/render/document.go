package render

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/internal/tree"
)

// Node is the serialized form of a file tree node.
type Node struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Path     string    `json:"path" yaml:"path"`
	Type     string    `json:"type" yaml:"type"`
	Size     int64     `json:"size" yaml:"size"`
	Mode     string    `json:"mode" yaml:"mode"`
	ModTime  time.Time `json:"mod_time" yaml:"mod_time"`
	Checksum string    `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Children []*Node   `json:"children,omitempty" yaml:"children,omitempty"`
}

// Node types.
const (
	TypeDir  = "dir"
	TypeFile = "file"
)

// Document converts a node and its subtree. Path is root-relative.
func Document(n *tree.Node[filetree.Entry]) *Node {
	entry := n.Content()
	doc := &Node{
		ID:       n.ID().String(),
		Name:     n.Name(),
		Path:     entry.RelPath,
		Type:     TypeFile,
		Size:     entry.Size,
		Mode:     entry.Mode.String(),
		ModTime:  entry.ModTime.UTC(),
		Checksum: entry.Checksum,
	}
	if entry.IsDir {
		doc.Type = TypeDir
	}
	for _, child := range n.Children() {
		doc.Children = append(doc.Children, Document(child))
	}
	return doc
}

// JSON writes the tree as an indented JSON document.
type JSON struct{}

func (JSON) Render(w io.Writer, t *filetree.FileTree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document(t.Node()))
}

// YAML writes the tree as a YAML document.
type YAML struct{}

func (YAML) Render(w io.Writer, t *filetree.FileTree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document(t.Node())); err != nil {
		return err
	}
	return enc.Close()
}
