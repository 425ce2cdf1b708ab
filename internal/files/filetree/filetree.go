package filetree

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vvka-141/fstree/internal/identity"
	"github.com/vvka-141/fstree/internal/tree"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// FileTree is the root of an in-memory filesystem tree.
type FileTree struct {
	node *tree.Node[Entry]
}

// NewNode creates a detached node for entry. Its identity is derived from
// entry.RelPath, so rebuilding the same tree yields the same IDs.
func NewNode(name string, entry Entry) *tree.Node[Entry] {
	return tree.NewWithID(identity.ForPath(entry.RelPath), name, entry)
}

// New creates a FileTree around a fresh node for entry.
func New(name string, entry Entry) *FileTree {
	return &FileTree{node: NewNode(name, entry)}
}

// Wrap returns a FileTree forwarding to an existing node.
// Panics if node is nil.
func Wrap(node *tree.Node[Entry]) *FileTree {
	if node == nil {
		panic("node cannot be nil")
	}
	return &FileTree{node: node}
}

// Node returns the wrapped node.
func (t *FileTree) Node() *tree.Node[Entry] { return t.node }

func (t *FileTree) ID() uuid.UUID                 { return t.node.ID() }
func (t *FileTree) Name() string                  { return t.node.Name() }
func (t *FileTree) SetName(name string) error     { return t.node.SetName(name) }
func (t *FileTree) Content() Entry                { return t.node.Content() }
func (t *FileTree) SetContent(entry Entry)        { t.node.SetContent(entry) }
func (t *FileTree) Parent() *tree.Node[Entry]     { return t.node.Parent() }
func (t *FileTree) Children() []*tree.Node[Entry] { return t.node.Children() }
func (t *FileTree) Len() int                      { return t.node.Len() }
func (t *FileTree) SetRoot()                      { t.node.SetRoot() }
func (t *FileTree) IsRoot() bool                  { return t.node.IsRoot() }
func (t *FileTree) IsLeaf() bool                  { return t.node.IsLeaf() }
func (t *FileTree) HasChildren() bool             { return t.node.HasChildren() }
func (t *FileTree) Depth() int                    { return t.node.Depth() }

func (t *FileTree) AddChild(child *tree.Node[Entry]) (*tree.Node[Entry], error) {
	return t.node.AddChild(child)
}

func (t *FileTree) Pick(name string) (*tree.Node[Entry], bool) {
	return t.node.Pick(name)
}

func (t *FileTree) PickPath(names ...string) (*tree.Node[Entry], bool) {
	return t.node.PickPath(names...)
}

func (t *FileTree) Walk(fn tree.WalkFunc[Entry]) error {
	return t.node.Walk(fn)
}

// FindFile is reserved for path-based lookup and is not implemented.
// It always returns an error matching fstree.ErrNotSupported.
func (t *FileTree) FindFile(path string) (*tree.Node[Entry], error) {
	return nil, fmt.Errorf("find file %q: %w", path, fstree.ErrNotSupported)
}

// Stats summarizes a file tree.
type Stats struct {
	Dirs  int   // Directories, including the root when it is one
	Files int   // Non-directory entries
	Bytes int64 // Sum of file sizes
}

// Stats walks the tree and counts its entries.
func (t *FileTree) Stats() Stats {
	var s Stats
	_ = t.node.Walk(func(n *tree.Node[Entry]) error {
		entry := n.Content()
		if entry.IsDir {
			s.Dirs++
		} else {
			s.Files++
			s.Bytes += entry.Size
		}
		return nil
	})
	return s
}

// Verify FileTree implements the interface at compile time
var _ tree.Interface[Entry] = (*FileTree)(nil)
