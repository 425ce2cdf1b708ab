package filetree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fstree/internal/identity"
	"github.com/vvka-141/fstree/internal/tree"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// countChildren accepts any generic tree, plain node or wrapper.
func countChildren(t tree.Interface[Entry]) int {
	return len(t.Children())
}

func TestFileTree_ForwardsToNode(t *testing.T) {
	ft := New("a", Entry{Path: "/tmp/a", RelPath: ".", IsDir: true})
	ft.SetRoot()

	child, err := ft.AddChild(NewNode("b.txt", Entry{Path: "/tmp/a/b.txt", RelPath: "b.txt"}))
	require.NoError(t, err)

	assert.Same(t, ft.Node(), child.Parent(), "children are owned by the wrapped node")
	assert.Equal(t, "a", ft.Name())
	assert.Equal(t, "/tmp/a", ft.Content().Path)
	assert.True(t, ft.IsRoot())
	assert.False(t, ft.IsLeaf())
	assert.True(t, ft.HasChildren())
	assert.Equal(t, 1, ft.Len())
	assert.Equal(t, ft.Node().ID(), ft.ID())

	picked, ok := ft.Pick("b.txt")
	require.True(t, ok)
	assert.Same(t, child, picked)

	assert.Equal(t, 1, countChildren(ft))
	assert.Equal(t, 1, countChildren(ft.Node()))
}

func TestFileTree_AttributeSetters(t *testing.T) {
	ft := New("a", Entry{Path: "/tmp/a"})

	require.NoError(t, ft.SetName("renamed"))
	assert.Equal(t, "renamed", ft.Node().Name())

	ft.SetContent(Entry{Path: "/tmp/other"})
	assert.Equal(t, "/tmp/other", ft.Node().Content().Path)
}

func TestFileTree_DuplicateChild(t *testing.T) {
	ft := New("a", Entry{RelPath: "."})
	first := NewNode("x", Entry{RelPath: "x"})
	second := NewNode("x", Entry{RelPath: "x"})

	_, err := ft.AddChild(first)
	require.NoError(t, err)
	_, err = ft.AddChild(second)
	assert.True(t, errors.Is(err, fstree.ErrDuplicateChild))

	picked, _ := ft.Pick("x")
	assert.Same(t, first, picked)
	assert.Nil(t, second.Parent())
}

func TestFileTree_FindFile_NotSupported(t *testing.T) {
	ft := New("a", Entry{})

	for _, p := range []string{"", "b.txt", "c/d.txt"} {
		node, err := ft.FindFile(p)
		assert.Nil(t, node)
		assert.True(t, errors.Is(err, fstree.ErrNotSupported), "FindFile(%q) = %v", p, err)
	}
}

func TestNewNode_DeterministicIdentity(t *testing.T) {
	n1 := NewNode("d.txt", Entry{RelPath: "c/d.txt"})
	n2 := NewNode("d.txt", Entry{RelPath: "c/d.txt"})
	assert.Equal(t, n1.ID(), n2.ID())
	assert.Equal(t, identity.ForPath("c/d.txt"), n1.ID())
}

func TestWrap(t *testing.T) {
	node := NewNode("a", Entry{})
	assert.Same(t, node, Wrap(node).Node())

	assert.Panics(t, func() { Wrap(nil) })
}

func TestFileTree_Stats(t *testing.T) {
	ft := New("a", Entry{RelPath: ".", IsDir: true})
	c, err := ft.AddChild(NewNode("c", Entry{RelPath: "c", IsDir: true}))
	require.NoError(t, err)
	_, err = ft.AddChild(NewNode("b.txt", Entry{RelPath: "b.txt", Size: 3}))
	require.NoError(t, err)
	_, err = c.AddChild(NewNode("d.txt", Entry{RelPath: "c/d.txt", Size: 4}))
	require.NoError(t, err)

	assert.Equal(t, Stats{Dirs: 2, Files: 2, Bytes: 7}, ft.Stats())
}
