package builder

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fstree/internal/files/filesystem"
	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/internal/tree"
)

// newScenarioFS creates /tmp/a with b.txt and c/d.txt.
func newScenarioFS() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/tmp/a")
	mfs.AddFile("b.txt", "b")
	mfs.AddFile("c/d.txt", "d")
	return mfs
}

func newTestBuilder(t *testing.T, fs filesystem.FileSystemProvider, opts ...Option) *Builder {
	t.Helper()
	b, err := New(append([]Option{WithFileSystem(fs)}, opts...)...)
	require.NoError(t, err)
	return b
}

// shape renders a subtree as name(child,child...) for compact assertions.
func shape(n *tree.Node[filetree.Entry]) string {
	if n.IsLeaf() {
		return n.Name()
	}
	parts := make([]string, 0, n.Len())
	for _, c := range n.Children() {
		parts = append(parts, shape(c))
	}
	return n.Name() + "(" + strings.Join(parts, ",") + ")"
}

// traversalModes runs a subtest for the recursive and the iterative walk.
var traversalModes = []struct {
	name      string
	iterative bool
}{
	{"recursive", false},
	{"iterative", true},
}

// reversedFS lists entries in reverse name order, to tell provider order
// apart from the builder's own ordering.
type reversedFS struct {
	*filesystem.MemoryFileSystem
}

func (r reversedFS) ListEntries(p string) ([]string, error) {
	entries, err := r.MemoryFileSystem.ListEntries(p)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// recordingFS records every provider call in order.
type recordingFS struct {
	*filesystem.MemoryFileSystem
	mu    sync.Mutex
	calls []string
}

func (r *recordingFS) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recordingFS) ListEntries(p string) ([]string, error) {
	r.record("list " + p)
	return r.MemoryFileSystem.ListEntries(p)
}

func (r *recordingFS) Stat(p string) (filesystem.FileInfo, error) {
	r.record("stat " + p)
	return r.MemoryFileSystem.Stat(p)
}

// countCalls counts recorded provider calls starting with prefix.
func countCalls(r *recordingFS, prefix string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// countNodes counts the names in a shape string.
func countNodes(shape string) int {
	return len(strings.FieldsFunc(shape, func(r rune) bool {
		return r == '(' || r == ')' || r == ','
	}))
}
