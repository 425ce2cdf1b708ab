package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fstree/internal/checksum"
	"github.com/vvka-141/fstree/internal/files/builder"
	"github.com/vvka-141/fstree/internal/files/filesystem"
	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/pkg/fstree"
)

func scenarioTree(t *testing.T, opts ...builder.Option) *filetree.FileTree {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/tmp/a")
	mfs.AddFile("b.txt", "b")
	mfs.AddFile("c/d.txt", "dd")
	mfs.AddDir("c/empty")

	b, err := builder.New(append([]builder.Option{builder.WithFileSystem(mfs)}, opts...)...)
	require.NoError(t, err)
	root, err := b.FromPath(context.Background(), "/tmp/a")
	require.NoError(t, err)
	return root
}

func TestText_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Text{}).Render(&buf, scenarioTree(t)))

	want := "a\n" +
		"├── b.txt\n" +
		"└── c\n" +
		"    ├── d.txt\n" +
		"    └── empty\n"
	assert.Equal(t, want, buf.String())
}

func TestText_SingleNode(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/solo")
	b, err := builder.New(builder.WithFileSystem(mfs))
	require.NoError(t, err)
	root, err := b.FromPath(context.Background(), "/solo")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&Text{}).Render(&buf, root))
	assert.Equal(t, "solo\n", buf.String())
}

func TestText_SizesAndChecksums(t *testing.T) {
	calc := checksum.New()
	root := scenarioTree(t, builder.WithChecksums(calc))

	var buf bytes.Buffer
	require.NoError(t, (&Text{Options: Options{Sizes: true, Checksums: true}}).Render(&buf, root))

	out := buf.String()
	assert.Contains(t, out, "b.txt [1] "+calc.CalculateNormalized([]byte("b"))[:checksumWidth])
	assert.Contains(t, out, "d.txt [2] ")
	assert.Contains(t, out, "└── c\n", "directories carry no metadata")
}

func TestText_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Text{Options: Options{Color: true}}).Render(&buf, scenarioTree(t)))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "b.txt")
	assert.Contains(t, out, "d.txt")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Render(&buf, scenarioTree(t)))

	var doc Node
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "a", doc.Name)
	assert.Equal(t, ".", doc.Path)
	assert.Equal(t, TypeDir, doc.Type)
	require.Len(t, doc.Children, 2)
	assert.Equal(t, "b.txt", doc.Children[0].Name)
	assert.Equal(t, TypeFile, doc.Children[0].Type)
	assert.EqualValues(t, 1, doc.Children[0].Size)
	assert.Empty(t, doc.Children[0].Children)

	c := doc.Children[1]
	assert.Equal(t, "c", c.Path)
	require.Len(t, c.Children, 2)
	assert.Equal(t, "c/d.txt", c.Children[0].Path)
	assert.Equal(t, "drwxr-xr-x", c.Mode)
	assert.NotContains(t, buf.String(), "checksum", "empty checksums are omitted")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML{}.Render(&buf, scenarioTree(t)))

	assert.Contains(t, buf.String(), "name: a\n")
	assert.Contains(t, buf.String(), "  - id: ")

	var doc Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Children, 2)
	assert.Equal(t, "d.txt", doc.Children[1].Children[0].Name)
}

func TestDocument_IDsMatchNodes(t *testing.T) {
	root := scenarioTree(t)
	doc := Document(root.Node())

	d, ok := root.PickPath("c", "d.txt")
	require.True(t, ok)
	assert.Equal(t, root.ID().String(), doc.ID)
	assert.Equal(t, d.ID().String(), doc.Children[1].Children[0].ID)
}

func TestNew(t *testing.T) {
	for _, format := range []string{"", "text", "TEXT", "json", "yaml", "yml"} {
		r, err := New(format, Options{})
		assert.NoError(t, err, format)
		assert.NotNil(t, r, format)
	}

	_, err := New("xml", Options{})
	assert.True(t, errors.Is(err, fstree.ErrInvalidConfig))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "2 directories, 2 files", Summary(scenarioTree(t)))

	single := filetree.New("f.txt", filetree.Entry{RelPath: "."})
	assert.Equal(t, "0 directories, 1 file", Summary(single))
}
