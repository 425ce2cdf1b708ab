package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	lgtree "github.com/charmbracelet/lipgloss/tree"
	"github.com/muesli/termenv"

	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/internal/tree"
	"github.com/vvka-141/fstree/internal/tui"
)

// checksumWidth is how many hex digits of a checksum the text view shows.
const checksumWidth = 12

// Text renders a box-drawing tree:
//
//	a
//	├── b.txt
//	└── c
//	    └── d.txt
type Text struct {
	Options
}

func (r *Text) Render(w io.Writer, t *filetree.FileTree) error {
	styles := tui.PlainTreeStyles()
	if r.Color {
		renderer := lipgloss.NewRenderer(w)
		renderer.SetColorProfile(termenv.ANSI256)
		styles = tui.NewTreeStyles(renderer)
	}

	root := lgtree.Root(r.label(t.Node(), styles.Root, styles)).
		Enumerator(lgtree.DefaultEnumerator).
		EnumeratorStyle(styles.Enumerator)
	r.addChildren(root, t.Node(), styles)

	_, err := fmt.Fprintln(w, root.String())
	return err
}

func (r *Text) addChildren(parent *lgtree.Tree, n *tree.Node[filetree.Entry], styles tui.TreeStyles) {
	for _, child := range n.Children() {
		if child.IsLeaf() {
			style := styles.File
			if child.Content().IsDir {
				style = styles.Dir
			}
			parent.Child(r.label(child, style, styles))
			continue
		}
		sub := lgtree.Root(r.label(child, styles.Dir, styles))
		r.addChildren(sub, child, styles)
		parent.Child(sub)
	}
}

func (r *Text) label(n *tree.Node[filetree.Entry], style lipgloss.Style, styles tui.TreeStyles) string {
	entry := n.Content()
	label := style.Render(n.Name())
	if entry.IsDir {
		return label
	}
	if r.Sizes {
		label += " " + styles.Meta.Render(fmt.Sprintf("[%d]", entry.Size))
	}
	if r.Checksums && entry.Checksum != "" {
		sum := entry.Checksum
		if len(sum) > checksumWidth {
			sum = sum[:checksumWidth]
		}
		label += " " + styles.Meta.Render(sum)
	}
	return label
}
