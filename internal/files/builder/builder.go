package builder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/internal/files/ignore"
	"github.com/vvka-141/fstree/internal/tree"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// Builder constructs file trees. A Builder is immutable after New and safe
// for concurrent use by multiple goroutines as long as its filesystem
// provider and logger are.
type Builder struct {
	opts    Options
	matcher *ignore.Matcher
}

// New creates a Builder. Without options it walks the OS filesystem in
// lexical order, skips dot-entries and detects symlink cycles.
// Returns an error matching fstree.ErrInvalidConfig for invalid options.
func New(opts ...Option) (*Builder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	o.Ignore = append([]string(nil), o.Ignore...)
	return &Builder{
		opts:    o,
		matcher: &ignore.Matcher{IncludeHidden: o.IncludeHidden, Patterns: o.Ignore},
	}, nil
}

// Options returns a copy of the builder's configuration.
func (b *Builder) Options() Options {
	o := b.opts
	o.Ignore = append([]string(nil), b.opts.Ignore...)
	return o
}

// FromPath builds the tree rooted at path.
//
// The root is named after path's base name, holds an Entry for path and is
// marked as root. Its immediate entries (none when path is not a directory)
// are handed to BuildTree.
//
// A missing path yields an *fstree.EnumerationError matching both
// fstree.ErrEnumeration and fstree.ErrPathNotFound. On any error the
// returned tree is nil.
func (b *Builder) FromPath(ctx context.Context, rootPath string) (*filetree.FileTree, error) {
	fsys := b.opts.FileSystem

	w := b.newWalk(ctx)
	if err := w.ctx.Err(); err != nil {
		return nil, fmt.Errorf("build of %s not started: %w", rootPath, err)
	}

	info, err := fsys.Stat(rootPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", fstree.ErrPathNotFound, err)
		}
		return nil, &fstree.EnumerationError{Op: "stat", Path: rootPath, Err: err}
	}

	entry := filetree.NewEntry(rootPath, ".", info)
	if err := w.fillChecksum(&entry); err != nil {
		return nil, err
	}

	root := filetree.New(fsys.BaseName(rootPath), entry)
	root.SetRoot()

	entries, err := w.expand(root.Node(), 0)
	if err != nil {
		return nil, err
	}

	b.opts.Logger.Verbose("Building tree from %s", rootPath)
	if err := w.run(root.Node(), 0, entries); err != nil {
		return nil, err
	}
	return root, nil
}

// BuildTree attaches a node for every path in entries to node, in the given
// order, and recursively populates each one. Attachment errors from AddChild
// (fstree.ErrDuplicateChild, fstree.ErrInvalidArgument) propagate unchanged.
// Returns node.
//
// Unless atomic subtrees are enabled, a failure leaves node holding the
// children attached before it.
func (b *Builder) BuildTree(ctx context.Context, node *tree.Node[filetree.Entry], entries []string) (*tree.Node[filetree.Entry], error) {
	if node == nil {
		return nil, fmt.Errorf("node cannot be nil: %w", fstree.ErrInvalidArgument)
	}
	w := b.newWalk(ctx)
	if err := w.seedAncestors(node); err != nil {
		return nil, err
	}
	if err := w.run(node, node.Depth(), entries); err != nil {
		return nil, err
	}
	return node, nil
}

// walk is the per-build state.
type walk struct {
	opts    *Options
	matcher *ignore.Matcher
	ctx     context.Context
	active  map[string]bool                       // canonical paths of the directories on the current branch
	entered map[*tree.Node[filetree.Entry]]string // node -> canonical path it activated
}

func (b *Builder) newWalk(ctx context.Context) *walk {
	if ctx == nil {
		ctx = context.Background()
	}
	return &walk{
		opts:    &b.opts,
		matcher: b.matcher,
		ctx:     ctx,
		active:  make(map[string]bool),
		entered: make(map[*tree.Node[filetree.Entry]]string),
	}
}

// run builds below node, which sits at depth in the finished tree. The
// depth is tracked here because atomic subtrees are built detached, where
// Node.Depth cannot see the ancestors yet.
func (w *walk) run(node *tree.Node[filetree.Entry], depth int, entries []string) error {
	if w.opts.Iterative {
		return w.buildIterative(node, depth, entries)
	}
	return w.buildRecursive(node, depth, entries)
}

// buildRecursive is the recursive formulation of the walk.
func (w *walk) buildRecursive(node *tree.Node[filetree.Entry], depth int, entries []string) error {
	if len(entries) == 0 {
		return nil
	}

	for _, entryPath := range entries {
		child, childEntries, err := w.visit(node, depth+1, entryPath)
		if err != nil {
			return err
		}

		err = w.buildRecursive(child, depth+1, childEntries)
		w.leave(child)
		if err != nil {
			return err
		}

		if err := w.attachCompleted(node, child); err != nil {
			return err
		}
	}
	return nil
}

// frame is one level of the explicit work stack.
type frame struct {
	node    *tree.Node[filetree.Entry]
	parent  *tree.Node[filetree.Entry] // nil for the starting node
	depth   int
	entries []string
	next    int
}

// buildIterative walks with an explicit stack. It visits and attaches nodes
// in exactly the same sequence as buildRecursive.
func (w *walk) buildIterative(node *tree.Node[filetree.Entry], depth int, entries []string) error {
	stack := []*frame{{node: node, depth: depth, entries: entries}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			if top.parent == nil {
				continue
			}
			w.leave(top.node)
			if err := w.attachCompleted(top.parent, top.node); err != nil {
				return err
			}
			continue
		}

		entryPath := top.entries[top.next]
		top.next++

		child, childEntries, err := w.visit(top.node, top.depth+1, entryPath)
		if err != nil {
			return err
		}
		stack = append(stack, &frame{node: child, parent: top.node, depth: top.depth + 1, entries: childEntries})
	}
	return nil
}

// visit creates the node for entryPath under parent at depth, attaches it
// unless subtrees are atomic, and lists its children.
func (w *walk) visit(parent *tree.Node[filetree.Entry], depth int, entryPath string) (*tree.Node[filetree.Entry], []string, error) {
	if err := w.ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("build interrupted at %s: %w", entryPath, err)
	}

	fsys := w.opts.FileSystem
	name := fsys.BaseName(entryPath)

	info, err := fsys.Stat(entryPath)
	if err != nil {
		return nil, nil, &fstree.EnumerationError{Op: "stat", Path: entryPath, Err: err}
	}

	entry := filetree.NewEntry(entryPath, joinRel(parent.Content().RelPath, name), info)
	if err := w.fillChecksum(&entry); err != nil {
		return nil, nil, err
	}
	child := filetree.NewNode(name, entry)

	if w.opts.AtomicSubtrees {
		// Fail before building a subtree that could never be attached.
		if _, exists := parent.Pick(name); exists {
			return nil, nil, &fstree.DuplicateChildError{Parent: parent.Name(), Name: name}
		}
	} else if _, err := parent.AddChild(child); err != nil {
		return nil, nil, err
	}

	childEntries, err := w.expand(child, depth)
	if err != nil {
		return nil, nil, err
	}
	return child, childEntries, nil
}

// attachCompleted attaches a finished subtree in atomic mode.
func (w *walk) attachCompleted(parent, child *tree.Node[filetree.Entry]) error {
	if !w.opts.AtomicSubtrees {
		return nil
	}
	_, err := parent.AddChild(child)
	return err
}

// expand lists the children of node's entry, filtered and ordered, and
// marks node's directory active for cycle detection. Non-directories and
// nodes at the depth limit have no children.
func (w *walk) expand(node *tree.Node[filetree.Entry], depth int) ([]string, error) {
	entry := node.Content()
	if !entry.IsDir {
		return nil, nil
	}
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		w.opts.Logger.Verbose("Depth limit reached at %s", entry.Path)
		return nil, nil
	}
	if err := w.enter(node); err != nil {
		return nil, err
	}

	fsys := w.opts.FileSystem
	listed, err := fsys.ListEntries(entry.Path)
	if err != nil {
		return nil, &fstree.EnumerationError{Op: "list", Path: entry.Path, Err: err}
	}

	entries := make([]string, 0, len(listed))
	for _, p := range listed {
		name := fsys.BaseName(p)
		rel := joinRel(entry.RelPath, name)
		if w.matcher.Match(name, rel) {
			w.opts.Logger.Verbose("Skipping %s", rel)
			continue
		}
		entries = append(entries, p)
	}
	sortEntries(w.opts.Ordering, fsys, entries)

	w.opts.Logger.Verbose("Listed %s (%d entries)", entry.Path, len(entries))
	return entries, nil
}

// enter records node's directory as active on the current branch.
func (w *walk) enter(node *tree.Node[filetree.Entry]) error {
	if !w.opts.CycleDetection {
		return nil
	}
	entryPath := node.Content().Path
	canonical, err := w.opts.FileSystem.Canonical(entryPath)
	if err != nil {
		return &fstree.EnumerationError{Op: "resolve", Path: entryPath, Err: err}
	}
	if w.active[canonical] {
		return &fstree.CycleError{Path: entryPath, Canonical: canonical}
	}
	w.active[canonical] = true
	w.entered[node] = canonical
	return nil
}

// leave removes node's directory from the active branch, if enter added it.
func (w *walk) leave(node *tree.Node[filetree.Entry]) {
	if canonical, ok := w.entered[node]; ok {
		delete(w.active, canonical)
		delete(w.entered, node)
	}
}

// seedAncestors marks node and its ancestors active, for BuildTree calls
// that start below an existing tree root.
func (w *walk) seedAncestors(node *tree.Node[filetree.Entry]) error {
	if !w.opts.CycleDetection {
		return nil
	}
	for _, n := range append([]*tree.Node[filetree.Entry]{node}, node.Ancestors()...) {
		entry := n.Content()
		if !entry.IsDir || entry.Path == "" {
			continue
		}
		canonical, err := w.opts.FileSystem.Canonical(entry.Path)
		if err != nil {
			return &fstree.EnumerationError{Op: "resolve", Path: entry.Path, Err: err}
		}
		w.active[canonical] = true
	}
	return nil
}

// fillChecksum sets entry.Checksum for regular files when checksums are on.
func (w *walk) fillChecksum(entry *filetree.Entry) error {
	if w.opts.Checksums == nil || !entry.Mode.IsRegular() {
		return nil
	}
	content, err := w.opts.FileSystem.ReadFile(entry.Path)
	if err != nil {
		return &fstree.EnumerationError{Op: "read", Path: entry.Path, Err: err}
	}
	entry.Checksum = w.opts.Checksums.CalculateNormalized(content)
	return nil
}

// joinRel joins a child name onto a root-relative path.
func joinRel(parentRel, name string) string {
	if parentRel == "" || parentRel == "." {
		return name
	}
	return path.Join(parentRel, name)
}
