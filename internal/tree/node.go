package tree

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vvka-141/fstree/pkg/fstree"
)

// SkipChildren can be returned from a WalkFunc to skip the children of the
// node being visited. It is never returned by Walk itself.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node visited by Walk.
type WalkFunc[T any] func(n *Node[T]) error

// Interface lists the generic tree operations. *Node implements it directly;
// wrappers such as filetree.FileTree implement it by forwarding to a node.
type Interface[T any] interface {
	ID() uuid.UUID
	Name() string
	SetName(name string) error
	Content() T
	SetContent(content T)
	Parent() *Node[T]
	Children() []*Node[T]
	Len() int
	AddChild(child *Node[T]) (*Node[T], error)
	Pick(name string) (*Node[T], bool)
	PickPath(names ...string) (*Node[T], bool)
	SetRoot()
	IsRoot() bool
	IsLeaf() bool
	HasChildren() bool
	Depth() int
	Walk(fn WalkFunc[T]) error
}

// Node is a single element of the tree.
// Node is not safe for concurrent mutation.
type Node[T any] struct {
	id       uuid.UUID
	name     string
	content  T
	parent   *Node[T] // back-reference only, never an ownership edge
	children []*Node[T]
	index    map[string]*Node[T]
}

// New creates a detached node with a random identity.
func New[T any](name string, content T) *Node[T] {
	return NewWithID(uuid.New(), name, content)
}

// NewWithID creates a detached node with the given identity.
func NewWithID[T any](id uuid.UUID, name string, content T) *Node[T] {
	return &Node[T]{
		id:      id,
		name:    name,
		content: content,
		index:   make(map[string]*Node[T]),
	}
}

func (n *Node[T]) ID() uuid.UUID     { return n.id }
func (n *Node[T]) Name() string      { return n.name }
func (n *Node[T]) Content() T        { return n.content }
func (n *Node[T]) SetContent(c T)    { n.content = c }
func (n *Node[T]) Parent() *Node[T]  { return n.parent }
func (n *Node[T]) Len() int          { return len(n.children) }
func (n *Node[T]) IsRoot() bool      { return n.parent == nil }
func (n *Node[T]) HasChildren() bool { return len(n.children) > 0 }
func (n *Node[T]) IsLeaf() bool      { return !n.HasChildren() }

// SetName renames the node. An attached node keeps its parent's name index
// in sync and may not take a name already used by a sibling.
func (n *Node[T]) SetName(name string) error {
	if name == n.name {
		return nil
	}
	if p := n.parent; p != nil {
		if _, exists := p.index[name]; exists {
			return &fstree.DuplicateChildError{Parent: p.name, Name: name}
		}
		delete(p.index, n.name)
		p.index[name] = n
	}
	n.name = name
	return nil
}

// Children returns the ordered children. The returned slice is a copy;
// mutating it does not affect the node.
func (n *Node[T]) Children() []*Node[T] {
	out := make([]*Node[T], len(n.children))
	copy(out, n.children)
	return out
}

// AddChild appends child to n and sets its parent to n.
//
// Fails with ErrInvalidArgument when child is nil, is already attached
// elsewhere, or is n itself or one of its ancestors. Fails with a
// *fstree.DuplicateChildError when a sibling already uses child's name.
func (n *Node[T]) AddChild(child *Node[T]) (*Node[T], error) {
	if child == nil {
		return nil, fmt.Errorf("child cannot be nil: %w", fstree.ErrInvalidArgument)
	}
	if child.parent != nil {
		return nil, fmt.Errorf("child %q is already attached to %q: %w",
			child.name, child.parent.name, fstree.ErrInvalidArgument)
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			return nil, fmt.Errorf("attaching %q under %q would create a cycle: %w",
				child.name, n.name, fstree.ErrInvalidArgument)
		}
	}
	if _, exists := n.index[child.name]; exists {
		return nil, &fstree.DuplicateChildError{Parent: n.name, Name: child.name}
	}

	child.parent = n
	n.index[child.name] = child
	n.children = append(n.children, child)
	return child, nil
}

// Pick returns the child registered under name.
func (n *Node[T]) Pick(name string) (*Node[T], bool) {
	child, ok := n.index[name]
	return child, ok
}

// PickPath follows a chain of child names starting at n.
// An empty chain returns n itself.
func (n *Node[T]) PickPath(names ...string) (*Node[T], bool) {
	cur := n
	for _, name := range names {
		next, ok := cur.Pick(name)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// SetRoot clears the parent reference, marking n as a root. If n was
// attached, it is removed from its former parent so that it keeps a single
// owner. Calling SetRoot on a root is a no-op.
func (n *Node[T]) SetRoot() {
	p := n.parent
	if p == nil {
		return
	}
	delete(p.index, n.name)
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Depth returns the number of edges between n and its root.
func (n *Node[T]) Depth() int {
	depth := 0
	for a := n.parent; a != nil; a = a.parent {
		depth++
	}
	return depth
}

// Ancestors returns n's ancestors, nearest first.
func (n *Node[T]) Ancestors() []*Node[T] {
	var out []*Node[T]
	for a := n.parent; a != nil; a = a.parent {
		out = append(out, a)
	}
	return out
}

// Walk visits n and its descendants in pre-order, children in insertion
// order. Returning SkipChildren from fn skips the visited node's subtree;
// any other error stops the walk and is returned.
func (n *Node[T]) Walk(fn WalkFunc[T]) error {
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(cur); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return nil
}

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n *Node[T]) Count() int {
	count := 0
	_ = n.Walk(func(*Node[T]) error {
		count++
		return nil
	})
	return count
}

// Verify Node implements the interface at compile time
var _ Interface[string] = (*Node[string])(nil)
