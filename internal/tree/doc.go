// Package tree provides a generic n-ary tree node with a non-owning parent
// back-reference, ordered children and name-keyed child lookup.
//
// A node exclusively owns its children: AddChild refuses a child that already
// has a parent and refuses to create a cycle. The parent pointer is used for
// upward navigation only.
//
// # Example Usage
//
//	root := tree.New("a", "/tmp/a")
//	c, err := root.AddChild(tree.New("c", "/tmp/a/c"))
//	if err != nil {
//	    return err
//	}
//	found, ok := root.Pick("c") // found == c
package tree
