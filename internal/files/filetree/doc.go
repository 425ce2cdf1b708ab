// Package filetree provides FileTree, an in-memory representation of a
// filesystem tree.
//
// A FileTree has-a *tree.Node[Entry] and satisfies tree.Interface[Entry] by
// forwarding every generic operation to that node, so it can be used wherever
// a plain node is expected while carrying filesystem-specific behavior.
// Descendants are plain *tree.Node[Entry] values.
package filetree
