// Package files groups the packages that turn a directory into a tree.
//
//   - filesystem: provider abstraction with OS, in-memory and embed.FS implementations
//   - filetree: the Entry payload and the FileTree wrapper around a root node
//   - ignore: hidden-entry and glob filtering shared by the builder and the watcher
//   - builder: the depth-first walk producing a FileTree
//
//	b, err := builder.New(builder.WithOrdering(builder.OrderNatural))
//	if err != nil {
//	    return err
//	}
//	t, err := b.FromPath(ctx, "./src")
package files
