// Package builder walks a filesystem subtree and populates a filetree.FileTree.
//
// The builder is stateless between invocations: a Builder only holds
// configuration, and every FromPath call carries its own walk state, so one
// Builder may serve many concurrent builds. Each build is synchronous and
// single-threaded.
//
// # Traversal
//
// Entries are visited depth-first. For each entry the builder creates a
// node, attaches it to its parent, lists the entry's own children and
// descends. The order of siblings is controlled by an Ordering; the default
// is lexical so that builds are reproducible across platforms.
//
// Two formulations are available and behave identically: true recursion
// (default) and an explicit work stack (WithIterative), which keeps call
// depth constant for very deep trees.
//
// # Failure Semantics
//
// Listing and metadata failures surface as *fstree.EnumerationError, with no
// retry. By default a failing build leaves the partially populated tree in
// place; callers must discard it. WithAtomicSubtrees builds every subtree
// detached and attaches it only once it completed.
//
// # Cycles
//
// Directories are followed through symbolic links. With cycle detection on
// (default) the builder tracks the canonical paths of the directories on the
// current branch and fails with *fstree.CycleError when one repeats. Two
// links to the same directory on different branches are not a cycle.
package builder
