// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the listing, metadata and path primitives the tree
// builder consumes, enabling testability through in-memory implementations
// while maintaining compatibility with the OS filesystem.
//
// Key types:
//   - FileSystemProvider: listing, stat, canonicalization and path helpers
//   - FileInfo: File metadata (alias of fs.FileInfo)
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with symlinks
//     and injectable failures
//   - EmbedFileSystem: Read-only implementation over embed.FS
package filesystem
