package builder

import (
	"fmt"

	"github.com/vvka-141/fstree/internal/checksum"
	"github.com/vvka-141/fstree/internal/files/filesystem"
	"github.com/vvka-141/fstree/internal/files/ignore"
	"github.com/vvka-141/fstree/internal/logging"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// Options configures a Builder.
type Options struct {
	FileSystem     filesystem.FileSystemProvider
	Ordering       Ordering
	IncludeHidden  bool     // Include entries whose name starts with "."
	Ignore         []string // doublestar patterns; see ignore.Matcher
	MaxDepth       int      // Deepest level that is listed; 0 means unbounded
	CycleDetection bool
	AtomicSubtrees bool
	Iterative      bool
	Checksums      checksum.Calculator // nil disables checksums
	Logger         fstree.Logger
}

// DefaultOptions returns the options used by New when none are given.
func DefaultOptions() Options {
	return Options{
		FileSystem:     filesystem.NewOSFileSystem(),
		Ordering:       OrderLexical,
		CycleDetection: true,
		Logger:         logging.NewNullLogger(),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithFileSystem sets the filesystem provider. The default is the OS filesystem.
func WithFileSystem(fs filesystem.FileSystemProvider) Option {
	return func(o *Options) { o.FileSystem = fs }
}

// WithOrdering sets the sibling ordering.
func WithOrdering(ordering Ordering) Option {
	return func(o *Options) { o.Ordering = ordering }
}

// WithHidden controls whether dot-entries are included.
func WithHidden(include bool) Option {
	return func(o *Options) { o.IncludeHidden = include }
}

// WithIgnore adds ignore patterns. Patterns without a slash match an entry's
// base name; patterns with a slash match its path relative to the build root.
func WithIgnore(patterns ...string) Option {
	return func(o *Options) { o.Ignore = append(o.Ignore, patterns...) }
}

// WithMaxDepth bounds listing depth. Entries at depth n are attached but not
// expanded. Zero means unbounded.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithCycleDetection toggles symlink cycle detection.
func WithCycleDetection(enabled bool) Option {
	return func(o *Options) { o.CycleDetection = enabled }
}

// WithAtomicSubtrees attaches each subtree to its parent only after it was
// built in full.
func WithAtomicSubtrees(enabled bool) Option {
	return func(o *Options) { o.AtomicSubtrees = enabled }
}

// WithIterative selects the explicit work-stack traversal.
func WithIterative(enabled bool) Option {
	return func(o *Options) { o.Iterative = enabled }
}

// WithChecksums fills Entry.Checksum for regular files using calc.
func WithChecksums(calc checksum.Calculator) Option {
	return func(o *Options) { o.Checksums = calc }
}

// WithLogger sets the logger used for verbose walk diagnostics.
func WithLogger(logger fstree.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithOptions replaces all options at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// validate checks the options and fills nil collaborators with defaults.
func (o *Options) validate() error {
	if o.FileSystem == nil {
		o.FileSystem = filesystem.NewOSFileSystem()
	}
	if o.Logger == nil {
		o.Logger = logging.NewNullLogger()
	}
	if o.Ordering == "" {
		o.Ordering = OrderLexical
	}
	if _, err := ParseOrdering(string(o.Ordering)); err != nil {
		return err
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d: %w", o.MaxDepth, fstree.ErrInvalidConfig)
	}
	return ignore.Validate(o.Ignore...)
}
