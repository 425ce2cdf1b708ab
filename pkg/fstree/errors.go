package fstree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	root, err := b.FromPath(ctx, "./project")
//	if errors.Is(err, fstree.ErrCycleDetected) {
//	    // Handle a symbolic link loop
//	}
var (
	// ErrInvalidArgument indicates a nil or otherwise unusable argument,
	// e.g. a nil child passed to AddChild.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateChild indicates a sibling name collision.
	ErrDuplicateChild = errors.New("duplicate child")

	// ErrEnumeration indicates the filesystem listing or metadata primitive failed.
	ErrEnumeration = errors.New("enumeration failed")

	// ErrNotSupported indicates an operation that is declared but not implemented.
	ErrNotSupported = errors.New("not supported")

	// ErrPathNotFound indicates the build root does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrCycleDetected indicates a directory was reached twice through symbolic links.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DuplicateChildError is returned when a child name is already present
// among the receiver's children. It matches ErrDuplicateChild.
type DuplicateChildError struct {
	Parent string // Name of the receiving node
	Name   string // Colliding child name
}

func (e *DuplicateChildError) Error() string {
	return fmt.Sprintf("child %q already present under %q", e.Name, e.Parent)
}

// Is reports whether target is ErrDuplicateChild.
func (e *DuplicateChildError) Is(target error) bool {
	return target == ErrDuplicateChild
}

// EnumerationError wraps a failure of the listing or metadata primitive.
// It matches ErrEnumeration and unwraps to the underlying cause.
type EnumerationError struct {
	Op   string // "stat", "list" or "read"
	Path string
	Err  error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrEnumeration.
func (e *EnumerationError) Is(target error) bool {
	return target == ErrEnumeration
}

// CycleError is returned when a directory resolves to a canonical path that
// has already been visited on the current branch.
type CycleError struct {
	Path      string // Path as listed
	Canonical string // Resolved path that was already visited
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("directory cycle at %s (resolves to %s)", e.Path, e.Canonical)
}

// Is reports whether target is ErrCycleDetected.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

// usageErrorPatterns are the cobra error prefixes that indicate CLI misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"requires at most",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, ErrCycleDetected):
		return ExitCycleDetected
	case errors.Is(err, ErrEnumeration):
		return ExitEnumerationFailed
	case errors.Is(err, ErrDuplicateChild), errors.Is(err, ErrInvalidArgument):
		return ExitInvalidTree
	case errors.Is(err, ErrNotSupported):
		return ExitNotSupported
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
