// Package ignore decides which filesystem entries a walk or a watch skips.
package ignore

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/fstree/pkg/fstree"
)

// Matcher skips dot-entries unless IncludeHidden is set, and every entry
// matching one of Patterns.
//
// A pattern without a slash is matched against the entry's base name, so
// "*.log" skips log files at any depth. A pattern with a slash is matched
// against the path relative to the walk root, in forward-slash form.
type Matcher struct {
	IncludeHidden bool
	Patterns      []string
}

// New returns a Matcher after validating every pattern.
// Invalid patterns yield an error matching fstree.ErrInvalidConfig.
func New(includeHidden bool, patterns ...string) (*Matcher, error) {
	if err := Validate(patterns...); err != nil {
		return nil, err
	}
	return &Matcher{
		IncludeHidden: includeHidden,
		Patterns:      append([]string(nil), patterns...),
	}, nil
}

// Validate checks pattern syntax.
func Validate(patterns ...string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid ignore pattern %q: %w", pattern, fstree.ErrInvalidConfig)
		}
	}
	return nil
}

// Match reports whether the entry named name, at root-relative path rel,
// is skipped.
func (m *Matcher) Match(name, rel string) bool {
	if !m.IncludeHidden && IsHidden(name) {
		return true
	}
	for _, pattern := range m.Patterns {
		subject := rel
		if !strings.Contains(pattern, "/") {
			subject = name
		}
		if match, _ := doublestar.Match(pattern, subject); match {
			return true
		}
	}
	return false
}

// MatchPath reports whether rel or any of its parent directories is skipped.
// Used for paths reported by change notifications, which can point below a
// directory the walk never entered.
func (m *Matcher) MatchPath(rel string) bool {
	if rel == "" || rel == "." {
		return false
	}
	parts := strings.Split(rel, "/")
	for i := range parts {
		if m.Match(parts[i], strings.Join(parts[:i+1], "/")) {
			return true
		}
	}
	return false
}

// IsHidden reports whether name is a dot-entry. "." and ".." are not.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
