package retry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/vvka-141/fstree/pkg/fstree"
)

func TestWalkErrorClassifier_IsTransient(t *testing.T) {
	classifier := NewWalkErrorClassifier()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"vanished entry", &fstree.EnumerationError{Op: "stat", Path: "/a/x", Err: fs.ErrNotExist}, true},
		{"vanished directory wrapped", fmt.Errorf("rebuild: %w",
			&fstree.EnumerationError{Op: "list", Path: "/a/d", Err: fmt.Errorf("failed to read directory: %w", fs.ErrNotExist)}), true},
		{"busy file", &fstree.EnumerationError{Op: "read", Path: "/a/x", Err: syscall.EBUSY}, true},
		{"permission denied", &fstree.EnumerationError{Op: "list", Path: "/a/d", Err: fs.ErrPermission}, false},
		{"missing root", &fstree.EnumerationError{Op: "stat", Path: "/a",
			Err: fmt.Errorf("%w: %w", fstree.ErrPathNotFound, fs.ErrNotExist)}, false},
		{"cycle", &fstree.CycleError{Path: "/a/loop", Canonical: "/a"}, false},
		{"duplicate", fstree.ErrDuplicateChild, false},
		{"cancelled", context.Canceled, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
