package retry

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/vvka-141/fstree/pkg/fstree"
)

// WalkErrorClassifier treats enumeration failures below the root as
// transient when the entry vanished or was busy. A missing root, cycles,
// duplicates and cancellation are fatal.
type WalkErrorClassifier struct{}

func NewWalkErrorClassifier() *WalkErrorClassifier {
	return &WalkErrorClassifier{}
}

// IsTransient reports whether err is worth another build attempt.
func (c *WalkErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fstree.ErrPathNotFound) || errors.Is(err, fstree.ErrCycleDetected) {
		return false
	}

	var enumErr *fstree.EnumerationError
	if !errors.As(err, &enumErr) {
		return false
	}

	return errors.Is(enumErr.Err, fs.ErrNotExist) ||
		errors.Is(enumErr.Err, syscall.EBUSY) ||
		errors.Is(enumErr.Err, syscall.EAGAIN)
}

var _ fstree.ErrorClassifier = (*WalkErrorClassifier)(nil)
