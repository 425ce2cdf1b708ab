// Package retry repeats tree builds that failed because the directory
// changed underneath the walk.
//
// A rebuild triggered by the watcher often races with the writer that
// caused it: an entry is listed and then removed before it can be
// stat'ed, or a file is still locked. Such failures usually disappear a
// moment later.
//
//	executor := retry.NewExecutor(retry.NewWalkErrorClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    t, err = b.FromPath(ctx, root)
//	    return err
//	})
package retry
