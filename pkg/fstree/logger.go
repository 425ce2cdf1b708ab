package fstree

// Logger receives progress and diagnostics from builds and watches.
// Messages are printf-style format strings without a trailing newline.
// Implementations must be safe for concurrent use: a watch logs from the
// event loop and from rebuilds at the same time.
type Logger interface {
	// Verbose reports per-directory progress; shown only with --verbose.
	Verbose(format string, args ...any)

	// Info reports state the user should see, such as what is being watched.
	Info(format string, args ...any)

	// Error reports a failure that did not stop the command.
	Error(format string, args ...any)
}
