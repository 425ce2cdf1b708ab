package fstree

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Command completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitPathNotFound      = 11 // Build root does not exist
	ExitEnumerationFailed = 12 // Listing or stat failed mid-walk
	ExitInvalidTree       = 13 // Duplicate sibling or invalid attachment
	ExitCycleDetected     = 14 // Symbolic link cycle
	ExitNotSupported      = 15 // Operation declared but not implemented
)

const (
	// ConfigDirName is the directory under the user config dir holding fstree settings.
	ConfigDirName = "fstree"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yml"

	// DefaultWatchDebounce is how long the watcher waits for filesystem events
	// to settle before rebuilding.
	DefaultWatchDebounce = 200 * time.Millisecond

	// DefaultRebuildRetries is how often a watch rebuild is repeated when
	// entries vanish during the walk.
	DefaultRebuildRetries = 3

	// EnvPrefix prefixes every environment override (FSTREE_SORT, FSTREE_HIDDEN, ...).
	EnvPrefix = "FSTREE_"
)
