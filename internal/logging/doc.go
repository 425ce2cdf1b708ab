// Package logging implements fstree.Logger: ConsoleLogger for the CLI and
// NullLogger for library callers that want silence.
package logging
