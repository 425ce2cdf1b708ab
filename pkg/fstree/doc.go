// Package fstree holds the public surface shared by the fstree packages:
// sentinel and typed errors, exit codes, and the Logger interface.
package fstree
