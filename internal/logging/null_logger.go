package logging

import "github.com/vvka-141/fstree/pkg/fstree"

// NullLogger drops every message. It is the builder's default.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...any) {}
func (*NullLogger) Info(string, ...any)    {}
func (*NullLogger) Error(string, ...any)   {}

var _ fstree.Logger = (*NullLogger)(nil)
