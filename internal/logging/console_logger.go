package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/fstree/pkg/fstree"
)

const (
	verbosePrefix = "[VERBOSE] "
	errorPrefix   = "[ERROR] "
)

// ConsoleLogger writes one line per message. Lines from concurrent callers
// never interleave.
type ConsoleLogger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// NewConsoleLogger logs to stderr; Verbose messages are dropped unless
// verbose is set.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stderr, verbose)
}

// NewConsoleLoggerWithWriter logs to out. The CLI passes the command's error
// stream so tests can capture it.
func NewConsoleLoggerWithWriter(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{out: out, verbose: verbose}
}

func (l *ConsoleLogger) Verbose(format string, args ...any) {
	if l.verbose {
		l.println(verbosePrefix, format, args)
	}
}

func (l *ConsoleLogger) Info(format string, args ...any) {
	l.println("", format, args)
}

func (l *ConsoleLogger) Error(format string, args ...any) {
	l.println(errorPrefix, format, args)
}

// println formats the message only when args are given, so a literal "%"
// in a path survives.
func (l *ConsoleLogger) println(prefix, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, prefix+msg)
}

var _ fstree.Logger = (*ConsoleLogger)(nil)
