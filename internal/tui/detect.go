package tui

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/fstree/pkg/fstree"
)

// Mode tells whether a human is watching the terminal.
type Mode int

const (
	ModeNonInteractive Mode = iota // scripts, CI, pipes
	ModeInteractive
)

// nonInteractiveEnv lists variables that force ModeNonInteractive when set
// to a non-empty value (FSTREE_NON_INTERACTIVE only when "1").
var nonInteractiveEnv = []string{"CI", "NO_COLOR"}

// DetectMode returns ModeInteractive only when both stdin and stdout are
// terminals and none of FSTREE_NON_INTERACTIVE=1, CI or NO_COLOR is set.
// The watch view redraws in place, so stdout matters as much as stdin.
func DetectMode() Mode {
	if os.Getenv(fstree.EnvPrefix+"NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	for _, name := range nonInteractiveEnv {
		if os.Getenv(name) != "" {
			return ModeNonInteractive
		}
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// ColorEnabled resolves a color mode ("auto", "always", "never") for output
// written to w. Auto means w is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
