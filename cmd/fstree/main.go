package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/fstree/internal/cli"
	"github.com/vvka-141/fstree/pkg/fstree"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(fstree.ExitPanic)
		}
	}()

	if os.Getenv("FSTREE_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(fstree.ExitCodeForError(err))
	}
}
