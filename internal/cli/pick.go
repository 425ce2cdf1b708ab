package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/pkg/fstree"
)

var pickCmd = &cobra.Command{
	Use:   "pick <path> <child/sub/...>",
	Short: "Build a tree and print the subtree at a relative path",
	Long: `Pick builds the tree of <path>, then follows the slash-separated names
of the second argument one child at a time and prints the subtree found.

Examples:
  fstree pick ./project src/internal
  fstree pick ./project README.md -o json`,
	Args:              RequirePathAndTarget("child/sub/...", "./project src/internal"),
	ValidArgsFunction: completeDirectories,
	RunE:              runPick,
}

var pickFlags treeFlagValues

func init() {
	rootCmd.AddCommand(pickCmd)
	addTreeFlags(pickCmd, &pickFlags)
}

// splitRelPath turns "a/b/c" into its names, ignoring empty and "." parts.
func splitRelPath(rel string) []string {
	var names []string
	for _, name := range strings.Split(path.Clean(strings.ReplaceAll(rel, "\\", "/")), "/") {
		if name != "" && name != "." {
			names = append(names, name)
		}
	}
	return names
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, &pickFlags)
	if err != nil {
		return err
	}

	b, err := newBuilder(cfg, newLogger(cmd))
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	root, err := b.FromPath(ctx, args[0])
	if err != nil {
		return err
	}

	names := splitRelPath(args[1])
	node, ok := root.PickPath(names...)
	if !ok {
		return fmt.Errorf("%q not found in tree of %s: %w", args[1], args[0], fstree.ErrPathNotFound)
	}
	return writeTree(cmd.OutOrStdout(), cfg, &pickFlags, filetree.Wrap(node))
}
