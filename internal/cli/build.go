package cli

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <path>",
	Short: "Build the tree of a directory and print it",
	Long: `Build walks <path> depth-first and prints the resulting tree.

Every directory entry becomes a node named after its base name. Entries
whose name starts with a dot are skipped unless --hidden is given.
Symbolic links to directories are followed; a link that leads back into
the current branch fails the build with exit code 14.

Examples:
  # Print a tree like tree(1)
  fstree build ./src

  # Natural order, two levels, with file sizes
  fstree build ./photos --sort natural -L 2 --size

  # Machine-readable output with checksums
  fstree build ./config -o json --checksum

  # Skip build artifacts
  fstree build . -I node_modules -I '*.o'`,
	Args:              RequirePath,
	ValidArgsFunction: completeDirectories,
	RunE:              runBuild,
}

var buildFlags treeFlagValues

func init() {
	rootCmd.AddCommand(buildCmd)
	addTreeFlags(buildCmd, &buildFlags)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, &buildFlags)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	b, err := newBuilder(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	t, err := b.FromPath(ctx, args[0])
	if err != nil {
		return err
	}
	return writeTree(cmd.OutOrStdout(), cfg, &buildFlags, t)
}
