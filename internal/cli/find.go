package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <path> <file>",
	Short: "Look up a file by path in a built tree (not supported yet)",
	Long: `Find builds the tree of <path> and asks it for <file>.

Path-based lookup is reserved and not implemented: the command always
exits with code 15 after a successful build. Use 'fstree pick' to follow
a relative path child by child.`,
	Args:              RequirePathAndTarget("file", "./project src/main.go"),
	ValidArgsFunction: completeDirectories,
	RunE:              runFind,
}

var findFlags treeFlagValues

func init() {
	rootCmd.AddCommand(findCmd)
	addTreeFlags(findCmd, &findFlags)
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, &findFlags)
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

	node, err := root.FindFile(args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), node.Content().Path)
	return err
}
