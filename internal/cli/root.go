package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fstree/internal/logging"
	"github.com/vvka-141/fstree/pkg/fstree"
)

var rootCmd = &cobra.Command{
	Use:   "fstree",
	Short: "Build and inspect in-memory file trees",
	Long: `fstree walks a directory and builds an in-memory tree of its entries,
one node per file or directory, then prints, queries or watches it.

Settings are resolved in this order (highest first):
  command-line flags > FSTREE_* environment variables > config file > defaults

The config file lives at $XDG_CONFIG_HOME/fstree/config.yml
(~/.config/fstree/config.yml when XDG_CONFIG_HOME is unset).
A .env file in the working directory is loaded first.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Path not found
  12 - Listing or stat failed during the walk
  13 - Duplicate sibling or invalid tree attachment
  14 - Symbolic link cycle
  15 - Operation not supported`,
	SilenceUsage: true,
}

type globalFlagValues struct {
	verbose    bool
	configPath string
}

var globalFlags globalFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&globalFlags.configPath, "config", "",
		"Path to the config file\n"+
			"(default: $XDG_CONFIG_HOME/fstree/config.yml or ~/.config/fstree/config.yml)")
}

// newLogger returns a console logger writing to the command's error stream.
func newLogger(cmd *cobra.Command) fstree.Logger {
	return logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), globalFlags.verbose)
}

// signalContext returns the command context, cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
