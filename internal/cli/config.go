package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fstree/internal/config"
	"github.com/vvka-141/fstree/internal/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the fstree config file",
	Long: `Manage the YAML config file holding default build and output settings.

The file is read from --config, else $XDG_CONFIG_HOME/fstree/config.yml,
else ~/.config/fstree/config.yml.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings (config file and FSTREE_* variables)",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

type configInitFlagValues struct {
	force bool
}

var configInitFlags configInitFlagValues

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)

	configInitCmd.Flags().BoolVarP(&configInitFlags.force, "force", "f", false,
		"Overwrite an existing config file without asking")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, _, err := resolveConfigPath()
	if err != nil {
		return err
	}

	force := configInitFlags.force
	if _, statErr := os.Stat(path); statErr == nil && !force && tui.IsInteractive() {
		if !tui.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("%s exists. Overwrite?", path)) {
			return fmt.Errorf("config file already exists at %s", path)
		}
		force = true
	}

	if err := config.Init(path, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s Created %s\n", tui.SymbolCheck, path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, _, err := resolveConfigPath()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
