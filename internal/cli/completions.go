package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fstree/internal/config"
	"github.com/vvka-141/fstree/internal/files/builder"
)

// colorModes contains valid --color values for shell completion.
var colorModes = []string{config.ColorAuto, config.ColorAlways, config.ColorNever}

func filterPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}

// completeOrderings provides shell completion for --sort.
func completeOrderings(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(builder.Orderings))
	for _, o := range builder.Orderings {
		names = append(names, string(o))
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeFormats provides shell completion for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(config.Formats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeColorModes provides shell completion for --color.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(colorModes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for the <path> argument.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
