package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequirePath validates that exactly one <path> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequirePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <path>

Usage: %s

Example:
  %s ./src`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequirePathAndTarget validates a <path> argument followed by a second one
// named target, as in "pick <path> <child>".
func RequirePathAndTarget(target, example string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf(`missing required argument: <path> <%s>

Usage: %s

Example:
  %s %s`, target, cmd.UseLine(), cmd.CommandPath(), example)
		}
		if len(args) > 2 {
			return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
		}
		return nil
	}
}
