package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fstree/pkg/fstree"
)

func TestRequirePath(t *testing.T) {
	cmd := &cobra.Command{
		Use: "build <path>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequirePath(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <path>") {
			t.Errorf("expected error to contain 'missing required argument: <path>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		if err := RequirePath(cmd, []string{"./src"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequirePath(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})
}

func TestRequirePathAndTarget(t *testing.T) {
	cmd := &cobra.Command{
		Use: "pick <path> <child>",
	}
	validate := RequirePathAndTarget("child", "./project src")

	t.Run("returns error when target missing", func(t *testing.T) {
		err := validate(cmd, []string{"./project"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <path> <child>") {
			t.Errorf("unexpected error: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "./project src") {
			t.Errorf("expected example in error, got: %s", err.Error())
		}
	})

	t.Run("returns nil with both args", func(t *testing.T) {
		if err := validate(cmd, []string{"./project", "src"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := validate(cmd, []string{"a", "b", "c"})
		if err == nil || !strings.Contains(err.Error(), "accepts 2 arg") {
			t.Errorf("expected 'accepts 2 arg' error, got: %v", err)
		}
	})
}

func TestCommands_ArgsValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  *cobra.Command
		args []string
	}{
		{"build without path", buildCmd, nil},
		{"watch without path", watchCmd, nil},
		{"pick without child", pickCmd, []string{"."}},
		{"find without file", findCmd, []string{"."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Args(tt.cmd, tt.args)
			if err == nil {
				t.Fatal("Expected error for missing args")
			}
			exitCode := fstree.ExitCodeForError(err)
			if exitCode != fstree.ExitUsageError {
				t.Errorf("Expected exit code %d (usage), got %d for: %v", fstree.ExitUsageError, exitCode, err)
			}
		})
	}
}
