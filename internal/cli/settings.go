package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fstree/internal/checksum"
	"github.com/vvka-141/fstree/internal/config"
	"github.com/vvka-141/fstree/internal/files/builder"
	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/internal/render"
	"github.com/vvka-141/fstree/internal/tui"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// treeFlagValues holds the build and output flags shared by the commands
// that build a tree.
type treeFlagValues struct {
	sort         string
	format       string
	color        string
	hidden       bool
	ignore       []string
	maxDepth     int
	checksum     bool
	sizes        bool
	atomic       bool
	iterative    bool
	noCycleCheck bool
}

func addTreeFlags(cmd *cobra.Command, f *treeFlagValues) {
	flags := cmd.Flags()
	flags.StringVar(&f.sort, "sort", "",
		"Sibling order: lexical|natural|dirs-first|none (default: lexical, or $FSTREE_SORT)")
	flags.StringVarP(&f.format, "format", "o", "",
		"Output format: text|json|yaml (default: text, or $FSTREE_FORMAT)")
	flags.StringVar(&f.color, "color", "",
		"Colorize text output: auto|always|never (default: auto)")
	flags.BoolVarP(&f.hidden, "hidden", "a", false,
		"Include entries whose name starts with a dot")
	flags.StringArrayVarP(&f.ignore, "ignore", "I", nil,
		"Skip entries matching a glob (can be specified multiple times)\n"+
			"Patterns without a slash match base names, others the path relative to <path>\n"+
			"Example: -I '*.log' -I 'docs/**/*.png'")
	flags.IntVarP(&f.maxDepth, "max-depth", "L", 0,
		"Do not expand directories deeper than this level (0 = unlimited)")
	flags.BoolVar(&f.checksum, "checksum", false,
		"Compute a SHA-256 checksum of every file (line endings normalized)")
	flags.BoolVar(&f.sizes, "size", false,
		"Show file sizes in text output")
	flags.BoolVar(&f.atomic, "atomic", false,
		"Attach each subtree only once it was built completely")
	flags.BoolVar(&f.iterative, "iterative", false,
		"Walk with an explicit stack instead of recursion (for very deep trees)")
	flags.BoolVar(&f.noCycleCheck, "no-cycle-check", false,
		"Follow symbolic links without cycle detection (combine with --max-depth)")

	_ = cmd.RegisterFlagCompletionFunc("sort", completeOrderings)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("color", completeColorModes)
}

// apply copies the flags the user set onto cfg.
func (f *treeFlagValues) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if changed("sort") {
		cfg.Build.Sort = f.sort
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("color") {
		cfg.Output.Color = f.color
	}
	if changed("hidden") {
		cfg.Build.Hidden = f.hidden
	}
	if changed("ignore") {
		cfg.Build.Ignore = append(cfg.Build.Ignore, f.ignore...)
	}
	if changed("max-depth") {
		cfg.Build.MaxDepth = f.maxDepth
	}
	if changed("checksum") {
		cfg.Build.Checksum = f.checksum
	}
	if changed("atomic") {
		cfg.Build.Atomic = f.atomic
	}
	if changed("iterative") {
		cfg.Build.Iterative = f.iterative
	}
	if changed("no-cycle-check") {
		cfg.Build.CycleCheck = !f.noCycleCheck
	}
	return cfg.Validate()
}

// resolveConfigPath returns the config file path and whether the user chose it.
func resolveConfigPath() (string, bool, error) {
	if globalFlags.configPath != "" {
		return globalFlags.configPath, true, nil
	}
	path, err := config.DefaultPath()
	return path, false, err
}

// loadConfigFile loads the config file. A missing default file yields the
// defaults; a missing file named with --config is an error.
func loadConfigFile() (*config.Config, error) {
	path, explicit, err := resolveConfigPath()
	if err != nil {
		return config.Default(), nil
	}
	if !explicit {
		return config.LoadOrDefault(path)
	}

	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: %s: %w", fstree.ErrInvalidConfig, path, err)
	}
	return cfg, err
}

// loadSettings resolves the effective configuration: .env, config file,
// FSTREE_* variables, then flags.
func loadSettings(cmd *cobra.Command, flags *treeFlagValues) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := loadConfigFile()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if flags != nil {
		if err := flags.apply(cmd, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newBuilder creates a builder for cfg.
func newBuilder(cfg *config.Config, logger fstree.Logger) (*builder.Builder, error) {
	opts := append(cfg.BuilderOptions(), builder.WithLogger(logger))
	if cfg.Build.Checksum {
		opts = append(opts, builder.WithChecksums(checksum.New()))
	}
	return builder.New(opts...)
}

// writeTree renders t to w in the configured format. Text output ends with
// a summary line.
func writeTree(w io.Writer, cfg *config.Config, flags *treeFlagValues, t *filetree.FileTree) error {
	r, err := render.New(cfg.Output.Format, render.Options{
		Color:     tui.ColorEnabled(cfg.Output.Color, w),
		Checksums: cfg.Build.Checksum,
		Sizes:     flags.sizes,
	})
	if err != nil {
		return err
	}
	if err := r.Render(w, t); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	if cfg.Output.Format == config.FormatText {
		_, err = fmt.Fprintf(w, "\n%s\n", render.Summary(t))
	}
	return err
}
