package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fstree/internal/files/builder"
	"github.com/vvka-141/fstree/pkg/fstree"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Output formats understood by the renderers.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Formats lists every output format, for flag help and completion.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

type BuildConfig struct {
	Sort       string   `yaml:"sort"`
	Hidden     bool     `yaml:"hidden"`
	Ignore     []string `yaml:"ignore,omitempty"`
	MaxDepth   int      `yaml:"max_depth"`
	Checksum   bool     `yaml:"checksum"`
	Atomic     bool     `yaml:"atomic"`
	Iterative  bool     `yaml:"iterative"`
	CycleCheck bool     `yaml:"cycle_check"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Color  string `yaml:"color"`
}

// Config is the content of config.yml.
type Config struct {
	Build  BuildConfig  `yaml:"build"`
	Output OutputConfig `yaml:"output"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Sort:       string(builder.OrderLexical),
			CycleCheck: true,
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/fstree/config.yml, falling back to
// ~/.config/fstree/config.yml.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, fstree.ConfigDirName, fstree.ConfigFileName), nil
}

// Load reads the config file at configPath. Keys missing from the file keep
// their Default values.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", fstree.ErrInvalidConfig, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to configPath, creating parent directories.
func Save(configPath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	return nil
}

// Init writes the default configuration to configPath. An existing file is
// only replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}
	return Save(configPath, Default())
}

// normalizeFormat lower-cases a format name and maps the "yml" alias to
// FormatYAML.
func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "yml" {
		return FormatYAML
	}
	return format
}

// Validate normalizes the output format, then checks enumerated values and
// bounds.
func (c *Config) Validate() error {
	c.Output.Format = normalizeFormat(c.Output.Format)
	if _, err := builder.ParseOrdering(c.Build.Sort); err != nil {
		return err
	}
	if c.Build.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d: %w", c.Build.MaxDepth, fstree.ErrInvalidConfig)
	}
	if !contains(Formats, c.Output.Format) {
		return fmt.Errorf("unknown format %q (valid: %s): %w", c.Output.Format, strings.Join(Formats, ", "), fstree.ErrInvalidConfig)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (valid: auto, always, never): %w", c.Output.Color, fstree.ErrInvalidConfig)
	}
	return nil
}

// ApplyEnv overrides settings from FSTREE_* variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(fstree.EnvPrefix + "SORT"); ok && v != "" {
		c.Build.Sort = v
	}
	if v, ok := lookup(fstree.EnvPrefix + "FORMAT"); ok && v != "" {
		c.Output.Format = v
	}
	if v, ok := lookup(fstree.EnvPrefix + "HIDDEN"); ok && v != "" {
		hidden, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sHIDDEN=%q is not a boolean: %w", fstree.EnvPrefix, v, fstree.ErrInvalidConfig)
		}
		c.Build.Hidden = hidden
	}
	if v, ok := lookup(fstree.EnvPrefix + "MAX_DEPTH"); ok && v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_DEPTH=%q is not an integer: %w", fstree.EnvPrefix, v, fstree.ErrInvalidConfig)
		}
		c.Build.MaxDepth = depth
	}
	return c.Validate()
}

// BuilderOptions converts the build section into builder options.
func (c *Config) BuilderOptions() []builder.Option {
	return []builder.Option{
		builder.WithOrdering(builder.Ordering(c.Build.Sort)),
		builder.WithHidden(c.Build.Hidden),
		builder.WithIgnore(c.Build.Ignore...),
		builder.WithMaxDepth(c.Build.MaxDepth),
		builder.WithCycleDetection(c.Build.CycleCheck),
		builder.WithAtomicSubtrees(c.Build.Atomic),
		builder.WithIterative(c.Build.Iterative),
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
