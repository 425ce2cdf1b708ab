package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fstree/internal/config"
	"github.com/vvka-141/fstree/internal/files/builder"
	"github.com/vvka-141/fstree/internal/files/filetree"
	"github.com/vvka-141/fstree/internal/files/ignore"
	"github.com/vvka-141/fstree/internal/render"
	"github.com/vvka-141/fstree/internal/retry"
	"github.com/vvka-141/fstree/internal/tui"
	"github.com/vvka-141/fstree/internal/watcher"
	"github.com/vvka-141/fstree/pkg/fstree"
)

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Rebuild and print the tree whenever something below <path> changes",
	Long: `Watch builds the tree of <path>, prints it, and rebuilds it after every
burst of filesystem changes. Changes are collected until nothing happened
for the --debounce period.

On a terminal the tree is redrawn in place; press r to rebuild at once and
q to quit. Otherwise every rebuild is printed in full, which suits piping
into other tools. A failed rebuild is reported and the last good tree kept.

Examples:
  fstree watch ./src
  fstree watch ./src --debounce 1s -I '*.swp'`,
	Args:              RequirePath,
	ValidArgsFunction: completeDirectories,
	RunE:              runWatch,
}

type watchFlagValues struct {
	treeFlagValues
	debounce time.Duration
	maxBatch int
	retries  int
}

var watchFlags watchFlagValues

func init() {
	rootCmd.AddCommand(watchCmd)
	addTreeFlags(watchCmd, &watchFlags.treeFlagValues)
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", fstree.DefaultWatchDebounce,
		"Quiet period after the last change before rebuilding")
	watchCmd.Flags().IntVar(&watchFlags.maxBatch, "max-batch", 0,
		"Rebuild early once this many distinct paths changed (0 waits for the quiet period)")
	watchCmd.Flags().IntVar(&watchFlags.retries, "retries", fstree.DefaultRebuildRetries,
		"Retry a rebuild this often when entries vanish while it walks")
}

// treeWatch rebuilds one tree and publishes the outcome.
type treeWatch struct {
	root    string
	cfg     *config.Config
	flags   *treeFlagValues
	builder *builder.Builder
	retry   *retry.Executor
	watcher *watcher.Watcher
	logger  fstree.Logger
	publish func(t *filetree.FileTree, err error)

	mu sync.Mutex
}

// rebuild builds the tree again, re-syncs the watched directories and
// publishes the result. Concurrent calls run one after the other.
func (tw *treeWatch) rebuild(ctx context.Context) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	var t *filetree.FileTree
	err := tw.retry.Execute(ctx, func(ctx context.Context) error {
		var err error
		t, err = tw.builder.FromPath(ctx, tw.root)
		return err
	})
	if err == nil {
		err = tw.watcher.Sync(t)
	}
	tw.publish(t, err)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, &watchFlags.treeFlagValues)
	if err != nil {
		return err
	}
	if watchFlags.maxBatch < 0 {
		return fmt.Errorf("%w: --max-batch must not be negative, got %d", fstree.ErrInvalidConfig, watchFlags.maxBatch)
	}

	logger := newLogger(cmd)
	b, err := newBuilder(cfg, logger)
	if err != nil {
		return err
	}
	matcher, err := ignore.New(cfg.Build.Hidden, cfg.Build.Ignore...)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	initial, err := b.FromPath(ctx, args[0])
	if err != nil {
		return err
	}

	tw := &treeWatch{
		root:    args[0],
		cfg:     cfg,
		flags:   &watchFlags.treeFlagValues,
		builder: b,
		logger:  logger,
	}
	tw.retry = retry.NewExecutor(retry.NewWalkErrorClassifier(), retry.NewExponentialBackoff(watchFlags.retries)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Verbose("Rebuild attempt %d failed (%v), retrying in %v", attempt+1, err, delay)
		})

	tw.watcher, err = watcher.New(args[0], watcher.Config{
		Debounce: watchFlags.debounce,
		MaxBatch: watchFlags.maxBatch,
		Ignore:   matcher,
		Logger:   logger,
	}, func([]string) { tw.rebuild(ctx) })
	if err != nil {
		return err
	}
	defer tw.watcher.Close()

	if err := tw.watcher.Sync(initial); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !tui.IsInteractive() {
		tw.publish = printPublisher(out, tw)
		tw.publish(initial, nil)
		logger.Info("Watching %d directories below %s, press Ctrl+C to stop", tw.watcher.Watched(), args[0])
		return tw.watcher.Run(ctx)
	}

	model := tui.NewWatchModel(args[0], func() { go tw.rebuild(ctx) })
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(out))
	tw.publish = programPublisher(program, tw)

	go func() {
		if err := tw.watcher.Run(ctx); err != nil {
			logger.Error("watcher stopped: %v", err)
		}
	}()
	go tw.publish(initial, nil)

	_, err = program.Run()
	interrupted := ctx.Err() != nil
	cancel()
	if err != nil && interrupted {
		// Stopped by a signal; not a failure.
		return nil
	}
	return err
}

// printPublisher writes every successful rebuild to out and logs failures.
func printPublisher(out io.Writer, tw *treeWatch) func(*filetree.FileTree, error) {
	return func(t *filetree.FileTree, err error) {
		if err != nil {
			tw.logger.Error("rebuild of %s failed: %v", tw.root, err)
			return
		}
		if err := writeTree(out, tw.cfg, tw.flags, t); err != nil {
			tw.logger.Error("%v", err)
		}
	}
}

// programPublisher renders rebuilds into the interactive watch view.
func programPublisher(program *tea.Program, tw *treeWatch) func(*filetree.FileTree, error) {
	return func(t *filetree.FileTree, err error) {
		msg := tui.RebuildMsg{Err: err, At: time.Now()}
		if err == nil {
			var buf bytes.Buffer
			r := &render.Text{Options: render.Options{
				Color:     tw.cfg.Output.Color != config.ColorNever,
				Checksums: tw.cfg.Build.Checksum,
				Sizes:     tw.flags.sizes,
			}}
			if rerr := r.Render(&buf, t); rerr != nil {
				msg.Err = fmt.Errorf("failed to render tree: %w", rerr)
			}
			msg.View = buf.String()
			msg.Summary = render.Summary(t)
		}
		program.Send(msg)
	}
}
