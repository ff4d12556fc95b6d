package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/waffle/pkg/pipeline"
)

const debounceWindow = 250 * time.Millisecond

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// watchCommand creates the watch command that re-renders on file changes.
func (c *CLI) watchCommand() *cobra.Command {
	var flags renderFlags
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "watch [chart]",
		Short: "Re-render a chart whenever it changes",
		Long: `Re-render a chart whenever it changes.

The watch command renders the chart once and then keeps watching the chart
file, and the --data file if one is given. Every save triggers a new render.
Errors are logged and watching continues. Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(flags.formats)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), args[0], opts, flags)
		},
	}

	flags.register(cmd, &opts)
	return cmd
}

func (c *CLI) runWatch(ctx context.Context, input string, opts pipeline.Options, flags renderFlags) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.NoCache = flags.noCache

	targets := []string{input}
	if flags.data.path != "" {
		targets = append(targets, flags.data.path)
	}
	for i, t := range targets {
		abs, err := filepath.Abs(t)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", t, err)
		}
		targets[i] = filepath.Clean(abs)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch files: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files on save, so the directories are watched too.
	dirs := make(map[string]bool)
	for _, t := range targets {
		if dir := filepath.Dir(t); !dirs[dir] {
			dirs[dir] = true
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
		}
	}

	render := func() {
		prog := newProgress(c.Logger)
		fig, err := loadFigure(input, flags.data)
		if err == nil {
			if flags.terminal {
				fmt.Print(clearScreen)
			}
			err = c.renderOnce(ctx, runner, fig, input, opts, flags)
		}
		if err != nil {
			c.Logger.Error("render failed", "file", input, "error", err)
			return
		}
		prog.done("rendered chart", "file", input)
	}

	changes := make(chan string, 1)
	go watchFiles(ctx, c.Logger, watcher, targets, debounceWindow, changes)

	render()
	c.Logger.Info("watching for changes", "files", len(targets))
	for {
		select {
		case <-ctx.Done():
			return nil
		case name := <-changes:
			c.Logger.Debug("file changed", "file", name)
			render()
		}
	}
}

// watchFiles forwards changes to targets on changes, coalescing events that
// arrive within window of each other. It returns when ctx is done or the
// watcher is closed.
func watchFiles(ctx context.Context, logger *log.Logger, watcher *fsnotify.Watcher, targets []string, window time.Duration, changes chan<- string) {
	watched := make(map[string]bool, len(targets))
	for _, t := range targets {
		watched[t] = true
	}

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
		last    string
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			name := filepath.Clean(event.Name)
			if !watched[name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			last = name
			if timer == nil {
				timer = time.NewTimer(window)
				timerCh = timer.C
			} else {
				timer.Reset(window)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil
			select {
			case changes <- last:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}
