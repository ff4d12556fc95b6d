// Package cli implements the waffle command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/waffle/pkg/buildinfo"
	"github.com/matzehuels/waffle/pkg/cache"
	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/pipeline"
	"github.com/matzehuels/waffle/pkg/source"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "waffle"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Waffle lays out and renders waffle charts",
		Long:         `Waffle turns category values into waffle charts: grids of blocks where each category colors a share of the cells proportional to its value.`,
		Version:      buildinfo.Read().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.planCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	registerCompletions(root)

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Options Helpers
// =============================================================================

// setCLIDefaults applies the pipeline defaults the flags start from.
func setCLIDefaults(opts *pipeline.Options) {
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}
	return parts
}

// =============================================================================
// Chart Input
// =============================================================================

// dataFlags selects an external table whose values replace the chart's.
type dataFlags struct {
	path   string
	sheet  string
	labels string
	values string
}

func (d *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.path, "data", "", "read values from a .csv or .xlsx file")
	cmd.Flags().StringVar(&d.sheet, "sheet", "", "worksheet to read (xlsx, default: first sheet)")
	cmd.Flags().StringVar(&d.labels, "label-column", source.DefaultLabelColumn, "column holding category labels")
	cmd.Flags().StringVar(&d.values, "value-column", source.DefaultValueColumn, "column holding category values")
}

// loadFigure reads a chart file and applies the data source, if any.
func loadFigure(path string, data dataFlags) (*chart.Figure, error) {
	fig, err := chart.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if data.path == "" {
		return fig, nil
	}

	values, err := source.ReadValues(data.path, source.Options{
		Sheet:       data.sheet,
		LabelColumn: data.labels,
		ValueColumn: data.values,
	})
	if err != nil {
		return nil, err
	}
	return withValues(fig, values)
}

// withValues replaces the values of every panel of fig. Labels follow the
// new values.
func withValues(fig *chart.Figure, values chart.Values) (*chart.Figure, error) {
	fig.Defaults.Values = values.Clone()
	fig.Defaults.Labels = nil
	for i := range fig.Panels {
		cfg := fig.Panels[i].Config
		cfg.Values = values.Clone()
		cfg.Labels = nil
		if err := cfg.Validate(); err != nil {
			if len(fig.Panels) > 1 {
				return nil, errors.New(errors.GetCode(err), "panel %s: %s", fig.Panels[i].Key, errors.UserMessage(err))
			}
			return nil, err
		}
		fig.Panels[i].Config = cfg
	}
	return fig, nil
}
