package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waffle/pkg/pipeline"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/render/styles"
)

// registerCanvasFlags binds the layout options shared by every command that
// computes a layout.
func registerCanvasFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width (default: chart file, then 640)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height (default: chart file, then 480)")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color (default: chart file, then white)")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "block style: "+strings.Join(styles.Names, ", "))
}

// layoutCommand creates the layout command for computing chart layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		data    dataFlags
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "layout [chart]",
		Short: "Compute the block layout of a chart",
		Long: `Compute the block layout of a chart.

The layout command takes a chart file (TOML, YAML or JSON) and computes the
position and color of every block. The output is a layout.json file (same
format as 'render -f json') that can be rendered to SVG/PNG/PDF using the
'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.ValidateForLayout(); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], data, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	registerCanvasFlags(cmd, &opts)
	data.register(cmd)

	return cmd
}

// runLayout loads the chart, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, data dataFlags, opts pipeline.Options, output string, noCache bool) error {
	fig, err := loadFigure(input, data)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.NoCache = noCache

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, fig, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}

	if err := layout.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Panels), len(l.Blocks), cacheHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}
