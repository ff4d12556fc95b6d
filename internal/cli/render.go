package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/pipeline"
	"github.com/matzehuels/waffle/pkg/render/sink"
)

// renderFlags holds the command-line flags of render and watch.
type renderFlags struct {
	formats  string
	output   string
	noCache  bool
	terminal bool
	data     dataFlags
}

func (f *renderFlags) register(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&f.terminal, "terminal", "t", false, "draw the chart in the terminal instead of writing files")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG pixel density")
	registerCanvasFlags(cmd, opts)
	f.data.register(cmd)
}

// renderCommand creates the render command: chart file straight to output.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Render a chart to SVG, PNG, PDF or JSON",
		Long: `Render a chart to SVG, PNG, PDF or JSON.

The render command runs the complete pipeline: it plans every panel of the
chart file, lays the blocks out on the canvas and writes one file per
requested format. Values can be taken from a CSV or XLSX table with --data.

Use --terminal to draw the chart with colored characters instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(flags.formats)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, flags)
		},
	}

	flags.register(cmd, &opts)
	return cmd
}

// runRender executes the pipeline for one chart file and writes the results.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, flags renderFlags) error {
	fig, err := loadFigure(input, flags.data)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.NoCache = flags.noCache
	return c.renderOnce(ctx, runner, fig, input, opts, flags)
}

// renderOnce renders fig with an existing runner.
func (c *CLI) renderOnce(ctx context.Context, runner *pipeline.Runner, fig *chart.Figure, input string, opts pipeline.Options, flags renderFlags) error {
	if flags.terminal {
		l, err := runner.Layout(ctx, fig, opts)
		if err != nil {
			return fmt.Errorf("compute layout: %w", err)
		}
		fmt.Println(sink.RenderTerminal(l))
		return nil
	}

	spinner := newSpinnerWithContext(ctx, "Rendering chart...")
	spinner.Start()

	result, err := runner.Execute(ctx, fig, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    flags.output,
		panels:    result.Stats.Panels,
		blocks:    result.Stats.Blocks,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	})
}
