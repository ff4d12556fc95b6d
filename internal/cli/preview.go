package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/waffle/pkg/pipeline"
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var data dataFlags
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "preview [chart]",
		Short: "Explore traversal options interactively",
		Long: `Explore traversal options interactively.

The preview command draws the chart in the terminal and lets you cycle the
starting location, the direction, the block arranging style and the rounding
rule with single key presses. The chart file is not modified; the final
settings are printed on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], data, opts)
		},
	}

	data.register(cmd)
	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, data dataFlags, opts pipeline.Options) error {
	fig, err := loadFigure(input, data)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}
	c.Logger.Debug("starting preview", "panels", len(fig.Panels))

	final, err := tea.NewProgram(NewPreviewModel(fig, opts), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if m, ok := final.(PreviewModel); ok {
		printInfo("Last settings")
		printDetail("%s", m.Settings)
	}
	return nil
}
