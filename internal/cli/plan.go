package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/waffle"
)

// planCommand creates the plan command that prints block allocations.
func (c *CLI) planCommand() *cobra.Command {
	var (
		data   dataFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "plan [chart]",
		Short: "Show how many blocks each category gets",
		Long: `Show how many blocks each category gets.

The plan command allocates blocks for every panel of a chart file and prints
the grid size, the blocks per category and any blocks that did not fit.
With --json the full plan, including the ordered cell assignments, is written
to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd.Context(), args[0], data, asJSON)
		},
	}

	data.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")

	return cmd
}

// planOutput is the JSON form of one planned panel.
type planOutput struct {
	Key         string              `json:"key"`
	Labels      []string            `json:"labels,omitempty"`
	Allocation  waffle.Allocation   `json:"allocation"`
	Assignments []waffle.Assignment `json:"assignments"`
	Dropped     int                 `json:"dropped"`
	Unused      int                 `json:"unused"`
}

func (c *CLI) runPlan(ctx context.Context, input string, data dataFlags, asJSON bool) error {
	fig, err := loadFigure(input, data)
	if err != nil {
		return fmt.Errorf("load chart %s: %w", input, err)
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	plans, err := runner.Plan(ctx, fig)
	if err != nil {
		return err
	}

	if asJSON {
		out := make([]planOutput, len(plans))
		for i, p := range plans {
			out[i] = planOutput{
				Key:         fig.Panels[i].Key,
				Labels:      fig.Panels[i].Config.CategoryLabels(),
				Allocation:  p.Allocation,
				Assignments: p.Assignments,
				Dropped:     p.Dropped(),
				Unused:      p.Unused(),
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, p := range plans {
		if i > 0 {
			printNewline()
		}
		fmt.Println(planSummary(fig.Panels[i], p, len(plans) > 1))
	}
	return nil
}

// planSummary formats the allocation of one panel as a heading and a table.
func planSummary(panel chart.Panel, p *waffle.Result, showKey bool) string {
	var b strings.Builder

	heading := fmt.Sprintf("%d × %d grid", p.Grid.Rows, p.Grid.Columns)
	if showKey {
		heading = "Panel " + panel.Key + " · " + heading
	}
	if panel.Config.Title != "" {
		heading = panel.Config.Title + " · " + heading
	}
	b.WriteString(StyleTitle.Render(heading))
	b.WriteString("\n")

	b.WriteString(planTable(panel.Config, p).Render())
	b.WriteString("\n")

	if n := p.Dropped(); n > 0 {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("%d blocks did not fit the grid", n)))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d of %d cells used", len(p.Assignments), p.Allocation.Capacity())))
	return b.String()
}

func planTable(cfg chart.Config, p *waffle.Result) *table.Table {
	labels := cfg.CategoryLabels()
	assigned, colored := p.CountByCategory()

	rows := make([][]string, 0, len(cfg.Values.Numbers))
	for i, v := range cfg.Values.Numbers {
		label := strconv.Itoa(i + 1)
		if i < len(labels) {
			label = labels[i]
		}
		rows = append(rows, []string{
			label,
			strconv.FormatFloat(v, 'g', -1, 64),
			strconv.Itoa(p.Allocation.BlockPerCat[i]),
			strconv.Itoa(colored[i]),
			strconv.Itoa(assigned[i]),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "Value", "Blocks", "Drawn", "Cells").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return lipgloss.NewStyle().Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
		})
}
