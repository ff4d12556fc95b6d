package sink

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/waffle/pkg/render/layout"
)

const (
	terminalBlock = "██"
	terminalEmpty = "  "
	panelGap      = "    "
)

var terminalTitle = lipgloss.NewStyle().Bold(true)

// RenderTerminal draws the layout as colored character cells, two columns per
// block. Panels keep their figure arrangement.
func RenderTerminal(l layout.Layout) string {
	byRow := make(map[int][]int)
	for i, p := range l.Panels {
		byRow[p.Row] = append(byRow[p.Row], i)
	}
	rows := make([]int, 0, len(byRow))
	for r := range byRow {
		rows = append(rows, r)
	}
	sort.Ints(rows)

	var lines []string
	if l.Title != "" {
		lines = append(lines, terminalTitle.Render(l.Title), "")
	}
	for _, r := range rows {
		panels := byRow[r]
		sort.Slice(panels, func(i, j int) bool { return l.Panels[panels[i]].Col < l.Panels[panels[j]].Col })

		var parts []string
		for k, idx := range panels {
			if k > 0 {
				parts = append(parts, panelGap)
			}
			parts = append(parts, renderTerminalPanel(l, idx))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTerminalPanel(l layout.Layout, idx int) string {
	p := l.Panels[idx]
	cells := make(map[[2]int]layout.Block)
	for _, b := range l.PanelBlocks(idx) {
		cells[[2]int{b.Col, b.Row}] = b
	}

	var sb strings.Builder
	if p.Title != "" && p.Title != l.Title {
		sb.WriteString(terminalTitle.Render(p.Title))
		sb.WriteByte('\n')
	}
	for row := p.Rows - 1; row >= 0; row-- {
		for col := range p.Columns {
			b, ok := cells[[2]int{col, row}]
			if !ok || !b.Colored {
				sb.WriteString(terminalEmpty)
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(terminalCell(b)))
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// terminalCell pads a glyph to the two columns a block takes.
func terminalCell(b layout.Block) string {
	if b.Glyph == "" {
		return terminalBlock
	}
	return runewidth.FillRight(runewidth.Truncate(b.Glyph, 2, ""), 2)
}
