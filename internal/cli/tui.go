package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/pipeline"
	"github.com/matzehuels/waffle/pkg/render/sink"
	"github.com/matzehuels/waffle/pkg/waffle"
)

var (
	previewLocations = []waffle.StartingLocation{waffle.SouthWest, waffle.NorthWest, waffle.NorthEast, waffle.SouthEast}
	previewStyles    = []waffle.ArrangingStyle{waffle.Normal, waffle.Snake, waffle.NewLine}
	previewRounding  = []waffle.RoundingRule{waffle.Nearest, waffle.Floor, waffle.Ceil}
)

// gridSettings are the traversal options the preview lets the user cycle.
type gridSettings struct {
	Location waffle.StartingLocation
	Vertical bool
	Style    waffle.ArrangingStyle
	Rounding waffle.RoundingRule
}

func (s gridSettings) String() string {
	direction := "horizontal"
	if s.Vertical {
		direction = "vertical"
	}
	return fmt.Sprintf("start %s · %s · %s · %s", s.Location, direction, s.Style, s.Rounding)
}

// apply returns a copy of fig with s set on every panel.
func (s gridSettings) apply(fig *chart.Figure) *chart.Figure {
	out := *fig
	out.Panels = make([]chart.Panel, len(fig.Panels))
	for i, p := range fig.Panels {
		p.Config = p.Config.Clone()
		p.Config.StartingLocation = s.Location
		p.Config.Vertical = s.Vertical
		p.Config.BlockArrangingStyle = s.Style
		p.Config.RoundingRule = s.Rounding
		out.Panels[i] = p
	}
	return &out
}

// next returns the element after cur in values, wrapping around.
func next[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// PreviewModel is the bubbletea model of the interactive chart preview.
type PreviewModel struct {
	fig      *chart.Figure
	opts     pipeline.Options
	Settings gridSettings
	chart    string
	err      error
}

// NewPreviewModel creates a preview starting from the options of the first
// panel of fig.
func NewPreviewModel(fig *chart.Figure, opts pipeline.Options) PreviewModel {
	cfg := fig.Panels[0].Config
	m := PreviewModel{
		fig:  fig,
		opts: opts,
		Settings: gridSettings{
			Location: cfg.StartingLocation,
			Vertical: cfg.Vertical,
			Style:    cfg.BlockArrangingStyle,
			Rounding: cfg.RoundingRule,
		},
	}
	m.refresh()
	return m
}

// refresh re-plans the figure with the current settings.
func (m *PreviewModel) refresh() {
	fig := m.Settings.apply(m.fig)
	plans, err := pipeline.Plan(context.Background(), fig)
	if err != nil {
		m.chart, m.err = "", err
		return
	}
	l, err := pipeline.GenerateLayout(fig, plans, m.opts)
	if err != nil {
		m.chart, m.err = "", err
		return
	}
	m.chart, m.err = sink.RenderTerminal(l), nil
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "l":
		m.Settings.Location = next(previewLocations, m.Settings.Location)
	case "d":
		m.Settings.Vertical = !m.Settings.Vertical
	case "s":
		m.Settings.Style = next(previewStyles, m.Settings.Style)
	case "r":
		m.Settings.Rounding = next(previewRounding, m.Settings.Rounding)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Waffle Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("l location  d direction  s style  r rounding  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
	} else {
		b.WriteString(m.chart)
	}

	b.WriteString("\n\n")
	b.WriteString(StyleNumber.Render(m.Settings.String()))
	b.WriteString("\n")
	return b.String()
}
