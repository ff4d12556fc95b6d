package pipeline

import (
	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/waffle"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout places the planned panels of fig on one canvas. plans must
// be in figure order, as Plan returns them.
func GenerateLayout(fig *chart.Figure, plans []*waffle.Result, opts Options) (layout.Layout, error) {
	opts.SetLayoutDefaults()
	w, h := opts.CanvasSize(fig)
	rows, cols := fig.Grid()
	cw, ch := layout.CellSize(w, h, rows, cols)

	cells := make([]layout.Cell, 0, len(fig.Panels))
	for i, p := range fig.Panels {
		panelOpts, err := panelOptions(p.Config)
		if err != nil {
			return layout.Layout{}, panelError(fig, p.Key, err)
		}
		row, col := p.Position.Cell()
		opts.Logger.Debug("placing panel", "panel", p.Key, "row", row, "col", col, "width", cw, "height", ch)
		cells = append(cells, layout.Cell{
			Row:    row,
			Col:    col,
			Layout: layout.Build(plans[i], cw, ch, panelOpts...),
		})
	}

	l := layout.Compose(w, h, rows, cols, cells)
	l.Style = opts.Style
	l.Title = fig.Defaults.Title

	bg, err := background(fig, opts)
	if err != nil {
		return layout.Layout{}, err
	}
	l.Background = bg
	return l, nil
}

// panelOptions translates chart options into layout options.
func panelOptions(cfg chart.Config) ([]layout.Option, error) {
	colors, err := cfg.CategoryColors()
	if err != nil {
		return nil, err
	}
	opts := []layout.Option{
		layout.WithSpacing(cfg.IntervalRatioX, cfg.IntervalRatioY),
		layout.WithAspectRatio(cfg.BlockAspectRatio),
		layout.WithAnchor(cfg.PlotAnchor),
		layout.WithColors(chart.HexColors(colors)),
		layout.WithLabels(cfg.CategoryLabels()),
		layout.WithTitle(cfg.Title),
	}
	if len(cfg.Characters) > 0 {
		glyphs := make([]string, cfg.Values.Len())
		for i := range glyphs {
			glyphs[i] = cfg.Characters.For(i)
		}
		opts = append(opts, layout.WithGlyphs(glyphs))
	}
	return opts, nil
}

// background resolves the canvas color to #rrggbb: the option, then the
// figure, then white.
func background(fig *chart.Figure, opts Options) (string, error) {
	name := opts.Background
	if name == "" {
		name = fig.Background
	}
	if name == "" {
		return DefaultBackground, nil
	}
	c, err := chart.ParseColor(name)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
