package layout

import (
	"github.com/matzehuels/waffle/pkg/waffle"
)

// Defaults for Build.
const (
	DefaultIntervalRatio = 0.2
	DefaultAspectRatio   = 1.0
	DefaultMargin        = 10.0
	DefaultColor         = "#000000"
)

// Option configures Build.
type Option func(*builder)

type builder struct {
	intervalX, intervalY float64
	aspect               float64
	anchor               Anchor
	margin               float64
	colors               []string
	labels               []string
	glyphs               []string
	title                string
}

// WithSpacing sets the gap between blocks as a fraction of the block width
// (x) and height (y).
func WithSpacing(x, y float64) Option {
	return func(b *builder) { b.intervalX, b.intervalY = x, y }
}

// WithAspectRatio sets block width divided by block height.
func WithAspectRatio(r float64) Option { return func(b *builder) { b.aspect = r } }

// WithAnchor sets where the chart sits when it does not fill its panel.
func WithAnchor(a Anchor) Option { return func(b *builder) { b.anchor = a } }

// WithMargin sets the padding between the panel edge and the chart.
func WithMargin(m float64) Option { return func(b *builder) { b.margin = m } }

// WithColors sets one #rrggbb color per category.
func WithColors(hex []string) Option { return func(b *builder) { b.colors = hex } }

// WithLabels records category labels on the panel.
func WithLabels(labels []string) Option { return func(b *builder) { b.labels = labels } }

// WithGlyphs sets the character drawn for each category. An empty string
// keeps the square block.
func WithGlyphs(glyphs []string) Option { return func(b *builder) { b.glyphs = glyphs } }

// WithTitle records the chart title.
func WithTitle(t string) Option { return func(b *builder) { b.title = t } }

// Build lays out a planned chart on a width x height canvas.
//
// Blocks keep the requested aspect ratio and spacing and are scaled as large
// as the canvas allows; the anchor decides where the leftover space goes.
func Build(res *waffle.Result, width, height float64, opts ...Option) Layout {
	b := builder{
		intervalX: DefaultIntervalRatio,
		intervalY: DefaultIntervalRatio,
		aspect:    DefaultAspectRatio,
		anchor:    AnchorW,
		margin:    DefaultMargin,
	}
	for _, opt := range opts {
		opt(&b)
	}

	p, blocks := b.place(res, 0, 0, width, height)
	return Layout{
		Width:  width,
		Height: height,
		Title:  b.title,
		Panels: []Panel{p},
		Blocks: blocks,
	}
}

func (b *builder) place(res *waffle.Result, x0, y0, w, h float64) (Panel, []Block) {
	rows, cols := res.Grid.Rows, res.Grid.Columns
	p := Panel{
		X: x0, Y: y0, Width: w, Height: h,
		Rows: rows, Columns: cols,
		Title:   b.title,
		Labels:  b.labels,
		Colors:  b.colors,
		Dropped: res.Dropped(),
		Unused:  res.Unused(),
	}
	if rows <= 0 || cols <= 0 || b.aspect <= 0 {
		return p, nil
	}

	innerW, innerH := max(w-2*b.margin, 0), max(h-2*b.margin, 0)

	// Unit geometry: the chart is exactly one unit tall.
	by := 1 / (float64(rows) + float64(rows)*b.intervalY - b.intervalY)
	bx := b.aspect * by
	uw := float64(cols)*bx + float64(cols-1)*b.intervalX*bx
	uh := 1.0

	s := min(innerW/uw, innerH/uh)
	fx, fy := b.anchor.Fractions()
	left := x0 + b.margin + fx*(innerW-uw*s)
	bottom := y0 + b.margin + innerH - fy*(innerH-uh*s)

	blocks := make([]Block, 0, len(res.Assignments))
	for _, a := range res.Assignments {
		ux := (1 + b.intervalX) * bx * float64(a.Coord.Col)
		uy := (1 + b.intervalY) * by * float64(a.Coord.Row)
		blocks = append(blocks, Block{
			Category: a.Category,
			Col:      a.Coord.Col,
			Row:      a.Coord.Row,
			X:        left + ux*s,
			Y:        bottom - (uy+by)*s,
			Width:    bx * s,
			Height:   by * s,
			Color:    at(b.colors, a.Category, DefaultColor),
			Colored:  a.Colored,
			Glyph:    at(b.glyphs, a.Category, ""),
		})
	}
	return p, blocks
}

func at(s []string, i int, fallback string) string {
	if i >= 0 && i < len(s) && s[i] != "" {
		return s[i]
	}
	return fallback
}
