package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/render/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	background string
}

// WithStyle sets the block style (default styles.Simple).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithBackground fills the canvas with a color, overriding the layout's.
func WithBackground(hex string) SVGOption { return func(r *svgRenderer) { r.background = hex } }

// RenderSVG draws every block of the layout. Padding blocks are written with
// zero fill opacity so the grid keeps its cell count.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(l, opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	if l.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(l.Title))
	}

	r.style.RenderDefs(&buf)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n", styles.EscapeXML(r.background))
	}

	for i, b := range l.Blocks {
		sb := toStyleBlock(i, b)
		if b.Glyph != "" {
			r.style.RenderGlyph(&buf, sb)
		} else {
			r.style.RenderBlock(&buf, sb)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(l layout.Layout, opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, background: l.Background}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func toStyleBlock(i int, b layout.Block) styles.Block {
	opacity := 1.0
	if !b.Colored {
		opacity = 0
	}
	return styles.Block{
		ID:       fmt.Sprintf("p%d-b%d", b.Panel, i),
		Category: b.Category,
		X:        b.X, Y: b.Y, W: b.Width, H: b.Height,
		CX: b.CenterX(), CY: b.CenterY(),
		Fill:    b.Color,
		Opacity: opacity,
		Glyph:   b.Glyph,
	}
}
