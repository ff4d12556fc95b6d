package styles

import (
	"bytes"
	"fmt"
)

// Simple draws every block as a plain rectangle.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect id="%s" class="block cat-%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"%s/>`+"\n",
		EscapeXML(b.ID), b.Category, b.X, b.Y, b.W, b.H, EscapeXML(b.Fill), opacityAttr(b))
}

func (Simple) RenderGlyph(buf *bytes.Buffer, b Block) {
	renderGlyph(buf, b)
}

// Rounded draws blocks with corners rounded to a fifth of their short side.
type Rounded struct{}

func (Rounded) RenderDefs(buf *bytes.Buffer) {}

func (Rounded) RenderBlock(buf *bytes.Buffer, b Block) {
	r := CornerRadius(b.W, b.H)
	fmt.Fprintf(buf, `  <rect id="%s" class="block cat-%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="%s"%s/>`+"\n",
		EscapeXML(b.ID), b.Category, b.X, b.Y, b.W, b.H, r, r, EscapeXML(b.Fill), opacityAttr(b))
}

func (Rounded) RenderGlyph(buf *bytes.Buffer, b Block) {
	renderGlyph(buf, b)
}

// CornerRadius returns the corner radius Rounded uses for a w x h block.
func CornerRadius(w, h float64) float64 { return 0.2 * min(w, h) }

func renderGlyph(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <text id="%s" class="glyph cat-%d" x="%.2f" y="%.2f" font-size="%.2f" text-anchor="middle" dominant-baseline="central" fill="%s"%s>%s</text>`+"\n",
		EscapeXML(b.ID), b.Category, b.CX, b.CY, GlyphSize(b.W, b.H), EscapeXML(b.Fill), opacityAttr(b), EscapeXML(b.Glyph))
}

func opacityAttr(b Block) string {
	if b.Opacity >= 1 {
		return ""
	}
	return fmt.Sprintf(` fill-opacity="%.2f"`, max(b.Opacity, 0))
}
