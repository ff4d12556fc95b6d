package sink

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/render/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale   float64
	rounded bool
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGStyle draws blocks the way the named style does in SVG.
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) { _, r.rounded = s.(styles.Rounded) }
}

// RenderPNG rasterizes the layout. Glyphs use a fixed bitmap font scaled to
// the block, so only ASCII characters are drawn faithfully.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive")
	}

	w, h := int(l.Width*r.scale+0.5), int(l.Height*r.scale+0.5)
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot rasterize a %gx%g layout", l.Width, l.Height)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	if l.Background != "" {
		bg, err := parseHex(l.Background)
		if err != nil {
			return nil, err
		}
		dc.SetColor(bg)
		dc.Clear()
	}

	face := basicfont.Face7x13
	dc.SetFontFace(face)
	lineHeight := float64(face.Height)

	for _, b := range l.Blocks {
		if !b.Colored {
			continue
		}
		c, err := parseHex(b.Color)
		if err != nil {
			return nil, err
		}
		dc.SetColor(c)

		if b.Glyph != "" && drawable(b.Glyph) {
			k := styles.GlyphSize(b.Width, b.Height) / lineHeight
			dc.Push()
			dc.ScaleAbout(k, k, b.CenterX(), b.CenterY())
			dc.DrawStringAnchored(b.Glyph, b.CenterX(), b.CenterY(), 0.5, 0.5)
			dc.Pop()
			continue
		}

		if r.rounded {
			dc.DrawRoundedRectangle(b.X, b.Y, b.Width, b.Height, styles.CornerRadius(b.Width, b.Height))
		} else {
			dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		}
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// drawable reports whether s is printable ASCII, the range covered by the
// bitmap face.
func drawable(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}

func parseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color: %q", s)
	}
	return c, nil
}
