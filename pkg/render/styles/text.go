package styles

import (
	"bytes"
	"encoding/xml"
)

const glyphRatio = 0.9

// GlyphSize returns the font size that fits a character into a w x h block.
func GlyphSize(w, h float64) float64 { return glyphRatio * min(w, h) }

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
