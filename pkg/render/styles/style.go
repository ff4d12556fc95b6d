// Package styles defines how waffle blocks are drawn in SVG.
//
// A [Style] writes the markup for one block at a time; the SVG sink decides
// which blocks to draw and in which order. Two styles ship with waffle:
//
//   - [Simple]: plain square blocks
//   - [Rounded]: blocks with rounded corners
//
// Blocks that carry a glyph are drawn as a centered character instead of a
// shape via [Style.RenderGlyph].
package styles

import (
	"bytes"
	"strings"

	"github.com/matzehuels/waffle/pkg/errors"
)

// Style names.
const (
	NameSimple  = "simple"
	NameRounded = "rounded"
)

// Names lists the built-in styles.
var Names = []string{NameSimple, NameRounded}

// Style defines the visual appearance of a waffle chart.
type Style interface {
	// RenderDefs writes SVG <defs> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderBlock writes the shape of a single block.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderGlyph writes a block drawn as a character.
	RenderGlyph(buf *bytes.Buffer, b Block)
}

// Block contains all data needed to draw one cell.
type Block struct {
	ID         string  // Unique element id
	Category   int     // Category index, used as CSS class suffix
	X, Y, W, H float64 // Top-left corner and size
	CX, CY     float64 // Center
	Fill       string  // #rrggbb
	Opacity    float64 // 0 for padding cells
	Glyph      string  // Character drawn instead of a shape
}

// ByName returns the built-in style with the given name. An empty name
// selects Simple.
func ByName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameSimple:
		return Simple{}, nil
	case NameRounded:
		return Rounded{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle,
		"invalid style: %q (must be one of: %s)", name, strings.Join(Names, ", "))
}
