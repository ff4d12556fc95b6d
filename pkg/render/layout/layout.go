// Package layout turns block plans into pixel geometry.
//
// A [Layout] is the serializable hand-off between planning and drawing: every
// sink (SVG, PNG, PDF, terminal) renders from it, and `waffle layout` writes it
// to disk so charts can be re-rendered without re-planning.
//
// Coordinates are canvas coordinates: the origin is the top-left corner and y
// grows downwards. Grid rows still count from the bottom, so row 0 is drawn at
// the bottom of its panel.
package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// Layout is a complete figure ready to draw.
type Layout struct {
	Width      float64 `json:"width" bson:"width"`
	Height     float64 `json:"height" bson:"height"`
	Background string  `json:"background,omitempty" bson:"background,omitempty"`
	Style      string  `json:"style,omitempty" bson:"style,omitempty"`
	Title      string  `json:"title,omitempty" bson:"title,omitempty"`
	Panels     []Panel `json:"panels" bson:"panels"`
	Blocks     []Block `json:"blocks" bson:"blocks"`
}

// Panel describes the box one chart occupies and the grid drawn inside it.
type Panel struct {
	Index   int      `json:"index" bson:"index"`
	Row     int      `json:"row" bson:"row"`
	Col     int      `json:"col" bson:"col"`
	X       float64  `json:"x" bson:"x"`
	Y       float64  `json:"y" bson:"y"`
	Width   float64  `json:"width" bson:"width"`
	Height  float64  `json:"height" bson:"height"`
	Rows    int      `json:"rows" bson:"rows"`
	Columns int      `json:"columns" bson:"columns"`
	Title   string   `json:"title,omitempty" bson:"title,omitempty"`
	Labels  []string `json:"labels,omitempty" bson:"labels,omitempty"`
	Colors  []string `json:"colors" bson:"colors"`
	Dropped int      `json:"dropped,omitempty" bson:"dropped,omitempty"`
	Unused  int      `json:"unused,omitempty" bson:"unused,omitempty"`
}

// Block is one positioned grid cell.
type Block struct {
	Panel    int     `json:"panel" bson:"panel"`
	Category int     `json:"category" bson:"category"`
	Col      int     `json:"col" bson:"col"`
	Row      int     `json:"row" bson:"row"`
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Color    string  `json:"color" bson:"color"`
	Colored  bool    `json:"colored" bson:"colored"`
	Glyph    string  `json:"glyph,omitempty" bson:"glyph,omitempty"`
}

// CenterX returns the horizontal center of the block.
func (b Block) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center of the block.
func (b Block) CenterY() float64 { return b.Y + b.Height/2 }

// PanelBlocks returns the blocks of panel i in drawing order.
func (l Layout) PanelBlocks(i int) []Block {
	var out []Block
	for _, b := range l.Blocks {
		if b.Panel == i {
			out = append(out, b)
		}
	}
	return out
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and checks that it can
// be drawn.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, fmt.Errorf("layout must have a positive size, got %gx%g", l.Width, l.Height)
	}
	if len(l.Panels) == 0 {
		return Layout{}, fmt.Errorf("layout must contain at least one panel")
	}
	for i, b := range l.Blocks {
		if b.Panel < 0 || b.Panel >= len(l.Panels) {
			return Layout{}, fmt.Errorf("block %d refers to missing panel %d", i, b.Panel)
		}
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
