package chart

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/waffle"
)

// DefaultPalette is used when a chart names neither colors nor a palette.
const DefaultPalette = "Set2"

// palettes holds qualitative color maps by name.
var palettes = map[string][]string{
	"Set1":    {"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999"},
	"Set2":    {"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f", "#e5c494", "#b3b3b3"},
	"Set3":    {"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f"},
	"Pastel1": {"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6", "#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2"},
	"Pastel2": {"#b3e2cd", "#fdcdac", "#cbd5e8", "#f4cae4", "#e6f5c9", "#fff2ae", "#f1e2cc", "#cccccc"},
	"Dark2":   {"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e", "#e6ab02", "#a6761d", "#666666"},
	"Accent":  {"#7fc97f", "#beaed4", "#fdc086", "#ffff99", "#386cb0", "#f0027f", "#bf5b17", "#666666"},
	"Paired":  {"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99", "#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a", "#ffff99", "#b15928"},
	"tab10":   {"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"},
}

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"gray":    "#808080",
	"grey":    "#808080",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"navy":    "#000080",
	"teal":    "#008080",
	"olive":   "#808000",
	"maroon":  "#800000",
}

// Palettes returns the names of the built-in palettes.
func Palettes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette returns n colors from the named palette, cycling it when n exceeds
// its length.
func Palette(name string, n int) ([]colorful.Color, error) {
	hexes, ok := palettes[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidColor,
			"unknown colormap: %q (must be one of: %s)", name, strings.Join(Palettes(), ", "))
	}
	out := make([]colorful.Color, 0, n)
	for _, h := range waffle.Resize(hexes, n) {
		c, _ := colorful.Hex(h)
		out = append(out, c)
	}
	return out, nil
}

// ParseColor accepts #rgb, #rrggbb, the same without '#', or a basic color
// name.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") && (len(s) == 3 || len(s) == 6) {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color: %q", s)
	}
	return c, nil
}

// HexColors formats colors as #rrggbb strings.
func HexColors(cs []colorful.Color) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Hex()
	}
	return out
}
