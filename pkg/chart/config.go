// Package chart holds the user-facing description of waffle charts: chart
// options, multi-panel figures and their decoding from TOML, YAML and JSON
// files.
//
// A file's top-level options are defaults for every panel; each panel may
// override any of them:
//
//	rows = 5
//	cmap_name = "Pastel1"
//
//	[panels.211]
//	values = { Cats = 30, Dogs = 16, Fish = 4 }
//
//	[panels.212]
//	values = [12, 22, 20, 4]
//	starting_location = "NW"
//
// Mapping keys keep their file order in all three formats.
package chart

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/waffle"
)

// Default geometry of a chart.
const (
	DefaultIntervalRatio    = 0.2
	DefaultBlockAspectRatio = 1.0
)

// Config is the resolved option set of one chart.
type Config struct {
	Title               string                  `json:"title,omitempty"`
	Values              Values                  `json:"values"`
	Labels              []string                `json:"labels,omitempty"`
	Colors              []string                `json:"colors,omitempty"`
	CmapName            string                  `json:"cmap_name,omitempty"`
	Characters          Characters              `json:"characters,omitempty"`
	Rows                int                     `json:"rows,omitempty"`
	Columns             int                     `json:"columns,omitempty"`
	RoundingRule        waffle.RoundingRule     `json:"rounding_rule"`
	StartingLocation    waffle.StartingLocation `json:"starting_location"`
	Vertical            bool                    `json:"vertical"`
	BlockArrangingStyle waffle.ArrangingStyle   `json:"block_arranging_style"`
	IntervalRatioX      float64                 `json:"interval_ratio_x"`
	IntervalRatioY      float64                 `json:"interval_ratio_y"`
	BlockAspectRatio    float64                 `json:"block_aspect_ratio"`
	PlotAnchor          layout.Anchor           `json:"plot_anchor"`
}

// DefaultConfig returns the options every chart starts from.
func DefaultConfig() Config {
	return Config{
		CmapName:         DefaultPalette,
		IntervalRatioX:   DefaultIntervalRatio,
		IntervalRatioY:   DefaultIntervalRatio,
		BlockAspectRatio: DefaultBlockAspectRatio,
		PlotAnchor:       layout.AnchorW,
	}
}

// Override carries the options set explicitly in a file or request. Nil
// fields leave the underlying value untouched.
type Override struct {
	Title               *string                  `toml:"title" yaml:"title" json:"title,omitempty"`
	Values              *Values                  `toml:"values" yaml:"values" json:"values,omitempty"`
	Labels              []string                 `toml:"labels" yaml:"labels" json:"labels,omitempty"`
	Colors              []string                 `toml:"colors" yaml:"colors" json:"colors,omitempty"`
	CmapName            *string                  `toml:"cmap_name" yaml:"cmap_name" json:"cmap_name,omitempty"`
	Characters          Characters               `toml:"characters" yaml:"characters" json:"characters,omitempty"`
	Rows                *int                     `toml:"rows" yaml:"rows" json:"rows,omitempty"`
	Columns             *int                     `toml:"columns" yaml:"columns" json:"columns,omitempty"`
	RoundingRule        *waffle.RoundingRule     `toml:"rounding_rule" yaml:"rounding_rule" json:"rounding_rule,omitempty"`
	StartingLocation    *waffle.StartingLocation `toml:"starting_location" yaml:"starting_location" json:"starting_location,omitempty"`
	Vertical            *bool                    `toml:"vertical" yaml:"vertical" json:"vertical,omitempty"`
	BlockArrangingStyle *waffle.ArrangingStyle   `toml:"block_arranging_style" yaml:"block_arranging_style" json:"block_arranging_style,omitempty"`
	IntervalRatioX      *float64                 `toml:"interval_ratio_x" yaml:"interval_ratio_x" json:"interval_ratio_x,omitempty"`
	IntervalRatioY      *float64                 `toml:"interval_ratio_y" yaml:"interval_ratio_y" json:"interval_ratio_y,omitempty"`
	BlockAspectRatio    *float64                 `toml:"block_aspect_ratio" yaml:"block_aspect_ratio" json:"block_aspect_ratio,omitempty"`
	PlotAnchor          *layout.Anchor           `toml:"plot_anchor" yaml:"plot_anchor" json:"plot_anchor,omitempty"`
}

// Merge returns a copy of base with every field set in o applied on top.
// The result shares no slices with base or o.
func Merge(base Config, o Override) Config {
	c := base.Clone()
	if o.Title != nil {
		c.Title = *o.Title
	}
	if o.Values != nil {
		c.Values = o.Values.Clone()
	}
	if o.Labels != nil {
		c.Labels = slices.Clone(o.Labels)
	}
	if o.Colors != nil {
		c.Colors = slices.Clone(o.Colors)
	}
	if o.CmapName != nil {
		c.CmapName = *o.CmapName
	}
	if o.Characters != nil {
		c.Characters = slices.Clone(o.Characters)
	}
	if o.Rows != nil {
		c.Rows = *o.Rows
	}
	if o.Columns != nil {
		c.Columns = *o.Columns
	}
	if o.RoundingRule != nil {
		c.RoundingRule = *o.RoundingRule
	}
	if o.StartingLocation != nil {
		c.StartingLocation = *o.StartingLocation
	}
	if o.Vertical != nil {
		c.Vertical = *o.Vertical
	}
	if o.BlockArrangingStyle != nil {
		c.BlockArrangingStyle = *o.BlockArrangingStyle
	}
	if o.IntervalRatioX != nil {
		c.IntervalRatioX = *o.IntervalRatioX
	}
	if o.IntervalRatioY != nil {
		c.IntervalRatioY = *o.IntervalRatioY
	}
	if o.BlockAspectRatio != nil {
		c.BlockAspectRatio = *o.BlockAspectRatio
	}
	if o.PlotAnchor != nil {
		c.PlotAnchor = *o.PlotAnchor
	}
	return c
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Values = c.Values.Clone()
	out.Labels = slices.Clone(c.Labels)
	out.Colors = slices.Clone(c.Colors)
	out.Characters = slices.Clone(c.Characters)
	return out
}

// Grid returns the grid-shaping part of c.
func (c Config) Grid() waffle.Grid {
	return waffle.Grid{
		Rows:     c.Rows,
		Columns:  c.Columns,
		Rounding: c.RoundingRule,
		Style:    c.BlockArrangingStyle,
		Location: c.StartingLocation,
		Vertical: c.Vertical,
	}
}

// CategoryLabels returns the explicit labels, falling back to the keys of
// labeled values. It returns nil for unlabeled charts.
func (c Config) CategoryLabels() []string {
	if c.Labels != nil {
		return c.Labels
	}
	return c.Values.Labels
}

// CategoryColors returns one color per category: the explicit colors when set,
// otherwise the palette cycled to the number of values.
func (c Config) CategoryColors() ([]colorful.Color, error) {
	if len(c.Colors) == 0 {
		name := c.CmapName
		if name == "" {
			name = DefaultPalette
		}
		return Palette(name, c.Values.Len())
	}
	out := make([]colorful.Color, len(c.Colors))
	for i, s := range c.Colors {
		col, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out[i] = col
	}
	return out, nil
}

// Validate reports the first configuration problem of c.
func (c Config) Validate() error {
	n := c.Values.Len()
	if n == 0 {
		return errors.New(errors.ErrCodeInvalidValues, "values cannot be empty")
	}
	if c.Rows < 0 || c.Columns < 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "rows and columns cannot be negative")
	}
	if c.Rows == 0 && c.Columns == 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "at least one of rows or columns is required")
	}
	if c.Rows > waffle.MaxCells || c.Columns > waffle.MaxCells {
		return errors.New(errors.ErrCodeInvalidGrid, "rows and columns cannot exceed %d", waffle.MaxCells)
	}
	for i, v := range c.Values.Numbers {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidValues, "value %d is not a finite number", i)
		}
		if v < 0 {
			return errors.New(errors.ErrCodeNegativeValue, "negative value not acceptable (category %d)", i)
		}
	}
	if c.Labels != nil && len(c.Labels) != n {
		return errors.New(errors.ErrCodeLengthMismatch, "length of labels doesn't match the values")
	}
	if len(c.Colors) > 0 && len(c.Colors) != n {
		return errors.New(errors.ErrCodeLengthMismatch, "length of colors doesn't match the values")
	}
	if len(c.Characters) > 1 && len(c.Characters) != n {
		return errors.New(errors.ErrCodeLengthMismatch, "length of characters doesn't match the values")
	}
	if c.IntervalRatioX < 0 || c.IntervalRatioY < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "interval ratios cannot be negative")
	}
	if c.BlockAspectRatio <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "block aspect ratio must be positive")
	}
	if _, err := c.CategoryColors(); err != nil {
		return err
	}
	return nil
}
