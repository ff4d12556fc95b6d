package chart

import (
	"testing"

	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/waffle"
)

func ptr[T any](v T) *T { return &v }

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Rows = 5
	base.Colors = []string{"#000", "#fff"}

	got := Merge(base, Override{
		Columns:          ptr(10),
		StartingLocation: ptr(waffle.NorthWest),
		Vertical:         ptr(true),
		PlotAnchor:       ptr(layout.AnchorC),
		IntervalRatioX:   ptr(0.0),
	})

	if got.Rows != 5 || got.Columns != 10 {
		t.Errorf("grid = %dx%d, want 5x10", got.Rows, got.Columns)
	}
	if got.StartingLocation != waffle.NorthWest || !got.Vertical {
		t.Errorf("traversal = %v vertical=%v", got.StartingLocation, got.Vertical)
	}
	if got.IntervalRatioX != 0 || got.IntervalRatioY != DefaultIntervalRatio {
		t.Errorf("intervals = %v, %v", got.IntervalRatioX, got.IntervalRatioY)
	}
	if got.PlotAnchor != layout.AnchorC {
		t.Errorf("PlotAnchor = %v", got.PlotAnchor)
	}

	got.Colors[0] = "#123"
	if base.Colors[0] != "#000" {
		t.Error("Merge should not share slices with its base")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		c := DefaultConfig()
		c.Rows = 5
		c.Values = NewValues(30, 16, 4)
		return c
	}

	tests := []struct {
		name   string
		modify func(*Config)
		code   errors.Code
	}{
		{"valid", func(*Config) {}, ""},
		{"empty values", func(c *Config) { c.Values = Values{} }, errors.ErrCodeInvalidValues},
		{"no dimension", func(c *Config) { c.Rows = 0 }, errors.ErrCodeInvalidGrid},
		{"negative rows", func(c *Config) { c.Rows = -2 }, errors.ErrCodeInvalidGrid},
		{"rows over limit", func(c *Config) { c.Rows = waffle.MaxCells + 1 }, errors.ErrCodeInvalidGrid},
		{"negative value", func(c *Config) { c.Values = NewValues(3, -1) }, errors.ErrCodeNegativeValue},
		{"labels mismatch", func(c *Config) { c.Labels = []string{"a"} }, errors.ErrCodeLengthMismatch},
		{"colors mismatch", func(c *Config) { c.Colors = []string{"red", "blue"} }, errors.ErrCodeLengthMismatch},
		{"characters mismatch", func(c *Config) { c.Characters = Characters{"a", "b"} }, errors.ErrCodeLengthMismatch},
		{"single character", func(c *Config) { c.Characters = Characters{"a"} }, ""},
		{"bad color", func(c *Config) { c.Colors = []string{"red", "nope", "blue"} }, errors.ErrCodeInvalidColor},
		{"unknown palette", func(c *Config) { c.CmapName = "viridis" }, errors.ErrCodeInvalidColor},
		{"zero aspect", func(c *Config) { c.BlockAspectRatio = 0 }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			err := c.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestCategoryColors(t *testing.T) {
	c := DefaultConfig()
	c.Values = NewValues(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)

	cols, err := c.CategoryColors()
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 10 {
		t.Fatalf("len = %d, want 10", len(cols))
	}
	// Set2 has eight colors, so the ninth wraps around.
	if cols[8].Hex() != cols[0].Hex() {
		t.Errorf("palette should cycle: %s != %s", cols[8].Hex(), cols[0].Hex())
	}

	c.Colors = []string{"red", "#00f", "00ff00", "black", "white", "gray", "navy", "teal", "pink", "#123456"}
	cols, err = c.CategoryColors()
	if err != nil {
		t.Fatal(err)
	}
	if cols[0].Hex() != "#ff0000" || cols[1].Hex() != "#0000ff" || cols[2].Hex() != "#00ff00" {
		t.Errorf("explicit colors = %v", HexColors(cols[:3]))
	}
}

func TestCategoryLabels(t *testing.T) {
	c := DefaultConfig()
	c.Values = Values{Labels: []string{"a", "b"}, Numbers: []float64{1, 2}}
	if got := c.CategoryLabels(); len(got) != 2 || got[0] != "a" {
		t.Errorf("CategoryLabels() = %v", got)
	}
	c.Labels = []string{"x", "y"}
	if got := c.CategoryLabels(); got[0] != "x" {
		t.Errorf("explicit labels should win: %v", got)
	}
}

func TestConfigGrid(t *testing.T) {
	c := DefaultConfig()
	c.Rows, c.Columns = 3, 4
	c.RoundingRule = waffle.Ceil
	c.BlockArrangingStyle = waffle.Snake
	c.StartingLocation = waffle.SouthEast

	g := c.Grid()
	want := waffle.Grid{Rows: 3, Columns: 4, Rounding: waffle.Ceil, Style: waffle.Snake, Location: waffle.SouthEast}
	if g != want {
		t.Errorf("Grid() = %+v, want %+v", g, want)
	}
}
