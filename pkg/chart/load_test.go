package chart

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/render/layout"
	"github.com/matzehuels/waffle/pkg/waffle"
)

const tomlFigure = `
title = "Pets"
rows = 5
cmap_name = "Pastel1"

[figure]
width = 640
background = "#fafafa"

[panels.211]
values = { Zebra = 30, Ant = 16, Mole = 4 }
starting_location = "NW"

[panels.212]
values = [12, 22, 20, 4]
block_arranging_style = "snake"
plot_anchor = "C"
`

const yamlFigure = `
title: Pets
rows: 5
cmap_name: Pastel1
figure:
  width: 640
  background: "#fafafa"
panels:
  211:
    values:
      Zebra: 30
      Ant: 16
      Mole: 4
    starting_location: NW
  212:
    values: [12, 22, 20, 4]
    block_arranging_style: snake
    plot_anchor: C
`

const jsonFigure = `{
  "title": "Pets",
  "rows": 5,
  "cmap_name": "Pastel1",
  "figure": {"width": 640, "background": "#fafafa"},
  "panels": {
    "211": {"values": {"Zebra": 30, "Ant": 16, "Mole": 4}, "starting_location": "NW"},
    "212": {"values": [12, 22, 20, 4], "block_arranging_style": "snake", "plot_anchor": "C"}
  }
}`

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{FormatTOML, tomlFigure},
		{FormatYAML, yamlFigure},
		{FormatJSON, jsonFigure},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			fig, err := Load([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if fig.Width != 640 || fig.Background != "#fafafa" {
				t.Errorf("figure options = %+v", fig.FigureOptions)
			}
			if rows, cols := fig.Grid(); rows != 2 || cols != 1 {
				t.Errorf("Grid() = %dx%d, want 2x1", rows, cols)
			}
			if len(fig.Panels) != 2 {
				t.Fatalf("panels = %d, want 2", len(fig.Panels))
			}

			top, bottom := fig.Panels[0].Config, fig.Panels[1].Config
			if top.Title != "Pets" || top.Rows != 5 || top.CmapName != "Pastel1" {
				t.Errorf("defaults not inherited: %+v", top)
			}
			if !slices.Equal(top.Values.Labels, []string{"Zebra", "Ant", "Mole"}) {
				t.Errorf("labels = %v, want file order", top.Values.Labels)
			}
			if top.StartingLocation != waffle.NorthWest || bottom.StartingLocation != waffle.SouthWest {
				t.Errorf("locations = %v, %v", top.StartingLocation, bottom.StartingLocation)
			}
			if bottom.BlockArrangingStyle != waffle.Snake || bottom.PlotAnchor != layout.AnchorC {
				t.Errorf("bottom panel = %+v", bottom)
			}
			if !slices.Equal(bottom.Values.Numbers, []float64{12, 22, 20, 4}) {
				t.Errorf("bottom values = %v", bottom.Values.Numbers)
			}
		})
	}
}

func TestLoadSingleChart(t *testing.T) {
	fig, err := Load([]byte(`values = [48, 46, 3]
columns = 20
rounding_rule = "floor"
characters = "●"
`), FormatTOML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(fig.Panels) != 1 || fig.Panels[0].Position != SinglePanel {
		t.Fatalf("panels = %+v", fig.Panels)
	}
	c := fig.Panels[0].Config
	if c.RoundingRule != waffle.Floor || c.Columns != 20 || c.Characters.For(2) != "●" {
		t.Errorf("config = %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
		code   errors.Code
	}{
		{"unknown format", "ini", `rows = 5`, errors.ErrCodeInvalidFormat},
		{"syntax", FormatJSON, `{"rows": `, errors.ErrCodeInvalidInput},
		{"unknown option", FormatJSON, `{"rows": 5, "values": [1], "colour": "red"}`, errors.ErrCodeInvalidInput},
		{"unknown toml option", FormatTOML, "rows = 5\nvalues = [1]\ncolour = \"red\"\n", errors.ErrCodeInvalidInput},
		{"bad location", FormatJSON, `{"rows": 5, "values": [1], "starting_location": "X"}`, errors.ErrCodeInvalidLocation},
		{"no values", FormatYAML, "rows: 5\n", errors.ErrCodeInvalidValues},
		{"bad panel key", FormatJSON, `{"rows": 5, "panels": {"31": {"values": [1]}}}`, errors.ErrCodeInvalidPanel},
		{"mixed panel grids", FormatJSON, `{"rows": 5, "panels": {"211": {"values": [1]}, "121": {"values": [1]}}}`, errors.ErrCodeInvalidPanel},
		{"panel validation", FormatJSON, `{"rows": 5, "panels": {"121": {"values": [1]}, "122": {"values": [-1]}}}`, errors.ErrCodeNegativeValue},
		{"bad background", FormatJSON, `{"rows": 5, "values": [1], "figure": {"background": "zz"}}`, errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "pets.yml")
	if err := os.WriteFile(path, []byte(yamlFigure), 0o644); err != nil {
		t.Fatal(err)
	}
	fig, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(fig.Panels) != 2 {
		t.Errorf("panels = %d, want 2", len(fig.Panels))
	}

	if _, err := LoadFile(filepath.Join(dir, "pets.csv")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("LoadFile(.csv) = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("LoadFile(missing) = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		key     string
		want    Position
		wantErr bool
	}{
		{"311", Position{3, 1, 1}, false},
		{"224", Position{2, 2, 4}, false},
		{"4,3,12", Position{4, 3, 12}, false},
		{" 1, 1, 1 ", Position{1, 1, 1}, false},
		{"315", Position{}, true},
		{"301", Position{}, true},
		{"31", Position{}, true},
		{"a11", Position{}, true},
		{"1,2", Position{}, true},
	}

	for _, tt := range tests {
		got, err := ParsePosition(tt.key)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePosition(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePosition(%q) = %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestPositionCell(t *testing.T) {
	p := Position{Rows: 2, Columns: 3, Index: 5}
	if r, c := p.Cell(); r != 1 || c != 1 {
		t.Errorf("Cell() = (%d, %d), want (1, 1)", r, c)
	}
	if p.String() != "235" {
		t.Errorf("String() = %q", p.String())
	}
	if s := (Position{Rows: 4, Columns: 3, Index: 12}).String(); s != "4,3,12" {
		t.Errorf("String() = %q", s)
	}
}
