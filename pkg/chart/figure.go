package chart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/waffle/pkg/errors"
)

// Position locates a panel on the figure grid. Index counts from 1, row by
// row starting at the top-left cell.
type Position struct {
	Rows    int `json:"rows" bson:"rows"`
	Columns int `json:"columns" bson:"columns"`
	Index   int `json:"index" bson:"index"`
}

// SinglePanel is the position of a figure's only chart.
var SinglePanel = Position{Rows: 1, Columns: 1, Index: 1}

// ParsePosition accepts a three digit code such as "311" (3 rows, 1 column,
// first panel) or the comma separated form "3,1,1" for larger grids.
func ParsePosition(key string) (Position, error) {
	key = strings.TrimSpace(key)

	var parts []string
	switch {
	case strings.Contains(key, ","):
		parts = strings.Split(key, ",")
	case len(key) == 3:
		parts = []string{key[:1], key[1:2], key[2:]}
	default:
		return Position{}, errors.New(errors.ErrCodeInvalidPanel,
			"invalid panel key: %q (use a three digit code like \"311\" or \"rows,columns,index\")", key)
	}
	if len(parts) != 3 {
		return Position{}, errors.New(errors.ErrCodeInvalidPanel, "invalid panel key: %q", key)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Position{}, errors.Wrap(errors.ErrCodeInvalidPanel, err, "invalid panel key: %q", key)
		}
		nums[i] = n
	}
	pos := Position{Rows: nums[0], Columns: nums[1], Index: nums[2]}
	return pos, pos.Validate()
}

// Validate checks that the index falls inside the grid.
func (p Position) Validate() error {
	if p.Rows < 1 || p.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidPanel, "panel grid %dx%d must have at least one cell", p.Rows, p.Columns)
	}
	if p.Index < 1 || p.Index > p.Rows*p.Columns {
		return errors.New(errors.ErrCodeInvalidPanel,
			"panel index %d outside a %dx%d grid", p.Index, p.Rows, p.Columns)
	}
	return nil
}

// Cell returns the zero-based row (from the top) and column of the panel.
func (p Position) Cell() (row, col int) {
	return (p.Index - 1) / p.Columns, (p.Index - 1) % p.Columns
}

func (p Position) String() string {
	if p.Rows < 10 && p.Columns < 10 && p.Index < 10 {
		return fmt.Sprintf("%d%d%d", p.Rows, p.Columns, p.Index)
	}
	return fmt.Sprintf("%d,%d,%d", p.Rows, p.Columns, p.Index)
}

// Panel is one chart of a figure with its options resolved.
type Panel struct {
	Key      string
	Position Position
	Config   Config
}

// FigureOptions are the canvas options of a figure.
type FigureOptions struct {
	Width      float64 `toml:"width" yaml:"width" json:"width,omitempty"`
	Height     float64 `toml:"height" yaml:"height" json:"height,omitempty"`
	Background string  `toml:"background" yaml:"background" json:"background,omitempty"`
}

// Figure is a set of charts drawn on one canvas.
type Figure struct {
	FigureOptions
	Defaults Config
	Panels   []Panel
}

// File is the decoded form of a chart file. Top-level options apply to every
// panel; a file without panels describes a single chart.
type File struct {
	Override `yaml:",inline"`
	Figure   FigureOptions       `toml:"figure" yaml:"figure" json:"figure,omitempty"`
	Panels   map[string]Override `toml:"panels" yaml:"panels" json:"panels,omitempty"`
}

// Build resolves the file into a validated figure.
func (f File) Build() (*Figure, error) {
	defaults := Merge(DefaultConfig(), f.Override)
	fig := &Figure{FigureOptions: f.Figure, Defaults: defaults}

	if f.Figure.Background != "" {
		if _, err := ParseColor(f.Figure.Background); err != nil {
			return nil, err
		}
	}
	if f.Figure.Width < 0 || f.Figure.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "figure size cannot be negative")
	}

	if len(f.Panels) == 0 {
		if err := defaults.Validate(); err != nil {
			return nil, err
		}
		fig.Panels = []Panel{{Key: SinglePanel.String(), Position: SinglePanel, Config: defaults}}
		return fig, nil
	}

	var grid *Position
	for key, o := range f.Panels {
		pos, err := ParsePosition(key)
		if err != nil {
			return nil, err
		}
		if grid == nil {
			grid = &pos
		} else if grid.Rows != pos.Rows || grid.Columns != pos.Columns {
			return nil, errors.New(errors.ErrCodeInvalidPanel,
				"panel %q uses a %dx%d grid, others use %dx%d", key, pos.Rows, pos.Columns, grid.Rows, grid.Columns)
		}

		cfg := Merge(defaults, o)
		if err := cfg.Validate(); err != nil {
			return nil, errors.New(errors.GetCode(err), "panel %s: %s", key, errors.UserMessage(err))
		}
		fig.Panels = append(fig.Panels, Panel{Key: key, Position: pos, Config: cfg})
	}

	sort.Slice(fig.Panels, func(i, j int) bool {
		return fig.Panels[i].Position.Index < fig.Panels[j].Position.Index
	})
	for i := 1; i < len(fig.Panels); i++ {
		if fig.Panels[i].Position.Index == fig.Panels[i-1].Position.Index {
			return nil, errors.New(errors.ErrCodeInvalidPanel,
				"panels %q and %q share index %d", fig.Panels[i-1].Key, fig.Panels[i].Key, fig.Panels[i].Position.Index)
		}
	}
	return fig, nil
}

// Grid returns the number of panel rows and columns.
func (f *Figure) Grid() (rows, cols int) {
	if len(f.Panels) == 0 {
		return 1, 1
	}
	p := f.Panels[0].Position
	return p.Rows, p.Columns
}
