package waffle

import (
	"slices"
	"testing"

	"github.com/matzehuels/waffle/pkg/errors"
)

func TestTraverse(t *testing.T) {
	tests := []struct {
		name               string
		rows, cols         int
		rowOrder, colOrder int
		vertical, snake    bool
		want               []Coord
	}{
		{
			name: "column major from south west",
			rows: 2, cols: 3, rowOrder: 1, colOrder: 1,
			want: []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}},
		},
		{
			name: "vertical snake from north west",
			rows: 2, cols: 3, rowOrder: -1, colOrder: 1, vertical: true, snake: true,
			want: []Coord{{0, 1}, {1, 1}, {2, 1}, {2, 0}, {1, 0}, {0, 0}},
		},
		{
			name: "column major from north west",
			rows: 2, cols: 2, rowOrder: -1, colOrder: 1,
			want: []Coord{{0, 1}, {0, 0}, {1, 1}, {1, 0}},
		},
		{
			name: "row major from south east",
			rows: 2, cols: 3, rowOrder: 1, colOrder: -1, vertical: true,
			want: []Coord{{2, 0}, {1, 0}, {0, 0}, {2, 1}, {1, 1}, {0, 1}},
		},
		{
			name: "column snake from south west",
			rows: 3, cols: 2, rowOrder: 1, colOrder: 1, snake: true,
			want: []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {1, 1}, {1, 0}},
		},
		{
			name: "single cell",
			rows: 1, cols: 1, rowOrder: -1, colOrder: -1, vertical: true, snake: true,
			want: []Coord{{0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Traverse(tt.rows, tt.cols, tt.rowOrder, tt.colOrder, tt.vertical, tt.snake))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Traverse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTraverseEmpty(t *testing.T) {
	dims := [][2]int{{0, 0}, {0, 4}, {3, 0}, {-1, 2}}
	for _, d := range dims {
		got := slices.Collect(Traverse(d[0], d[1], 1, 1, false, false))
		if len(got) != 0 {
			t.Errorf("Traverse(%d, %d) = %v, want empty", d[0], d[1], got)
		}
	}
}

func TestTraverseCoversGrid(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 3}, {3, 2}, {5, 10}, {7, 4}, {1, 9}}
	orders := []int{1, -1}
	flags := []bool{false, true}

	for _, size := range sizes {
		rows, cols := size[0], size[1]
		for _, ro := range orders {
			for _, co := range orders {
				for _, vertical := range flags {
					for _, snake := range flags {
						got := slices.Collect(Traverse(rows, cols, ro, co, vertical, snake))
						if len(got) != rows*cols {
							t.Fatalf("%dx%d ro=%d co=%d v=%v s=%v: %d coords, want %d",
								rows, cols, ro, co, vertical, snake, len(got), rows*cols)
						}
						seen := make(map[Coord]bool, len(got))
						for _, c := range got {
							if c.Col < 0 || c.Col >= cols || c.Row < 0 || c.Row >= rows {
								t.Fatalf("coordinate %v outside %dx%d grid", c, rows, cols)
							}
							if seen[c] {
								t.Fatalf("coordinate %v visited twice", c)
							}
							seen[c] = true
						}
					}
				}
			}
		}
	}
}

func TestTraverseRestarts(t *testing.T) {
	seq := Traverse(4, 5, -1, 1, true, true)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Error("ranging twice over the same sequence should yield identical coordinates")
	}

	again := slices.Collect(Traverse(4, 5, -1, 1, true, true))
	if !slices.Equal(first, again) {
		t.Error("re-invoking Traverse should reproduce the sequence")
	}
}

func TestTraverseEarlyStop(t *testing.T) {
	var n int
	for range Traverse(10, 10, 1, 1, false, false) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("visited %d coordinates, want 3", n)
	}
}

func TestStartingLocationOrders(t *testing.T) {
	tests := []struct {
		in                 string
		rowOrder, colOrder int
	}{
		{"NW", -1, 1},
		{"SW", 1, 1},
		{"NE", -1, -1},
		{"SE", 1, -1},
		{"se", 1, -1},
		{"", 1, 1},
	}

	for _, tt := range tests {
		loc, err := ParseStartingLocation(tt.in)
		if err != nil {
			t.Fatalf("ParseStartingLocation(%q) error = %v", tt.in, err)
		}
		ro, co := loc.Orders()
		if ro != tt.rowOrder || co != tt.colOrder {
			t.Errorf("%q orders = (%d, %d), want (%d, %d)", tt.in, ro, co, tt.rowOrder, tt.colOrder)
		}
	}

	if _, err := ParseStartingLocation("C"); !errors.Is(err, errors.ErrCodeInvalidLocation) {
		t.Errorf("ParseStartingLocation(C) error = %v, want %v", err, errors.ErrCodeInvalidLocation)
	}
}

func TestParseArrangingStyle(t *testing.T) {
	tests := []struct {
		in   string
		want ArrangingStyle
	}{
		{"", Normal},
		{"normal", Normal},
		{"Snake", Snake},
		{"new-line", NewLine},
	}
	for _, tt := range tests {
		got, err := ParseArrangingStyle(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseArrangingStyle(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseArrangingStyle("zigzag"); !errors.Is(err, errors.ErrCodeInvalidArrangingStyle) {
		t.Errorf("ParseArrangingStyle(zigzag) error = %v", err)
	}
}
