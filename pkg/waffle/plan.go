package waffle

import "github.com/matzehuels/waffle/pkg/errors"

// Result is the complete block plan of one chart.
type Result struct {
	Grid        Grid         `json:"-" bson:"-"`
	Allocation  Allocation   `json:"allocation" bson:"allocation"`
	Assignments []Assignment `json:"assignments" bson:"assignments"`
}

// Dropped returns how many reserved blocks did not fit into the grid.
func (r *Result) Dropped() int {
	return max(r.Allocation.Total()-len(r.Assignments), 0)
}

// Unused returns how many grid cells were left without a category.
func (r *Result) Unused() int {
	return max(r.Allocation.Capacity()-len(r.Assignments), 0)
}

// CountByCategory returns the number of assigned and colored cells per
// category index.
func (r *Result) CountByCategory() (assigned, colored []int) {
	n := len(r.Allocation.BlockPerCat)
	assigned, colored = make([]int, n), make([]int, n)
	for _, a := range r.Assignments {
		assigned[a.Category]++
		if a.Colored {
			colored[a.Category]++
		}
	}
	return assigned, colored
}

// Plan allocates blocks for values on grid g, traverses the resulting grid and
// walks it, returning the ordered cell assignments. Any negative value fails
// with NEGATIVE_VALUE, including ones that would round to zero blocks.
func Plan(values []float64, g Grid) (*Result, error) {
	for i, v := range values {
		if v < 0 {
			return nil, errors.New(errors.ErrCodeNegativeValue, "negative value not acceptable (category %d)", i)
		}
	}

	a, err := Allocate(values, g.Rows, g.Columns, g.Rounding, g.Style, g.Vertical)
	if err != nil {
		return nil, err
	}

	assignments, err := Walk(TraverseGrid(a.Rows, a.Columns, g), a)
	if err != nil {
		return nil, err
	}

	g.Rows, g.Columns = a.Rows, a.Columns
	return &Result{Grid: g, Allocation: a, Assignments: assignments}, nil
}
