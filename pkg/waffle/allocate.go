package waffle

import (
	"math"

	"github.com/matzehuels/waffle/pkg/errors"
)

// MaxCells bounds the number of cells of a grid and the number of blocks any
// category may take.
const MaxCells = 1 << 20

// Allocation is the outcome of converting category values into block counts.
//
// BlockPerCat is the number of grid cells reserved for each category.
// ColoredBlockPerCat is the number of those cells that are actually filled;
// it only differs from BlockPerCat under the NewLine style, where trailing
// padding cells stay transparent.
type Allocation struct {
	Rows               int   `json:"rows" bson:"rows"`
	Columns            int   `json:"columns" bson:"columns"`
	BlockPerCat        []int `json:"block_per_cat" bson:"block_per_cat"`
	ColoredBlockPerCat []int `json:"colored_block_per_cat" bson:"colored_block_per_cat"`
}

// Total returns the number of reserved blocks across all categories.
func (a Allocation) Total() int {
	var n int
	for _, b := range a.BlockPerCat {
		n += b
	}
	return n
}

// Capacity returns the number of cells in the grid.
func (a Allocation) Capacity() int { return a.Rows * a.Columns }

// Allocate derives the missing grid dimension and the per-category block
// counts from values.
//
// With only one dimension given, each value is used directly as a block count
// (rounded by rule) and the other dimension grows to fit. With both given,
// values are scaled proportionally onto rows*columns cells. Rows and columns
// of zero mean "not given".
//
// Negative values are passed through; Walk rejects them. Block counts or
// grids larger than MaxCells fail with INVALID_GRID.
func Allocate(values []float64, rows, columns int, rule RoundingRule, style ArrangingStyle, vertical bool) (Allocation, error) {
	if len(values) == 0 {
		return Allocation{}, errors.New(errors.ErrCodeInvalidValues, "values cannot be empty")
	}
	if rows < 0 || columns < 0 {
		return Allocation{}, errors.New(errors.ErrCodeInvalidGrid, "rows and columns cannot be negative")
	}
	if rows == 0 && columns == 0 {
		return Allocation{}, errors.New(errors.ErrCodeInvalidGrid, "at least one of rows or columns is required")
	}
	if rows > MaxCells || columns > MaxCells || (rows > 0 && columns > MaxCells/rows) {
		return Allocation{}, errors.New(errors.ErrCodeInvalidGrid,
			"grid of %d x %d exceeds the limit of %d cells", rows, columns, MaxCells)
	}

	a := Allocation{
		Rows:               rows,
		Columns:            columns,
		BlockPerCat:        make([]int, len(values)),
		ColoredBlockPerCat: make([]int, len(values)),
	}

	switch {
	case rows == 0:
		padded := style == NewLine && vertical
		if err := fillAsBlockCounts(&a, values, columns, rule, padded); err != nil {
			return Allocation{}, err
		}
		a.Rows = ceilDiv(a.Total(), columns)
	case columns == 0:
		padded := style == NewLine && !vertical
		if err := fillAsBlockCounts(&a, values, rows, rule, padded); err != nil {
			return Allocation{}, err
		}
		a.Columns = ceilDiv(a.Total(), rows)
	default:
		var sum float64
		for _, v := range values {
			sum += v
		}
		if sum <= 0 {
			return Allocation{}, errors.New(errors.ErrCodeInvalidValues,
				"sum of values must be positive when both rows and columns are given")
		}
		capacity := float64(rows * columns)
		for i, v := range values {
			n, err := blockCount(i, rule.method().apply(v*capacity, sum))
			if err != nil {
				return Allocation{}, err
			}
			a.BlockPerCat[i] = n
			a.ColoredBlockPerCat[i] = n
		}
	}

	if a.Total() > MaxCells || a.Capacity() > MaxCells {
		return Allocation{}, errors.New(errors.ErrCodeInvalidGrid,
			"%d blocks on a %d x %d grid exceed the limit of %d cells", a.Total(), a.Rows, a.Columns, MaxCells)
	}
	return a, nil
}

// blockCount converts the rounded block count q of category i to an int,
// refusing values that are not finite or do not fit in MaxCells.
func blockCount(i int, q float64) (int, error) {
	switch {
	case math.IsNaN(q) || math.IsInf(q, 0):
		return 0, errors.New(errors.ErrCodeInvalidValues, "value of category %d is not a finite number", i)
	case q > MaxCells:
		return 0, errors.New(errors.ErrCodeInvalidGrid,
			"category %d needs %g blocks, more than the limit of %d", i, q, MaxCells)
	case q < -MaxCells:
		return 0, errors.New(errors.ErrCodeNegativeValue, "negative value not acceptable (category %d)", i)
	}
	return int(q), nil
}

// fillAsBlockCounts uses each value as a literal block count. When padded is
// set, reserved counts are rounded up to a multiple of fixed so that every
// category ends on a line boundary.
func fillAsBlockCounts(a *Allocation, values []float64, fixed int, rule RoundingRule, padded bool) error {
	for i, v := range values {
		colored, err := blockCount(i, rule.method().apply(v, 1))
		if err != nil {
			return err
		}
		a.ColoredBlockPerCat[i] = colored
		a.BlockPerCat[i] = colored
		if padded {
			// v is bounded by MaxCells here, so the padded count fits too.
			a.BlockPerCat[i] = RoundUpToMultiple(v, fixed)
		}
	}
	return nil
}

func ceilDiv(total, by int) int {
	if total <= 0 {
		return 0
	}
	return int(MethodCeil.apply(float64(total), float64(by)))
}
