package waffle

import (
	"iter"

	"github.com/matzehuels/waffle/pkg/errors"
)

// Assignment binds one grid cell to a category. Colored is false for padding
// cells that are reserved for a category but rendered transparent.
type Assignment struct {
	Coord    Coord `json:"coord" bson:"coord"`
	Category int   `json:"category" bson:"category"`
	Colored  bool  `json:"colored" bson:"colored"`
}

// Walk consumes coords once and hands out cells to categories in order, each
// category taking BlockPerCat[i] consecutive cells. Categories with a zero
// quota are skipped.
//
// Walking stops when either the coordinates or the categories run out: cells
// left over stay unassigned, and blocks that do not fit the grid are dropped.
// A negative reserved or colored count fails before anything is assigned.
func Walk(coords iter.Seq[Coord], a Allocation) ([]Assignment, error) {
	if len(a.ColoredBlockPerCat) != len(a.BlockPerCat) {
		return nil, errors.New(errors.ErrCodeInternal,
			"allocation has %d block counts but %d colored counts", len(a.BlockPerCat), len(a.ColoredBlockPerCat))
	}
	for i, n := range a.BlockPerCat {
		if n < 0 || a.ColoredBlockPerCat[i] < 0 {
			return nil, errors.New(errors.ErrCodeNegativeValue,
				"negative value not acceptable (category %d)", i)
		}
	}

	// bounds[i] is the running total of blocks up to and including category i.
	bounds := make([]int, len(a.BlockPerCat))
	var sum int
	for i, n := range a.BlockPerCat {
		sum += n
		bounds[i] = sum
	}

	out := make([]Assignment, 0, min(sum, max(a.Capacity(), 0)))
	cat, inCat, emitted := 0, 0, 0

	for c := range coords {
		for cat < len(a.BlockPerCat) && a.BlockPerCat[cat] == 0 {
			cat++
			inCat = 0
		}
		if cat >= len(a.BlockPerCat) {
			break
		}

		out = append(out, Assignment{
			Coord:    c,
			Category: cat,
			Colored:  inCat < a.ColoredBlockPerCat[cat],
		})
		inCat++
		emitted++

		if emitted >= bounds[cat] {
			cat++
			inCat = 0
		}
	}
	return out, nil
}
