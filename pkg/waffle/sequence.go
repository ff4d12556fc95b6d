package waffle

import "iter"

// Coord addresses one grid cell. Col counts from the left edge, Row from the
// bottom edge.
type Coord struct {
	Col int `json:"col" bson:"col"`
	Row int `json:"row" bson:"row"`
}

// Traverse returns the order in which grid cells are visited.
//
// Unless vertical is set, the grid is walked column by column (blocks stack
// up a column, then move to the next); vertical walks it row by row. A
// negative order walks that axis from its far end. With snake set, every
// other line of the inner axis is walked backwards.
//
// The sequence covers each of the rows*columns cells exactly once and is
// restarted by ranging over it again. Non-positive dimensions yield an empty
// sequence.
func Traverse(rows, columns, rowOrder, columnOrder int, vertical, snake bool) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		if rows <= 0 || columns <= 0 {
			return
		}

		outerN, innerN := columns, rows
		outerOrder, innerOrder := columnOrder, rowOrder
		if vertical {
			outerN, innerN = rows, columns
			outerOrder, innerOrder = rowOrder, columnOrder
		}

		for i := range outerN {
			outer := oriented(i, outerN, outerOrder)
			for j := range innerN {
				step := j
				if snake && i%2 == 1 {
					step = innerN - 1 - j
				}
				inner := oriented(step, innerN, innerOrder)

				c := Coord{Col: outer, Row: inner}
				if vertical {
					c = Coord{Col: inner, Row: outer}
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// TraverseGrid is Traverse with orders and flags taken from g.
func TraverseGrid(rows, columns int, g Grid) iter.Seq[Coord] {
	rowOrder, columnOrder := g.Location.Orders()
	return Traverse(rows, columns, rowOrder, columnOrder, g.Vertical, g.Style == Snake)
}

// oriented maps the k-th step along an axis of length n to a cell index.
func oriented(k, n, order int) int {
	if order < 0 {
		return n - 1 - k
	}
	return k
}
