package layout

// Cell is one panel of a figure: a single-panel layout built at CellSize and
// the grid cell it goes into. Row 0 is the top row.
type Cell struct {
	Row, Col int
	Layout   Layout
}

// CellSize returns the size of one panel on a width x height canvas split into
// rows x cols cells.
func CellSize(width, height float64, rows, cols int) (w, h float64) {
	return width / float64(max(cols, 1)), height / float64(max(rows, 1))
}

// Compose places panel layouts onto one canvas. Panels are numbered in the
// order given and their blocks moved into their cell.
func Compose(width, height float64, rows, cols int, cells []Cell) Layout {
	cw, ch := CellSize(width, height, rows, cols)
	out := Layout{Width: width, Height: height}

	for _, c := range cells {
		dx, dy := float64(c.Col)*cw, float64(c.Row)*ch
		base := len(out.Panels)

		for _, p := range c.Layout.Panels {
			p.Index = len(out.Panels)
			p.Row, p.Col = c.Row, c.Col
			p.X += dx
			p.Y += dy
			out.Panels = append(out.Panels, p)
		}
		for _, b := range c.Layout.Blocks {
			b.Panel += base
			b.X += dx
			b.Y += dy
			out.Blocks = append(out.Blocks, b)
		}
	}
	return out
}
