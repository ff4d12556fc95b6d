// Package waffle implements the block allocation core of a waffle chart.
//
// # Overview
//
// A waffle chart draws each category as a run of equally sized blocks on a
// rows × columns grid. Producing one takes three steps, each exposed on its
// own so it can be tested and reused:
//
//  1. Allocation ([Allocate]): turn category values into block counts and
//     derive the missing grid dimension.
//  2. Traversal ([Traverse]): produce the order in which grid cells are
//     visited, starting from a corner, row- or column-major, optionally in a
//     snake pattern.
//  3. Assignment ([Walk]): hand out cells along the traversal to each
//     category in turn, marking padding cells as uncolored.
//
// [Plan] chains the three for a single chart:
//
//	res, err := waffle.Plan([]float64{30, 16, 4}, waffle.Grid{Rows: 5, Columns: 10})
//	for _, a := range res.Assignments {
//	    fmt.Println(a.Coord, a.Category, a.Colored)
//	}
//
// # Sizing
//
// When only one of rows or columns is given, values are used as literal block
// counts ("1 unit = 1 block"). When both are given, values are scaled onto the
// fixed number of cells and rounded per category with the chosen
// [RoundingRule]; rounding may reserve more blocks than the grid holds, in
// which case the surplus is silently dropped by [Walk].
//
// # Purity
//
// Every function in this package is pure. Nothing is cached and the
// sequences returned by [Traverse] restart from the beginning each time they
// are ranged over.
package waffle
