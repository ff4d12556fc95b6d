// Package pkg provides the libraries behind waffle, a layout engine and
// renderer for waffle charts.
//
// # Overview
//
// A waffle chart draws category values as colored blocks on a grid. The pkg
// directory is organized by stage:
//
//  1. [waffle] - Block allocation, grid traversal and cell assignment
//  2. [chart] - Chart options and multi-panel figures decoded from files
//  3. [render] - Pixel layout, block styles and output sinks
//  4. [pipeline] - Orchestration (plan → layout → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	Chart file (TOML/YAML/JSON) or data table (CSV/XLSX)
//	         ↓
//	    [chart] package (resolve options per panel)
//	         ↓
//	    [waffle] package (allocate and assign blocks)
//	         ↓
//	    [render/layout] package (pixel geometry)
//	         ↓
//	    SVG/PNG/PDF/JSON/terminal output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/waffle/pkg/render/layout"
//	    "github.com/matzehuels/waffle/pkg/render/sink"
//	    "github.com/matzehuels/waffle/pkg/waffle"
//	)
//
//	res, _ := waffle.Plan([]float64{30, 16, 4}, waffle.Grid{Rows: 5, Columns: 10})
//	l := layout.Build(res, 640, 480)
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// [waffle] - The allocation core. [waffle.Plan] turns values into an ordered
// list of cell assignments.
//
// [chart] - Chart configuration: values, labels, colors and palettes, grid and
// traversal options. Figures hold one or more panels placed with
// matplotlib-style position codes.
//
// [render/layout] - Converts assignments into positioned blocks and composes
// panels on one canvas. Layouts are serializable and can be rendered later.
//
// [render/sink] - Output formats: SVG, PNG (rasterized directly), PDF (via
// rsvg-convert), JSON and colored terminal cells.
//
// ## Infrastructure
//
// [pipeline] - Complete pipeline (plan → layout → render) used by the CLI and
// the HTTP API. Ensures consistent behavior across entry points.
//
// [cache] - File, Redis and no-op caches for layouts and rendered artifacts.
//
// [source] - Values from CSV files and Excel workbooks.
//
// [store] - Saved charts in memory or MongoDB.
//
// [api] - HTTP handlers serving the pipeline and saved charts.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/waffle/...   # Specific package
//	go test -run Example       # Examples only
//
// [waffle]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/waffle
// [chart]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/chart
// [render]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/render
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/render/layout
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/cache
// [source]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/source
// [store]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/store
// [api]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/errors
// [waffle.Plan]: https://pkg.go.dev/github.com/matzehuels/waffle/pkg/waffle#Plan
package pkg
