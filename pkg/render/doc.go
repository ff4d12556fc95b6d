// Package render turns waffle layouts into images.
//
// # Overview
//
// Rendering happens in three subpackages:
//
//   - [layout]: pixel geometry computed from block plans
//   - [styles]: how a single block is drawn in SVG
//   - [sink]: output formats (SVG, PNG, PDF, JSON, terminal)
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool (from
// librsvg). PNG output does not need it; the PNG sink rasterizes directly.
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(svg)
//
// [layout]: github.com/matzehuels/waffle/pkg/render/layout
// [styles]: github.com/matzehuels/waffle/pkg/render/styles
// [sink]: github.com/matzehuels/waffle/pkg/render/sink
package render
