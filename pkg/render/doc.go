// Package render turns computed layouts into viewable artifacts.
//
// # Overview
//
// The renderer consumes a [layout.Layout] together with the graph it was
// computed from and produces:
//
//   - Graphviz DOT text ([ToDOT])
//   - SVG via in-process Graphviz ([SVG])
//   - PNG via in-process Graphviz ([PNG])
//
// The DOT output groups nodes into one cluster per source file, filled
// lightsteelblue, with node fills taken from the resolved layout styles.
// Node labels show the declaration name and line number.
//
// # Usage
//
//	dot := render.ToDOT(lay, g)
//	svg, err := render.SVG(dot)
//	png, err := render.PNG(dot)
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG generation (no external Graphviz installation needed).
package render
