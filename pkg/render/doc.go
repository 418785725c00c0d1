// Package render groups the drawing packages.
//
// Each drawing package produces a [draw.List], a device-independent display
// list of strokes, fills and text runs, and leaves encoding to [sink]:
//
//   - detail: one page per piece, with a front view, dimension lines, a
//     scale bar and an isometric model
//   - model: the isometric block used on detail pages
//   - schematic: the top-down roll layout of the whole box
//   - sequence: the glue-up order as a Graphviz diagram (DOT or SVG)
package render
