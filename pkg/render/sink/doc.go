// Package sink turns a [draw.List] into an output format.
//
//   - SVG: vector output written with github.com/ajstarks/svgo, with the
//     drawing font embedded so labels render the same everywhere
//   - PNG: raster output drawn with github.com/fogleman/gg
//   - JSON: the display list itself, with text positions resolved
//
// Every sink resolves text with [draw.Layout], so a label sits at the same
// place in every format.
//
//	l, _ := detail.Render(set, 0, detail.Options{Width: 800, Height: 1000})
//	svg := sink.RenderSVG(l)
//	png, err := sink.RenderPNG(l, sink.WithScale(2))
//	js, err := sink.RenderJSON(l)
//
// Sinks do not modify the list and are safe to call concurrently.
package sink
