// Package pkg holds the boxbuilder libraries.
//
// # Overview
//
// Boxbuilder sizes a wooden storage box for 6 or 10 machine rolls and draws
// the pieces. The data flow is:
//
//	roll size + count + wood thickness
//	         ↓
//	    [machine] / [fraction]  (presets, fractional-inch parsing)
//	         ↓
//	    [box]                   (row decision, cut dimensions, quantities)
//	         ↓
//	    [render/detail], [render/schematic], [render/model]  (display lists)
//	         ↓
//	    [render/sink]           (SVG, PNG, JSON)
//
// [pipeline] ties these together behind a cache and is shared by the CLI
// and by [server]. [assembly] places the pieces in 3D and meshes them to
// STL; [render/sequence] draws the glue-up order with Graphviz.
//
// # Quick Start
//
//	set, err := box.NewSet(box.Inputs{
//	    RollCount: 6, RollLength: 3, RollDiameter: 1.132, WoodThickness: 0.5,
//	})
//	for _, p := range set.CutList() {
//	    fmt.Println(p.Title(), fraction.Inches(p.Length), fraction.Inches(p.Width), fraction.Inches(p.Height))
//	}
//
// # Supporting Packages
//
//   - [cache]: file, Redis and null caches for rendered artifacts
//   - [config]: config.toml and the remembered prefs
//   - [draw], [geom], [fonts]: the display list, geometry and text measuring
//   - [errors]: coded errors shared by every package
//   - [observability]: hooks with a Prometheus implementation
//   - [buildinfo]: version information set at link time
package pkg
