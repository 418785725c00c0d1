// Package draw defines the display list every renderer produces and every
// sink consumes.
//
// Renderers never talk to an image library. They append operations to a
// [List]: stroked paths, stroked rectangles and text boxes made of styled
// runs. Sinks (SVG, PNG, JSON) walk the list in order. Text placement is
// resolved by [Layout] from a [Measurer] so all sinks put labels in the same
// spot.
//
// Coordinates are drawing units with y growing downward. Text boxes follow
// the convention of a text frame: the box's top edge is the top of the first
// line, and [Align] positions each line horizontally inside the box.
package draw
