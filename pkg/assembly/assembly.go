// Package assembly places the cut pieces of a box in 3D and exports the
// assembled box as an STL mesh.
//
// Panels are axis-aligned boxes in inches. X runs across the rolls, Y runs
// along the roll axis and Z points up. The front-left-bottom corner of the
// box is the origin. The top rests on the edges, the bottom and dividers
// sit between them, and the panels never overlap.
package assembly

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
)

// Panel is one placed piece.
type Panel struct {
	Kind box.PieceKind
	Min  v3.Vec // lowest corner
	Size v3.Vec // extent along X, Y, Z
}

// Max returns the highest corner.
func (p Panel) Max() v3.Vec { return p.Min.Add(p.Size) }

// Layout places every present piece, one panel per unit of quantity.
func Layout(set box.Set) []Panel {
	wt := set.Config.WoodThickness
	top := set.Piece(box.Top)
	bottom := set.Piece(box.Bottom)
	lr := set.Piece(box.LeftRightEdge)
	fb := set.Piece(box.FrontBackEdge)
	cd := set.Piece(box.ColumnDivider)

	panel := func(kind box.PieceKind, x, y, z, sx, sy, sz float64) Panel {
		return Panel{Kind: kind, Min: v3.Vec{X: x, Y: y, Z: z}, Size: v3.Vec{X: sx, Y: sy, Z: sz}}
	}

	panels := []Panel{
		panel(box.Bottom, wt, wt, 0, bottom.Width, bottom.Length, bottom.Height),
		panel(box.FrontBackEdge, 0, 0, 0, fb.Width, fb.Length, fb.Height),
		panel(box.FrontBackEdge, 0, top.Length-fb.Length, 0, fb.Width, fb.Length, fb.Height),
		panel(box.LeftRightEdge, 0, wt, 0, lr.Width, lr.Length, lr.Height),
		panel(box.LeftRightEdge, top.Width-lr.Width, wt, 0, lr.Width, lr.Length, lr.Height),
	}

	rows := set.Config.Rows
	perRow := cd.Quantity / max(rows, 1)
	gap := (bottom.Width - float64(perRow)*cd.Width) / float64(perRow+1)
	for r := 0; r < rows; r++ {
		y := wt + float64(r)*(cd.Length+wt)
		for k := 1; k <= perRow; k++ {
			x := wt + float64(k)*gap + float64(k-1)*cd.Width
			panels = append(panels, panel(box.ColumnDivider, x, y, wt, cd.Width, cd.Length, cd.Height))
		}
	}

	if set.Config.Has(box.RowDivider) {
		rd := set.Piece(box.RowDivider)
		panels = append(panels, panel(box.RowDivider, wt, wt+cd.Length, wt, rd.Width, rd.Length, rd.Height))
	}

	panels = append(panels, panel(box.Top, 0, 0, lr.Height, top.Width, top.Length, top.Height))
	return panels
}

// Bounds returns the corners of the smallest box containing every panel.
func Bounds(panels []Panel) (lo, hi v3.Vec) {
	if len(panels) == 0 {
		return lo, hi
	}
	lo = v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, p := range panels {
		mn, mx := p.Min, p.Max()
		lo = v3.Vec{X: math.Min(lo.X, mn.X), Y: math.Min(lo.Y, mn.Y), Z: math.Min(lo.Z, mn.Z)}
		hi = v3.Vec{X: math.Max(hi.X, mx.X), Y: math.Max(hi.Y, mx.Y), Z: math.Max(hi.Z, mx.Z)}
	}
	return lo, hi
}

// Overlap reports whether the interiors of a and b intersect by more than
// eps along every axis.
func Overlap(a, b Panel, eps float64) bool {
	amin, amax := a.Min, a.Max()
	bmin, bmax := b.Min, b.Max()
	return amin.X+eps < bmax.X && bmin.X+eps < amax.X &&
		amin.Y+eps < bmax.Y && bmin.Y+eps < amax.Y &&
		amin.Z+eps < bmax.Z && bmin.Z+eps < amax.Z
}

// Counts returns the number of panels of each kind.
func Counts(panels []Panel) map[box.PieceKind]int {
	out := make(map[box.PieceKind]int)
	for _, p := range panels {
		out[p.Kind]++
	}
	return out
}
