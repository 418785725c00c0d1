// Package geom provides the 2D primitives shared by every drawing in the
// repository: points, rectangles, parallelograms and explicit-point paths.
//
// Points are gonum [r2.Vec] values, so vector arithmetic goes through the r2
// helpers (r2.Add, r2.Sub, r2.Scale). Drawing coordinates follow
// the screen convention: x grows to the right and y grows downward.
//
// Path helpers never read shared drawing state. Each segment constructor
// takes the point it should end at and returns it, so callers thread the
// "last point" through their own locals:
//
//	var p geom.Path
//	last := p.MoveTo(geom.Pt(10, 10))
//	last = p.LineTo(geom.Pt(last.X+5, last.Y))
//	last = p.LineTo(geom.Pt(last.X, last.Y+22))
//
// [r2.Vec]: https://pkg.go.dev/gonum.org/v1/gonum/spatial/r2#Vec
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position or displacement in drawing units.
type Point = r2.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// FlipX mirrors p about the vertical line x = axis.
func FlipX(p Point, axis float64) Point {
	return Pt(2*axis-p.X, p.Y)
}

// Near reports whether a and b are within eps of each other on both axes.
func Near(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Size is a width and height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle. W and H may be negative, in which case
// the rectangle extends left or up from (X, Y); use Canon to normalize.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Canon returns r with non-negative width and height covering the same area.
func (r Rect) Canon() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Pt(r.X+r.W/2, r.Y+r.H/2)
}
