// Package model draws the isometric wireframe of an assembled box with one
// section highlighted.
//
// The box is built from parallelograms anchored at Origin, the front-left
// corner of the top face. Widths run up and to the right along Angle and
// lengths run up and to the left, so the front face is the one nearest the
// viewer. Drawing happens in three passes: every face faintly, hatching over
// the highlighted section, then the highlighted faces at full strength.
package model

import (
	"math"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/geom"
)

// Stroke alpha for each pass.
const (
	FaintAlpha     = 0.4
	HatchAlpha     = 0.2
	HighlightAlpha = 1.0

	lineWidth = 1.0
)

// Params describes one model drawing. Lengths are in drawing units and
// Angle is in radians.
type Params struct {
	Length, Width, Height float64
	Angle                 float64
	Origin                geom.Point
	ColumnDividers        int
	RowDivider            bool
	Section               box.PieceKind
	Color                 draw.Color
}

// FromSet returns the parameters for drawing set scaled by scale, with
// section highlighted.
func FromSet(set box.Set, section box.PieceKind, origin geom.Point, scale float64, c draw.Color) Params {
	d := set.ModelDimensions()
	return Params{
		Length:         d.Length * scale,
		Width:          d.Width * scale,
		Height:         d.Height * scale,
		Angle:          geom.Radians(box.ModelAngle),
		Origin:         origin,
		ColumnDividers: box.ModelColumnDividers(set.Config),
		RowDivider:     set.Config.Rows == 2,
		Section:        section,
		Color:          c,
	}
}

// Faces holds every parallelogram of the model.
type Faces struct {
	Top, Bottom    geom.Parallelogram
	Left, Right    geom.Parallelogram
	Front, Back    geom.Parallelogram
	ColumnDividers []geom.Parallelogram
	RowDivider     *geom.Parallelogram
}

// Build computes the faces for p.
func Build(p Params) Faces {
	a := p.Angle
	along := geom.Pt(math.Cos(a), -math.Sin(a)) // width direction
	back := geom.Pt(-math.Cos(a), -math.Sin(a)) // length direction
	at := func(dir geom.Point, d float64) geom.Point {
		return geom.Pt(p.Origin.X+d*dir.X, p.Origin.Y+d*dir.Y)
	}

	f := Faces{
		Top:    geom.NewParallelogram(p.Origin, a, p.Length, p.Width, false),
		Left:   geom.NewParallelogram(p.Origin, -a, p.Height, -p.Length, true),
		Front:  geom.NewParallelogram(p.Origin, a, p.Height, p.Width, true),
		Bottom: geom.NewParallelogram(geom.Pt(p.Origin.X, p.Origin.Y+p.Height), a, p.Length, p.Width, false),
		Right:  geom.NewParallelogram(at(along, p.Width), -a, p.Height, -p.Length, true),
		Back:   geom.NewParallelogram(at(back, p.Length), a, p.Height, p.Width, true),
	}

	n := max(p.ColumnDividers, 0)
	for i := 1; i <= n; i++ {
		start := at(along, float64(i)/float64(n+1)*p.Width)
		f.ColumnDividers = append(f.ColumnDividers, geom.NewParallelogram(start, -a, p.Height, -p.Length, true))
	}

	if p.RowDivider {
		rd := geom.NewParallelogram(at(back, p.Length/2), a, p.Height, p.Width, true)
		f.RowDivider = &rd
	}
	return f
}

// All returns every face in drawing order.
func (f Faces) All() []geom.Parallelogram {
	out := []geom.Parallelogram{f.Top, f.Left, f.Front, f.Bottom, f.Right, f.Back}
	out = append(out, f.ColumnDividers...)
	if f.RowDivider != nil {
		out = append(out, *f.RowDivider)
	}
	return out
}

// Section returns the faces that make up one piece kind.
func (f Faces) Section(kind box.PieceKind) []geom.Parallelogram {
	switch kind {
	case box.Top:
		return []geom.Parallelogram{f.Top}
	case box.Bottom:
		return []geom.Parallelogram{f.Bottom}
	case box.LeftRightEdge:
		return []geom.Parallelogram{f.Left, f.Right}
	case box.FrontBackEdge:
		return []geom.Parallelogram{f.Front, f.Back}
	case box.ColumnDivider:
		return f.ColumnDividers
	case box.RowDivider:
		if f.RowDivider != nil {
			return []geom.Parallelogram{*f.RowDivider}
		}
	}
	return nil
}

// Render appends the model to l.
func Render(l *draw.List, p Params) {
	faces := Build(p)
	base := draw.Solid(p.Color, lineWidth)

	var outline geom.Path
	for _, face := range faces.All() {
		outline.Append(face.Path())
	}
	l.Stroke(outline, base.WithAlpha(FaintAlpha))

	section := faces.Section(p.Section)
	var hatch geom.Path
	for _, face := range section {
		for _, line := range face.Hatch() {
			hatch.Append(line)
		}
	}
	l.Stroke(hatch, base.WithAlpha(HatchAlpha))

	var highlight geom.Path
	for _, face := range section {
		highlight.Append(face.Path())
		if p.Section == box.ColumnDivider && p.RowDivider {
			highlight.Append(rowMarker(face, p))
		}
	}
	l.Stroke(highlight, base.WithAlpha(HighlightAlpha))
}

// rowMarker is the vertical line where the row divider crosses a column
// divider, halfway back along its length.
func rowMarker(face geom.Parallelogram, p Params) geom.Path {
	top := geom.Pt(
		face.Origin.X-p.Length/2*math.Cos(p.Angle),
		face.Origin.Y-p.Length/2*math.Sin(p.Angle),
	)
	return geom.Line(top, geom.Pt(top.X, top.Y+p.Height))
}
