package schematic

import "github.com/jmclachlan11/boxbuilder/pkg/geom"

// Roll icon measurements, in drawing units.
const (
	topEndLength  = 22.0
	rollLength    = 40.0
	fillet        = 5.0
	smallRadius   = 5.0
	largeRadius   = CellWidth/2 - rollOffset
	curveOffset   = largeRadius - 5
	filletCtrlX   = 5.0
	filletCtrlY   = 3.0
	cut           = 1.0
	bottomEnd     = CellHeight - topEndLength - rollLength - 2*rollOffset - 2*fillet
	shaftFill     = 5.0
	bodyFill      = 11.0
	shaftEdgeFill = 6.0
)

type fill struct {
	path  geom.Path
	width float64
}

// rollHalf builds the right half of the roll icon whose top center is tc:
// the outline (shaft, body with filleted shoulders, shaft) and the thick
// strokes that shade it. The left half is its mirror about tc.X.
func rollHalf(tc geom.Point) (geom.Path, []fill) {
	var p geom.Path
	last := p.MoveTo(tc)

	// top shaft
	last = p.LineTo(geom.Pt(tc.X+smallRadius-cut, last.Y))
	last = p.LineTo(geom.Pt(tc.X+smallRadius, last.Y+cut))
	last = p.LineTo(geom.Pt(last.X, last.Y+topEndLength))

	// body
	last = p.LineTo(geom.Pt(tc.X+largeRadius-fillet, last.Y))
	last = p.QuadTo(
		geom.Pt(tc.X+largeRadius, last.Y+fillet),
		geom.Pt(tc.X+largeRadius-fillet/2+filletCtrlX, last.Y+fillet/2-filletCtrlY),
	)
	last = p.CubicTo(
		geom.Pt(last.X, last.Y+rollLength),
		geom.Pt(tc.X+curveOffset, last.Y+rollLength/3),
		geom.Pt(tc.X+curveOffset, last.Y+2*rollLength/3),
	)
	last = p.QuadTo(
		geom.Pt(tc.X+largeRadius-fillet, last.Y+fillet),
		geom.Pt(tc.X+largeRadius-fillet/2+filletCtrlX, last.Y+fillet/2+filletCtrlY),
	)
	last = p.LineTo(geom.Pt(tc.X+smallRadius, last.Y))

	// bottom shaft
	last = p.LineTo(geom.Pt(last.X, last.Y+bottomEnd-cut))
	last = p.LineTo(geom.Pt(tc.X+smallRadius-cut, last.Y+cut))
	p.LineTo(geom.Pt(tc.X, last.Y))

	var shaft geom.Path
	last = shaft.MoveTo(geom.Pt(tc.X+2, tc.Y-1))
	shaft.LineTo(geom.Pt(last.X, tc.Y+83))

	var body geom.Path
	last = body.MoveTo(geom.Pt(tc.X+37.0/4, tc.Y+22))
	body.LineTo(geom.Pt(last.X, tc.Y+73))

	var edge geom.Path
	last = edge.MoveTo(geom.Pt(tc.X+17, tc.Y+23.5))
	edge.CubicTo(
		geom.Pt(last.X, tc.Y+73),
		geom.Pt(tc.X+11, last.Y+40.0/3),
		geom.Pt(tc.X+8.5, last.Y+80.0/3),
	)

	return p, []fill{
		{shaft, shaftFill},
		{body, bodyFill},
		{edge, shaftEdgeFill},
	}
}
