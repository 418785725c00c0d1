package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// maxHatchLines bounds the number of strokes Hatch emits so degenerate
// sizes cannot produce unbounded output.
const maxHatchLines = 4096

// Parallelogram is the quadrilateral Origin, Origin+U, Origin+U+V, Origin+V.
// U is the "length" edge and V the "width" edge of NewParallelogram.
type Parallelogram struct {
	Origin Point
	U, V   Point
}

// NewParallelogram builds the parallelogram used by the isometric model.
//
// With vertical set, the length edge runs straight down from start. Without
// it, the length edge runs back along angle (up and to the left for positive
// angles). The width edge always runs along angle towards the upper right:
// (width*cos(angle), -width*sin(angle)). Negative lengths and widths flip the
// corresponding edge.
func NewParallelogram(start Point, angle, length, width float64, vertical bool) Parallelogram {
	u := Pt(0, length)
	if !vertical {
		u = Pt(-length*math.Cos(angle), -length*math.Sin(angle))
	}
	return Parallelogram{
		Origin: start,
		U:      u,
		V:      Pt(width*math.Cos(angle), -width*math.Sin(angle)),
	}
}

// Corners returns the four corners in drawing order starting at Origin.
func (p Parallelogram) Corners() [4]Point {
	a := p.Origin
	b := r2.Add(a, p.U)
	c := r2.Add(b, p.V)
	d := r2.Sub(c, p.U)
	return [4]Point{a, b, c, d}
}

// Path returns the closed outline, ending back at Origin.
func (p Parallelogram) Path() Path {
	c := p.Corners()
	var path Path
	last := path.MoveTo(c[0])
	last = path.LineTo(c[1])
	last = path.LineTo(r2.Add(last, p.V))
	last = path.LineTo(r2.Sub(last, p.U))
	path.LineTo(c[0])
	return path
}

// Edges returns the four sides as point pairs, in drawing order.
func (p Parallelogram) Edges() [4][2]Point {
	c := p.Corners()
	return [4][2]Point{{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]}}
}

// Hatch returns strokes parallel to V, spaced one drawing unit apart along
// U from the origin edge to the opposite edge. The stroke count is bounded,
// and NaN or zero-length faces produce a single stroke at most.
func (p Parallelogram) Hatch() []Path {
	length := r2.Norm(p.U)
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return nil
	}
	step := Point{}
	if length > 0 {
		step = r2.Scale(1/length, p.U)
	}
	n := int(math.Floor(length))
	if n > maxHatchLines {
		n = maxHatchLines
	}
	lines := make([]Path, 0, n+1)
	for i := 0; i <= n; i++ {
		from := r2.Add(p.Origin, r2.Scale(float64(i), step))
		lines = append(lines, Line(from, r2.Add(from, p.V)))
	}
	return lines
}
