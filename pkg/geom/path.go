package geom

// SegmentKind identifies the type of a path segment.
type SegmentKind int

const (
	SegMove SegmentKind = iota
	SegLine
	SegQuad
	SegCubic
	SegClose
)

var segmentNames = [...]string{"move", "line", "quad", "cubic", "close"}

func (k SegmentKind) String() string {
	if k < 0 || int(k) >= len(segmentNames) {
		return "unknown"
	}
	return segmentNames[k]
}

// Segment is one path command. C1 is the control point of a quadratic
// curve; C1 and C2 are the control points of a cubic curve.
type Segment struct {
	Kind   SegmentKind
	To     Point
	C1, C2 Point
}

// Path is an ordered list of segments. The zero value is an empty path.
type Path struct {
	Segments []Segment
}

// MoveTo starts a new subpath at p and returns p.
func (p *Path) MoveTo(to Point) Point {
	p.Segments = append(p.Segments, Segment{Kind: SegMove, To: to})
	return to
}

// LineTo adds a straight segment ending at to and returns to.
func (p *Path) LineTo(to Point) Point {
	p.Segments = append(p.Segments, Segment{Kind: SegLine, To: to})
	return to
}

// QuadTo adds a quadratic Bézier segment and returns its end point.
func (p *Path) QuadTo(to, ctrl Point) Point {
	p.Segments = append(p.Segments, Segment{Kind: SegQuad, To: to, C1: ctrl})
	return to
}

// CubicTo adds a cubic Bézier segment and returns its end point.
func (p *Path) CubicTo(to, c1, c2 Point) Point {
	p.Segments = append(p.Segments, Segment{Kind: SegCubic, To: to, C1: c1, C2: c2})
	return to
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Kind: SegClose})
}

// Line is shorthand for a path holding a single straight segment.
func Line(from, to Point) Path {
	var p Path
	p.MoveTo(from)
	p.LineTo(to)
	return p
}

// Append adds all segments of q to p.
func (p *Path) Append(q Path) {
	p.Segments = append(p.Segments, q.Segments...)
}

// Empty reports whether the path has no segments.
func (p Path) Empty() bool { return len(p.Segments) == 0 }

// Last returns the end point of the final segment that has one.
func (p Path) Last() (Point, bool) {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		if p.Segments[i].Kind != SegClose {
			return p.Segments[i].To, true
		}
	}
	return Point{}, false
}

// Map returns a copy of p with f applied to every point, including control
// points. Mirroring an icon is Map with FlipX.
func (p Path) Map(f func(Point) Point) Path {
	out := Path{Segments: make([]Segment, len(p.Segments))}
	for i, s := range p.Segments {
		if s.Kind != SegClose {
			s.To = f(s.To)
		}
		switch s.Kind {
		case SegQuad:
			s.C1 = f(s.C1)
		case SegCubic:
			s.C1 = f(s.C1)
			s.C2 = f(s.C2)
		}
		out.Segments[i] = s
	}
	return out
}

// Points returns every end and control point of the path in order.
func (p Path) Points() []Point {
	var pts []Point
	for _, s := range p.Segments {
		switch s.Kind {
		case SegClose:
			continue
		case SegQuad:
			pts = append(pts, s.C1)
		case SegCubic:
			pts = append(pts, s.C1, s.C2)
		}
		pts = append(pts, s.To)
	}
	return pts
}
