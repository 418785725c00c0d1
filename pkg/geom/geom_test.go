package geom

import (
	"fmt"
	"math"
	"testing"
)

const eps = 1e-9

func TestFlipX(t *testing.T) {
	tests := []struct {
		p    Point
		axis float64
		want Point
	}{
		{Pt(10, 5), 10, Pt(10, 5)},
		{Pt(12, 5), 10, Pt(8, 5)},
		{Pt(0, -3), 4, Pt(8, -3)},
	}
	for _, tt := range tests {
		if got := FlipX(tt.p, tt.axis); !Near(got, tt.want, eps) {
			t.Errorf("FlipX(%v, %v) = %v, want %v", tt.p, tt.axis, got, tt.want)
		}
	}
}

func TestRectCanon(t *testing.T) {
	r := R(100, 20, -55, 100).Canon()
	want := R(45, 20, 55, 100)
	if r != want {
		t.Errorf("Canon() = %+v, want %+v", r, want)
	}
}

func TestPathSegmentsReturnLastPoint(t *testing.T) {
	var p Path
	last := p.MoveTo(Pt(10, 10))
	last = p.LineTo(Pt(last.X+4, last.Y))
	last = p.QuadTo(Pt(last.X+5, last.Y+5), Pt(last.X+2, last.Y+1))
	last = p.CubicTo(Pt(last.X, last.Y+40), Pt(last.X-3, last.Y+13), Pt(last.X-3, last.Y+26))

	if want := Pt(19, 55); !Near(last, want, eps) {
		t.Fatalf("last = %v, want %v", last, want)
	}
	if got, ok := p.Last(); !ok || got != last {
		t.Errorf("Last() = %v, %v; want %v", got, ok, last)
	}
	if n := len(p.Segments); n != 4 {
		t.Errorf("segments = %d, want 4", n)
	}
	if k := p.Segments[2].Kind; k != SegQuad {
		t.Errorf("segment 2 kind = %v, want quad", k)
	}
}

func TestPathMapMirrorsControlPoints(t *testing.T) {
	var p Path
	p.MoveTo(Pt(10, 0))
	p.CubicTo(Pt(14, 10), Pt(12, 3), Pt(13, 6))
	m := p.Map(func(q Point) Point { return FlipX(q, 10) })

	seg := m.Segments[1]
	if !Near(seg.To, Pt(6, 10), eps) || !Near(seg.C1, Pt(8, 3), eps) || !Near(seg.C2, Pt(7, 6), eps) {
		t.Errorf("mirrored cubic = %+v", seg)
	}
	if p.Segments[1].To != Pt(14, 10) {
		t.Error("Map modified the receiver")
	}
}

func TestParallelogramVertical(t *testing.T) {
	a := Radians(35)
	p := NewParallelogram(Pt(100, 100), a, 20, 10, true)
	c := p.Corners()

	if !Near(c[1], Pt(100, 120), eps) {
		t.Errorf("corner 1 = %v, want (100,120)", c[1])
	}
	want2 := Pt(100+10*math.Cos(a), 120-10*math.Sin(a))
	if !Near(c[2], want2, eps) {
		t.Errorf("corner 2 = %v, want %v", c[2], want2)
	}
	if !Near(c[3], Pt(want2.X, want2.Y-20), eps) {
		t.Errorf("corner 3 = %v", c[3])
	}

	last, _ := p.Path().Last()
	if !Near(last, p.Origin, eps) {
		t.Errorf("path ends at %v, want origin %v", last, p.Origin)
	}
}

func TestParallelogramSlanted(t *testing.T) {
	a := Radians(35)
	p := NewParallelogram(Pt(0, 0), a, 10, 4, false)
	c := p.Corners()
	if !Near(c[1], Pt(-10*math.Cos(a), -10*math.Sin(a)), eps) {
		t.Errorf("corner 1 = %v", c[1])
	}
	if !Near(c[3], Pt(4*math.Cos(a), -4*math.Sin(a)), eps) {
		t.Errorf("corner 3 = %v", c[3])
	}
}

func TestHatch(t *testing.T) {
	tests := []struct {
		name   string
		p      Parallelogram
		want   int
		stroke Point
	}{
		{"vertical", NewParallelogram(Pt(0, 0), 0, 5.5, 3, true), 6, Pt(3, 0)},
		{"zero length", NewParallelogram(Pt(0, 0), 0, 0, 3, true), 1, Pt(3, 0)},
		{"huge", NewParallelogram(Pt(0, 0), 0, 1e9, 3, true), maxHatchLines + 1, Pt(3, 0)},
		{"nan", NewParallelogram(Pt(0, 0), 0, math.NaN(), 3, true), 0, Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := tt.p.Hatch()
			if len(lines) != tt.want {
				t.Fatalf("Hatch() = %d lines, want %d", len(lines), tt.want)
			}
			for i, l := range lines {
				pts := l.Points()
				d := Pt(pts[1].X-pts[0].X, pts[1].Y-pts[0].Y)
				if !Near(d, tt.stroke, eps) {
					t.Fatalf("line %d direction = %v, want %v", i, d, tt.stroke)
				}
			}
		})
	}
}

func ExampleParallelogram_Corners() {
	p := NewParallelogram(Pt(0, 0), 0, 2, 3, true)
	for _, c := range p.Corners() {
		fmt.Printf("(%g, %g)\n", c.X, c.Y)
	}
	// Output:
	// (0, 0)
	// (0, 2)
	// (3, 2)
	// (3, 0)
}
