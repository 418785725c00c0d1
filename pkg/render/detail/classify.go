package detail

import (
	"sort"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/draw"
)

// Class is the size rank of a dimension within its piece.
type Class int

const (
	Long Class = iota
	Middle
	Short
)

func (c Class) String() string {
	switch c {
	case Long:
		return "long"
	case Middle:
		return "middle"
	default:
		return "short"
	}
}

// Color returns the palette color for the class.
func (c Class) Color(p draw.Palette) draw.Color {
	switch c {
	case Long:
		return p.Long
	case Middle:
		return p.Middle
	default:
		return p.Short
	}
}

// Measure is one dimension of a piece and the axis it belongs to.
type Measure struct {
	Axis  box.Axis
	Value float64
}

// Classes ranks the three dimensions of a piece.
type Classes struct {
	Long, Middle, Short Measure
}

// Classify sorts the dimensions in descending order. The sort is stable, so
// equal values keep the order length, width, height.
func Classify(d box.Dimensions) Classes {
	ms := []Measure{
		{box.AxisLength, d.Length},
		{box.AxisWidth, d.Width},
		{box.AxisHeight, d.Height},
	}
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Value > ms[j].Value })
	return Classes{Long: ms[0], Middle: ms[1], Short: ms[2]}
}

// Of returns the class of axis a.
func (c Classes) Of(a box.Axis) Class {
	switch a {
	case c.Long.Axis:
		return Long
	case c.Middle.Axis:
		return Middle
	default:
		return Short
	}
}
