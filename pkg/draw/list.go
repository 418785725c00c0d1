package draw

import "github.com/jmclachlan11/boxbuilder/pkg/geom"

// Stroke describes how a path is outlined.
type Stroke struct {
	Color Color   `json:"color"`
	Width float64 `json:"width"`
	Alpha float64 `json:"alpha"`
}

// Solid returns an opaque stroke.
func Solid(c Color, width float64) Stroke {
	return Stroke{Color: c, Width: width, Alpha: 1}
}

// WithAlpha returns s with its alpha replaced.
func (s Stroke) WithAlpha(a float64) Stroke {
	s.Alpha = a
	return s
}

// Font selects a size of the embedded regular font, in points.
type Font struct {
	Size float64 `json:"size"`
}

// Align positions text lines inside their box.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// Run is a span of text in one font and color. A "\n" in Text starts a new
// line.
type Run struct {
	Text  string `json:"text"`
	Font  Font   `json:"font"`
	Color Color  `json:"color"`
}

// Op is a display-list operation: *StrokeOp, *RectsOp or *TextOp.
type Op interface {
	isOp()
}

// StrokeOp outlines a path.
type StrokeOp struct {
	Path  geom.Path
	Style Stroke
}

// RectsOp outlines a set of rectangles.
type RectsOp struct {
	Rects []geom.Rect
	Style Stroke
}

// TextOp draws runs inside a box.
type TextOp struct {
	Box   geom.Rect
	Align Align
	Runs  []Run
}

func (*StrokeOp) isOp() {}
func (*RectsOp) isOp()  {}
func (*TextOp) isOp()   {}

// List is an ordered sequence of drawing operations on a canvas of
// Width x Height units.
type List struct {
	Width      float64
	Height     float64
	Background Color
	Ops        []Op
}

// New returns an empty list on a white canvas.
func New(width, height float64) *List {
	return &List{Width: width, Height: height, Background: White}
}

// Stroke appends a stroked path. Empty paths are dropped.
func (l *List) Stroke(p geom.Path, s Stroke) {
	if p.Empty() {
		return
	}
	l.Ops = append(l.Ops, &StrokeOp{Path: p, Style: s})
}

// Rects appends stroked rectangles.
func (l *List) Rects(s Stroke, rects ...geom.Rect) {
	if len(rects) == 0 {
		return
	}
	l.Ops = append(l.Ops, &RectsOp{Rects: rects, Style: s})
}

// Text appends a text box.
func (l *List) Text(box geom.Rect, align Align, runs ...Run) {
	if len(runs) == 0 {
		return
	}
	l.Ops = append(l.Ops, &TextOp{Box: box, Align: align, Runs: runs})
}

// Label appends a single run.
func (l *List) Label(box geom.Rect, align Align, text string, f Font, c Color) {
	l.Text(box, align, Run{Text: text, Font: f, Color: c})
}

// Count returns the number of operations of each kind.
func (l *List) Count() (strokes, rects, texts int) {
	for _, op := range l.Ops {
		switch op.(type) {
		case *StrokeOp:
			strokes++
		case *RectsOp:
			rects++
		case *TextOp:
			texts++
		}
	}
	return strokes, rects, texts
}

// Texts returns the text of every text operation, runs concatenated.
func (l *List) Texts() []string {
	var out []string
	for _, op := range l.Ops {
		if t, ok := op.(*TextOp); ok {
			var s string
			for _, r := range t.Runs {
				s += r.Text
			}
			out = append(out, s)
		}
	}
	return out
}
