package draw

import (
	"strings"

	"github.com/jmclachlan11/boxbuilder/pkg/geom"
)

// Placed is a run resolved to a position. X and Y are the start of the
// run's baseline.
type Placed struct {
	Run
	X, Y  float64
	Width float64
}

type line struct {
	runs    []Run
	metrics []Metrics
	width   float64
	height  float64
	ascent  float64
}

func splitLines(m Measurer, runs []Run) []line {
	lines := []line{{}}
	for _, r := range runs {
		parts := strings.Split(r.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, line{})
			}
			cur := &lines[len(lines)-1]
			pr := r
			pr.Text = part
			mt := m.Measure(part, r.Font)
			cur.runs = append(cur.runs, pr)
			cur.metrics = append(cur.metrics, mt)
			cur.width += mt.Width
			cur.height = max(cur.height, mt.Height)
			cur.ascent = max(cur.ascent, mt.Ascent)
		}
	}
	return lines
}

// TextSize returns the extent of runs laid out as one text box: the widest
// line by the sum of line heights.
func TextSize(m Measurer, runs ...Run) geom.Size {
	var s geom.Size
	for _, ln := range splitLines(m, runs) {
		s.W = max(s.W, ln.width)
		s.H += ln.height
	}
	return s
}

// Size measures a single run.
func Size(m Measurer, text string, f Font) geom.Size {
	return TextSize(m, Run{Text: text, Font: f})
}

// Layout resolves the runs of t to baseline positions. Lines stack from the
// top of the box; runs on a line share a baseline.
func Layout(t *TextOp, m Measurer) []Placed {
	var out []Placed
	y := t.Box.Y
	for _, ln := range splitLines(m, t.Runs) {
		var x float64
		switch t.Align {
		case AlignLeft:
			x = t.Box.X
		case AlignRight:
			x = t.Box.X + t.Box.W - ln.width
		default:
			x = t.Box.X + (t.Box.W-ln.width)/2
		}
		for i, r := range ln.runs {
			w := ln.metrics[i].Width
			if r.Text != "" {
				out = append(out, Placed{Run: r, X: x, Y: y + ln.ascent, Width: w})
			}
			x += w
		}
		y += ln.height
	}
	return out
}
