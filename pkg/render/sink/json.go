package sink

import (
	"encoding/json"

	"github.com/jmclachlan11/boxbuilder/pkg/draw"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	measurer draw.Measurer
}

// WithJSONMeasurer sets the measurer used to resolve text positions.
func WithJSONMeasurer(m draw.Measurer) JSONOption {
	return func(r *jsonRenderer) { r.measurer = m }
}

type jsonOutput struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Background string   `json:"background"`
	Ops        []jsonOp `json:"ops"`
}

type jsonOp struct {
	Type   string       `json:"type"` // "stroke", "rects" or "text"
	Path   string       `json:"path,omitempty"`
	Stroke *jsonStroke  `json:"stroke,omitempty"`
	Rects  []jsonRect   `json:"rects,omitempty"`
	Box    *jsonRect    `json:"box,omitempty"`
	Align  string       `json:"align,omitempty"`
	Runs   []jsonPlaced `json:"runs,omitempty"`
}

type jsonStroke struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Alpha float64 `json:"alpha"`
}

type jsonRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type jsonPlaced struct {
	Text  string  `json:"text"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
	X     float64 `json:"x"` // baseline start
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// RenderJSON exports the display list as pretty-printed JSON. Paths are
// encoded as SVG path data and text runs carry their resolved baseline
// positions. Non-finite coordinates fail to marshal and are returned as an
// error.
func RenderJSON(l *draw.List, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{measurer: draw.DefaultMeasurer()}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      l.Width,
		Height:     l.Height,
		Background: l.Background.Hex(),
		Ops:        make([]jsonOp, 0, len(l.Ops)),
	}
	for _, op := range l.Ops {
		out.Ops = append(out.Ops, r.op(op))
	}
	return json.MarshalIndent(out, "", "  ")
}

func (r jsonRenderer) op(op draw.Op) jsonOp {
	switch op := op.(type) {
	case *draw.StrokeOp:
		return jsonOp{Type: "stroke", Path: PathData(op.Path), Stroke: stroke(op.Style)}
	case *draw.RectsOp:
		rects := make([]jsonRect, len(op.Rects))
		for i, rc := range op.Rects {
			rects[i] = jsonRect{rc.X, rc.Y, rc.W, rc.H}
		}
		return jsonOp{Type: "rects", Rects: rects, Stroke: stroke(op.Style)}
	case *draw.TextOp:
		placed := draw.Layout(op, r.measurer)
		runs := make([]jsonPlaced, len(placed))
		for i, p := range placed {
			runs[i] = jsonPlaced{Text: p.Text, Size: p.Font.Size, Color: p.Color.Hex(), X: p.X, Y: p.Y, Width: p.Width}
		}
		return jsonOp{
			Type:  "text",
			Box:   &jsonRect{op.Box.X, op.Box.Y, op.Box.W, op.Box.H},
			Align: op.Align.String(),
			Runs:  runs,
		}
	}
	return jsonOp{Type: "unknown"}
}

func stroke(s draw.Stroke) *jsonStroke {
	return &jsonStroke{Color: s.Color.Hex(), Width: s.Width, Alpha: s.Alpha}
}
