package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/fonts"
	"github.com/jmclachlan11/boxbuilder/pkg/geom"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale    float64
	measurer draw.Measurer
	faces    map[float64]font.Face
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGMeasurer sets the measurer used to place text.
func WithPNGMeasurer(m draw.Measurer) PNGOption {
	return func(r *pngRenderer) { r.measurer = m }
}

// RenderPNG rasterizes l. Coordinates are multiplied by the scale factor, and
// text is drawn with a face of the scaled size so glyphs stay sharp.
func RenderPNG(l *draw.List, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, measurer: draw.DefaultMeasurer(), faces: make(map[float64]font.Face)}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) {
		return nil, fmt.Errorf("invalid png scale %v", r.scale)
	}

	dc := gg.NewContext(pixels(l.Width*r.scale), pixels(l.Height*r.scale))
	dc.SetRGB(l.Background.Floats())
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, op := range l.Ops {
		switch op := op.(type) {
		case *draw.StrokeOp:
			r.strokePath(dc, op.Path, op.Style)
		case *draw.RectsOp:
			r.strokePath(dc, rectPath(op.Rects), op.Style)
		case *draw.TextOp:
			if err := r.text(dc, op); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) pt(p geom.Point) (float64, float64) {
	return p.X * r.scale, p.Y * r.scale
}

func (r *pngRenderer) strokePath(dc *gg.Context, p geom.Path, s draw.Stroke) {
	if !finite(p) {
		return
	}
	red, green, blue := s.Color.Floats()
	dc.SetRGBA(red, green, blue, s.Alpha)
	dc.SetLineWidth(s.Width * r.scale)
	for _, seg := range p.Segments {
		switch seg.Kind {
		case geom.SegMove:
			dc.MoveTo(r.pt(seg.To))
		case geom.SegLine:
			dc.LineTo(r.pt(seg.To))
		case geom.SegQuad:
			cx, cy := r.pt(seg.C1)
			x, y := r.pt(seg.To)
			dc.QuadraticTo(cx, cy, x, y)
		case geom.SegCubic:
			c1x, c1y := r.pt(seg.C1)
			c2x, c2y := r.pt(seg.C2)
			x, y := r.pt(seg.To)
			dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case geom.SegClose:
			dc.ClosePath()
		}
	}
	dc.Stroke()
}

func (r *pngRenderer) text(dc *gg.Context, op *draw.TextOp) error {
	for _, p := range draw.Layout(op, r.measurer) {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		face, err := r.face(p.Font.Size * r.scale)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
		dc.SetRGB(p.Color.Floats())
		x, y := r.pt(geom.Pt(p.X, p.Y))
		dc.DrawString(p.Text, x, y)
	}
	return nil
}

func (r *pngRenderer) face(size float64) (font.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	f, err := fonts.NewFace(size)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	r.faces[size] = f
	return f, nil
}

// finite reports whether every point of p is a real number; the rasterizer
// is not given NaN or infinite coordinates.
func finite(p geom.Path) bool {
	for _, q := range p.Points() {
		if math.IsNaN(q.X) || math.IsNaN(q.Y) || math.IsInf(q.X, 0) || math.IsInf(q.Y, 0) {
			return false
		}
	}
	return true
}
