package sink

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/fonts"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	measurer  draw.Measurer
	embedFont bool
}

// WithMeasurer sets the measurer used to place text.
func WithMeasurer(m draw.Measurer) SVGOption { return func(r *svgRenderer) { r.measurer = m } }

// WithoutFontEmbedding leaves the font out of the document. Viewers fall
// back to FallbackFontFamily, which may shift labels slightly.
func WithoutFontEmbedding() SVGOption { return func(r *svgRenderer) { r.embedFont = false } }

// RenderSVG writes l as an SVG document.
func RenderSVG(l *draw.List, opts ...SVGOption) []byte {
	r := svgRenderer{measurer: draw.DefaultMeasurer(), embedFont: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	w, h := pixels(l.Width), pixels(l.Height)
	canvas.Start(w, h, fmt.Sprintf(`viewBox="0 0 %s %s"`, fnum(l.Width), fnum(l.Height)))

	if r.embedFont {
		canvas.Def()
		canvas.Style("text/css", fmt.Sprintf(
			"@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
			fonts.FontFamily, fonts.RegularBase64()))
		canvas.DefEnd()
	}
	canvas.Rect(0, 0, w, h, "fill:"+l.Background.Hex())

	for _, op := range l.Ops {
		switch op := op.(type) {
		case *draw.StrokeOp:
			canvas.Path(PathData(op.Path), strokeStyle(op.Style))
		case *draw.RectsOp:
			canvas.Path(PathData(rectPath(op.Rects)), strokeStyle(op.Style))
		case *draw.TextOp:
			for _, p := range draw.Layout(op, r.measurer) {
				canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", fnum(p.X), fnum(p.Y)))
				canvas.Text(0, 0, p.Text, textAttrs(p.Run))
				canvas.Gend()
			}
		}
	}

	canvas.End()
	return buf.Bytes()
}

func pixels(v float64) int {
	if !(v > 0) || math.IsInf(v, 0) {
		return 1
	}
	return int(math.Ceil(v))
}

func strokeStyle(s draw.Stroke) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-opacity:%s;stroke-linecap:round;stroke-linejoin:round",
		s.Color.Hex(), num(s.Width), num(s.Alpha))
}

// textAttrs contains "=", so svgo emits it as raw attributes rather than a
// style value.
func textAttrs(r draw.Run) string {
	return fmt.Sprintf(`xml:space="preserve" style="font-family:%s;font-size:%spx;fill:%s"`,
		fonts.FallbackFontFamily, num(r.Font.Size), r.Color.Hex())
}
