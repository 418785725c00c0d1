package sink

import (
	"strconv"
	"strings"

	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/geom"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Formats lists the supported formats.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON}

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// ValidateFormat returns an UNSUPPORTED error for unknown formats.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeUnsupported, "unsupported format %q (use %s)", format, strings.Join(Formats, ", "))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fnum rounds to two decimals for compact markup.
func fnum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// PathData returns p as SVG path data.
func PathData(p geom.Path) string {
	var b strings.Builder
	pt := func(q geom.Point) {
		b.WriteString(fnum(q.X))
		b.WriteByte(' ')
		b.WriteString(fnum(q.Y))
	}
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Kind {
		case geom.SegMove:
			b.WriteString("M")
			pt(s.To)
		case geom.SegLine:
			b.WriteString("L")
			pt(s.To)
		case geom.SegQuad:
			b.WriteString("Q")
			pt(s.C1)
			b.WriteByte(' ')
			pt(s.To)
		case geom.SegCubic:
			b.WriteString("C")
			pt(s.C1)
			b.WriteByte(' ')
			pt(s.C2)
			b.WriteByte(' ')
			pt(s.To)
		case geom.SegClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func rectPath(rects []geom.Rect) geom.Path {
	var p geom.Path
	for _, r := range rects {
		c := r.Canon()
		last := p.MoveTo(geom.Pt(c.X, c.Y))
		last = p.LineTo(geom.Pt(last.X+c.W, last.Y))
		last = p.LineTo(geom.Pt(last.X, last.Y+c.H))
		p.LineTo(geom.Pt(last.X-c.W, last.Y))
		p.Close()
	}
	return p
}
