// Package detail draws the technical drawing of one piece: a front view with
// a depth projection and color-coded dimension labels, a scale bar, the
// piece title and quantity, and a small isometric model of the box with the
// piece highlighted.
//
// Dimensions are ranked long, middle and short. The front rectangle shows the
// middle dimension across and the long dimension down; the short dimension is
// the depth, drawn at 45 degrees.
package detail

import (
	"math"
	"strconv"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
	"github.com/jmclachlan11/boxbuilder/pkg/geom"
	"github.com/jmclachlan11/boxbuilder/pkg/render/model"
)

const (
	shapeOffset    = 80.0 // canvas top to the top of the depth projection
	buffer         = 10.0 // gap between a shape and its label
	centerRect     = 16.0 // leftward shift of the front view
	centerModel    = 30.0 // rightward shift of the model
	lineWidth      = 1.0
	scaleTick      = 16.0
	scaleGap       = 30.0 // middle label to scale bar
	scaleLabelGap  = 4.0
	inchLabelGap   = 3.0
	modelGap       = 60.0 // scale bar to model
	modelShrink    = 1.4
	arrowOffset    = 30.0
	arrowLength    = 40.0
	arrowTipLength = 10.0
	arrowTipAngle  = 25.0 // degrees
	quantityX      = 40.0
	titleY         = 10.0
	statsX, statsY = 20.0, 20.0
)

// Fonts used on the drawing.
var (
	TitleFont     = draw.Font{Size: 24}
	DimensionFont = draw.Font{Size: 20}
	SmallFont     = draw.Font{Size: 14}
	TinyFont      = draw.Font{Size: 10}
	QuantityFont  = draw.Font{Size: 36}
	TimesFont     = draw.Font{Size: 28}
)

// Options configures a drawing.
type Options struct {
	Width, Height float64
	Printing      bool
	Measurer      draw.Measurer
	// Palette overrides the default chosen by Printing.
	Palette *draw.Palette
}

func (o Options) palette() draw.Palette {
	if o.Palette != nil {
		return *o.Palette
	}
	return draw.PaletteFor(o.Printing)
}

// ScaleMultiplier returns the inches between scale-bar ticks: the smallest
// whole number of inches at least minDist drawing units long, and never
// less than one.
func ScaleMultiplier(minDist, scale float64) float64 {
	m := math.Ceil(minDist / scale)
	if !(m >= 1) || math.IsInf(m, 0) {
		return 1
	}
	return m
}

type renderer struct {
	l       *draw.List
	m       draw.Measurer
	pal     draw.Palette
	opts    Options
	set     box.Set
	piece   box.WoodPiece
	classes Classes
}

// Render draws page of set. Pages are numbered from 0 in piece order; an
// absent page returns an INVALID_PAGE error.
func Render(set box.Set, page int, opts Options) (*draw.List, error) {
	piece, err := set.Page(page)
	if err != nil {
		return nil, err
	}
	if opts.Measurer == nil {
		opts.Measurer = draw.DefaultMeasurer()
	}
	r := &renderer{
		l:       draw.New(opts.Width, opts.Height),
		m:       opts.Measurer,
		pal:     opts.palette(),
		opts:    opts,
		set:     set,
		piece:   piece,
		classes: Classify(piece.Dimensions),
	}
	r.l.Background = r.pal.Background
	r.render()
	return r.l, nil
}

func (r *renderer) render() {
	w, h := r.opts.Width, r.opts.Height
	c := r.classes

	scale := math.Min(w/c.Middle.Value/2, h/c.Long.Value/2.8)
	sLong, sMid, sShort := c.Long.Value*scale, c.Middle.Value*scale, c.Short.Value*scale
	depth := sShort / math.Sqrt2

	// long label, left of the front view
	longRuns := r.dimensionRuns(c.Long, false)
	longSize := draw.TextSize(r.m, longRuns...)
	xLL := w/2 - (longSize.W+sMid+depth+buffer)/2 - centerRect
	r.l.Text(geom.R(xLL, shapeOffset+depth+sLong/2-longSize.H/2, longSize.W, longSize.H), draw.AlignCenter, longRuns...)

	rect := geom.Pt(xLL+longSize.W+buffer, shapeOffset+depth)

	// middle label, below
	midRuns := r.dimensionRuns(c.Middle, false)
	midSize := draw.TextSize(r.m, midRuns...)
	r.l.Text(geom.R(rect.X+sMid/2-midSize.W/2, rect.Y+sLong+buffer, midSize.W, midSize.H), draw.AlignCenter, midRuns...)

	// short label, above the depth projection
	shortRuns := r.dimensionRuns(c.Short, true)
	shortSize := draw.TextSize(r.m, shortRuns...)
	r.l.Text(geom.R(rect.X+depth+sMid/2-shortSize.W/2, rect.Y-depth-shortSize.H-buffer, shortSize.W, shortSize.H), draw.AlignCenter, shortRuns...)

	r.frontView(rect, sLong, sMid, sShort)

	scaleStart := r.scaleBar(rect.Y+sLong+buffer+midSize.H+scaleGap, scale)

	title := r.piece.Title()
	ts := draw.Size(r.m, title, TitleFont)
	r.l.Label(geom.R(w/2-ts.W/2, titleY, ts.W, ts.H), draw.AlignCenter, title, TitleFont, r.pal.Label)

	qty := []draw.Run{
		{Text: strconv.Itoa(r.piece.Quantity), Font: QuantityFont, Color: r.pal.Label},
		{Text: "x", Font: TimesFont, Color: r.pal.Label},
	}
	qs := draw.TextSize(r.m, qty...)
	r.l.Text(geom.R(quantityX, rect.Y+sLong+buffer+midSize.H-qs.H, qs.W, qs.H), draw.AlignLeft, qty...)

	r.model(scaleStart)

	if r.opts.Printing {
		r.stats()
	}
}

// dimensionRuns builds "<axis>: <fraction>"". The short label is set
// smaller and notes when the dimension is the wood thickness.
func (r *renderer) dimensionRuns(ms Measure, short bool) []draw.Run {
	col := r.classes.Of(ms.Axis).Color(r.pal)
	prefix, value := SmallFont, DimensionFont
	if short {
		prefix, value = TinyFont, SmallFont
	}
	text := " " + fraction.Inches(ms.Value)
	if short && ms.Value == r.set.Config.WoodThickness {
		text += " (wood thickness)"
	}
	return []draw.Run{
		{Text: ms.Axis.Letter() + ":", Font: prefix, Color: col},
		{Text: text, Font: value, Color: col},
	}
}

func (r *renderer) stroke(c draw.Color, pts ...geom.Point) {
	var p geom.Path
	for i := 0; i+1 < len(pts); i += 2 {
		p.Append(geom.Line(pts[i], pts[i+1]))
	}
	r.l.Stroke(p, draw.Solid(c, lineWidth))
}

func (r *renderer) frontView(o geom.Point, sLong, sMid, sShort float64) {
	tr := geom.Pt(o.X+sMid, o.Y)
	bl := geom.Pt(o.X, o.Y+sLong)
	br := geom.Pt(o.X+sMid, o.Y+sLong)

	r.stroke(r.pal.Middle, o, tr, bl, br)
	r.stroke(r.pal.Long, o, bl, tr, br)

	end := r.depthLine(o, sShort)
	r.stroke(r.pal.Middle, end, geom.Pt(end.X+sMid, end.Y))

	end = r.depthLine(tr, sShort-1)
	r.stroke(r.pal.Long, end, geom.Pt(end.X, end.Y+sLong))

	r.depthLine(br, sShort)
}

func (r *renderer) depthLine(from geom.Point, length float64) geom.Point {
	d := length / math.Sqrt2
	end := geom.Pt(from.X+d, from.Y-d)
	r.stroke(r.pal.Short, from, end)
	return end
}

// scaleBar draws the ruler centered on the canvas at height y and returns
// its start point.
func (r *renderer) scaleBar(y, scale float64) geom.Point {
	count, minDist := 3, 50.0
	if r.opts.Printing {
		count, minDist = 4, 70.0
	}
	mult := ScaleMultiplier(minDist, scale)
	step := scale * mult
	start := geom.Pt(r.opts.Width/2-step*float64(count)/2, y)

	var p geom.Path
	p.Append(geom.Line(start, geom.Pt(start.X+step*float64(count), start.Y)))
	for i := 0; i <= count; i++ {
		top := geom.Pt(start.X+step*float64(i), start.Y-scaleTick/2)
		bottom := geom.Pt(top.X, top.Y+scaleTick)
		p.Append(geom.Line(top, bottom))

		label := strconv.Itoa(int(float64(i) * mult))
		ls := draw.Size(r.m, label, SmallFont)
		r.l.Label(geom.R(bottom.X-ls.W/2, bottom.Y+scaleLabelGap, ls.W, ls.H), draw.AlignCenter, label, SmallFont, r.pal.Label)

		if i == count {
			is := draw.Size(r.m, "in.", SmallFont)
			r.l.Label(geom.R(bottom.X+ls.W/2+inchLabelGap, bottom.Y+scaleLabelGap, is.W, is.H), draw.AlignCenter, "in.", SmallFont, r.pal.Label)
		}
	}
	r.l.Stroke(p, draw.Solid(r.pal.Label, lineWidth))
	return start
}

func (r *renderer) model(scaleStart geom.Point) {
	md := r.set.ModelDimensions()
	angle := geom.Radians(r.piece.ModelAngle)
	cos, sin := math.Cos(angle), math.Sin(angle)

	s := r.opts.Width / (md.Length + md.Width) * cos / modelShrink
	sL, sW, sH := md.Length*s, md.Width*s, md.Height*s
	origin := geom.Pt(
		r.opts.Width/2-sW*cos/2+sL*cos/2+centerModel,
		scaleStart.Y+modelGap+(sL+sW)*sin,
	)

	p := model.FromSet(r.set, r.piece.Kind, origin, s, r.pal.Label)
	p.Angle = angle
	model.Render(r.l, p)

	center := geom.Pt(origin.X-sL*cos-arrowOffset, origin.Y+sH)
	r.arrow(center, geom.Pt(center.X, center.Y-arrowLength), 90, box.AxisHeight)
	r.arrow(center, geom.Pt(center.X-arrowLength*cos, center.Y-arrowLength*sin), 180-r.piece.ModelAngle, box.AxisLength)
	r.arrow(center, geom.Pt(center.X+arrowLength*cos, center.Y-arrowLength*sin), r.piece.ModelAngle, box.AxisWidth)
}

// arrow draws a direction arrow from tail to tip. angle is the arrow's
// direction in degrees, counter-clockwise from the positive x axis.
func (r *renderer) arrow(tail, tip geom.Point, angle float64, axis box.Axis) {
	col := r.classes.Of(axis).Color(r.pal)
	left := geom.Radians(angle - arrowTipAngle)
	right := geom.Radians(angle + arrowTipAngle)
	r.stroke(col,
		tail, tip,
		tip, geom.Pt(tip.X-arrowTipLength*math.Cos(left), tip.Y+arrowTipLength*math.Sin(left)),
		tip, geom.Pt(tip.X-arrowTipLength*math.Cos(right), tip.Y+arrowTipLength*math.Sin(right)),
	)
	letter := axis.Letter()
	ls := draw.Size(r.m, letter, SmallFont)
	r.l.Label(geom.R(tip.X+3, tip.Y+10, ls.W, ls.H), draw.AlignCenter, letter, SmallFont, col)
}

// Stats returns the printed summary lines for a set.
func Stats(set box.Set) string {
	s := "Rows: " + strconv.Itoa(set.Config.Rows) + "\n" +
		"Roll count: " + strconv.Itoa(set.Config.RollCount) + "\n" +
		"Roll length: " + fraction.Format(set.Roll.Length) + " in.\n" +
		"Roll diameter: " + fraction.Format(set.Roll.Diameter) + " in."
	if set.Roll.Name != "" {
		s = "Machine: " + set.Roll.Name + "\n" + s
	}
	return s
}

func (r *renderer) stats() {
	text := Stats(r.set)
	sz := draw.Size(r.m, text, SmallFont)
	r.l.Label(geom.R(statsX, statsY, sz.W, sz.H), draw.AlignLeft, text, SmallFont, r.pal.Label)
}
