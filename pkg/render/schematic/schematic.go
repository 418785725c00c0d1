// Package schematic draws the top-down overview of a box: one cell per roll
// slot with a roll icon in each.
//
// One-row boxes place count/2 cells on each side of the canvas center. Two-row
// boxes stack two cells on the center line and count/4 cell pairs to each
// side of them, in both rows.
package schematic

import (
	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/geom"
)

const (
	CellWidth  = 55.0
	CellHeight = 100.0
	YOffset    = 20.0 // canvas top to grid top

	gridStroke = 3.0
	rollStroke = 2.0
	rollOffset = 9.0 // cell top to roll top
)

// Options configures the schematic.
type Options struct {
	Width   float64 // canvas width; the grid is centered on Width/2
	Palette draw.Palette
}

// Height returns the canvas height needed for a box with the given rows.
func Height(rows int) float64 {
	return 2*YOffset + float64(max(rows, 1))*CellHeight
}

// Render draws the grid and rolls for cfg.
func Render(cfg box.Config, opts Options) *draw.List {
	l := draw.New(opts.Width, Height(cfg.Rows))
	l.Background = opts.Palette.Background
	mid := opts.Width / 2

	l.Rects(draw.Solid(opts.Palette.Label, gridStroke), Cells(cfg, mid)...)

	roll := draw.Solid(opts.Palette.Roll, rollStroke)
	for _, c := range RollCenters(cfg, mid) {
		drawRoll(l, c, roll)
	}
	return l
}

// Cells returns the grid cells, canonical, for a grid centered on mid.
func Cells(cfg box.Config, mid float64) []geom.Rect {
	var cells []geom.Rect
	if cfg.Rows == 1 {
		for i := 0; i < cfg.RollCount/2; i++ {
			off := float64(i) * CellWidth
			cells = append(cells,
				geom.R(mid-off, YOffset, -CellWidth, CellHeight).Canon(),
				geom.R(mid+off, YOffset, CellWidth, CellHeight),
			)
		}
		return cells
	}

	half := CellWidth / 2
	cells = append(cells,
		geom.R(mid-half, YOffset, CellWidth, CellHeight),
		geom.R(mid-half, YOffset+CellHeight, CellWidth, CellHeight),
	)
	for i := 0; i < cfg.RollCount/4; i++ {
		off := float64(i) * CellWidth
		for _, y := range []float64{YOffset, YOffset + CellHeight} {
			cells = append(cells,
				geom.R(mid-half-off, y, -CellWidth, CellHeight).Canon(),
				geom.R(mid+half+off, y, CellWidth, CellHeight),
			)
		}
	}
	return cells
}

// RollCenters returns the top center of every roll icon.
func RollCenters(cfg box.Config, mid float64) []geom.Point {
	top := YOffset + rollOffset
	var pts []geom.Point
	if cfg.Rows == 1 {
		for i := 0; i < cfg.RollCount/2; i++ {
			off := float64(i)*CellWidth + CellWidth/2
			pts = append(pts, geom.Pt(mid-off, top), geom.Pt(mid+off, top))
		}
		return pts
	}

	pts = append(pts, geom.Pt(mid, top), geom.Pt(mid, top+CellHeight))
	for i := 0; i < cfg.RollCount/4; i++ {
		off := float64(i+1) * CellWidth
		pts = append(pts,
			geom.Pt(mid-off, top), geom.Pt(mid+off, top),
			geom.Pt(mid-off, top+CellHeight), geom.Pt(mid+off, top+CellHeight),
		)
	}
	return pts
}

func drawRoll(l *draw.List, tc geom.Point, s draw.Stroke) {
	outline, fills := rollHalf(tc)
	mirror := func(p geom.Point) geom.Point { return geom.FlipX(p, tc.X) }

	l.Stroke(outline.Map(mirror), s)
	for _, f := range fills {
		l.Stroke(f.path.Map(mirror), draw.Solid(s.Color, f.width))
	}
	l.Stroke(outline, s)
	for _, f := range fills {
		l.Stroke(f.path, draw.Solid(s.Color, f.width))
	}
}
