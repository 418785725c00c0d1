package schematic

import (
	"testing"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/geom"
)

func TestCellCounts(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		rows       int
		wantCells  int
		wantHeight float64
	}{
		{"six one row", 6, 1, 6, 140},
		{"six two rows", 6, 2, 6, 240},
		{"ten two rows", 10, 2, 10, 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := box.Config{RollCount: tt.count, Rows: tt.rows, WoodThickness: 0.5}
			cells := Cells(cfg, 200)
			if len(cells) != tt.wantCells {
				t.Errorf("len(Cells) = %d, want %d", len(cells), tt.wantCells)
			}
			if got := len(RollCenters(cfg, 200)); got != tt.wantCells {
				t.Errorf("len(RollCenters) = %d, want %d", got, tt.wantCells)
			}
			if got := Height(tt.rows); got != tt.wantHeight {
				t.Errorf("Height = %v, want %v", got, tt.wantHeight)
			}
		})
	}
}

func TestCellsAreSymmetricAndDisjoint(t *testing.T) {
	for _, cfg := range []box.Config{
		{RollCount: 6, Rows: 1},
		{RollCount: 6, Rows: 2},
		{RollCount: 10, Rows: 2},
	} {
		mid := 300.0
		cells := Cells(cfg, mid)
		var sumX float64
		for i, a := range cells {
			if a.W != CellWidth || a.H != CellHeight {
				t.Errorf("%+v: cell %d not canonical: %+v", cfg, i, a)
			}
			sumX += a.Center().X
			for j, b := range cells[i+1:] {
				if overlaps(a, b) {
					t.Errorf("%+v: cells %d and %d overlap", cfg, i, i+1+j)
				}
			}
		}
		if avg := sumX / float64(len(cells)); !near(avg, mid) {
			t.Errorf("%+v: grid centered at %v, want %v", cfg, avg, mid)
		}
	}
}

func TestRollCentersInsideCells(t *testing.T) {
	cfg := box.Config{RollCount: 10, Rows: 2}
	cells := Cells(cfg, 250)
	for _, c := range RollCenters(cfg, 250) {
		found := false
		for _, r := range cells {
			if near(r.Center().X, c.X) && c.Y-r.Y == rollOffset {
				found = true
			}
		}
		if !found {
			t.Errorf("roll at %v has no cell", c)
		}
	}
}

func TestRollIsMirrored(t *testing.T) {
	tc := geom.Pt(100, 29)
	outline, fills := rollHalf(tc)
	if len(fills) != 3 {
		t.Fatalf("got %d fills", len(fills))
	}
	end, ok := outline.Last()
	if !ok || end.X != tc.X {
		t.Errorf("outline ends at %v, want x = %v", end, tc.X)
	}
	if !near(end.Y-tc.Y, 83) {
		t.Errorf("roll height = %v, want 83", end.Y-tc.Y)
	}
	for _, p := range outline.Points() {
		if p.X < tc.X || p.X > tc.X+CellWidth/2 {
			t.Errorf("right half point %v leaves its half cell", p)
		}
	}

	l := draw.New(400, 200)
	drawRoll(l, tc, draw.Solid(draw.Gray, rollStroke))
	if len(l.Ops) != 8 {
		t.Fatalf("drawRoll emitted %d ops, want 8", len(l.Ops))
	}
	left := l.Ops[0].(*draw.StrokeOp).Path.Points()
	right := l.Ops[4].(*draw.StrokeOp).Path.Points()
	for i := range left {
		if !geom.Near(left[i], geom.FlipX(right[i], tc.X), 1e-9) {
			t.Fatalf("point %d: %v is not the mirror of %v", i, left[i], right[i])
		}
	}
}

func TestRender(t *testing.T) {
	cfg := box.Config{RollCount: 6, Rows: 1, WoodThickness: 0.5}
	l := Render(cfg, Options{Width: 400, Palette: draw.ScreenPalette})
	strokes, rects, texts := l.Count()
	if rects != 1 || strokes != 6*8 || texts != 0 {
		t.Errorf("Count() = %d strokes, %d rects, %d texts", strokes, rects, texts)
	}
	if l.Height != 140 || l.Width != 400 {
		t.Errorf("canvas = %v x %v", l.Width, l.Height)
	}
}

func overlaps(a, b geom.Rect) bool {
	const eps = 1e-9
	return a.X+a.W > b.X+eps && b.X+b.W > a.X+eps && a.Y+a.H > b.Y+eps && b.Y+b.H > a.Y+eps
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
