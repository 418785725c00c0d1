package box

import (
	"strings"

	"github.com/jmclachlan11/boxbuilder/pkg/errors"
)

// PieceKind identifies one of the six pieces of a box. The numeric order is
// the drawing page order.
type PieceKind int

const (
	Top PieceKind = iota
	Bottom
	LeftRightEdge
	FrontBackEdge
	ColumnDivider
	RowDivider
)

// Kinds lists every piece kind in page order.
var Kinds = [...]PieceKind{Top, Bottom, LeftRightEdge, FrontBackEdge, ColumnDivider, RowDivider}

var kindTitles = [...]string{"Top", "Bottom", "Left / Right", "Front / Back", "Column Divider", "Row Divider"}

var kindSlugs = [...]string{"top", "bottom", "left-right", "front-back", "column-divider", "row-divider"}

// String returns the page title of the piece.
func (k PieceKind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindTitles[k]
}

// Slug returns a lowercase identifier suitable for file names and URLs.
func (k PieceKind) Slug() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindSlugs[k]
}

// Valid reports whether k is one of the six piece kinds.
func (k PieceKind) Valid() bool {
	return k >= Top && k <= RowDivider
}

// ParseKind resolves a slug or title ("column-divider", "Column Divider")
// to its piece kind.
func ParseKind(s string) (PieceKind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds {
		if strings.EqualFold(s, k.Slug()) || strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown piece %q", s)
}

// Axis names one of the three dimensions of a piece.
type Axis int

const (
	AxisLength Axis = iota
	AxisWidth
	AxisHeight
)

// Letter returns the single-letter label used on drawings.
func (a Axis) Letter() string {
	switch a {
	case AxisLength:
		return "L"
	case AxisWidth:
		return "W"
	case AxisHeight:
		return "H"
	}
	return "?"
}

func (a Axis) String() string {
	switch a {
	case AxisLength:
		return "length"
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	}
	return "unknown"
}

// Dimensions are the cut sizes of one piece, in inches.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Get returns the value along axis a.
func (d Dimensions) Get(a Axis) float64 {
	switch a {
	case AxisLength:
		return d.Length
	case AxisWidth:
		return d.Width
	default:
		return d.Height
	}
}

// Volume returns length*width*height in cubic inches.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// WoodPiece is one line of the cut list.
type WoodPiece struct {
	Kind       PieceKind `json:"kind"`
	Quantity   int       `json:"quantity"`
	ModelAngle float64   `json:"model_angle"`
	Dimensions
}

// Title returns the page title of the piece.
func (p WoodPiece) Title() string { return p.Kind.String() }

// Compute returns the cut dimensions of one piece kind. It is pure and
// total: terms are accumulated in a fixed order so repeated calls are
// bit-identical, and degenerate inputs yield degenerate numbers rather than
// errors.
func Compute(kind PieceKind, cfg Config, roll Roll) Dimensions {
	return Dimensions{
		Length: length(kind, cfg, roll),
		Width:  width(kind, cfg, roll),
		Height: height(kind, cfg, roll),
	}
}

func length(kind PieceKind, cfg Config, roll Roll) float64 {
	switch kind {
	case FrontBackEdge, RowDivider:
		return cfg.WoodThickness
	case ColumnDivider:
		return roll.Length + 2*Tolerance
	}

	n := roll.Length
	if kind == Top {
		n += 2 * cfg.WoodThickness
	}
	n += 2 * Tolerance
	if cfg.Rows == 2 {
		n += roll.Length
		n += cfg.WoodThickness
		n += 2 * Tolerance
	}
	return n
}

func width(kind PieceKind, cfg Config, roll Roll) float64 {
	switch kind {
	case LeftRightEdge, ColumnDivider:
		return cfg.WoodThickness
	}

	half := float64(cfg.RollCount) / 2
	offset := 1.0
	if kind == Bottom || kind == RowDivider {
		offset = -1
	}

	n := half * roll.Diameter
	n += (half + offset) * cfg.WoodThickness
	n += Tolerance
	if cfg.Rows == 1 {
		// One row holds both halves side by side.
		n += half * roll.Diameter
		n += half * cfg.WoodThickness
	}
	return n
}

func height(kind PieceKind, cfg Config, roll Roll) float64 {
	switch kind {
	case Top, Bottom:
		return cfg.WoodThickness
	}

	n := roll.Diameter
	if kind == LeftRightEdge || kind == FrontBackEdge {
		n += cfg.WoodThickness
	}
	n += Tolerance
	return n
}

// Quantity returns how many of a piece kind the box needs. RowDivider
// reports 1; whether it is part of the box at all is decided by
// [Config.Has].
func Quantity(kind PieceKind, cfg Config) int {
	switch kind {
	case LeftRightEdge, FrontBackEdge:
		return 2
	case ColumnDivider:
		switch {
		case cfg.Rows == 1:
			return 5
		case cfg.RollCount == 6:
			return 4
		default:
			return 8
		}
	}
	return 1
}

// NewPiece computes a complete cut-list entry.
func NewPiece(kind PieceKind, cfg Config, roll Roll) WoodPiece {
	return WoodPiece{
		Kind:       kind,
		Quantity:   Quantity(kind, cfg),
		ModelAngle: ModelAngle,
		Dimensions: Compute(kind, cfg, roll),
	}
}
