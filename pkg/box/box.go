package box

import (
	"fmt"

	"github.com/jmclachlan11/boxbuilder/pkg/errors"
)

const (
	// Tolerance is the clearance added per fit, in inches.
	Tolerance = 1.0 / 8.0

	// MaxSingleRowLength is the longest roll that fits a 1-row box.
	MaxSingleRowLength = 8.0

	// ModelAngle is the isometric projection angle, in degrees, used for
	// every piece's embedded model.
	ModelAngle = 35.0
)

// Supported roll counts.
const (
	SixRolls = 6
	TenRolls = 10
)

// Roll is the stock being stored. An empty Name means the roll size did not
// match a named machine.
type Roll struct {
	Name     string  `json:"name,omitempty" toml:"name,omitempty"`
	Length   float64 `json:"length" toml:"length"`
	Diameter float64 `json:"diameter" toml:"diameter"`
}

// RowForce overrides the automatic row decision when Enabled.
type RowForce struct {
	Enabled bool `json:"enabled" toml:"enabled"`
	Count   int  `json:"count" toml:"count"`
}

// Inputs are the validated values a box is derived from.
type Inputs struct {
	RollCount     int      `json:"roll_count"`
	RollLength    float64  `json:"roll_length"`
	RollDiameter  float64  `json:"roll_diameter"`
	WoodThickness float64  `json:"wood_thickness"`
	Force         RowForce `json:"force,omitempty"`
	Name          string   `json:"name,omitempty"`
}

// Validate checks the combination of inputs. Individual measurements are
// expected to come from fraction.Parse, which enforces their range; this
// method rejects what only makes sense in combination.
func (in Inputs) Validate() error {
	if err := errors.ValidateChoice("roll count", in.RollCount, SixRolls, TenRolls); err != nil {
		return err
	}
	for _, m := range []struct {
		field string
		v     float64
	}{
		{"roll length", in.RollLength},
		{"roll diameter", in.RollDiameter},
		{"wood thickness", in.WoodThickness},
	} {
		if !(m.v > 0) {
			return errors.New(errors.ErrCodeOutOfRange, "%s must be positive", m.field)
		}
	}
	if in.Force.Enabled {
		if err := errors.ValidateChoice("forced row count", in.Force.Count, 1, 2); err != nil {
			return err
		}
		if in.RollCount == TenRolls && in.Force.Count == 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "invalid configuration: 10 rolls, 1 row")
		}
	}
	return errors.ValidateName(in.Name)
}

// Roll returns the roll described by the inputs.
func (in Inputs) Roll() Roll {
	return Roll{Name: in.Name, Length: in.RollLength, Diameter: in.RollDiameter}
}

// Config is the derived box configuration.
type Config struct {
	WoodThickness float64 `json:"wood_thickness"`
	RollCount     int     `json:"roll_count"`
	Rows          int     `json:"rows"`
}

// RowsFor decides the row count. Two rows are used when the roll is longer
// than MaxSingleRowLength, when the box holds ten rolls, or when the user
// forces two rows; forcing one row overrides all of these.
func RowsFor(rollLength float64, rollCount int, force RowForce) int {
	if force.Enabled && force.Count == 1 {
		return 1
	}
	if rollLength > MaxSingleRowLength || rollCount == TenRolls || (force.Enabled && force.Count == 2) {
		return 2
	}
	return 1
}

// NewConfig derives the configuration from inputs.
func NewConfig(in Inputs) Config {
	return Config{
		WoodThickness: in.WoodThickness,
		RollCount:     in.RollCount,
		Rows:          RowsFor(in.RollLength, in.RollCount, in.Force),
	}
}

// Has reports whether the box contains the piece kind. The row divider only
// exists in 2-row boxes.
func (c Config) Has(kind PieceKind) bool {
	if kind == RowDivider {
		return c.Rows == 2
	}
	return kind.Valid()
}

// PageCount returns the number of piece drawings: one per present kind.
func (c Config) PageCount() int {
	if c.Rows == 1 {
		return 5
	}
	return 6
}

// Summary returns the one-line configuration label.
func (c Config) Summary() string {
	return fmt.Sprintf("Rolls: %d, Rows: %d", c.RollCount, c.Rows)
}

// ModelColumnDividers returns how many column dividers the isometric model
// draws across the width of the box.
func ModelColumnDividers(c Config) int {
	switch {
	case c.RollCount == TenRolls:
		return 4
	case c.Rows == 2:
		return 2
	default:
		return 5
	}
}

// Set is the complete result for one set of inputs: the configuration, the
// roll and all six pieces in PieceKind order.
type Set struct {
	Config Config       `json:"config"`
	Roll   Roll         `json:"roll"`
	Pieces [6]WoodPiece `json:"pieces"`
}

// NewSet validates the inputs and computes every piece.
func NewSet(in Inputs) (Set, error) {
	if err := in.Validate(); err != nil {
		return Set{}, err
	}
	return Build(NewConfig(in), in.Roll()), nil
}

// Build computes every piece for a configuration without validating it.
func Build(cfg Config, roll Roll) Set {
	s := Set{Config: cfg, Roll: roll}
	for i, k := range Kinds {
		s.Pieces[i] = NewPiece(k, cfg, roll)
	}
	return s
}

// Piece returns the piece of the given kind.
func (s Set) Piece(kind PieceKind) WoodPiece {
	if !kind.Valid() {
		return WoodPiece{Kind: kind}
	}
	return s.Pieces[kind]
}

// PageCount returns the number of drawing pages.
func (s Set) PageCount() int { return s.Config.PageCount() }

// Page returns the piece drawn on page i.
func (s Set) Page(i int) (WoodPiece, error) {
	if i < 0 || i >= s.PageCount() {
		return WoodPiece{}, errors.New(errors.ErrCodeInvalidPage, "page %d does not exist (box has %d pages)", i, s.PageCount())
	}
	return s.Pieces[i], nil
}

// CutList returns the pieces present in the box, in page order.
func (s Set) CutList() []WoodPiece {
	out := make([]WoodPiece, 0, len(s.Pieces))
	for _, p := range s.Pieces {
		if s.Config.Has(p.Kind) {
			out = append(out, p)
		}
	}
	return out
}

// ModelDimensions returns the outer length, width and height used to draw
// the isometric model: the top's length and width and the edge height.
func (s Set) ModelDimensions() Dimensions {
	top, edge := s.Pieces[Top], s.Pieces[LeftRightEdge]
	return Dimensions{Length: top.Length, Width: top.Width, Height: edge.Height}
}
