package machine

import (
	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
)

// Form is box input as typed by a user: measurements are fraction strings
// and the roll may come from a named preset.
type Form struct {
	RollCount int
	// Machine names a preset; its length and diameter fill empty fields.
	Machine   string
	Length    string
	Diameter  string
	Thickness string
	// Rows forces the row count when 1 or 2; 0 decides automatically.
	Rows int
}

// Resolve parses the form into validated inputs. The roll is named after
// the preset whose values it matches exactly and left unnamed otherwise.
func (f Form) Resolve() (box.Inputs, error) {
	if f.Machine != "" && f.Machine != Custom {
		m, err := Lookup(f.Machine)
		if err != nil {
			return box.Inputs{}, err
		}
		if f.Length == "" {
			f.Length = m.Length
		}
		if f.Diameter == "" {
			f.Diameter = m.Diameter
		}
	}

	in := box.Inputs{RollCount: f.RollCount}
	for _, field := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"roll length", f.Length, &in.RollLength},
		{"roll diameter", f.Diameter, &in.RollDiameter},
		{"wood thickness", f.Thickness, &in.WoodThickness},
	} {
		v, err := fraction.Parse(field.raw)
		if err != nil {
			return box.Inputs{}, errors.Wrap(errors.GetCode(err), err, "%s: %s", field.name, errors.UserMessage(err))
		}
		*field.dst = v
	}

	switch f.Rows {
	case 0:
	case 1, 2:
		in.Force = box.RowForce{Enabled: true, Count: f.Rows}
	default:
		return box.Inputs{}, errors.New(errors.ErrCodeInvalidInput, "rows must be 1 or 2, got %d", f.Rows)
	}

	in.Name = Match(in.RollLength, in.RollDiameter)
	if err := in.Validate(); err != nil {
		return box.Inputs{}, err
	}
	return in, nil
}
