package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/config"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/machine"
)

// boxFlags are the box inputs shared by every command that builds a box.
// Unset flags fall back to the stored prefs.
type boxFlags struct {
	count     int
	machine   string
	length    string
	diameter  string
	thickness string
	rows      int
}

func (f *boxFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.count, "count", "n", 0, "number of rolls: 6 or 10")
	fs.StringVarP(&f.machine, "machine", "m", "", "machine preset supplying the roll size (see 'machines list')")
	fs.StringVarP(&f.length, "length", "l", "", `roll length in inches, e.g. "5 3/16"`)
	fs.StringVarP(&f.diameter, "diameter", "d", "", "roll diameter in inches")
	fs.StringVarP(&f.thickness, "thickness", "t", "", `wood thickness in inches, e.g. "1/2"`)
	fs.IntVar(&f.rows, "rows", 0, "force 1 or 2 rows (0 decides from the roll length)")
}

// form merges the flags over prefs. The stored machine is used only when
// no roll size was given on the command line.
func (f *boxFlags) form(cmd *cobra.Command, p config.Prefs) machine.Form {
	form := machine.Form{
		RollCount: f.count,
		Machine:   f.machine,
		Length:    f.length,
		Diameter:  f.diameter,
		Thickness: f.thickness,
		Rows:      f.rows,
	}
	if !cmd.Flags().Changed("count") {
		form.RollCount = p.RollCount
	}
	if form.Thickness == "" {
		form.Thickness = p.WoodThickness
	}
	if !cmd.Flags().Changed("rows") && p.Force.Enabled {
		form.Rows = p.Force.Count
	}
	if form.Machine == "" && form.Length == "" && form.Diameter == "" {
		form.Machine = p.Machine
	}
	return form
}

// resolve returns validated inputs from the flags and prefs.
func (f *boxFlags) resolve(cmd *cobra.Command, p config.Prefs) (box.Inputs, error) {
	form := f.form(cmd, p)
	if form.Machine == "" && (form.Length == "" || form.Diameter == "") {
		return box.Inputs{}, errors.New(errors.ErrCodeInvalidInput,
			"no roll size: pass --machine, or --length and --diameter")
	}
	return form.Resolve()
}

// inputs resolves the box flags against the stored prefs.
func (c *CLI) inputs(cmd *cobra.Command, f *boxFlags) (box.Inputs, error) {
	in, err := f.resolve(cmd, c.loadPrefs())
	if err != nil {
		return box.Inputs{}, err
	}
	c.Logger.Debug("box inputs", "rolls", in.RollCount, "length", in.RollLength, "diameter", in.RollDiameter, "thickness", in.WoodThickness)
	return in, nil
}
