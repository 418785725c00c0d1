package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/config"
	"github.com/jmclachlan11/boxbuilder/pkg/machine"
)

// prefsCommand manages the remembered box inputs.
func (c *CLI) prefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show, set or reset the remembered inputs",
		Long: `Prefs are the roll count, row override, wood thickness and machine used
when the matching flags are not given. They are stored in prefs.toml in the
config directory.`,
	}
	cmd.AddCommand(c.prefsShowCommand())
	cmd.AddCommand(c.prefsSetCommand())
	cmd.AddCommand(c.prefsResetCommand())
	return cmd
}

func (c *CLI) prefsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored prefs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.prefsStore()
			if err != nil {
				return err
			}
			p, err := store.Load()
			if err != nil {
				return err
			}
			printPrefs(cmd.OutOrStdout(), p)
			printDetail(cmd.OutOrStdout(), "File: %s", store.Path())
			return nil
		},
	}
}

func printPrefs(w io.Writer, p config.Prefs) {
	rows := "auto"
	if p.Force.Enabled {
		rows = strconv.Itoa(p.Force.Count)
	}
	m := p.Machine
	if m == "" {
		m = "none"
	}
	printKeyValue(w, "Rolls", strconv.Itoa(p.RollCount))
	printKeyValue(w, "Rows", rows)
	printKeyValue(w, "Thickness", p.WoodThickness)
	printKeyValue(w, "Machine", m)
}

func (c *CLI) prefsSetCommand() *cobra.Command {
	var (
		count     int
		rows      int
		thickness string
		name      string
	)
	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Update the stored prefs",
		Example: `  boxbuilder prefs set --count 10 --thickness 3/4 --machine 916`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.prefsStore()
			if err != nil {
				return err
			}
			p, err := store.Load()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("count") {
				p.RollCount = count
			}
			if fs.Changed("rows") {
				switch rows {
				case 0:
					p.Force = box.RowForce{Enabled: false, Count: p.Force.Count}
				default:
					p.Force = box.RowForce{Enabled: true, Count: rows}
				}
			}
			if fs.Changed("thickness") {
				p.WoodThickness = thickness
			}
			if fs.Changed("machine") {
				if name != "" {
					m, err := machine.Lookup(name)
					if err != nil {
						return err
					}
					name = m.Name
				}
				p.Machine = name
			}
			if err := store.Save(p); err != nil {
				return fmt.Errorf("save prefs: %w", err)
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Saved prefs")
			printPrefs(out, p)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&count, "count", "n", box.SixRolls, "number of rolls: 6 or 10")
	fs.IntVar(&rows, "rows", 0, "force 1 or 2 rows; 0 decides automatically")
	fs.StringVarP(&thickness, "thickness", "t", "", "wood thickness in inches")
	fs.StringVarP(&name, "machine", "m", "", `default machine ("" clears it)`)
	return cmd
}

func (c *CLI) prefsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored prefs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.prefsStore()
			if err != nil {
				return err
			}
			if err := store.Reset(); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Prefs reset to defaults")
			return nil
		},
	}
}
