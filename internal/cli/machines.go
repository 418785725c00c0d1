package cli

import (
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
	"github.com/jmclachlan11/boxbuilder/pkg/machine"
	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
)

// machinesCommand lists and picks machine presets.
func (c *CLI) machinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "machines",
		Aliases: []string{"machine"},
		Short:   "List or pick machine roll presets",
	}
	cmd.AddCommand(c.machinesListCommand())
	cmd.AddCommand(c.machinesPickCommand())
	return cmd
}

func (c *CLI) machinesListCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List machine presets and their roll sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(machine.All())
			}
			return printMachines(out, machine.All())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// printMachines prints the presets with their sizes in fractional inches.
func printMachines(w io.Writer, machines []machine.Machine) error {
	rows := make([][]string, 0, len(machines))
	for _, m := range machines {
		l, d, err := m.Values()
		if err != nil {
			return fmt.Errorf("machine %s: %w", m.Name, err)
		}
		rows = append(rows, []string{m.Name, fraction.Inches(l), fraction.Inches(d)})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Machine", "Length", "Diameter").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return base.Inherit(styleHeader)
			}
			if col > 0 {
				return base.Foreground(colorWhite).Align(lipgloss.Right)
			}
			return base.Foreground(colorCyan)
		})
	fmt.Fprintln(w, t.Render())
	return nil
}

func (c *CLI) machinesPickCommand() *cobra.Command {
	var (
		flags boxFlags
		save  bool
	)
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a machine interactively and print its cut list",
		Long: `Pick opens a searchable list of machine presets. The chosen machine's
roll size is combined with the other box flags (or the stored prefs) and
its cut list is printed. Choosing Custom uses --length and --diameter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(NewMachineListModel(machine.All()), tea.WithContext(cmd.Context()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}
			fm, ok := finalModel.(MachineListModel)
			if !ok || fm.Selected == nil {
				printInfo(cmd.OutOrStdout(), "No machine selected")
				return nil
			}

			flags.machine = fm.Selected.Name
			if flags.machine != machine.Custom {
				flags.length, flags.diameter = "", ""
			}
			in, err := c.inputs(cmd, &flags)
			if err != nil {
				return err
			}
			set, err := pipeline.NewRunner(nil, nil, c.Logger).Compute(cmd.Context(), pipeline.Options{Inputs: in})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printCutList(out, set)

			if save && flags.machine != machine.Custom {
				if err := c.rememberMachine(flags.machine); err != nil {
					return err
				}
				printSuccess(out, "Saved %s as the default machine", flags.machine)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "remember the chosen machine in prefs")
	return cmd
}

// rememberMachine stores name as the default machine.
func (c *CLI) rememberMachine(name string) error {
	store, err := c.prefsStore()
	if err != nil {
		return err
	}
	p, err := store.Load()
	if err != nil {
		return err
	}
	p.Machine = name
	return store.Save(p)
}
