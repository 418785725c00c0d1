package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
	"github.com/jmclachlan11/boxbuilder/pkg/server"
)

// cutlistCommand prints the pieces of a box.
func (c *CLI) cutlistCommand() *cobra.Command {
	var (
		flags  boxFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "cutlist",
		Short: "Print the cut list of a box",
		Example: `  boxbuilder cutlist --machine 912.5
  boxbuilder cutlist -n 10 -l "5 3/16" -d 2.03 -t 3/4 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.inputs(cmd, &flags)
			if err != nil {
				return err
			}
			set, err := pipeline.NewRunner(nil, nil, c.Logger).Compute(cmd.Context(), pipeline.Options{Inputs: in})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(server.NewCutListResponse(set))
			}
			printCutList(out, set)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
