package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
	"github.com/jmclachlan11/boxbuilder/pkg/render/sink"
)

// schematicCommand draws the roll layout overview.
func (c *CLI) schematicCommand() *cobra.Command {
	var (
		flags    boxFlags
		output   string
		format   string
		printing bool
		width    float64
		noCache  bool
	)
	cmd := &cobra.Command{
		Use:   "schematic",
		Short: "Render the roll layout schematic",
		Example: `  boxbuilder schematic -m 920 -o layout.svg
  boxbuilder schematic -m AX -f png -o - > layout.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			in, err := c.inputs(cmd, &flags)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := pipeline.Options{Inputs: in, Width: width, Printing: printing, Formats: []string{format}}
			renderDefaults(&opts, cfg)
			if err := opts.Validate(); err != nil {
				return err
			}
			set, err := runner.Compute(ctx, opts)
			if err != nil {
				return err
			}
			a, err := runner.Schematic(ctx, set, format, opts)
			if err != nil {
				return err
			}
			if output == "" {
				output = a.Name
			}
			if err := writeOutput(cmd.OutOrStdout(), output, a.Data); err != nil {
				return err
			}
			if output != "-" {
				printArtifact(cmd.OutOrStdout(), output, a.Cached)
			}
			return nil
		},
	}
	flags.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default schematic.<format>)`)
	fs.StringVarP(&format, "format", "f", sink.FormatSVG, "svg, png or json")
	fs.BoolVar(&printing, "print", false, "use the printer-friendly palette")
	fs.Float64Var(&width, "width", 0, "drawing width in points (default from config)")
	fs.BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}
