package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/assembly"
	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
	"github.com/jmclachlan11/boxbuilder/pkg/render/sink"
)

// assemblyCommand exports the assembled box.
func (c *CLI) assemblyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assembly",
		Short: "Export the assembled box as a 3D mesh or a diagram",
	}
	cmd.AddCommand(c.assemblySTLCommand())
	cmd.AddCommand(c.assemblyDiagramCommand())
	return cmd
}

func (c *CLI) assemblySTLCommand() *cobra.Command {
	var (
		flags   boxFlags
		output  string
		cells   int
		noCache bool
	)
	cmd := &cobra.Command{
		Use:     "stl",
		Short:   "Write the assembled box as binary STL",
		Example: `  boxbuilder assembly stl -m 916 -o box.stl`,
		Args:    cobra.NoArgs,
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

			set, err := runner.Compute(ctx, pipeline.Options{Inputs: in})
			if err != nil {
				return err
			}
			spin := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Meshing box...")
			spin.Start()
			a, err := runner.STL(ctx, set, cells)
			spin.Stop()
			if err != nil {
				return err
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
	fs.StringVarP(&output, "output", "o", "box.stl", `output file, "-" for stdout`)
	fs.IntVar(&cells, "cells", assembly.DefaultMeshCells, "marching cubes resolution along the longest side")
	fs.BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

func (c *CLI) assemblyDiagramCommand() *cobra.Command {
	var (
		flags  boxFlags
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Write a Graphviz diagram of how the pieces fit together",
		Example: `  boxbuilder assembly diagram -m 916 -f svg -o assembly.svg
  boxbuilder assembly diagram -m 916 -o - | dot -Tpng > assembly.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, err := c.inputs(cmd, &flags)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(nil, nil, c.Logger)
			set, err := runner.Compute(ctx, pipeline.Options{Inputs: in})
			if err != nil {
				return err
			}
			a, err := runner.Diagram(ctx, set, format)
			if err != nil {
				return err
			}
			if output == "" {
				output = "assembly." + format
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
	fs.StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default assembly.<format>)`)
	fs.StringVarP(&format, "format", "f", pipeline.FormatDOT, "dot or "+sink.FormatSVG)
	return cmd
}
