package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
	"github.com/jmclachlan11/boxbuilder/pkg/render/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // directory receiving the artifacts
	formats   string   // comma-separated: svg, png, json
	pages     []string // page numbers from 1, or piece names; empty renders all
	printing  bool     // black-on-white palette
	schematic bool
	width     float64
	height    float64
	scale     float64
	noCache   bool
	refresh   bool
}

// options converts the flags into pipeline options. Pages become
// zero-based indexes.
func (o renderOpts) options() (pipeline.Options, error) {
	opts := pipeline.Options{
		Width:     o.width,
		Height:    o.height,
		Scale:     o.scale,
		Printing:  o.printing,
		Schematic: o.schematic,
		Refresh:   o.refresh,
		Formats:   parseFormats(o.formats),
	}
	for _, p := range o.pages {
		i, err := parsePage(p)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Pages = append(opts.Pages, i)
	}
	return opts, nil
}

// parsePage resolves "3" or "left-right" to a zero-based page index. Pages
// follow piece kind order, so a piece's page is its kind.
func parsePage(s string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n - 1, nil
	}
	kind, err := box.ParseKind(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidPage, err, "page %q is neither a number nor a piece", s)
	}
	return int(kind), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []string{sink.FormatSVG}
	}
	return out
}

// renderCommand draws piece pages, and optionally the schematic, to files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags boxFlags
		opts  = renderOpts{output: "."}
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render piece pages to SVG, PNG or JSON",
		Long: `Render draws one detail page per piece: a front view with dimension
lines, the depth edge, a scale bar and an isometric model of the piece.

Files are named page-<n>-<piece>.<format>; pages are numbered from 1.
--page takes a page number or a piece name such as column-divider.`,
		Example: `  boxbuilder render --machine 916 --format svg,png -o out/
  boxbuilder render -m 912.5 --page 1 --page left-right --print --schematic`,
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
			runner, err := c.newRunner(ctx, cfg, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			po, err := opts.options()
			if err != nil {
				return err
			}
			po.Inputs = in
			renderDefaults(&po, cfg)

			errOut := cmd.ErrOrStderr()
			prog := newProgress(loggerFromContext(ctx))
			spin := newSpinnerWithContext(ctx, errOut, "Rendering "+machineLabel(in.Roll())+" box...")
			spin.Start()
			result, err := runner.Execute(ctx, po)
			spin.Stop()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(opts.output, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "%s", result.Set.Config.Summary())
			for _, a := range result.Artifacts {
				path := filepath.Join(opts.output, a.Name)
				if err := os.WriteFile(path, a.Data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printArtifact(out, path, a.Cached)
			}
			printStats(out, result.Stats)
			prog.done(fmt.Sprintf("Wrote %d files", len(result.Artifacts)))
			return nil
		},
	}

	flags.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	fs.StringVarP(&opts.formats, "format", "f", sink.FormatSVG, "output formats: svg, png, json (comma-separated)")
	fs.StringSliceVarP(&opts.pages, "page", "p", nil, "page number from 1 or piece name, e.g. column-divider (repeatable; default all)")
	fs.BoolVar(&opts.printing, "print", false, "use the printer-friendly palette")
	fs.BoolVar(&opts.schematic, "schematic", false, "also render the schematic")
	fs.Float64Var(&opts.width, "width", 0, "page width in points (default from config)")
	fs.Float64Var(&opts.height, "height", 0, "page height in points (default from config)")
	fs.Float64Var(&opts.scale, "scale", 0, "PNG pixel ratio (default from config)")
	fs.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	fs.BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	return cmd
}
