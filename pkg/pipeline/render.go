package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jmclachlan11/boxbuilder/pkg/assembly"
	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/render/detail"
	"github.com/jmclachlan11/boxbuilder/pkg/render/schematic"
	"github.com/jmclachlan11/boxbuilder/pkg/render/sequence"
	"github.com/jmclachlan11/boxbuilder/pkg/render/sink"
)

// Diagram formats.
const (
	FormatDOT = "dot"
)

// RenderPage draws one page of set and encodes it.
func RenderPage(set box.Set, page int, format string, opts Options) ([]byte, error) {
	l, err := detail.Render(set, page, detail.Options{
		Width:    opts.Width,
		Height:   opts.Height,
		Printing: opts.Printing,
		Measurer: opts.Measurer,
	})
	if err != nil {
		return nil, err
	}
	return Encode(l, format, opts)
}

// RenderSchematic draws the top-down schematic of set and encodes it.
func RenderSchematic(set box.Set, format string, opts Options) ([]byte, error) {
	l := schematic.Render(set.Config, schematic.Options{
		Width:   opts.Width,
		Palette: draw.PaletteFor(opts.Printing),
	})
	return Encode(l, format, opts)
}

// Encode writes l in format.
func Encode(l *draw.List, format string, opts Options) ([]byte, error) {
	switch format {
	case sink.FormatSVG:
		var so []sink.SVGOption
		if opts.Measurer != nil {
			so = append(so, sink.WithMeasurer(opts.Measurer))
		}
		return sink.RenderSVG(l, so...), nil
	case sink.FormatPNG:
		po := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if opts.Measurer != nil {
			po = append(po, sink.WithPNGMeasurer(opts.Measurer))
		}
		return sink.RenderPNG(l, po...)
	case sink.FormatJSON:
		var jo []sink.JSONOption
		if opts.Measurer != nil {
			jo = append(jo, sink.WithJSONMeasurer(opts.Measurer))
		}
		return sink.RenderJSON(l, jo...)
	}
	return nil, sink.ValidateFormat(format)
}

// RenderSTL meshes the assembled box. cells below 1 uses the default
// resolution.
func RenderSTL(set box.Set, cells int) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := assembly.WriteSTL(&buf, assembly.Layout(set), cells); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDiagram draws the glue-up sequence as DOT source or SVG.
func RenderDiagram(ctx context.Context, set box.Set, format string) ([]byte, error) {
	dot := sequence.ToDOT(set, sequence.Options{Detailed: true})
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case sink.FormatSVG:
		return sequence.RenderSVG(ctx, dot)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported diagram format %q (use dot, svg)", format)
}
