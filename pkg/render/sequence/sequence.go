// Package sequence renders the glue-up order of a box as a Graphviz diagram.
//
// Pieces are assembled bottom first, then the front/back edges, the
// left/right edges, the dividers and finally the top. [ToDOT] produces the
// DOT source; [RenderSVG] lays it out with the embedded Graphviz library.
//
//	dot := sequence.ToDOT(set, sequence.Options{Detailed: true})
//	svg, err := sequence.RenderSVG(ctx, dot)
package sequence

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
)

// Order is the glue-up order of the piece kinds.
var Order = []box.PieceKind{
	box.Bottom,
	box.FrontBackEdge,
	box.LeftRightEdge,
	box.ColumnDivider,
	box.RowDivider,
	box.Top,
}

// Options configures the diagram.
type Options struct {
	// Detailed adds quantity and cut dimensions to every step.
	Detailed bool
}

// Step is one assembly step.
type Step struct {
	Number int
	Piece  box.WoodPiece
}

// Steps returns the assembly steps for the pieces present in set.
func Steps(set box.Set) []Step {
	var steps []Step
	for _, k := range Order {
		if !set.Config.Has(k) {
			continue
		}
		steps = append(steps, Step{Number: len(steps) + 1, Piece: set.Piece(k)})
	}
	return steps
}

// ToDOT describes the assembly of set in Graphviz DOT format.
func ToDOT(set box.Set, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("\n")

	steps := Steps(set)
	for _, s := range steps {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(s), fmtLabel(s, opts.Detailed))
	}
	fmt.Fprintf(&buf, "  %q [label=%q, shape=doubleoctagon, fillcolor=lightgrey];\n", "box", "Box\n"+set.Config.Summary())

	buf.WriteString("\n")
	for i := 1; i < len(steps); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(steps[i-1]), nodeID(steps[i]))
	}
	if len(steps) > 0 {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(steps[len(steps)-1]), "box")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(s Step) string {
	return s.Piece.Kind.Slug()
}

func fmtLabel(s Step, detailed bool) string {
	label := strconv.Itoa(s.Number) + ". " + s.Piece.Title()
	if !detailed {
		return label
	}
	dims := []string{
		fraction.Inches(s.Piece.Length),
		fraction.Inches(s.Piece.Width),
		fraction.Inches(s.Piece.Height),
	}
	return fmt.Sprintf("%s\n%dx %s", label, s.Piece.Quantity, strings.Join(dims, " x "))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
