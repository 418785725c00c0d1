// Package pipeline turns box inputs into rendered artifacts.
//
// It is the one place where the CLI and the HTTP server meet the engine and
// the renderers: inputs are validated and computed into a [box.Set], each
// requested page is drawn into a display list and encoded by a sink, and
// every set and artifact goes through the cache.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Inputs:  box.Inputs{RollCount: 6, RollLength: 3, RollDiameter: 1.132, WoodThickness: 0.5},
//	    Formats: []string{"svg", "png"},
//	})
//	for _, a := range result.Artifacts {
//	    os.WriteFile(a.Name, a.Data, 0o644)
//	}
package pipeline

import (
	"fmt"
	"time"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/cache"
	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/render/sink"
)

const (
	DefaultWidth  = 800.0
	DefaultHeight = 1000.0
	DefaultScale  = 2.0

	// MaxCanvas bounds width and height in points, and each side of a PNG
	// raster (size times scale) in pixels.
	MaxCanvas = 4000.0
	MaxScale  = 8.0
)

// Artifact kinds, used in cache keys and metrics.
const (
	KindSet       = "set"
	KindPage      = "page"
	KindSchematic = "schematic"
	KindSTL       = "stl"
	KindDiagram   = "diagram"
)

// Options configures one pipeline run.
type Options struct {
	Inputs   box.Inputs `json:"inputs"`
	Width    float64    `json:"width,omitempty"`
	Height   float64    `json:"height,omitempty"`
	Printing bool       `json:"printing,omitempty"`
	Formats  []string   `json:"formats,omitempty"`
	// Pages are zero-based page indexes; empty means every page.
	Pages     []int   `json:"pages,omitempty"`
	Schematic bool    `json:"schematic,omitempty"`
	Scale     float64 `json:"scale,omitempty"` // PNG pixel ratio
	Refresh   bool    `json:"refresh,omitempty"`

	// Measurer places text; nil uses the embedded font.
	Measurer draw.Measurer `json:"-"`
}

// Artifact is one rendered output.
type Artifact struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Format string `json:"format"`
	Page   int    `json:"page"` // -1 for the schematic
	Data   []byte `json:"-"`
	Cached bool   `json:"cached"`
}

// Result is the output of Execute.
type Result struct {
	Set       box.Set
	SetHash   string
	Artifacts []Artifact
	Stats     Stats
}

// Stats records timings and cache use.
type Stats struct {
	ComputeTime time.Duration
	RenderTime  time.Duration
	CacheHits   int
	Rendered    int
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{sink.FormatSVG}
	}
}

// Validate checks the render options. Inputs are validated by box.NewSet.
func (o *Options) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"width", o.Width}, {"height", o.Height}} {
		if !(v.val > 0 && v.val <= MaxCanvas) {
			return errors.New(errors.ErrCodeOutOfRange, "%s must be in (0, %g], got %g", v.name, MaxCanvas, v.val)
		}
	}
	if !(o.Scale > 0 && o.Scale <= MaxScale) {
		return errors.New(errors.ErrCodeOutOfRange, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	for _, f := range o.Formats {
		if err := o.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFormat checks that format is supported and, for PNG, that the
// raster fits in MaxCanvas pixels per side.
func (o *Options) ValidateFormat(format string) error {
	if err := sink.ValidateFormat(format); err != nil {
		return err
	}
	if format != sink.FormatPNG {
		return nil
	}
	if w, h := o.Width*o.Scale, o.Height*o.Scale; w > MaxCanvas || h > MaxCanvas {
		return errors.New(errors.ErrCodeOutOfRange, "png raster %gx%g exceeds %g pixels per side", w, h, MaxCanvas)
	}
	return nil
}

// PagesFor resolves the requested pages against set, defaulting to all of
// them. An absent page is an INVALID_PAGE error.
func (o *Options) PagesFor(set box.Set) ([]int, error) {
	if len(o.Pages) == 0 {
		pages := make([]int, set.PageCount())
		for i := range pages {
			pages[i] = i
		}
		return pages, nil
	}
	seen := make(map[int]bool, len(o.Pages))
	out := make([]int, 0, len(o.Pages))
	for _, p := range o.Pages {
		if _, err := set.Page(p); err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out, nil
}

// ArtifactKeyOpts returns the cache key options of one artifact.
func (o *Options) ArtifactKeyOpts(kind string, page int, format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Kind: kind, Page: page, Format: format, Printing: o.Printing}
	switch kind {
	case KindPage:
		k.Width, k.Height = o.Width, o.Height
	case KindSchematic:
		k.Width = o.Width
	}
	if format == sink.FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

// PageName returns the file name of a page artifact. Names number pages
// from 1.
func PageName(piece box.WoodPiece, page int, format string) string {
	return fmt.Sprintf("page-%d-%s.%s", page+1, piece.Kind.Slug(), format)
}

// SchematicName returns the file name of the schematic artifact.
func SchematicName(format string) string { return "schematic." + format }
