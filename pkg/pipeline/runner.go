package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/cache"
	"github.com/jmclachlan11/boxbuilder/pkg/observability"
)

// Hooks receive pipeline and cache events. Nil fields use the globally
// registered observability hooks.
type Hooks struct {
	Pipeline observability.PipelineHooks
	Cache    observability.CacheHooks
}

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner can serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Hooks  Hooks
	// TTL is the artifact lifetime; zero means cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses the DefaultKeyer and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

func (r *Runner) pipelineHooks() observability.PipelineHooks {
	if r.Hooks.Pipeline != nil {
		return r.Hooks.Pipeline
	}
	return observability.Pipeline()
}

func (r *Runner) cacheHooks() observability.CacheHooks {
	if r.Hooks.Cache != nil {
		return r.Hooks.Cache
	}
	return observability.Cache()
}

// Compute validates the inputs and builds the piece set. Sets are cached
// under the hash of their inputs unless opts.Refresh is set.
func (r *Runner) Compute(ctx context.Context, opts Options) (box.Set, error) {
	hooks := r.pipelineHooks()
	hooks.OnComputeStart(ctx, opts.Inputs.RollCount)
	start := time.Now()

	set, hit, err := r.computeSet(ctx, opts.Inputs, opts.Refresh)
	hooks.OnComputeComplete(ctx, set.Config.Rows, time.Since(start), err)
	if err != nil {
		return box.Set{}, err
	}
	r.Logger.Debug("computed box", "rolls", set.Config.RollCount, "rows", set.Config.Rows, "pages", set.PageCount(), "cached", hit)
	return set, nil
}

func (r *Runner) computeSet(ctx context.Context, in box.Inputs, refresh bool) (box.Set, bool, error) {
	if err := in.Validate(); err != nil {
		return box.Set{}, false, err
	}
	inputsHash, err := cache.HashJSON(in)
	if err != nil {
		return box.Set{}, false, fmt.Errorf("hash inputs: %w", err)
	}
	key := r.Keyer.SetKey(inputsHash)
	ch := r.cacheHooks()

	if !refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "kind", KindSet, "err", err)
		}
		if hit {
			var set box.Set
			if err := json.Unmarshal(data, &set); err == nil {
				ch.OnCacheHit(ctx, KindSet)
				return set, true, nil
			}
			r.Logger.Warn("discarding unreadable cached set", "key", key)
		}
		ch.OnCacheMiss(ctx, KindSet)
	}

	set := box.Build(box.NewConfig(in), in.Roll())
	data, err := json.Marshal(set)
	if err != nil {
		return set, false, nil
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLSet); err != nil {
		r.Logger.Warn("cache write failed", "kind", KindSet, "err", err)
	} else {
		ch.OnCacheSet(ctx, KindSet, len(data))
	}
	return set, false, nil
}

// SetHash identifies a computed set in cache keys.
func SetHash(set box.Set) (string, error) {
	return cache.HashJSON(set)
}

// Execute computes the set and renders the requested pages, plus the
// schematic when asked, in every requested format. Artifacts are returned
// in page order, then format order, with the schematic last.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	set, err := r.Compute(ctx, opts)
	if err != nil {
		return nil, err
	}
	pages, err := opts.PagesFor(set)
	if err != nil {
		return nil, err
	}
	setHash, err := SetHash(set)
	if err != nil {
		return nil, fmt.Errorf("hash set: %w", err)
	}
	result := &Result{Set: set, SetHash: setHash}
	result.Stats.ComputeTime = time.Since(start)

	type task struct {
		kind   string
		page   int
		format string
	}
	var tasks []task
	for _, p := range pages {
		for _, f := range opts.Formats {
			tasks = append(tasks, task{KindPage, p, f})
		}
	}
	if opts.Schematic {
		for _, f := range opts.Formats {
			tasks = append(tasks, task{KindSchematic, -1, f})
		}
	}

	renderStart := time.Now()
	artifacts := make([]Artifact, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, t := range tasks {
		g.Go(func() error {
			var a Artifact
			var err error
			if t.kind == KindSchematic {
				a, err = r.schematic(gctx, set, setHash, t.format, opts)
			} else {
				a, err = r.page(gctx, set, setHash, t.page, t.format, opts)
			}
			if err != nil {
				return err
			}
			artifacts[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	for _, a := range artifacts {
		if a.Cached {
			result.Stats.CacheHits++
		} else {
			result.Stats.Rendered++
		}
	}
	r.Logger.Info("rendered box",
		"summary", set.Config.Summary(),
		"artifacts", len(artifacts),
		"cached", result.Stats.CacheHits,
		"duration", time.Since(start))
	return result, nil
}

// Page renders a single page, using the cache.
func (r *Runner) Page(ctx context.Context, set box.Set, page int, format string, opts Options) (Artifact, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return Artifact{}, err
	}
	if err := opts.ValidateFormat(format); err != nil {
		return Artifact{}, err
	}
	if _, err := set.Page(page); err != nil {
		return Artifact{}, err
	}
	setHash, err := SetHash(set)
	if err != nil {
		return Artifact{}, err
	}
	return r.page(ctx, set, setHash, page, format, opts)
}

// Schematic renders the schematic, using the cache.
func (r *Runner) Schematic(ctx context.Context, set box.Set, format string, opts Options) (Artifact, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return Artifact{}, err
	}
	if err := opts.ValidateFormat(format); err != nil {
		return Artifact{}, err
	}
	setHash, err := SetHash(set)
	if err != nil {
		return Artifact{}, err
	}
	return r.schematic(ctx, set, setHash, format, opts)
}

// STL meshes the assembled box, using the cache.
func (r *Runner) STL(ctx context.Context, set box.Set, cells int) (Artifact, error) {
	setHash, err := SetHash(set)
	if err != nil {
		return Artifact{}, err
	}
	key := r.Keyer.ArtifactKey(setHash, cache.ArtifactKeyOpts{Kind: KindSTL, Format: KindSTL, Scale: float64(cells)})
	data, hit, err := r.cached(ctx, key, KindSTL, KindSTL, false, func() ([]byte, error) {
		return RenderSTL(set, cells)
	})
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Name: "assembly.stl", Kind: KindSTL, Format: KindSTL, Page: -1, Data: data, Cached: hit}, nil
}

// Diagram renders the glue-up sequence diagram, using the cache.
func (r *Runner) Diagram(ctx context.Context, set box.Set, format string) (Artifact, error) {
	setHash, err := SetHash(set)
	if err != nil {
		return Artifact{}, err
	}
	key := r.Keyer.ArtifactKey(setHash, cache.ArtifactKeyOpts{Kind: KindDiagram, Format: format})
	data, hit, err := r.cached(ctx, key, KindDiagram, format, false, func() ([]byte, error) {
		return RenderDiagram(ctx, set, format)
	})
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Name: "assembly." + format, Kind: KindDiagram, Format: format, Page: -1, Data: data, Cached: hit}, nil
}

func (r *Runner) page(ctx context.Context, set box.Set, setHash string, page int, format string, opts Options) (Artifact, error) {
	piece, err := set.Page(page)
	if err != nil {
		return Artifact{}, err
	}
	key := r.Keyer.ArtifactKey(setHash, opts.ArtifactKeyOpts(KindPage, page, format))
	data, hit, err := r.cached(ctx, key, KindPage, format, opts.Refresh, func() ([]byte, error) {
		return RenderPage(set, page, format, opts)
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("page %d (%s): %w", page+1, format, err)
	}
	return Artifact{Name: PageName(piece, page, format), Kind: KindPage, Format: format, Page: page, Data: data, Cached: hit}, nil
}

func (r *Runner) schematic(ctx context.Context, set box.Set, setHash, format string, opts Options) (Artifact, error) {
	key := r.Keyer.ArtifactKey(setHash, opts.ArtifactKeyOpts(KindSchematic, -1, format))
	data, hit, err := r.cached(ctx, key, KindSchematic, format, opts.Refresh, func() ([]byte, error) {
		return RenderSchematic(set, format, opts)
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("schematic (%s): %w", format, err)
	}
	return Artifact{Name: SchematicName(format), Kind: KindSchematic, Format: format, Page: -1, Data: data, Cached: hit}, nil
}

// cached returns the value under key, rendering and storing it on a miss.
// Cache failures are logged and never fail the render.
func (r *Runner) cached(ctx context.Context, key, kind, format string, refresh bool, render func() ([]byte, error)) ([]byte, bool, error) {
	ch := r.cacheHooks()
	if !refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "kind", kind, "err", err)
		}
		if hit {
			ch.OnCacheHit(ctx, kind)
			return data, true, nil
		}
		ch.OnCacheMiss(ctx, kind)
	}

	ph := r.pipelineHooks()
	ph.OnRenderStart(ctx, kind, format)
	start := time.Now()
	data, err := render()
	ph.OnRenderComplete(ctx, kind, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	ttl := r.TTL
	if ttl <= 0 {
		ttl = cache.TTLArtifact
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "err", err)
	} else {
		ch.OnCacheSet(ctx, kind, len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
