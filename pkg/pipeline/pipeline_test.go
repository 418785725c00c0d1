package pipeline

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/cache"
	"github.com/jmclachlan11/boxbuilder/pkg/draw"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
)

var sixRolls = box.Inputs{RollCount: 6, RollLength: 3, RollDiameter: 1.132, WoodThickness: 0.5}

func testOptions(in box.Inputs) Options {
	return Options{Inputs: in, Width: 400, Height: 500, Scale: 1, Measurer: draw.ApproxMeasurer{}}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.Width != DefaultWidth || o.Height != DefaultHeight || o.Scale != DefaultScale {
		t.Errorf("defaults = %v x %v @%v", o.Width, o.Height, o.Scale)
	}
	if len(o.Formats) != 1 || o.Formats[0] != "svg" {
		t.Errorf("Formats = %v", o.Formats)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"ok", Options{Width: 10, Height: 10, Scale: 1, Formats: []string{"png"}}, ""},
		{"zero width", Options{Width: 0, Height: 10, Scale: 1}, errors.ErrCodeOutOfRange},
		{"huge height", Options{Width: 10, Height: MaxCanvas + 1, Scale: 1}, errors.ErrCodeOutOfRange},
		{"negative scale", Options{Width: 10, Height: 10, Scale: -1}, errors.ErrCodeOutOfRange},
		{"pdf", Options{Width: 10, Height: 10, Scale: 1, Formats: []string{"pdf"}}, errors.ErrCodeUnsupported},
		{"png raster too large", Options{Width: MaxCanvas, Height: MaxCanvas, Scale: MaxScale, Formats: []string{"png"}}, errors.ErrCodeOutOfRange},
		{"png raster one side too tall", Options{Width: 100, Height: MaxCanvas/2 + 1, Scale: 2, Formats: []string{"svg", "png"}}, errors.ErrCodeOutOfRange},
		{"png raster at the limit", Options{Width: MaxCanvas / 2, Height: MaxCanvas / 2, Scale: 2, Formats: []string{"png"}}, ""},
		{"large svg", Options{Width: MaxCanvas, Height: MaxCanvas, Scale: MaxScale, Formats: []string{"svg", "json"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetCode(tt.opts.Validate()); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestPagesFor(t *testing.T) {
	set, _ := box.NewSet(sixRolls)

	var o Options
	pages, err := o.PagesFor(set)
	if err != nil || len(pages) != 5 {
		t.Fatalf("all pages = %v, %v", pages, err)
	}

	o.Pages = []int{2, 0, 2}
	pages, _ = o.PagesFor(set)
	if len(pages) != 2 || pages[0] != 2 || pages[1] != 0 {
		t.Errorf("pages = %v, want [2 0]", pages)
	}

	o.Pages = []int{5}
	if _, err := o.PagesFor(set); !errors.Is(err, errors.ErrCodeInvalidPage) {
		t.Errorf("row divider page on 1-row box: %v", err)
	}
}

func TestPageName(t *testing.T) {
	set, _ := box.NewSet(sixRolls)
	p, _ := set.Page(2)
	if got := PageName(p, 2, "svg"); got != "page-3-left-right.svg" {
		t.Errorf("PageName = %q", got)
	}
	if got := SchematicName("png"); got != "schematic.png" {
		t.Errorf("SchematicName = %q", got)
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	opts := testOptions(sixRolls)
	opts.Formats = []string{"svg", "json"}
	opts.Schematic = true

	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := len(res.Artifacts), 5*2+2; got != want {
		t.Fatalf("artifacts = %d, want %d", got, want)
	}
	if a := res.Artifacts[0]; a.Name != "page-1-top.svg" || a.Page != 0 {
		t.Errorf("first artifact = %+v", a)
	}
	if a := res.Artifacts[len(res.Artifacts)-1]; a.Name != "schematic.json" || a.Page != -1 {
		t.Errorf("last artifact = %+v", a)
	}
	for _, a := range res.Artifacts {
		if len(a.Data) == 0 {
			t.Errorf("%s is empty", a.Name)
		}
		if a.Format == "svg" && !bytes.Contains(a.Data, []byte("<svg")) {
			t.Errorf("%s is not SVG", a.Name)
		}
	}
	if res.Stats.Rendered != len(res.Artifacts) || res.Stats.CacheHits != 0 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.SetHash == "" {
		t.Error("empty set hash")
	}
}

func TestExecuteInvalidInputs(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	opts := testOptions(box.Inputs{RollCount: 10, RollLength: 3, RollDiameter: 1, WoodThickness: .5,
		Force: box.RowForce{Enabled: true, Count: 1}})
	if _, err := r.Execute(context.Background(), opts); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestExecuteUsesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	rec := &recordingHooks{}
	r := NewRunner(c, nil, nil)
	r.Hooks = Hooks{Pipeline: rec, Cache: rec}

	opts := testOptions(sixRolls)
	opts.Pages = []int{0, 1}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.Stats.CacheHits != 2 || second.Stats.Rendered != 0 {
		t.Errorf("second run stats = %+v", second.Stats)
	}
	for i := range first.Artifacts {
		if !bytes.Equal(first.Artifacts[i].Data, second.Artifacts[i].Data) {
			t.Errorf("%s differs between runs", first.Artifacts[i].Name)
		}
	}
	// One set lookup per run plus one per page.
	if rec.hits != 3 || rec.misses != 3 || rec.renders != 2 {
		t.Errorf("hooks: hits=%d misses=%d renders=%d", rec.hits, rec.misses, rec.renders)
	}

	opts.Refresh = true
	third, _ := r.Execute(context.Background(), opts)
	if third.Stats.Rendered != 2 {
		t.Errorf("refresh run stats = %+v", third.Stats)
	}

	opts.Refresh = false
	opts.Printing = true
	fourth, _ := r.Execute(context.Background(), opts)
	if fourth.Stats.CacheHits != 0 {
		t.Error("printing variant served from the screen cache")
	}
}

func TestComputeUsesSetCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := &keyLog{Cache: fc}
	rec := &recordingHooks{}
	r := NewRunner(c, cache.NewScopedKeyer(nil, "boxbuilder:"), nil)
	r.Hooks = Hooks{Pipeline: rec, Cache: rec}

	want, _ := box.NewSet(sixRolls)
	for i := 0; i < 2; i++ {
		got, err := r.Compute(context.Background(), Options{Inputs: sixRolls})
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("run %d: set = %+v, want %+v", i, got, want)
		}
	}
	if rec.misses != 1 || rec.hits != 1 {
		t.Errorf("hooks: hits=%d misses=%d, want 1/1", rec.hits, rec.misses)
	}
	if len(c.keys) == 0 {
		t.Fatal("no cache lookups")
	}
	for _, k := range c.keys {
		if !strings.HasPrefix(k, "boxbuilder:set:") {
			t.Errorf("key %q is not a scoped set key", k)
		}
	}

	lookups := len(c.keys)
	if _, err := r.Compute(context.Background(), Options{Inputs: box.Inputs{RollCount: 7}}); !errors.IsValidation(err) {
		t.Errorf("invalid inputs: err = %v", err)
	}
	if len(c.keys) != lookups {
		t.Error("invalid inputs reached the cache")
	}
}

func TestComputeIgnoresUnreadableSet(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	h, _ := cache.HashJSON(sixRolls)
	if err := fc.Set(context.Background(), r.Keyer.SetKey(h), []byte("not json"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, err := r.Compute(context.Background(), Options{Inputs: sixRolls})
	if err != nil {
		t.Fatal(err)
	}
	if want, _ := box.NewSet(sixRolls); got != want {
		t.Errorf("set = %+v, want %+v", got, want)
	}
}

// keyLog records the keys read from the wrapped cache.
type keyLog struct {
	cache.Cache
	mu   sync.Mutex
	keys []string
}

func (k *keyLog) Get(ctx context.Context, key string) ([]byte, bool, error) {
	k.mu.Lock()
	k.keys = append(k.keys, key)
	k.mu.Unlock()
	return k.Cache.Get(ctx, key)
}

func TestRunnerPage(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	set, _ := box.NewSet(sixRolls)

	a, err := r.Page(context.Background(), set, 4, "json", testOptions(sixRolls))
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "page-5-column-divider.json" || !strings.Contains(string(a.Data), `"ops"`) {
		t.Errorf("artifact = %s %q", a.Name, a.Data)
	}
	if _, err := r.Page(context.Background(), set, 5, "svg", testOptions(sixRolls)); !errors.Is(err, errors.ErrCodeInvalidPage) {
		t.Errorf("absent page: %v", err)
	}
}

func TestRunnerRejectsOversizedRaster(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	set, _ := box.NewSet(sixRolls)
	opts := Options{Inputs: sixRolls, Width: MaxCanvas, Height: MaxCanvas, Scale: MaxScale}

	if _, err := r.Page(context.Background(), set, 0, "png", opts); !errors.Is(err, errors.ErrCodeOutOfRange) {
		t.Errorf("Page png: err = %v, want OUT_OF_RANGE", err)
	}
	if _, err := r.Schematic(context.Background(), set, "png", opts); !errors.Is(err, errors.ErrCodeOutOfRange) {
		t.Errorf("Schematic png: err = %v, want OUT_OF_RANGE", err)
	}
	opts.Measurer = draw.ApproxMeasurer{}
	if _, err := r.Page(context.Background(), set, 0, "json", opts); err != nil {
		t.Errorf("Page json: %v", err)
	}
}

func TestRunnerSchematicPNG(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	set, _ := box.NewSet(sixRolls)
	a, err := r.Schematic(context.Background(), set, "png", testOptions(sixRolls))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(a.Data, []byte("\x89PNG")) {
		t.Error("schematic is not a PNG")
	}
}

func TestRenderDiagramDOT(t *testing.T) {
	set, _ := box.NewSet(sixRolls)
	data, err := RenderDiagram(context.Background(), set, FormatDOT)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph") {
		t.Errorf("DOT = %q", data[:min(len(data), 40)])
	}
	if _, err := RenderDiagram(context.Background(), set, "pdf"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("pdf diagram: %v", err)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	if _, err := Encode(draw.New(10, 10), "gif", Options{}); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("err = %v", err)
	}
}

type recordingHooks struct {
	mu                    sync.Mutex
	hits, misses, renders int
}

func (h *recordingHooks) OnComputeStart(context.Context, int)                         {}
func (h *recordingHooks) OnComputeComplete(context.Context, int, time.Duration, error) {}
func (h *recordingHooks) OnRenderStart(context.Context, string, string)               {}
func (h *recordingHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
	h.mu.Lock()
	h.renders++
	h.mu.Unlock()
}
func (h *recordingHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	h.hits++
	h.mu.Unlock()
}
func (h *recordingHooks) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	h.misses++
	h.mu.Unlock()
}
func (h *recordingHooks) OnCacheSet(context.Context, string, int) {}
