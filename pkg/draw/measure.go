package draw

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/jmclachlan11/boxbuilder/pkg/fonts"
)

// Metrics are the measured extents of a run.
type Metrics struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Ascent float64 `json:"ascent"`
}

// Measurer measures a single-line string set in a font.
type Measurer interface {
	Measure(text string, f Font) Metrics
}

// FaceMeasurer measures text with the embedded regular font. It keeps one
// face per size and is safe for concurrent use.
type FaceMeasurer struct {
	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceMeasurer returns an empty measurer.
func NewFaceMeasurer() *FaceMeasurer {
	return &FaceMeasurer{faces: make(map[float64]font.Face)}
}

var (
	defaultMeasurer     *FaceMeasurer
	defaultMeasurerOnce sync.Once
)

// DefaultMeasurer returns the process-wide font measurer.
func DefaultMeasurer() Measurer {
	defaultMeasurerOnce.Do(func() { defaultMeasurer = NewFaceMeasurer() })
	return defaultMeasurer
}

// Measure implements Measurer. If the font cannot be loaded it falls back to
// ApproxMeasurer.
func (m *FaceMeasurer) Measure(text string, f Font) Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	face, ok := m.faces[f.Size]
	if !ok {
		var err error
		if face, err = fonts.NewFace(f.Size); err != nil {
			return ApproxMeasurer{}.Measure(text, f)
		}
		m.faces[f.Size] = face
	}
	fm := face.Metrics()
	ascent := fix(fm.Ascent)
	return Metrics{
		Width:  fix(font.MeasureString(face, text)),
		Height: ascent + fix(fm.Descent),
		Ascent: ascent,
	}
}

// ApproxMeasurer estimates text size from the character count. It needs no
// font and gives stable numbers in tests.
type ApproxMeasurer struct{}

// Measure implements Measurer.
func (ApproxMeasurer) Measure(text string, f Font) Metrics {
	return Metrics{
		Width:  0.55 * f.Size * float64(utf8.RuneCountInString(text)),
		Height: 1.2 * f.Size,
		Ascent: 0.95 * f.Size,
	}
}

func fix(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
