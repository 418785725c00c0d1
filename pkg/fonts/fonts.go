// Package fonts provides the font used on every drawing.
//
// The Go Regular typeface ships with golang.org/x/image, so it is compiled
// into the binary without extra files. The same face measures text for
// layout, draws it in PNG output and is embedded in SVG output, which keeps
// label positions identical across formats.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name used for the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists fonts for SVG viewers that ignore @font-face.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

// RegularTTF returns the TrueType data of the Go Regular font.
func RegularTTF() []byte {
	return goregular.TTF
}

var (
	parsed     *truetype.Font
	parseErr   error
	parseOnce  sync.Once
	ttfBase64  string
	base64Once sync.Once
)

// Regular returns the parsed Go Regular font. Parsing happens once.
func Regular() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// RegularBase64 returns the font data as a base64 string for data URIs.
func RegularBase64() string {
	base64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// NewFace returns a face of the regular font at size points (72 DPI, so one
// point is one drawing unit). Faces cache glyphs and are not safe for
// concurrent use; create one per goroutine.
func NewFace(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
