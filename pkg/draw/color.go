package draw

import "fmt"

// Color is an opaque sRGB color. Transparency is a property of the stroke.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Floats returns the components scaled to [0, 1].
func (c Color) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Gray  = Color{142, 142, 147}
	Green = Color{52, 199, 89}
	Blue  = Color{0, 122, 255}
	Red   = Color{255, 59, 48}
)

// Palette assigns colors to the roles used on drawings. Long, Middle and
// Short color a piece's dimensions by size class.
type Palette struct {
	Label      Color
	Long       Color
	Middle     Color
	Short      Color
	Roll       Color
	Background Color
}

// ScreenPalette colors dimensions by class.
var ScreenPalette = Palette{
	Label:      Black,
	Long:       Green,
	Middle:     Blue,
	Short:      Red,
	Roll:       Gray,
	Background: White,
}

// PrintPalette draws everything in black.
var PrintPalette = Palette{
	Label:      Black,
	Long:       Black,
	Middle:     Black,
	Short:      Black,
	Roll:       Gray,
	Background: White,
}

// PaletteFor returns PrintPalette when printing and ScreenPalette otherwise.
func PaletteFor(printing bool) Palette {
	if printing {
		return PrintPalette
	}
	return ScreenPalette
}
