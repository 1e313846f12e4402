package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit colour, converted to tcell at draw time
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v > 255.0 {
		return 255
	}
	if v < 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies every channel by f, saturating
func (c RGB) Scale(f float64) RGB {
	return RGB{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f)}
}

// Lerp blends a toward b, t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		clamp(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		clamp(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		clamp(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Tcell converts to a tcell true colour
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the standard background color
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}
