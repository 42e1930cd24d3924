package terminal

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hue returns the HSV hue of the color in degrees [0, 360), 0 for achromatic colors
func (c RGB) Hue() float64 {
	h, _, _ := c.colorful().Hsv()
	return h
}

// AdvanceHue rotates the color by step degrees, preserving saturation and value
// Achromatic input carries no hue and comes back unchanged in tone
// Channels are truncated, not rounded, on the way back to bytes
func (c RGB) AdvanceHue(step float64) RGB {
	h, s, v := c.colorful().Hsv()

	h = math.Mod(h+step, 360)
	if h < 0 {
		h += 360
	}

	out := colorful.Hsv(h, s, v)
	return RGB{
		R: truncByte(out.R),
		G: truncByte(out.G),
		B: truncByte(out.B),
	}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// truncByte scales a [0,1] channel to a byte, clamping float drift at the edges
func truncByte(f float64) uint8 {
	v := f * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
