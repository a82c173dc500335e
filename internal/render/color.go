package render

import (
	"image/color"
	"math"
)

// Color is a straight (non-premultiplied) 8-bit RGBA value. Drawing with a
// Color replaces the destination pixel's four bytes; nothing is blended.
type Color struct {
	R, G, B, A uint8
}

var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// RGBA returns a color whose alpha is given as a fraction. a is clamped to
// [0, 1] and scaled to [0, 255], truncating.
func RGBA(r, g, b uint8, a float64) Color {
	switch {
	case math.IsNaN(a) || a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	return Color{R: r, G: g, B: b, A: uint8(a * 255)}
}

// Bytes returns the color in frame buffer byte order.
func (c Color) Bytes() [4]byte { return [4]byte{c.R, c.G, c.B, c.A} }

// NRGBA converts to the standard library's straight-alpha color.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A} }
