// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color provides float32 color math for software
// compositing. All math operates on the stored channel values directly;
// there is no gamma conversion on the way in or out.
package f32color

import "image/color"

// RGBA is a non-premultiplied float32 color. Channels are nominally in
// [0, 1]; intermediate results may leave the range and must be clamped
// before conversion back to 8 bit.
type RGBA struct {
	R, G, B, A float32
}

// FromNRGBA converts an 8 bit non-premultiplied color.
func FromNRGBA(c color.NRGBA) RGBA {
	return RGBA{
		R: float32(c.R) / 0xff,
		G: float32(c.G) / 0xff,
		B: float32(c.B) / 0xff,
		A: float32(c.A) / 0xff,
	}
}

// NRGBA converts back to 8 bit, clamping every channel.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: To8(c.R),
		G: To8(c.G),
		B: To8(c.B),
		A: To8(c.A),
	}
}

// Clamp limits all channels to [0, 1].
func (c RGBA) Clamp() RGBA {
	return RGBA{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// To8 converts a [0, 1] channel to 8 bit, clamping and rounding to
// nearest.
func To8(v float32) uint8 {
	return uint8(clamp01(v)*0xff + 0.5)
}

// MulAlpha scales the alpha channel of c by alpha/255.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xff)
	return c
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
