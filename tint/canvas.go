// SPDX-License-Identifier: Unlicense OR MIT

package tint

import (
	"image"
	"image/color"

	"github.com/gioui/signin/internal/f32color"
)

// canvas is a minimal software compositing surface. Rows are stored
// bottom up, matching the native orientation of the compositing
// primitive this reproduces; snapshot flips the result back to top-down
// order. A stencil mask, once set, scales the coverage of every later
// operation by its alpha.
type canvas struct {
	pix  *image.NRGBA
	mask *image.Alpha
	mode Mode
}

func newCanvas(sz image.Point) *canvas {
	return &canvas{pix: image.NewNRGBA(image.Rectangle{Max: sz})}
}

// clipToMask restricts subsequent drawing to the alpha channel of m.
// Partial alpha scales coverage rather than cutting it off.
func (c *canvas) clipToMask(m *image.NRGBA) {
	b := c.pix.Bounds()
	mb := m.Bounds()
	mask := image.NewAlpha(b)
	for y := 0; y < b.Dy(); y++ {
		dy := b.Max.Y - 1 - y
		for x := 0; x < b.Dx(); x++ {
			a := m.NRGBAAt(mb.Min.X+x, mb.Min.Y+y).A
			mask.SetAlpha(x, dy, color.Alpha{A: a})
		}
	}
	c.mask = mask
}

// drawImage composites m over the canvas at full extent.
func (c *canvas) drawImage(m *image.NRGBA) {
	b := c.pix.Bounds()
	mb := m.Bounds()
	for y := 0; y < b.Dy(); y++ {
		dy := b.Max.Y - 1 - y
		for x := 0; x < b.Dx(); x++ {
			c.compose(x, dy, m.NRGBAAt(mb.Min.X+x, mb.Min.Y+y), Normal)
		}
	}
}

// fill covers the clipped region with col using the active operator.
func (c *canvas) fill(col color.NRGBA) {
	b := c.pix.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.compose(x, y, col, c.mode)
		}
	}
}

// compose blends s into the pixel at (x, y) with the given operator.
// The stencil scales source alpha first; channels are clamped after
// every step on the way back to 8 bit.
func (c *canvas) compose(x, y int, s color.NRGBA, mode Mode) {
	cov := float32(1)
	if c.mask != nil {
		cov = float32(c.mask.AlphaAt(x, y).A) / 0xff
		if cov == 0 {
			return
		}
	}
	d := f32color.FromNRGBA(c.pix.NRGBAAt(x, y))
	sf := f32color.FromNRGBA(s)
	as := sf.A * cov

	var o f32color.RGBA
	switch mode {
	case Normal, Multiply:
		blended := sf
		if mode == Multiply {
			blended = f32color.RGBA{R: d.R * sf.R, G: d.G * sf.G, B: d.B * sf.B}
		}
		o.A = as + d.A*(1-as)
		if o.A > 0 {
			o.R = (as*(1-d.A)*sf.R + as*d.A*blended.R + (1-as)*d.A*d.R) / o.A
			o.G = (as*(1-d.A)*sf.G + as*d.A*blended.G + (1-as)*d.A*d.G) / o.A
			o.B = (as*(1-d.A)*sf.B + as*d.A*blended.B + (1-as)*d.A*d.B) / o.A
		}
	case DstIn:
		o = d
		o.A = d.A * as
	}
	c.pix.SetNRGBA(x, y, o.Clamp().NRGBA())
}

// snapshot returns the canvas contents in top-down row order.
func (c *canvas) snapshot() *image.NRGBA {
	b := c.pix.Bounds()
	out := image.NewNRGBA(b)
	n := 4 * b.Dx()
	for y := 0; y < b.Dy(); y++ {
		sy := b.Max.Y - 1 - y
		copy(out.Pix[y*out.Stride:y*out.Stride+n], c.pix.Pix[sy*c.pix.Stride:sy*c.pix.Stride+n])
	}
	return out
}
