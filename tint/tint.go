// SPDX-License-Identifier: Unlicense OR MIT

// Package tint derives state-specific variants of an icon image through
// pixel-level alpha compositing. A derivation always writes a fresh
// buffer and never touches the source icon, so one source may back any
// number of concurrent derivations without locking.
package tint

import (
	"errors"
	"image"
	"image/color"

	"github.com/gioui/signin/internal/f32color"
)

// ErrInvalidSourceImage reports a source icon with no readable pixel
// data.
var ErrInvalidSourceImage = errors.New("tint: source image has no pixel data")

// Mode is a pixel compositing operator.
type Mode uint8

const (
	// Normal composites the source over the destination.
	Normal Mode = iota
	// Multiply multiplies source and destination color channels.
	Multiply
	// DstIn keeps the destination color and scales destination alpha
	// by source alpha.
	DstIn
)

// Insets are per-edge margins marking an icon as resizable without
// distorting its border regions.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Zero reports whether all four insets are zero.
func (in Insets) Zero() bool {
	return in == Insets{}
}

// Icon is an icon asset: pixel data plus optional cap inset metadata.
// The pixel buffer is shared rather than copied; treat it as read only.
type Icon struct {
	Pix    *image.NRGBA
	Insets Insets
}

// Tint returns a variant of src rendered with the given blend mode and
// color. The source's own alpha channel is used as a stencil, so only
// the icon's shape is painted; cap insets carry over to the variant
// unchanged. Tinting a source without pixel data returns
// ErrInvalidSourceImage.
//
// For Multiply the color's own alpha is not part of the blend: the fill
// runs at full opacity and the alpha is applied afterwards as a
// destination-in pass, scaling the result's alpha channel while leaving
// its colors untouched.
func Tint(src Icon, mode Mode, col color.Color) (Icon, error) {
	if src.Pix == nil || src.Pix.Bounds().Empty() {
		return Icon{}, ErrInvalidSourceImage
	}
	c := newCanvas(src.Pix.Bounds().Size())
	c.clipToMask(src.Pix)
	c.drawImage(src.Pix)

	c.mode = mode
	eff, alpha := effectiveTint(mode, col)
	c.fill(eff)
	if mode == Multiply && alpha < 1 {
		c.mode = DstIn
		c.fill(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: f32color.To8(alpha)})
	}
	return Icon{Pix: c.snapshot(), Insets: src.Insets}, nil
}

// effectiveTint splits col into the fill color and a separately applied
// opacity. Multiplying with a translucent fill would read through to
// the transparent canvas, so for Multiply the color's channels are used
// at full opacity and its alpha is deferred to the destination-in pass.
// Every color.Color decomposes to RGBA here; single-channel colors such
// as color.Gray and color.Alpha arrive through the same conversion with
// their luminance replicated across the channels.
func effectiveTint(mode Mode, col color.Color) (color.NRGBA, float32) {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	if mode != Multiply {
		return c, 1
	}
	alpha := float32(c.A) / 0xff
	c.A = 0xff
	return c, alpha
}
