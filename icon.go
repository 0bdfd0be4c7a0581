// SPDX-License-Identifier: Unlicense OR MIT

package signin

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"

	"github.com/gioui/signin/tint"
)

// NewIcon adopts a decoded image as button artwork. The pixel data is
// copied into a fresh buffer so later mutation of img cannot leak into
// derived variants. Resource loading stays with the caller; any decoded
// image.Image works.
func NewIcon(img image.Image, insets tint.Insets) (tint.Icon, error) {
	if img == nil || img.Bounds().Empty() {
		return tint.Icon{}, fmt.Errorf("signin: adopt icon: %w", tint.ErrInvalidSourceImage)
	}
	b := img.Bounds()
	pix := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(pix, pix.Bounds(), img, b.Min, draw.Src)
	return tint.Icon{Pix: pix, Insets: insets}, nil
}

// NewIconVG rasterizes IconVG data at sz pixels wide, with height
// following the aspect ratio of the viewbox.
func NewIconVG(data []byte, sz int) (tint.Icon, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return tint.Icon{}, err
	}
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rect(0, 0, sz, int(float32(sz)*dy/dx)))
	var z iconvg.Rasterizer
	z.SetDstImage(img, img.Bounds(), draw.Src)
	if err := iconvg.Decode(&z, data, nil); err != nil {
		return tint.Icon{}, err
	}
	return NewIcon(img, tint.Insets{})
}
