// SPDX-License-Identifier: Unlicense OR MIT

package tint

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scale renders the icon at the given pixel size. Icons without cap
// insets scale uniformly; icons with insets render as a nine patch:
// corners copied verbatim, edges stretched along one axis, the center
// along both.
func (ic Icon) Scale(sz image.Point) *image.NRGBA {
	out := image.NewNRGBA(image.Rectangle{Max: sz})
	if ic.Pix == nil || ic.Pix.Bounds().Empty() || sz.X <= 0 || sz.Y <= 0 {
		return out
	}
	b := ic.Pix.Bounds()
	if ic.Insets.Zero() {
		xdraw.ApproxBiLinear.Scale(out, out.Bounds(), ic.Pix, b, xdraw.Src, nil)
		return out
	}

	in := clampInsets(ic.Insets, b.Size(), sz)
	sx := [4]int{b.Min.X, b.Min.X + in.Left, b.Max.X - in.Right, b.Max.X}
	sy := [4]int{b.Min.Y, b.Min.Y + in.Top, b.Max.Y - in.Bottom, b.Max.Y}
	dx := [4]int{0, in.Left, sz.X - in.Right, sz.X}
	dy := [4]int{0, in.Top, sz.Y - in.Bottom, sz.Y}
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			sr := image.Rect(sx[i], sy[j], sx[i+1], sy[j+1])
			dr := image.Rect(dx[i], dy[j], dx[i+1], dy[j+1])
			if sr.Empty() || dr.Empty() {
				continue
			}
			if sr.Size() == dr.Size() {
				xdraw.Copy(out, dr.Min, ic.Pix, sr, xdraw.Src, nil)
			} else {
				xdraw.ApproxBiLinear.Scale(out, dr, ic.Pix, sr, xdraw.Src, nil)
			}
		}
	}
	return out
}

// clampInsets shrinks insets that do not fit the source or target size.
func clampInsets(in Insets, src, dst image.Point) Insets {
	in.Top = max(in.Top, 0)
	in.Right = max(in.Right, 0)
	in.Bottom = max(in.Bottom, 0)
	in.Left = max(in.Left, 0)
	w := min(src.X, dst.X)
	h := min(src.Y, dst.Y)
	if s := in.Left + in.Right; s > w {
		in.Left = in.Left * w / s
		in.Right = w - in.Left
	}
	if s := in.Top + in.Bottom; s > h {
		in.Top = in.Top * h / s
		in.Bottom = h - in.Top
	}
	return in
}
