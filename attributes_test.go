// SPDX-License-Identifier: Unlicense OR MIT

package signin

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/gioui/signin/appearance"
	"github.com/gioui/signin/tint"
)

func whiteIcon() tint.Icon {
	pix := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			pix.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		}
	}
	return tint.Icon{Pix: pix}
}

func TestResolveDisabledIconOnly(t *testing.T) {
	ic := whiteIcon()
	before := append([]byte(nil), ic.Pix.Pix...)

	attrs, err := Resolve(appearance.IconOnly, appearance.Dark, appearance.Disabled, ic)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Geometry.Width != 48 || attrs.Geometry.Height != 48 {
		t.Errorf("got %dx%d expected 48x48", attrs.Geometry.Width, attrs.Geometry.Height)
	}
	if attrs.Geometry.TextPadding != 0 {
		t.Errorf("got text padding %d expected 0", attrs.Geometry.TextPadding)
	}
	if want := appearance.Color(appearance.Dark, appearance.Disabled, appearance.Background); attrs.Background != want {
		t.Errorf("got background %v expected %v", attrs.Background, want)
	}
	if want := appearance.Color(appearance.Dark, appearance.Disabled, appearance.Foreground); attrs.Foreground != want {
		t.Errorf("got foreground %v expected %v", attrs.Foreground, want)
	}
	// White artwork multiplied by black at 40% opacity.
	if got := attrs.Icon.Pix.NRGBAAt(0, 0); got != (color.NRGBA{A: 102}) {
		t.Errorf("got icon pixel %v expected faded black", got)
	}
	if !bytes.Equal(before, ic.Pix.Pix) {
		t.Error("source icon mutated")
	}
}

func TestResolveNormalKeepsIcon(t *testing.T) {
	ic := whiteIcon()
	attrs, err := Resolve(appearance.Standard, appearance.Light, appearance.Normal, ic)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Icon.Pix != ic.Pix {
		t.Error("normal state should pass the source buffer through")
	}
}

func TestResolveWithoutIcon(t *testing.T) {
	attrs, err := Resolve(appearance.Wide, appearance.Dark, appearance.Disabled, tint.Icon{})
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Icon.Pix != nil {
		t.Error("got an icon from nothing")
	}
	if attrs.Geometry.Width != 312 {
		t.Errorf("got width %d expected 312", attrs.Geometry.Width)
	}
}

func TestButtonState(t *testing.T) {
	var b Button
	if got := b.State(); got != appearance.Normal {
		t.Errorf("got %v expected normal", got)
	}
	b.Disabled = true
	if got := b.State(); got != appearance.Disabled {
		t.Errorf("got %v expected disabled", got)
	}
}

func TestNewIcon(t *testing.T) {
	if _, err := NewIcon(nil, tint.Insets{}); err == nil {
		t.Error("nil image did not error")
	}
	src := image.NewRGBA(image.Rect(2, 2, 6, 6))
	ic, err := NewIcon(src, tint.Insets{Top: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := ic.Pix.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Errorf("got bounds %v expected origin-normalized 4x4", got)
	}
	if ic.Insets != (tint.Insets{Top: 1}) {
		t.Errorf("got insets %+v", ic.Insets)
	}
}
