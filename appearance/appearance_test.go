// SPDX-License-Identifier: Unlicense OR MIT

package appearance

import (
	"image"
	"image/color"
	"testing"
)

func TestGeometry(t *testing.T) {
	tests := []struct {
		style Style
		w, h  int
	}{
		{Standard, 230, 48},
		{Wide, 312, 48},
		{IconOnly, 48, 48},
	}
	for _, tc := range tests {
		g := tc.style.Geometry()
		if g.Width != tc.w || g.Height != tc.h {
			t.Errorf("%v: got %dx%d expected %dx%d", tc.style, g.Width, g.Height, tc.w, tc.h)
		}
		if g.CornerRadius != 2 || g.IconWidth != 40 {
			t.Errorf("%v: got radius %d icon width %d expected 2 and 40", tc.style, g.CornerRadius, g.IconWidth)
		}
		if g.IconFrame != image.Rect(4, 4, 44, 44) {
			t.Errorf("%v: got icon frame %v expected (4,4)-(44,44)", tc.style, g.IconFrame)
		}
	}
	if p := Standard.Geometry().TextPadding; p != 14 {
		t.Errorf("standard: got text padding %d expected 14", p)
	}
	if p := IconOnly.Geometry().TextPadding; p != 0 {
		t.Errorf("icononly: got text padding %d expected 0", p)
	}
}

func TestColorTotality(t *testing.T) {
	for _, sc := range []Scheme{Dark, Light} {
		for _, st := range []State{Normal, Disabled, Pressed} {
			for _, r := range []Role{Background, Foreground} {
				got := Color(sc, st, r)
				if got.A == 0 {
					t.Errorf("(%v, %v, %v): fully transparent entry", sc, st, r)
				}
				if again := Color(sc, st, r); again != got {
					t.Errorf("(%v, %v, %v): got %v then %v", sc, st, r, got, again)
				}
			}
		}
	}
}

func TestColorValues(t *testing.T) {
	tests := []struct {
		scheme Scheme
		state  State
		role   Role
		want   color.NRGBA
	}{
		{Dark, Normal, Background, GoogleBlue},
		{Dark, Normal, Foreground, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{Dark, Disabled, Background, color.NRGBA{A: 0x14}},
		{Dark, Disabled, Foreground, color.NRGBA{A: 0x66}},
		{Dark, Pressed, Background, GoogleDarkBlue},
		{Light, Normal, Background, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{Light, Normal, Foreground, color.NRGBA{A: 0x89}},
		{Light, Pressed, Background, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}},
	}
	for _, tc := range tests {
		if got := Color(tc.scheme, tc.state, tc.role); got != tc.want {
			t.Errorf("(%v, %v, %v): got %v expected %v", tc.scheme, tc.state, tc.role, got, tc.want)
		}
	}
	if GoogleBlue != (color.NRGBA{R: 0x42, G: 0x85, B: 0xf4, A: 0xff}) {
		t.Errorf("got %v for GoogleBlue", GoogleBlue)
	}
	if GoogleDarkBlue != (color.NRGBA{R: 0x33, G: 0x67, B: 0xd6, A: 0xff}) {
		t.Errorf("got %v for GoogleDarkBlue", GoogleDarkBlue)
	}
}

func TestChrome(t *testing.T) {
	for _, sc := range []Scheme{Dark, Light} {
		ch := sc.Chrome()
		want := Chrome{
			BorderWidth:       4,
			HaloAlpha:         0.12,
			HaloBlur:          2,
			DropShadowAlpha:   0.24,
			DropShadowBlur:    2,
			DropShadowYOffset: 2,
		}
		if ch != want {
			t.Errorf("%v: got %+v expected %+v", sc, ch, want)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	expectPanic(t, "style", func() { Style(3).Geometry() })
	expectPanic(t, "scheme", func() { Color(Scheme(2), Normal, Background) })
	expectPanic(t, "state", func() { Color(Dark, State(3), Background) })
	expectPanic(t, "role", func() { Color(Dark, Normal, Role(2)) })
	expectPanic(t, "chrome scheme", func() { Scheme(2).Chrome() })
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: out of range value did not panic", name)
		}
	}()
	f()
}

func TestTextRoundTrip(t *testing.T) {
	for _, s := range []Style{Standard, Wide, IconOnly} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		var got Style
		if err := got.UnmarshalText(b); err != nil || got != s {
			t.Errorf("round trip %q: got %v, %v", b, got, err)
		}
	}
	for _, s := range []Scheme{Dark, Light} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		var got Scheme
		if err := got.UnmarshalText(b); err != nil || got != s {
			t.Errorf("round trip %q: got %v, %v", b, got, err)
		}
	}
	for _, s := range []State{Normal, Disabled, Pressed} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		var got State
		if err := got.UnmarshalText(b); err != nil || got != s {
			t.Errorf("round trip %q: got %v, %v", b, got, err)
		}
	}
	var s Style
	if err := s.UnmarshalText([]byte("round")); err == nil {
		t.Error("unknown style text did not error")
	}
}
