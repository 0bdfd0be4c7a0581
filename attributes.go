// SPDX-License-Identifier: Unlicense OR MIT

package signin

import (
	"image/color"

	"github.com/gioui/signin/appearance"
	"github.com/gioui/signin/tint"
)

// disabledTint is multiplied into the icon for the Disabled state:
// black at DisabledIconAlpha opacity.
var disabledIconAlpha float64 = appearance.DisabledIconAlpha

var disabledTint = color.NRGBA{A: uint8(disabledIconAlpha*0xff + 0.5)}

// Attributes is the complete set of rendering attributes for one
// (style, scheme, state) combination, including the ready-to-draw icon
// variant. It is a plain value; resolving the same inputs twice yields
// the same result.
type Attributes struct {
	Geometry   appearance.Geometry
	Background color.NRGBA
	Foreground color.NRGBA
	Chrome     appearance.Chrome
	Icon       tint.Icon
}

// Resolve computes the attributes for the given axes. The icon passes
// through untouched except for states needing a derived variant:
// Disabled multiplies in black at reduced opacity, fading the artwork
// without mutating the source. An icon without pixel data is passed
// through as is, so icon-less callers can still resolve colors and
// geometry.
func Resolve(style appearance.Style, scheme appearance.Scheme, state appearance.State, icon tint.Icon) (Attributes, error) {
	a := Attributes{
		Geometry:   style.Geometry(),
		Background: appearance.Color(scheme, state, appearance.Background),
		Foreground: appearance.Color(scheme, state, appearance.Foreground),
		Chrome:     scheme.Chrome(),
		Icon:       icon,
	}
	if state == appearance.Disabled && icon.Pix != nil {
		v, err := tint.Tint(icon, tint.Multiply, disabledTint)
		if err != nil {
			return Attributes{}, err
		}
		a.Icon = v
	}
	return a, nil
}
