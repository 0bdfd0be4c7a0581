// SPDX-License-Identifier: Unlicense OR MIT

// Package appearance defines the visual vocabulary of the sign-in
// button: its layout styles, color schemes, interaction states and the
// fixed tables mapping them to concrete rendering attributes. All
// lookups are pure and the tables are immutable, so the package is safe
// for concurrent use from any goroutine and imports nothing from Gio.
package appearance

import (
	"fmt"
	"image"
	"image/color"
)

// Style selects the button layout.
type Style uint8

const (
	// Standard is a 230x48 button with icon and text.
	Standard Style = iota
	// Wide is a 312x48 button with icon and text.
	Wide
	// IconOnly is a 48x48 button with no text.
	IconOnly
)

// Scheme selects the color scheme.
type Scheme uint8

const (
	Dark Scheme = iota
	Light
)

// State is the interaction state of the button.
type State uint8

const (
	Normal State = iota
	Disabled
	Pressed
)

// Role distinguishes the two colors a renderer needs per
// (scheme, state): the background fill and the text/icon foreground.
type Role uint8

const (
	Background Role = iota
	Foreground
)

const (
	numSchemes = 2
	numStates  = 3
	numRoles   = 2
)

// Colors in 0xRRGGBBAA form.
const (
	googleBlue     = 0x4285f4ff
	googleDarkBlue = 0x3367d6ff

	white        = 0xffffffff
	lightestGrey = 0x00000014
	lightGrey    = 0xeeeeeeff
	disabledGrey = 0x00000066
	darkestGrey  = 0x00000089
)

// Brand colors referenced by the color table.
var (
	GoogleBlue     = rgba(googleBlue)
	GoogleDarkBlue = rgba(googleDarkBlue)
)

// colors is the flattened (scheme, state, role) table. Keeping it a
// single fixed-size array makes totality checkable: the array length is
// exactly numSchemes*numStates*numRoles and every entry is set.
var colors = [numSchemes * numStates * numRoles]uint32{
	// Scheme: Dark.
	googleBlue, white, // Normal: background, foreground.
	lightestGrey, disabledGrey, // Disabled.
	googleDarkBlue, white, // Pressed.

	// Scheme: Light.
	white, darkestGrey, // Normal.
	lightestGrey, disabledGrey, // Disabled.
	lightGrey, darkestGrey, // Pressed.
}

// Color returns the table entry for the given scheme, state and role.
// The three enums are closed sets; an out of range value is a
// programming error and panics.
func Color(scheme Scheme, state State, role Role) color.NRGBA {
	if scheme >= numSchemes || state >= numStates || role >= numRoles {
		panic(fmt.Sprintf("appearance: no color for scheme %d, state %d, role %d", scheme, state, role))
	}
	i := int(scheme)*numStates*numRoles + int(state)*numRoles + int(role)
	return rgba(colors[i])
}

// Geometry is the fixed layout of a style, in dp.
type Geometry struct {
	Width  int
	Height int
	// CornerRadius of the button body.
	CornerRadius int
	// IconWidth is the width of the icon artwork.
	IconWidth int
	// TextPadding is the horizontal padding on either side of the
	// label. Zero for styles without text.
	TextPadding int
	// IconFrame is the icon's position within the button.
	IconFrame image.Rectangle
}

const (
	cornerRadius = 2
	buttonHeight = 48
	iconWidth    = 40
	textPadding  = 14
)

// DisabledIconAlpha attenuates the icon artwork in the Disabled state.
const DisabledIconAlpha = 0.4

// TextSize is the label size in sp.
const TextSize = 14

// Geometry returns the fixed dimensions of the style. Style is a closed
// enum; an unknown value panics.
func (s Style) Geometry() Geometry {
	g := Geometry{
		Height:       buttonHeight,
		CornerRadius: cornerRadius,
		IconWidth:    iconWidth,
		TextPadding:  textPadding,
		IconFrame:    image.Rect(4, 4, 4+iconWidth, 4+iconWidth),
	}
	switch s {
	case Standard:
		g.Width = 230
	case Wide:
		g.Width = 312
	case IconOnly:
		g.Width = buttonHeight
		g.TextPadding = 0
	default:
		panic(fmt.Sprintf("appearance: unknown style %d", s))
	}
	return g
}

// Chrome is the border and shadow treatment around the button body.
type Chrome struct {
	BorderWidth float32

	HaloAlpha float32
	HaloBlur  float32

	DropShadowAlpha   float32
	DropShadowBlur    float32
	DropShadowYOffset float32
}

// Chrome returns the border and shadow constants for the scheme. The
// values are currently shared by both schemes; the receiver keeps a
// scheme-dependent chrome a value change rather than an API change.
func (s Scheme) Chrome() Chrome {
	if s >= numSchemes {
		panic(fmt.Sprintf("appearance: unknown scheme %d", s))
	}
	return Chrome{
		BorderWidth:       4,
		HaloAlpha:         0.12,
		HaloBlur:          2,
		DropShadowAlpha:   0.24,
		DropShadowBlur:    2,
		DropShadowYOffset: 2,
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}
