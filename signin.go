// SPDX-License-Identifier: Unlicense OR MIT

// Package signin provides the branded "Sign in with Google" button for
// Gio programs. The button's appearance is a pure function of its
// layout style, color scheme and interaction state: package appearance
// holds the lookup tables and package tint derives state-specific icon
// variants. The widget here is thin glue composing those outputs into
// draw operations.
package signin

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/gioui/signin/appearance"
	"github.com/gioui/signin/internal/f32color"
	"github.com/gioui/signin/tint"
)

// Button holds the retained state of a sign-in button.
type Button struct {
	Clickable widget.Clickable

	Style  appearance.Style
	Scheme appearance.Scheme
	// Disabled renders the faded appearance and ignores input.
	Disabled bool
	// Icon is the brand artwork drawn in the icon section.
	Icon tint.Icon

	// Cached icon raster, keyed by state and pixel size.
	cacheState appearance.State
	cacheSize  image.Point
	cacheOp    paint.ImageOp
	cacheOK    bool
}

// State reports the interaction state the button renders this frame.
func (b *Button) State() appearance.State {
	switch {
	case b.Disabled:
		return appearance.Disabled
	case b.Clickable.Pressed():
		return appearance.Pressed
	default:
		return appearance.Normal
	}
}

// Clicked reports whether the button was clicked since the last call.
// A disabled button never reports clicks.
func (b *Button) Clicked() bool {
	clicked := b.Clickable.Clicked()
	return clicked && !b.Disabled
}

// iconOp returns the icon raster for the state at the given pixel size,
// rebuilding the cached variant only when either changes.
func (b *Button) iconOp(state appearance.State, sz image.Point) (paint.ImageOp, bool) {
	if b.Icon.Pix == nil {
		return paint.ImageOp{}, false
	}
	if b.cacheOK && state == b.cacheState && sz == b.cacheSize {
		return b.cacheOp, true
	}
	ic := b.Icon
	if state == appearance.Disabled {
		v, err := tint.Tint(ic, tint.Multiply, disabledTint)
		if err != nil {
			return paint.ImageOp{}, false
		}
		ic = v
	}
	b.cacheOp = paint.NewImageOp(ic.Scale(sz))
	b.cacheState = state
	b.cacheSize = sz
	b.cacheOK = true
	return b.cacheOp, true
}

// ButtonStyle renders a Button with theme-derived text parameters. Like
// the styles in gioui.org/widget/material it is a value constructed per
// frame.
type ButtonStyle struct {
	// Text is the localized label; ignored by the IconOnly style.
	Text     string
	TextSize unit.Sp
	Font     font.Font

	shaper *text.Shaper
	button *Button
}

// SignInButton returns a style for btn using the theme's shaper. The
// brand mandates a bold face at a fixed size.
func SignInButton(th *material.Theme, btn *Button, txt string) ButtonStyle {
	return ButtonStyle{
		Text:     txt,
		TextSize: unit.Sp(appearance.TextSize),
		Font:     font.Font{Weight: font.Bold},
		shaper:   th.Shaper,
		button:   btn,
	}
}

// Layout draws the button and registers its click area. The dimensions
// are fixed per style regardless of incoming constraints.
func (b ButtonStyle) Layout(gtx layout.Context) layout.Dimensions {
	btn := b.button
	state := btn.State()
	// No icon is passed here; the cached raster is resolved separately
	// in drawIcon.
	attrs, _ := Resolve(btn.Style, btn.Scheme, state, tint.Icon{})
	g := attrs.Geometry
	sz := image.Pt(gtx.Dp(unit.Dp(g.Width)), gtx.Dp(unit.Dp(g.Height)))

	if btn.Disabled {
		gtx = gtx.Disabled()
	}
	gtx.Constraints.Min = sz
	gtx.Constraints.Max = sz
	return btn.Clickable.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rr := gtx.Dp(unit.Dp(g.CornerRadius))
		if state != appearance.Disabled {
			b.drawChrome(gtx, sz, rr, attrs.Chrome)
		}
		func() {
			defer clip.UniformRRect(image.Rectangle{Max: sz}, rr).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, attrs.Background)
		}()
		b.drawIcon(gtx, state, g)
		if btn.Style != appearance.IconOnly {
			b.drawLabel(gtx, sz, g, attrs.Foreground)
		}
		return layout.Dimensions{Size: sz}
	})
}

// drawChrome paints the halo ring and drop shadow behind the body. Gio
// has no blur primitive, so each is approximated by a translucent
// rounded rect: a stroke of BorderWidth around the body for the halo
// and an offset fill grown by the blur radius for the drop shadow.
func (b ButtonStyle) drawChrome(gtx layout.Context, sz image.Point, rr int, ch appearance.Chrome) {
	black := color.NRGBA{A: 0xff}

	blur := gtx.Dp(unit.Dp(ch.DropShadowBlur))
	off := gtx.Dp(unit.Dp(ch.DropShadowYOffset))
	dr := image.Rectangle{Max: sz}.Add(image.Pt(0, off)).Inset(-blur / 2)
	paint.FillShape(gtx.Ops,
		f32color.MulAlpha(black, f32color.To8(ch.DropShadowAlpha)),
		clip.UniformRRect(dr, rr+blur/2).Op(gtx.Ops))

	w := gtx.Dp(unit.Dp(ch.BorderWidth))
	paint.FillShape(gtx.Ops,
		f32color.MulAlpha(black, f32color.To8(ch.HaloAlpha)),
		clip.Stroke{
			Path:  clip.UniformRRect(image.Rectangle{Max: sz}, rr).Path(gtx.Ops),
			Width: float32(w),
		}.Op())
}

func (b ButtonStyle) drawIcon(gtx layout.Context, state appearance.State, g appearance.Geometry) {
	fr := image.Rect(
		gtx.Dp(unit.Dp(g.IconFrame.Min.X)), gtx.Dp(unit.Dp(g.IconFrame.Min.Y)),
		gtx.Dp(unit.Dp(g.IconFrame.Max.X)), gtx.Dp(unit.Dp(g.IconFrame.Max.Y)),
	)
	iop, ok := b.button.iconOp(state, fr.Size())
	if !ok {
		return
	}
	defer op.Offset(fr.Min).Push(gtx.Ops).Pop()
	iop.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// drawLabel centers the label in the area right of the icon section.
func (b ButtonStyle) drawLabel(gtx layout.Context, sz image.Point, g appearance.Geometry, col color.NRGBA) {
	x0 := gtx.Dp(unit.Dp(g.IconFrame.Max.X + g.TextPadding))
	x1 := sz.X - gtx.Dp(unit.Dp(g.TextPadding))
	if x1 <= x0 {
		return
	}
	defer op.Offset(image.Pt(x0, 0)).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(x1-x0, sz.Y))
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		m := op.Record(gtx.Ops)
		paint.ColorOp{Color: col}.Add(gtx.Ops)
		call := m.Stop()
		l := widget.Label{Alignment: text.Middle, MaxLines: 1}
		return l.Layout(gtx, b.shaper, b.Font, b.TextSize, b.Text, call)
	})
}
