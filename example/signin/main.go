// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program demonstrating the sign-in button. Style, scheme and the
// disabled state are selectable with flags.

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/gioui/signin"
	"github.com/gioui/signin/appearance"
)

var (
	scheme   = flag.String("scheme", "light", "color scheme: dark or light")
	style    = flag.String("style", "standard", "layout style: standard, wide or icononly")
	disabled = flag.Bool("disabled", false, "render the disabled state")
)

func main() {
	flag.Parse()

	var sc appearance.Scheme
	if err := sc.UnmarshalText([]byte(*scheme)); err != nil {
		log.Fatal(err)
	}
	var st appearance.Style
	if err := st.UnmarshalText([]byte(*style)); err != nil {
		log.Fatal(err)
	}

	// The brand "G" ships with the host app's resources; a material
	// glyph stands in for it here.
	icon, err := signin.NewIconVG(icons.ActionAccountCircle, 96)
	if err != nil {
		log.Fatal(err)
	}

	btn := &signin.Button{Style: st, Scheme: sc, Disabled: *disabled, Icon: icon}

	go func() {
		w := app.NewWindow(app.Title("Sign in"), app.Size(unit.Dp(360), unit.Dp(140)))
		if err := loop(w, btn); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, btn *signin.Button) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))

	var ops op.Ops
	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			for btn.Clicked() {
				log.Println("sign-in requested")
			}
			layout.Center.Layout(gtx, signin.SignInButton(th, btn, "Sign in with Google").Layout)
			e.Frame(gtx.Ops)
		}
	}
}
