package dmgbg

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/disintegration/imaging"
)

const (
	MaxScreenX = 1366
	MaxScreenY = 768
)

// showPreview spawns a new Gio GUI window showing the rendered background.
// The window is closed with the ESC key.
func (p *Processor) showPreview(img image.Image) error {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	// Fit the image into the screen but retain the aspect ratio in case
	// it is larger than the predefined window size.
	if width > MaxScreenX || height > MaxScreenY {
		img = imaging.Fit(img, MaxScreenX, MaxScreenY, imaging.Lanczos)
		width, height = img.Bounds().Dx(), img.Bounds().Dy()
	}

	w := app.NewWindow(
		app.Title("DMG installer background"),
		app.Size(unit.Px(float32(width)), unit.Px(float32(height))),
	)
	return run(w, img)
}

// run the Gio event loop until a DestroyEvent or an ESC key event is captured.
func run(w *app.Window, img image.Image) error {
	var ops op.Ops

	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)

			src := paint.NewImageOp(img)
			src.Add(gtx.Ops)

			widget.Image{
				Src:   src,
				Scale: 1 / float32(gtx.Px(unit.Dp(1))),
				Fit:   widget.Contain,
			}.Layout(gtx)

			e.Frame(gtx.Ops)
		case key.Event:
			if e.Name == key.NameEscape {
				w.Close()
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
