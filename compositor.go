package dmgbg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/porua/dmgbg/imop"
	"github.com/porua/dmgbg/utils"
)

// Renderer is an interface that Processor uses to implement the Render function.
// It takes a scale factor and returns the composed canvas.
type Renderer interface {
	Render(scale int) (*image.NRGBA, error)
}

// The default composition colors.
var (
	DefaultBackground = color.NRGBA{R: 240, G: 240, B: 245, A: 0xff}
	DefaultStroke     = color.NRGBA{R: 150, G: 150, B: 160, A: 0xff}
	DefaultCaption    = color.NRGBA{R: 100, G: 100, B: 110, A: 0xff}
)

// guideColor is used for the icon slot placement guides in debug mode.
var guideColor = color.NRGBA{R: 208, G: 96, B: 96, A: 0xff}

var _ Renderer = (*Processor)(nil)

// Processor options
type Processor struct {
	Layout       Layout
	Caption      string
	FontPath     string
	FontSize     float64
	Background   color.NRGBA
	StrokeColor  color.NRGBA
	CaptionColor color.NRGBA
	Spinner      *utils.Spinner
	Debug        bool
	Preview      bool
}

// NewProcessor returns a Processor preset with the standard DMG window
// composition: a 660×400 canvas with the arrow drawn between the icon
// labels and the "Drag to install" caption underneath.
func NewProcessor() *Processor {
	return &Processor{
		Layout:       DefaultLayout(),
		Caption:      "Drag to install",
		FontPath:     DefaultFontPath,
		FontSize:     14,
		Background:   DefaultBackground,
		StrokeColor:  DefaultStroke,
		CaptionColor: DefaultCaption,
	}
}

// Render draws the arrow and caption composition onto a fresh canvas scaled
// uniformly by the provided factor. The arrow and the caption are drawn on
// transparent layers which are composited over the backdrop.
func (p *Processor) Render(scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale factor: %d", scale)
	}
	l := p.Layout.Scale(scale)
	if l.Width <= 0 || l.Height <= 0 {
		return nil, errors.New("the canvas dimensions should be positive")
	}
	rect := image.Rect(0, 0, l.Width, l.Height)

	backdrop := image.NewNRGBA(rect)
	draw.Draw(backdrop, rect, image.NewUniform(p.Background), image.Point{}, draw.Src)

	// Arrow shaft and head.
	arrow := image.NewNRGBA(rect)
	strokeHLine(arrow, p.StrokeColor, l.ArrowStartX, l.ArrowEndX, l.ArrowY, l.ArrowWidth)
	fillPoly(arrow, p.StrokeColor, []image.Point{
		{X: l.ArrowEndX + l.ArrowTipOffset, Y: l.ArrowY},
		{X: l.ArrowEndX - l.ArrowHeadSize, Y: l.ArrowY - l.ArrowHeadSize/2},
		{X: l.ArrowEndX - l.ArrowHeadSize, Y: l.ArrowY + l.ArrowHeadSize/2},
	})

	if p.Debug {
		drawCrosshair(arrow, guideColor, l.AppIconX, l.AppIconY, l.ArrowHeadSize, scale)
		drawCrosshair(arrow, guideColor, l.AppsIconX, l.AppsIconY, l.ArrowHeadSize, scale)
	}

	// Caption, centered between the arrow ends.
	caption := image.NewNRGBA(rect)
	face := fontFace(p.FontPath, p.FontSize*float64(scale))
	drawText(caption, p.CaptionColor, face, p.Caption,
		(l.ArrowStartX+l.ArrowEndX)/2, l.ArrowY+l.CaptionOffsetY)

	comp := imop.InitOp()
	comp.Set(imop.SrcOver)

	bmp := imop.NewBitmap(rect)
	comp.Draw(bmp, arrow, backdrop, nil)

	out := imop.NewBitmap(rect)
	comp.Draw(out, caption, bmp.Img, nil)

	return out.Img, nil
}

// Process renders the composition at the given scale factor and encodes the
// result into the output writer.
func (p *Processor) Process(w io.Writer, scale int) error {
	img, err := p.Render(scale)
	if err != nil {
		return err
	}
	return encodeImg(w, img)
}
