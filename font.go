package dmgbg

import (
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontPath is the font used for the caption when present on the system.
const DefaultFontPath = "/System/Library/Fonts/Helvetica.ttc"

// fontFace loads the font file at the given path at the requested point size.
// On any failure (missing file, unparsable data) it silently falls back to the
// built-in bitmap face: the generated image is still valid, only the exact
// text rendering metrics differ.
func fontFace(path string, size float64) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return basicfont.Face7x13
	}

	// ParseCollection handles both .ttc collections and single font files.
	col, err := opentype.ParseCollection(data)
	if err != nil {
		return basicfont.Face7x13
	}
	fnt, err := col.Font(0)
	if err != nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// drawText renders the text onto dst with the center of its advance at
// centerX and the top of its ascent at topY.
func drawText(dst *image.NRGBA, col color.NRGBA, face font.Face, text string, centerX, topY int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	width := d.MeasureString(text)

	d.Dot = fixed.Point26_6{
		X: fixed.I(centerX) - width/2,
		Y: fixed.I(topY) + face.Metrics().Ascent,
	}
	d.DrawString(text)
}
