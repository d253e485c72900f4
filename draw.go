package dmgbg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// fillPoly rasterizes the closed polygon described by the points onto dst.
// The polygon edges are antialiased, interior pixels keep the exact color.
func fillPoly(dst *image.NRGBA, col color.NRGBA, pts []image.Point) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())

	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		r.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.ClosePath()

	r.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// fillRect fills an axis-aligned rectangle with the given color.
func fillRect(dst *image.NRGBA, col color.NRGBA, rect image.Rectangle) {
	draw.Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(col), image.Point{}, draw.Over)
}

// strokeHLine draws a horizontal line between x0 and x1 (both inclusive)
// with the stroke centered on y.
func strokeHLine(dst *image.NRGBA, col color.NRGBA, x0, x1, y, width int) {
	half := width / 2
	fillRect(dst, col, image.Rect(x0, y-half, x1+1, y-half+width))
}

// drawCrosshair draws a placement guide centered on (cx, cy).
func drawCrosshair(dst *image.NRGBA, col color.NRGBA, cx, cy, size, width int) {
	half := size / 2
	fillRect(dst, col, image.Rect(cx-half, cy-width/2, cx+half+1, cy-width/2+width))
	fillRect(dst, col, image.Rect(cx-width/2, cy-half, cx-width/2+width, cy+half+1))
}
