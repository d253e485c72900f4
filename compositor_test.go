package dmgbg

import (
	"bytes"
	"image"
	"testing"
)

// newTestProcessor forces the built-in bitmap face so that the caption
// pixels keep the exact caption color regardless of the fonts installed
// on the host (the bitmap face is not antialiased).
func newTestProcessor() *Processor {
	p := NewProcessor()
	p.FontPath = "testdata/nonexistent.ttc"
	return p
}

func TestRender_CanvasSize(t *testing.T) {
	p := newTestProcessor()

	img, err := p.Render(1)
	if err != nil {
		t.Fatalf("could not render the background: %v", err)
	}
	if img.Bounds().Dx() != 660 || img.Bounds().Dy() != 400 {
		t.Errorf("Base canvas expected to be 660x400. Got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	img2x, err := p.Render(2)
	if err != nil {
		t.Fatalf("could not render the @2x background: %v", err)
	}
	if img2x.Bounds().Dx() != 1320 || img2x.Bounds().Dy() != 800 {
		t.Errorf("@2x canvas expected to be 1320x800. Got %dx%d", img2x.Bounds().Dx(), img2x.Bounds().Dy())
	}
}

func TestRender_InvalidScale(t *testing.T) {
	p := newTestProcessor()

	if _, err := p.Render(0); err == nil {
		t.Errorf("A zero scale factor should have been rejected")
	}
	if _, err := p.Render(-1); err == nil {
		t.Errorf("A negative scale factor should have been rejected")
	}
}

func TestRender_BackgroundColor(t *testing.T) {
	p := newTestProcessor()

	img, err := p.Render(1)
	if err != nil {
		t.Fatalf("could not render the background: %v", err)
	}

	for _, pt := range []image.Point{
		{X: 0, Y: 0},
		{X: 659, Y: 399},
		{X: 330, Y: 50},
		{X: 100, Y: 300},
		{X: 180, Y: 170}, // app icon slot, empty without debug guides
		{X: 480, Y: 170}, // Applications slot
	} {
		if got := img.NRGBAAt(pt.X, pt.Y); got != p.Background {
			t.Errorf("Pixel at %v expected to be the background color. Got %v", pt, got)
		}
	}
}

func TestRender_BackgroundPurity(t *testing.T) {
	p := newTestProcessor()

	img, err := p.Render(1)
	if err != nil {
		t.Fatalf("could not render the background: %v", err)
	}

	// Everything drawn must stay inside the arrow and caption regions.
	arrowBox := image.Rect(250, 179, 404, 202)
	captionBox := image.Rect(250, 200, 401, 221)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == p.Background {
				continue
			}
			pt := image.Pt(x, y)
			if !pt.In(arrowBox) && !pt.In(captionBox) {
				t.Fatalf("Unexpected non-background pixel at %v: %v", pt, img.NRGBAAt(x, y))
			}
		}
	}
}

func TestRender_ArrowSpan(t *testing.T) {
	p := newTestProcessor()

	img, err := p.Render(1)
	if err != nil {
		t.Fatalf("could not render the background: %v", err)
	}

	for x := 250; x <= 400; x++ {
		if got := img.NRGBAAt(x, 190); got != p.StrokeColor {
			t.Fatalf("Arrow pixel at (%d,190) expected to be the stroke color. Got %v", x, got)
		}
	}
	// The shaft is two pixels wide, centered on the arrow line.
	if got := img.NRGBAAt(325, 189); got != p.StrokeColor {
		t.Errorf("Arrow pixel at (325,189) expected to be the stroke color. Got %v", got)
	}
	for _, pt := range []image.Point{
		{X: 249, Y: 190},
		{X: 325, Y: 188},
		{X: 325, Y: 192},
	} {
		if got := img.NRGBAAt(pt.X, pt.Y); got != p.Background {
			t.Errorf("Pixel at %v expected to be the background color. Got %v", pt, got)
		}
	}
}

func TestRender_Arrowhead(t *testing.T) {
	p := newTestProcessor()

	img, err := p.Render(1)
	if err != nil {
		t.Fatalf("could not render the background: %v", err)
	}

	// Interior pixels of the triangle keep the exact stroke color.
	for _, pt := range []image.Point{
		{X: 380, Y: 182},
		{X: 380, Y: 198},
		{X: 385, Y: 187},
		{X: 385, Y: 190},
		{X: 385, Y: 193},
		{X: 395, Y: 190},
	} {
		if got := img.NRGBAAt(pt.X, pt.Y); got != p.StrokeColor {
			t.Errorf("Arrowhead pixel at %v expected to be the stroke color. Got %v", pt, got)
		}
	}

	// Nothing is drawn past the tip or before the base.
	for _, pt := range []image.Point{
		{X: 403, Y: 190},
		{X: 405, Y: 190},
		{X: 379, Y: 183},
		{X: 379, Y: 197},
	} {
		if got := img.NRGBAAt(pt.X, pt.Y); got != p.Background {
			t.Errorf("Pixel at %v expected to be the background color. Got %v", pt, got)
		}
	}
}

func TestRender_RetinaScale(t *testing.T) {
	p := newTestProcessor()

	img, err := p.Render(2)
	if err != nil {
		t.Fatalf("could not render the @2x background: %v", err)
	}

	// The doubled shaft spans from x=500 to x=800 at y=380.
	for _, x := range []int{500, 650, 800} {
		if got := img.NRGBAAt(x, 380); got != p.StrokeColor {
			t.Errorf("Arrow pixel at (%d,380) expected to be the stroke color. Got %v", x, got)
		}
	}
	// The doubled arrowhead interior.
	for _, pt := range []image.Point{
		{X: 770, Y: 380},
		{X: 790, Y: 380},
		{X: 760, Y: 364},
	} {
		if got := img.NRGBAAt(pt.X, pt.Y); got != p.StrokeColor {
			t.Errorf("Arrowhead pixel at %v expected to be the stroke color. Got %v", pt, got)
		}
	}
	for _, pt := range []image.Point{
		{X: 499, Y: 380},
		{X: 807, Y: 380},
	} {
		if got := img.NRGBAAt(pt.X, pt.Y); got != p.Background {
			t.Errorf("Pixel at %v expected to be the background color. Got %v", pt, got)
		}
	}
}

func TestRender_CaptionPlacement(t *testing.T) {
	p := newTestProcessor()

	img, err := p.Render(1)
	if err != nil {
		t.Fatalf("could not render the background: %v", err)
	}

	minX, maxX, minY := 1<<31, -1, 1<<31
	for y := 195; y < 230; y++ {
		for x := 250; x <= 400; x++ {
			if img.NRGBAAt(x, y) == p.CaptionColor {
				minX = min(minX, x)
				maxX = max(maxX, x)
				minY = min(minY, y)
			}
		}
	}
	if maxX < 0 {
		t.Fatalf("No caption pixels found")
	}

	// The caption top sits below the arrow line, offset by the layout value.
	if minY < 202 || minY > 208 {
		t.Errorf("Caption top expected right below y=202. Got %d", minY)
	}

	// The caption is centered between the arrow start and end.
	center := (minX + maxX) / 2
	if center < 321 || center > 329 {
		t.Errorf("Caption expected to be centered around x=325. Got %d", center)
	}
}

func TestRender_DebugGuides(t *testing.T) {
	p := newTestProcessor()
	p.Debug = true

	img, err := p.Render(1)
	if err != nil {
		t.Fatalf("could not render the background: %v", err)
	}

	// Crosshair centers at the icon slots.
	if got := img.NRGBAAt(180, 170); got != guideColor {
		t.Errorf("Guide pixel at the app icon slot expected. Got %v", got)
	}
	if got := img.NRGBAAt(480, 170); got != guideColor {
		t.Errorf("Guide pixel at the Applications slot expected. Got %v", got)
	}
}

func TestRender_Idempotent(t *testing.T) {
	p := newTestProcessor()

	var first, second bytes.Buffer
	if err := p.Process(&first, 1); err != nil {
		t.Fatalf("could not encode the background: %v", err)
	}
	if err := p.Process(&second, 1); err != nil {
		t.Fatalf("could not encode the background: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("Two renders with identical inputs expected to be byte identical")
	}
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}
