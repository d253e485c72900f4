package dmgbg

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFont_FallbackOnMissingFile(t *testing.T) {
	face := fontFace(filepath.Join(t.TempDir(), "missing.ttc"), 14)

	if face != basicfont.Face7x13 {
		t.Errorf("A missing font file expected to fall back to the built-in face")
	}
}

func TestFont_FallbackOnInvalidData(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "garbage.ttf")
	if err := os.WriteFile(fname, []byte("this is not a font"), 0644); err != nil {
		t.Fatalf("could not write the test file: %v", err)
	}

	face := fontFace(fname, 14)
	if face != basicfont.Face7x13 {
		t.Errorf("An unparsable font file expected to fall back to the built-in face")
	}
}

func TestFont_DrawTextCentering(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 50))
	drawText(img, DefaultCaption, basicfont.Face7x13, "center", 100, 10)

	minX, maxX := 1<<31, -1
	for y := 0; y < 50; y++ {
		for x := 0; x < 200; x++ {
			if img.NRGBAAt(x, y) == DefaultCaption {
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	if maxX < 0 {
		t.Fatalf("No text pixels found")
	}

	center := (minX + maxX) / 2
	if center < 96 || center > 104 {
		t.Errorf("Text expected to be centered around x=100. Got %d", center)
	}
}
