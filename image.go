package dmgbg

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// encodeImg encodes an image to a destination of type io.Writer.
// When the destination is a named file the encoding format follows its
// extension, otherwise the image is encoded as PNG.
func encodeImg(w io.Writer, img image.Image) error {
	if f, ok := w.(*os.File); ok {
		if ext := filepath.Ext(f.Name()); ext != "" {
			format, err := imaging.FormatFromExtension(ext)
			if err != nil {
				return fmt.Errorf("%v file type not supported", ext)
			}
			return imaging.Encode(w, img, format)
		}
	}
	return imaging.Encode(w, img, imaging.PNG)
}
