// Package imop implements the Porter-Duff composition operations,
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition
// operations, but the image/draw core package implements only the
// source-over-destination and source ones.
//
// The background compositor draws the arrow and the caption on
// separate transparent layers and merges them over the backdrop
// through this package.
package imop

import (
	"image"
	"image/color"
	"math"

	"github.com/porua/dmgbg/utils"
)

// The supported composition operations.
const (
	Clear   = "clear"
	Src     = "src"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the composition result.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap initializes a new Bitmap of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new Composite with src_over as the default operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Clear, Src, Dst,
			SrcOver, DstOver,
			SrcIn, DstIn,
			SrcOut, DstOut,
			SrcAtop, DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
// Unsupported operations are ignored.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw applies the active composition operation over the source and
// backdrop images and stores the result into the bitmap. When a blend
// mode is provided it is applied on top of the composition result.
// The source and backdrop must be of equal size.
func (op *Composite) Draw(bitmap *Bitmap, src, backdrop *image.NRGBA, blend *Blend) {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			rsn, gsn, bsn, asn := normalize(src.At(x, y))
			rbn, gbn, bbn, abn := normalize(backdrop.At(x, y))

			var rn, gn, bn, an float64

			// applying the alpha composition formula
			switch op.current {
			case Clear:
				// fully transparent result
			case Src:
				rn, gn, bn, an = asn*rsn, asn*gsn, asn*bsn, asn
			case Dst:
				rn, gn, bn, an = abn*rbn, abn*gbn, abn*bbn, abn
			case SrcOver:
				rn = asn*rsn + abn*rbn*(1-asn)
				gn = asn*gsn + abn*gbn*(1-asn)
				bn = asn*bsn + abn*bbn*(1-asn)
				an = asn + abn*(1-asn)
			case DstOver:
				rn = asn*rsn*(1-abn) + abn*rbn
				gn = asn*gsn*(1-abn) + abn*gbn
				bn = asn*bsn*(1-abn) + abn*bbn
				an = asn*(1-abn) + abn
			case SrcIn:
				rn, gn, bn, an = asn*rsn*abn, asn*gsn*abn, asn*bsn*abn, asn*abn
			case DstIn:
				rn, gn, bn, an = abn*rbn*asn, abn*gbn*asn, abn*bbn*asn, abn*asn
			case SrcOut:
				rn, gn, bn, an = asn*rsn*(1-abn), asn*gsn*(1-abn), asn*bsn*(1-abn), asn*(1-abn)
			case DstOut:
				rn, gn, bn, an = abn*rbn*(1-asn), abn*gbn*(1-asn), abn*bbn*(1-asn), abn*(1-asn)
			case SrcAtop:
				rn = asn*rsn*abn + (1-asn)*abn*rbn
				gn = asn*gsn*abn + (1-asn)*abn*gbn
				bn = asn*bsn*abn + (1-asn)*abn*bbn
				an = asn*abn + abn*(1-asn)
			case DstAtop:
				rn = asn*rsn*(1-abn) + abn*rbn*asn
				gn = asn*gsn*(1-abn) + abn*gbn*asn
				bn = asn*bsn*(1-abn) + abn*bbn*asn
				an = asn*(1-abn) + abn*asn
			case Xor:
				rn = asn*rsn*(1-abn) + abn*rbn*(1-asn)
				gn = asn*gsn*(1-abn) + abn*gbn*(1-asn)
				bn = asn*bsn*(1-abn) + abn*bbn*(1-asn)
				an = asn*(1-abn) + abn*(1-asn)
			}

			// Un-premultiply the result, otherwise the fully opaque
			// composition over a colored backdrop would darken it.
			if an > 0 {
				rn, gn, bn = rn/an, gn/an, bn/an
			}

			if blend != nil {
				rn, gn, bn, an = blend.apply(rn, gn, bn, an, rsn, gsn, bsn, asn)
			}

			bitmap.Img.SetNRGBA(x, y, color.NRGBA{
				R: denormalize(rn),
				G: denormalize(gn),
				B: denormalize(bn),
				A: denormalize(an),
			})
		}
	}
}

// normalize converts a color to non-premultiplied channel values in the [0, 1] range.
func normalize(c color.Color) (r, g, b, a float64) {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)

	return float64(nrgba.R) / 255,
		float64(nrgba.G) / 255,
		float64(nrgba.B) / 255,
		float64(nrgba.A) / 255
}

// denormalize converts a normalized channel value back to 8 bit,
// rounding to the nearest value so that opaque compositions stay byte exact.
func denormalize(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
