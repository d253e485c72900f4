package imop

import (
	"github.com/porua/dmgbg/utils"
)

// The supported separable blend modes.
const (
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) {
	bModes := []string{Darken, Lighten, Multiply, Screen, Overlay}

	if utils.Contains(bModes, opType) {
		o.OpType = opType
	}
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// apply mixes the composition result with the source layer channels
// according to the active blend mode.
func (o *Blend) apply(rc, gc, bc, ac, rs, gs, bs, as float64) (r, g, b, a float64) {
	r, g, b, a = rc, gc, bc, ac

	switch o.OpType {
	case Darken:
		r = utils.Min(rc, rs)
		g = utils.Min(gc, gs)
		b = utils.Min(bc, bs)
		a = utils.Min(ac, as)
	case Lighten:
		r = utils.Max(rc, rs)
		g = utils.Max(gc, gs)
		b = utils.Max(bc, bs)
		a = utils.Max(ac, as)
	case Multiply:
		r, g, b, a = rc*rs, gc*gs, bc*bs, ac*as
	case Screen:
		r = 1 - (1-rc)*(1-rs)
		g = 1 - (1-gc)*(1-gs)
		b = 1 - (1-bc)*(1-bs)
		a = 1 - (1-ac)*(1-as)
	case Overlay:
		overlay := func(c, s float64) float64 {
			if c <= 0.5 {
				return 2 * c * s
			}
			return 1 - 2*(1-c)*(1-s)
		}
		r = overlay(rc, rs)
		g = overlay(gc, gs)
		b = overlay(bc, bs)
		a = overlay(ac, as)
	}
	return r, g, b, a
}
