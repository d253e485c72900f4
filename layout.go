package dmgbg

// Layout holds the geometry of the DMG window composition. All values
// are pixel coordinates at base resolution. They are hand-tuned to line
// up with the icon labels produced by the DMG bundler, not computed
// from the icon positions at runtime.
type Layout struct {
	// Canvas dimensions, matching the DMG window content size.
	Width  int
	Height int

	// Icon slot centers: the application icon on the left and the
	// Applications folder shortcut on the right. The arrow and the
	// caption are aligned against these.
	AppIconX, AppIconY   int
	AppsIconX, AppsIconY int

	// Arrow shaft coordinates. The shaft starts right after the app
	// icon label and ends right before the "Applications" label.
	ArrowY      int
	ArrowStartX int
	ArrowEndX   int
	ArrowWidth  int

	// Arrowhead size. The triangle base sits ArrowHeadSize before the
	// shaft end, offset vertically by half the size on either side,
	// with the tip ArrowTipOffset past the shaft end.
	ArrowHeadSize  int
	ArrowTipOffset int

	// Vertical distance between the arrow shaft and the caption top.
	CaptionOffsetY int
}

// DefaultLayout returns the layout of the standard 660×400 DMG window.
func DefaultLayout() Layout {
	return Layout{
		Width:          660,
		Height:         400,
		AppIconX:       180,
		AppIconY:       170,
		AppsIconX:      480,
		AppsIconY:      170,
		ArrowY:         190,
		ArrowStartX:    250,
		ArrowEndX:      400,
		ArrowWidth:     2,
		ArrowHeadSize:  20,
		ArrowTipOffset: 2,
		CaptionOffsetY: 12,
	}
}

// Scale returns a copy of the layout with every coordinate multiplied
// by the given factor. Scaling is uniform, so the @2x variant is the
// exact same composition rendered at twice the density.
func (l Layout) Scale(factor int) Layout {
	l.Width *= factor
	l.Height *= factor
	l.AppIconX *= factor
	l.AppIconY *= factor
	l.AppsIconX *= factor
	l.AppsIconY *= factor
	l.ArrowY *= factor
	l.ArrowStartX *= factor
	l.ArrowEndX *= factor
	l.ArrowWidth *= factor
	l.ArrowHeadSize *= factor
	l.ArrowTipOffset *= factor
	l.CaptionOffsetY *= factor

	return l
}
