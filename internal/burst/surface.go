package burst

import (
	"image"
	"image/color"
)

// Surface is the canvas a System draws onto. Coordinates are backing-store
// pixels; rotations are radians about the given centre.
type Surface interface {
	// Resize reallocates the backing store.
	Resize(width, height int)
	Clear()
	FillEllipse(cx, cy, rx, ry, rotation float64, c color.Color)
	DrawGlyph(text string, cx, cy, size, rotation float64)
	// DrawImage draws img centred at (cx, cy) with its longer side scaled to size.
	DrawImage(img image.Image, cx, cy, size, rotation float64)
}
