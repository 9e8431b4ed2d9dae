package burst

import (
	"image"
	"image/color"
)

type ellipseCall struct {
	cx, cy, rx, ry, rotation float64
	c                        color.Color
}

// recordingSurface captures draw calls for assertions.
type recordingSurface struct {
	width, height int
	clears        int
	ellipses      []ellipseCall
	glyphs        []string
	images        int
}

func (s *recordingSurface) Resize(w, h int) { s.width, s.height = w, h }
func (s *recordingSurface) Clear() {
	s.clears++
	s.ellipses = s.ellipses[:0]
	s.glyphs = s.glyphs[:0]
	s.images = 0
}

func (s *recordingSurface) FillEllipse(cx, cy, rx, ry, rotation float64, c color.Color) {
	s.ellipses = append(s.ellipses, ellipseCall{cx, cy, rx, ry, rotation, c})
}

func (s *recordingSurface) DrawGlyph(text string, cx, cy, size, rotation float64) {
	s.glyphs = append(s.glyphs, text)
}

func (s *recordingSurface) DrawImage(img image.Image, cx, cy, size, rotation float64) {
	s.images++
}
