package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type button struct {
	x, y, w, h float64
	label      string
	hovered    bool
	pressed    bool
}

func (b *button) contains(x, y float64) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// update tracks hover and press state and reports a completed click: press
// and release both inside the button.
func (b *button) update(mx, my float64, justPressed, justReleased bool) bool {
	b.hovered = b.contains(mx, my)
	if b.hovered && justPressed {
		b.pressed = true
	}
	if justReleased {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (b *button) draw(screen *ebiten.Image, scale float64) {
	var bg color.Color
	switch {
	case b.pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	x, y := float32(b.x), float32(b.y)
	w, h := float32(b.w), float32(b.h)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, float32(2*scale), color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	textWidth := len(b.label) * 6 // debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, b.label, int(b.x+(b.w-float64(textWidth))/2), int(b.y+(b.h-16)/2))
}
