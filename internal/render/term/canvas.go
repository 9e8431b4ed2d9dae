// Package term draws both confetti effects into a terminal with tcell. One
// cell stands for CellWidth x CellHeight viewport pixels.
package term

import (
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

const (
	CellWidth  = 8
	CellHeight = 16
)

type cell struct {
	x, y  int
	r     rune
	style tcell.Style
}

// Canvas collects burst marks in cell coordinates. Nothing reaches the screen
// until Renderer.Flush.
type Canvas struct {
	cols, rows int
	dpr        float64
	cells      []cell
}

// NewCanvas creates a canvas whose backing pixels map to cells at dpr.
func NewCanvas(dpr float64) *Canvas {
	if dpr <= 0 {
		dpr = 1
	}
	return &Canvas{dpr: dpr}
}

func (c *Canvas) Resize(width, height int) {
	c.cols = int(float64(width) / (CellWidth * c.dpr))
	c.rows = int(float64(height) / (CellHeight * c.dpr))
}

func (c *Canvas) Clear() { c.cells = c.cells[:0] }

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

func (c *Canvas) put(px, py float64, r rune, style tcell.Style) {
	x := int(math.Floor(px / (CellWidth * c.dpr)))
	y := int(math.Floor(py / (CellHeight * c.dpr)))
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells = append(c.cells, cell{x: x, y: y, r: r, style: style})
}

// FillEllipse marks the cell under the centre. Flat ellipses, seen edge on,
// become dashes.
func (c *Canvas) FillEllipse(cx, cy, rx, ry, rotation float64, col color.Color) {
	if rx <= 0 {
		return
	}
	r := '●'
	if ry < rx*0.4 {
		r = '▬'
		if math.Abs(math.Sin(rotation)) > math.Sqrt2/2 {
			r = '▮'
		}
	}
	c.put(cx, cy, r, styleFor(col))
}

// DrawGlyph marks the cell under the centre with the first rune of s.
func (c *Canvas) DrawGlyph(s string, cx, cy, size, rotation float64) {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return
	}
	c.put(cx, cy, r, tcell.StyleDefault)
}

// DrawImage marks the cell under the centre with a star tinted by the
// image's centre pixel.
func (c *Canvas) DrawImage(img image.Image, cx, cy, size, rotation float64) {
	b := img.Bounds()
	mid := img.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
	c.put(cx, cy, '✦', styleFor(mid))
}

func styleFor(col color.Color) tcell.Style {
	nc := color.NRGBAModel.Convert(col).(color.NRGBA)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(nc.R), int32(nc.G), int32(nc.B)))
}
