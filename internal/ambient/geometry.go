package ambient

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Perspective is the viewer distance used when projecting a tumbling square.
const Perspective = 50

// Point is an offset in viewport pixels.
type Point struct {
	X, Y float64
}

// Corners returns the four projected corners of a square of the given size,
// relative to its centre, in drawing order.
func (t Transform) Corners(size float64) [4]Point {
	kx, ky := t.axis()
	sinT, cosT := math.Sincos(t.Theta * math.Pi / 180)
	sinR, cosR := math.Sincos(t.Rotation * math.Pi / 180)

	h := size / 2
	local := [4]Point{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	var out [4]Point
	for i, v := range local {
		// Rodrigues rotation about (kx, ky, 0).
		dot := kx*v.X + ky*v.Y
		x := v.X*cosT + kx*dot*(1-cosT)
		y := v.Y*cosT + ky*dot*(1-cosT)
		z := (kx*v.Y - ky*v.X) * sinT

		s := Perspective / (Perspective - z)
		x, y = x*s, y*s

		out[i] = Point{X: x*cosR - y*sinR, Y: x*sinR + y*cosR}
	}
	return out
}

// Facing returns how squarely the square faces the viewer, 0 edge-on to 1.
func (t Transform) Facing() float64 {
	return math.Abs(math.Cos(t.Theta * math.Pi / 180))
}

// Shade darkens c as the square turns away from the viewer.
func (t Transform) Shade(c color.RGBA) color.RGBA {
	base, _ := colorful.MakeColor(c)
	shaded := base.BlendRgb(colorful.Color{}, (1-t.Facing())*0.5)
	r, g, b := shaded.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

func (t Transform) axis() (float64, float64) {
	n := math.Hypot(t.Axis.X, t.Axis.Y)
	if n == 0 {
		return 1, 0
	}
	return t.Axis.X / n, t.Axis.Y / n
}
