// Package render draws both confetti effects with Ebitengine.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const ellipseSegments = 24

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// LoadFaceSource reads a TrueType/OpenType font for glyph confetti. An empty
// path selects Go Regular.
func LoadFaceSource(path string) (*text.GoTextFaceSource, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
	}
	return source, nil
}

// Canvas is an offscreen burst canvas. It is drawn to from frame callbacks in
// Update and composited onto the screen in Draw.
type Canvas struct {
	target   *ebiten.Image
	source   *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
	images   map[image.Image]*ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas creates an empty canvas; source may be nil to skip glyphs.
func NewCanvas(source *text.GoTextFaceSource) *Canvas {
	return &Canvas{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Image returns the backing store.
func (c *Canvas) Image() *ebiten.Image { return c.target }

// Resize reallocates the backing store when its size changes.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if c.target != nil {
		if b := c.target.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		c.target.Deallocate()
	}
	c.target = ebiten.NewImage(width, height)
}

func (c *Canvas) Clear() {
	if c.target != nil {
		c.target.Clear()
	}
}

// FillEllipse fills a rotated ellipse as a triangle fan.
func (c *Canvas) FillEllipse(cx, cy, rx, ry, rotation float64, col color.Color) {
	if c.target == nil || rx <= 0 || ry <= 0 {
		return
	}
	r, g, b, a := straight(col)
	sinR, cosR := math.Sincos(rotation)

	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	c.vertices = append(c.vertices[:0], vertex(cx, cy))
	c.indices = c.indices[:0]
	for i := 0; i < ellipseSegments; i++ {
		sinA, cosA := math.Sincos(2 * math.Pi * float64(i) / ellipseSegments)
		x, y := rx*cosA, ry*sinA
		c.vertices = append(c.vertices, vertex(cx+x*cosR-y*sinR, cy+x*sinR+y*cosR))
		c.indices = append(c.indices, 0, uint16(1+i), uint16(1+(i+1)%ellipseSegments))
	}
	c.target.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawGlyph draws text centred on (cx, cy).
func (c *Canvas) DrawGlyph(s string, cx, cy, size, rotation float64) {
	if c.target == nil || c.source == nil {
		return
	}
	face, ok := c.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: c.source, Size: size, Direction: text.DirectionLeftToRight}
		c.faces[size] = face
	}

	w, h := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(cx, cy)
	text.Draw(c.target, s, face, op)
}

// DrawImage draws img centred on (cx, cy), longer side scaled to size. The
// converted image is cached for the canvas lifetime.
func (c *Canvas) DrawImage(img image.Image, cx, cy, size, rotation float64) {
	if c.target == nil {
		return
	}
	ei, ok := c.images[img]
	if !ok {
		ei = ebiten.NewImageFromImage(img)
		c.images[img] = ei
	}

	b := ei.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	scale := size / math.Max(w, h)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(cx, cy)
	c.target.DrawImage(ei, op)
}

// straight converts a colour to non-premultiplied float components.
func straight(col color.Color) (r, g, b, a float32) {
	nc := color.NRGBAModel.Convert(col).(color.NRGBA)
	return float32(nc.R) / 0xff, float32(nc.G) / 0xff, float32(nc.B) / 0xff, float32(nc.A) / 0xff
}
