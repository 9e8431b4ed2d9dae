package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/confetti/internal/ambient"
)

// Layer draws an ambient.Board as shaded, perspective-projected quads.
type Layer struct {
	board    *ambient.Board
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewLayer creates a layer over board.
func NewLayer(board *ambient.Board) *Layer {
	return &Layer{board: board}
}

// Draw projects every square onto dst, scaling viewport pixels by dpr.
func (l *Layer) Draw(dst *ebiten.Image, dpr float64) {
	l.vertices, l.indices = l.vertices[:0], l.indices[:0]
	l.board.Each(func(sq *ambient.Square) {
		cx, cy := sq.Left+sq.Size/2, sq.Top+sq.Size/2
		r, g, b, a := straight(sq.Transform.Shade(sq.Color))
		base := uint16(len(l.vertices))
		for _, p := range sq.Transform.Corners(sq.Size) {
			l.vertices = append(l.vertices, ebiten.Vertex{
				DstX: float32((cx + p.X) * dpr), DstY: float32((cy + p.Y) * dpr),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		l.indices = append(l.indices, base, base+1, base+2, base, base+2, base+3)

		// indices are uint16
		if len(l.vertices) > 0xffff-4 {
			l.flush(dst)
		}
	})
	l.flush(dst)
}

func (l *Layer) flush(dst *ebiten.Image) {
	if len(l.indices) == 0 {
		return
	}
	dst.DrawTriangles(l.vertices, l.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	l.vertices, l.indices = l.vertices[:0], l.indices[:0]
}
