package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/confetti/internal/ambient"
)

// Renderer composites the ambient board under the burst canvas on a tcell
// screen.
type Renderer struct {
	screen tcell.Screen
	board  *ambient.Board
	canvas *Canvas
}

// NewRenderer creates a renderer. Either board or canvas may be nil.
func NewRenderer(screen tcell.Screen, board *ambient.Board, canvas *Canvas) *Renderer {
	return &Renderer{screen: screen, board: board, canvas: canvas}
}

// Viewport returns the screen size in viewport pixels.
func (r *Renderer) Viewport() (width, height float64) {
	cols, rows := r.screen.Size()
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

// Flush clears the screen, draws the board then the canvas, and shows it.
func (r *Renderer) Flush() {
	r.screen.Clear()
	cols, rows := r.screen.Size()

	if r.board != nil {
		r.board.Each(func(sq *ambient.Square) {
			x := int((sq.Left + sq.Size/2) / CellWidth)
			y := int((sq.Top + sq.Size/2) / CellHeight)
			if x < 0 || y < 0 || x >= cols || y >= rows {
				return
			}
			ch := '■'
			if sq.Transform.Facing() < 0.5 {
				ch = '▪'
			}
			r.screen.SetContent(x, y, ch, nil, styleFor(sq.Transform.Shade(sq.Color)))
		})
	}

	if r.canvas != nil {
		for _, c := range r.canvas.cells {
			if c.x < cols && c.y < rows {
				r.screen.SetContent(c.x, c.y, c.r, nil, c.style)
			}
		}
	}

	r.screen.Show()
}
