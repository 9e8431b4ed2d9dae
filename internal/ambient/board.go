package ambient

import (
	"image/color"
	"slices"
)

// Square is a placed element as last positioned by its particle.
type Square struct {
	Size      float64
	Color     color.RGBA
	Left, Top float64
	Transform Transform
}

func (sq *Square) Place(left, top float64, t Transform) {
	sq.Left, sq.Top, sq.Transform = left, top, t
}

type boardContainer struct {
	squares []*Square
}

func (c *boardContainer) Append(size float64, col color.RGBA) Element {
	sq := &Square{Size: size, Color: col}
	c.squares = append(c.squares, sq)
	return sq
}

func (c *boardContainer) Remove(e Element) {
	c.squares = slices.DeleteFunc(c.squares, func(sq *Square) bool { return sq == e })
}

// Board is an in-memory Stage. Drawing backends walk its squares each frame.
type Board struct {
	width, height float64
	containers    []*boardContainer
}

// NewBoard creates a board for a viewport of the given size.
func NewBoard(width, height float64) *Board {
	return &Board{width: width, height: height}
}

// SetViewport updates the size reported to the shower.
func (b *Board) SetViewport(width, height float64) {
	b.width, b.height = width, height
}

func (b *Board) Viewport() (float64, float64) { return b.width, b.height }

func (b *Board) Attach() Container {
	c := &boardContainer{}
	b.containers = append(b.containers, c)
	return c
}

func (b *Board) Detach(c Container) {
	b.containers = slices.DeleteFunc(b.containers, func(x *boardContainer) bool { return Container(x) == c })
}

// Attached reports whether a container is showing.
func (b *Board) Attached() bool { return len(b.containers) > 0 }

// Each calls fn for every square in insertion order.
func (b *Board) Each(fn func(sq *Square)) {
	for _, c := range b.containers {
		for _, sq := range c.squares {
			fn(sq)
		}
	}
}
