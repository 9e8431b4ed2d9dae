package ambient

import "image/color"

type fakeElement struct {
	size      float64
	color     color.RGBA
	left, top float64
	t         Transform
	places    int
}

func (e *fakeElement) Place(left, top float64, t Transform) {
	e.left, e.top, e.t = left, top, t
	e.places++
}

type fakeContainer struct {
	elements []*fakeElement
	removed  int
}

func (c *fakeContainer) Append(size float64, col color.RGBA) Element {
	e := &fakeElement{size: size, color: col}
	c.elements = append(c.elements, e)
	return e
}

func (c *fakeContainer) Remove(e Element) {
	for i, el := range c.elements {
		if el == e {
			c.elements = append(c.elements[:i], c.elements[i+1:]...)
			c.removed++
			return
		}
	}
}

type fakeStage struct {
	width, height float64
	attached      *fakeContainer
	attaches      int
	detaches      int
}

func (s *fakeStage) Attach() Container {
	s.attaches++
	s.attached = &fakeContainer{}
	return s.attached
}

func (s *fakeStage) Detach(c Container) {
	if c == Container(s.attached) {
		s.attached = nil
	}
	s.detaches++
}

func (s *fakeStage) Viewport() (float64, float64) { return s.width, s.height }
