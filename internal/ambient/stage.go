// Package ambient implements the continuous confetti shower: squares that fall
// from above the viewport, drifting and tumbling along a looping spline wobble.
//
// Particles are retained elements on a Stage rather than pixels on a canvas;
// the System only moves them and the backend decides how to draw them.
package ambient

import "image/color"

// Axis is the in-plane axis (X, Y, 0) a square tumbles around.
type Axis struct {
	X, Y float64
}

// Transform is the orientation of a placed square.
type Transform struct {
	Rotation float64 // in-plane rotation, degrees
	Axis     Axis
	Theta    float64 // rotation about Axis, degrees
}

// Element is one square on a Stage.
type Element interface {
	// Place moves the square's top-left corner to (left, top) in viewport pixels.
	Place(left, top float64, t Transform)
}

// Container holds the elements of one shower.
type Container interface {
	Append(size float64, c color.RGBA) Element
	Remove(e Element)
}

// Stage is the surface the shower is shown on.
type Stage interface {
	// Attach creates a full-viewport container and shows it.
	Attach() Container
	// Detach hides and releases a container.
	Detach(c Container)
	Viewport() (width, height float64)
}
