package game

import (
	"fmt"
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/confetti/internal/util"
)

// levelColor runs from green through yellow to red as the cue gets louder.
func levelColor(level float64) color.RGBA {
	c := colorful.Hsv(120*(1-util.Clamp01(level)), 0.8, 0.9)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
