// Package util holds the small helpers shared by both confetti effects.
package util

import (
	"math"
	"math/rand/v2"
)

// ReferenceWidth is the viewport width at which ScaleFactor is 1.
const ReferenceWidth = 1920

// RandomInRange returns a uniform sample in [min, max) truncated to precision
// decimal digits. Truncation moves the value toward min. A range given high to
// low is sampled the same way.
func RandomInRange(min, max float64, precision int) float64 {
	v := min + rand.Float64()*(max-min)
	p := math.Pow(10, float64(precision))
	return math.Floor(v*p) / p
}

// RandomItem picks a uniformly random element. items must not be empty.
func RandomItem[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

// ScaleFactor normalises speeds and sizes against the reference width.
func ScaleFactor(viewportWidth float64) float64 {
	return math.Log(viewportWidth) / math.Log(ReferenceWidth)
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RandomFloat returns a uniform sample in [min, max) at full precision.
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
