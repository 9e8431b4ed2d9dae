// Package spline builds the periodic control points that give ambient
// confetti its wobble.
//
// Control positions come from one-dimensional Poisson-disc sampling of the
// unit interval, so no two are closer than 2/eccentricity and the path never
// bunches up.
package spline

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Interval is a half-open span [Lo, Hi) of the unit interval still open to darts.
type Interval struct {
	Lo, Hi float64
}

// Len returns the interval length.
func (iv Interval) Len() float64 { return iv.Hi - iv.Lo }

// Generate returns sample positions in [0, 1], sorted ascending, starting at 0
// and ending at 1, with adjacent samples at least 2/eccentricity apart. The
// excluded spans are widened by one ulp so the spacing holds exactly in
// float64. An eccentricity that is not positive, or too small to fit any
// interior sample, yields just the endpoints.
func Generate(eccentricity float64) []float64 {
	samples := []float64{0, 1}
	if !(eccentricity > 0) {
		return samples
	}
	gap := 2 / eccentricity

	domain := []Interval{{Lo: gap, Hi: math.Nextafter(1-gap, math.Inf(-1))}}
	measure := measureOf(domain)
	for measure > 0 {
		dart := locate(domain, rand.Float64()*measure)
		samples = append(samples, dart)
		domain = exclude(domain,
			math.Nextafter(dart-gap, math.Inf(-1)),
			math.Nextafter(dart+gap, math.Inf(1)))
		measure = measureOf(domain)
	}

	sort.Float64s(samples)
	return samples
}

// locate maps an offset within the total measure of domain back to an
// absolute position.
func locate(domain []Interval, offset float64) float64 {
	acc := 0.0
	for _, iv := range domain {
		if offset < acc+iv.Len() {
			return iv.Lo + offset - acc
		}
		acc += iv.Len()
	}
	// rounding pushed offset past the end
	return domain[len(domain)-1].Hi
}

// exclude removes [c, d) from every interval of domain.
func exclude(domain []Interval, c, d float64) []Interval {
	out := domain[:0:0]
	for _, iv := range domain {
		switch {
		case iv.Lo >= c && iv.Hi <= d:
			// swallowed
		case iv.Lo >= c && iv.Lo < d:
			out = append(out, Interval{Lo: d, Hi: iv.Hi})
		case iv.Lo < c && iv.Hi > d:
			out = append(out, Interval{Lo: iv.Lo, Hi: c}, Interval{Lo: d, Hi: iv.Hi})
		case iv.Lo < c && iv.Hi > c:
			out = append(out, Interval{Lo: iv.Lo, Hi: c})
		default:
			out = append(out, iv)
		}
	}
	return out
}

func measureOf(domain []Interval) float64 {
	m := 0.0
	for _, iv := range domain {
		if iv.Len() > 0 {
			m += iv.Len()
		}
	}
	return m
}

// Bracket returns the adjacent pair i, i+1 with xs[i] <= phi < xs[i+1]. phi
// equal to the last sample selects the final pair.
func Bracket(xs []float64, phi float64) (i, j int) {
	i, j = 0, 1
	for j < len(xs)-1 && phi >= xs[j] {
		i = j
		j++
	}
	return i, j
}

// Cosine blends a into b with a half-cosine ease, t in [0, 1].
func Cosine(a, b, t float64) float64 {
	return (1-math.Cos(math.Pi*t))/2*(b-a) + a
}
