package spline

import (
	"math"
	"testing"
	"time"
)

func TestGenerateSpacing(t *testing.T) {
	tests := []struct {
		name         string
		eccentricity float64
	}{
		{"default", 10},
		{"dense", 40},
		{"sparse", 5},
		{"degenerate", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minGap := 2 / tt.eccentricity
			for run := 0; run < 500; run++ {
				xs := Generate(tt.eccentricity)
				if xs[0] != 0 || xs[len(xs)-1] != 1 {
					t.Fatalf("Generate(%v) = %v, want endpoints 0 and 1", tt.eccentricity, xs)
				}
				for i := 1; i < len(xs); i++ {
					if xs[i]-xs[i-1] < minGap {
						t.Fatalf("Generate(%v) = %v, gap %v < %v at %d", tt.eccentricity, xs, xs[i]-xs[i-1], minGap, i)
					}
				}
			}
		})
	}
}

func TestGenerateRejectsBadEccentricity(t *testing.T) {
	done := make(chan []float64, 1)
	for _, e := range []float64{-10, 0, math.NaN(), 1} {
		go func() { done <- Generate(e) }()
		select {
		case xs := <-done:
			if len(xs) != 2 || xs[0] != 0 || xs[1] != 1 {
				t.Errorf("Generate(%v) = %v, want [0 1]", e, xs)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Generate(%v) did not return", e)
		}
	}
}

func TestGenerateFillsDomain(t *testing.T) {
	// With gap 0.2 the open span [0.2, 0.8] always takes at least two darts.
	for run := 0; run < 200; run++ {
		if xs := Generate(10); len(xs) < 4 {
			t.Fatalf("Generate(10) = %v, want at least 4 samples", xs)
		}
	}
}

func TestExclude(t *testing.T) {
	tests := []struct {
		name   string
		domain []Interval
		c, d   float64
		want   []Interval
	}{
		{"swallowed", []Interval{{0.3, 0.4}}, 0.2, 0.5, nil},
		{"trim low", []Interval{{0.3, 0.9}}, 0.2, 0.5, []Interval{{0.5, 0.9}}},
		{"trim high", []Interval{{0.1, 0.4}}, 0.2, 0.5, []Interval{{0.1, 0.2}}},
		{"split", []Interval{{0.1, 0.9}}, 0.2, 0.5, []Interval{{0.1, 0.2}, {0.5, 0.9}}},
		{"untouched", []Interval{{0.6, 0.9}}, 0.2, 0.5, []Interval{{0.6, 0.9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exclude(tt.domain, tt.c, tt.d)
			if len(got) != len(tt.want) {
				t.Fatalf("exclude(%v, %v, %v) = %v, want %v", tt.domain, tt.c, tt.d, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("exclude(%v, %v, %v)[%d] = %v, want %v", tt.domain, tt.c, tt.d, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLocate(t *testing.T) {
	domain := []Interval{{0.1, 0.2}, {0.5, 0.7}}
	tests := []struct{ offset, want float64 }{
		{0, 0.1},
		{0.05, 0.15},
		{0.1, 0.5},
		{0.25, 0.65},
	}
	for _, tt := range tests {
		if got := locate(domain, tt.offset); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("locate(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestBracket(t *testing.T) {
	xs := []float64{0, 0.25, 0.6, 1}
	tests := []struct {
		phi    float64
		wi, wj int
	}{
		{0, 0, 1},
		{0.1, 0, 1},
		{0.25, 1, 2},
		{0.59, 1, 2},
		{0.6, 2, 3},
		{0.99, 2, 3},
		{1, 2, 3},
	}
	for _, tt := range tests {
		i, j := Bracket(xs, tt.phi)
		if i != tt.wi || j != tt.wj {
			t.Errorf("Bracket(%v) = (%d, %d), want (%d, %d)", tt.phi, i, j, tt.wi, tt.wj)
		}
		if tt.phi < xs[i] || tt.phi > xs[j] {
			t.Errorf("Bracket(%v) pair [%v, %v] does not contain phi", tt.phi, xs[i], xs[j])
		}
	}
}

func TestCosineBounds(t *testing.T) {
	pairs := [][2]float64{{0, 100}, {100, 0}, {-3, 7}, {42, 42}, {0.5, -0.5}}
	for _, p := range pairs {
		lo, hi := math.Min(p[0], p[1]), math.Max(p[0], p[1])
		for k := 0; k <= 100; k++ {
			tt := float64(k) / 100
			v := Cosine(p[0], p[1], tt)
			if v < lo-1e-12 || v > hi+1e-12 {
				t.Errorf("Cosine(%v, %v, %v) = %v, outside [%v, %v]", p[0], p[1], tt, v, lo, hi)
			}
		}
		if got := Cosine(p[0], p[1], 0); math.Abs(got-p[0]) > 1e-12 {
			t.Errorf("Cosine(%v, %v, 0) = %v, want %v", p[0], p[1], got, p[0])
		}
		if got := Cosine(p[0], p[1], 1); math.Abs(got-p[1]) > 1e-12 {
			t.Errorf("Cosine(%v, %v, 1) = %v, want %v", p[0], p[1], got, p[1])
		}
	}
}
