package game

import (
	"testing"
	"time"
)

func TestButtonClick(t *testing.T) {
	tests := []struct {
		name  string
		steps [][4]float64 // x, y, pressed, released
		want  bool
	}{
		{"press and release inside", [][4]float64{{30, 60, 1, 0}, {30, 60, 0, 1}}, true},
		{"release outside", [][4]float64{{30, 60, 1, 0}, {500, 60, 0, 1}}, false},
		{"press outside", [][4]float64{{500, 60, 1, 0}, {30, 60, 0, 1}}, false},
		{"hover only", [][4]float64{{30, 60, 0, 0}, {30, 60, 0, 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := button{x: 20, y: 50, w: 120, h: 40}
			var clicked bool
			for _, s := range tt.steps {
				clicked = b.update(s[0], s[1], s[2] == 1, s[3] == 1)
			}
			if clicked != tt.want {
				t.Errorf("clicked = %v, want %v", clicked, tt.want)
			}
			if b.pressed {
				t.Error("button still pressed after release")
			}
		})
	}
}

func TestLevelColor(t *testing.T) {
	quiet, loud := levelColor(0), levelColor(1)
	if quiet.G <= quiet.R {
		t.Errorf("levelColor(0) = %v, want green", quiet)
	}
	if loud.R <= loud.G {
		t.Errorf("levelColor(1) = %v, want red", loud)
	}
	if over := levelColor(3); over != loud {
		t.Errorf("levelColor(3) = %v, want clamped to %v", over, loud)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{75 * time.Minute, "75:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
