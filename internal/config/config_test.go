package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/confetti/internal/ambient"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "confetti.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Window.Width != WindowWidth || c.Window.Height != WindowHeight || c.Window.Title != WindowTitle {
		t.Errorf("Window = %+v", c.Window)
	}
	if c.Burst.Count != 295 || c.Burst.Radius != 5 {
		t.Errorf("Burst = %+v, want stock defaults", c.Burst)
	}
	if c.Ambient.Tuning != ambient.DefaultTuning() {
		t.Errorf("Tuning = %+v, want DefaultTuning", c.Ambient.Tuning)
	}
	if c.Audio.Volume != DefaultVolume || c.Remote.Backlog != DefaultBacklog {
		t.Errorf("Audio = %+v Remote = %+v", c.Audio, c.Remote)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil || c.Window.Width != WindowWidth {
		t.Errorf("Load(\"\") = %+v, %v", c, err)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 800
burst:
  count: 60
  emojis: ["🎉", "✨"]
ambient:
  theme: 3
  auto_start: true
  tuning:
    particles: 40
    spread: 80
gate:
  hash: "$2a$10$abc"
audio:
  volume: 0.5
remote:
  listen: "127.0.0.1:7777"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Window.Width != 800 || c.Window.Height != WindowHeight {
		t.Errorf("Window = %+v, want width 800 and default height", c.Window)
	}
	if c.Burst.Count != 60 || len(c.Burst.Emojis) != 2 || c.Burst.EmojiSize != 50 {
		t.Errorf("Burst = %+v", c.Burst)
	}
	tu := c.Ambient.Tuning
	if tu.Particles != 40 || tu.Spread != 80 || tu.Period != 7777 || tu.DxThetaMin != -0.1 {
		t.Errorf("Tuning = %+v, want overrides merged over defaults", tu)
	}
	if !c.Ambient.AutoStart || c.Theme() == nil {
		t.Errorf("Ambient = %+v", c.Ambient)
	}
	if c.Gate.Hash != "$2a$10$abc" || c.Audio.Volume != 0.5 || c.Remote.Listen != "127.0.0.1:7777" {
		t.Errorf("Gate = %+v Audio = %+v Remote = %+v", c.Gate, c.Audio, c.Remote)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "window: [", "failed to parse"},
		{"theme", "ambient:\n  theme: 9", "ambient.theme"},
		{"negative theme", "ambient:\n  theme: -1", "ambient.theme"},
		{"volume", "audio:\n  volume: 1.5", "audio.volume"},
		{"count", "burst:\n  count: -3", "negative"},
		{"eccentricity", "ambient:\n  tuning:\n    eccentricity: -10", "eccentricity"},
		{"period", "ambient:\n  tuning:\n    period: -1", "period"},
		{"spread", "ambient:\n  tuning:\n    spread: -5", "spread"},
		{"size range", "ambient:\n  tuning:\n    size_min: 20", "size_min"},
		{"dx range", "ambient:\n  tuning:\n    dx_theta_min: 0.5", "dx_theta_min"},
		{"dy range", "ambient:\n  tuning:\n    dy_min: 0.5\n    dy_max: 0.2", "dy_min"},
		{"dtheta range", "ambient:\n  tuning:\n    dtheta_max: 0.1", "dtheta_min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}
