// Package config loads the celebration settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/confetti/internal/ambient"
	"github.com/iburimskiy/confetti/internal/burst"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Confetti"

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Status bar
	LevelBarWidth  = 160
	LevelBarHeight = 6

	DefaultVolume  = 0.8
	DefaultBacklog = 16
)

// Config is the whole settings file.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Burst   burst.Config  `yaml:"burst"`
	Ambient AmbientConfig `yaml:"ambient"`
	Gate    GateConfig    `yaml:"gate"`
	Audio   AudioConfig   `yaml:"audio"`
	Remote  RemoteConfig  `yaml:"remote"`
	Font    string        `yaml:"font"` // empty selects Go Regular
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AmbientConfig picks the shower theme (an index into ambient.Themes) and
// overrides tuning constants.
type AmbientConfig struct {
	Theme     int            `yaml:"theme"`
	AutoStart bool           `yaml:"auto_start"`
	Tuning    ambient.Tuning `yaml:"tuning"`
}

// GateConfig holds the bcrypt hash of the unlock password. Empty means no
// password.
type GateConfig struct {
	Hash string `yaml:"hash"`
}

type AudioConfig struct {
	Cue    string  `yaml:"cue"` // wav, mp3 or flac; empty plays the built-in chime
	Volume float64 `yaml:"volume"`
	Mute   bool    `yaml:"mute"`
}

// RemoteConfig enables the trigger socket when Listen is set.
type RemoteConfig struct {
	Listen  string `yaml:"listen"`
	Backlog int    `yaml:"backlog"`
}

// Default returns the settings used without a file.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads path. An empty path returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) validate() error {
	if c.Ambient.Theme < 0 || c.Ambient.Theme >= len(ambient.Themes) {
		return fmt.Errorf("ambient.theme %d out of range [0, %d)", c.Ambient.Theme, len(ambient.Themes))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v out of range [0, 1]", c.Audio.Volume)
	}
	if c.Burst.Count < 0 || c.Ambient.Tuning.Particles < 0 {
		return fmt.Errorf("particle counts must not be negative")
	}
	return validateTuning(mergeTuning(c.Ambient.Tuning, ambient.DefaultTuning()))
}

func validateTuning(tu ambient.Tuning) error {
	switch {
	case tu.Eccentricity <= 0:
		return fmt.Errorf("ambient.tuning.eccentricity %v must be positive", tu.Eccentricity)
	case tu.Period <= 0:
		return fmt.Errorf("ambient.tuning.period %v must be positive", tu.Period)
	case tu.Spread < 0:
		return fmt.Errorf("ambient.tuning.spread %v must not be negative", tu.Spread)
	case tu.SizeMin > tu.SizeMax:
		return fmt.Errorf("ambient.tuning.size_min %v exceeds size_max %v", tu.SizeMin, tu.SizeMax)
	case tu.DxThetaMin > tu.DxThetaMax:
		return fmt.Errorf("ambient.tuning.dx_theta_min %v exceeds dx_theta_max %v", tu.DxThetaMin, tu.DxThetaMax)
	case tu.DyMin > tu.DyMax:
		return fmt.Errorf("ambient.tuning.dy_min %v exceeds dy_max %v", tu.DyMin, tu.DyMax)
	case tu.DThetaMin > tu.DThetaMax:
		return fmt.Errorf("ambient.tuning.dtheta_min %v exceeds dtheta_max %v", tu.DThetaMin, tu.DThetaMax)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = WindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = WindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = WindowTitle
	}
	c.Burst = c.Burst.Merged()
	c.Ambient.Tuning = mergeTuning(c.Ambient.Tuning, ambient.DefaultTuning())
	if c.Audio.Volume == 0 {
		c.Audio.Volume = DefaultVolume
	}
	if c.Remote.Backlog == 0 {
		c.Remote.Backlog = DefaultBacklog
	}
}

// Theme returns the configured shower theme.
func (c *Config) Theme() ambient.Theme { return ambient.Themes[c.Ambient.Theme] }

func mergeTuning(t, def ambient.Tuning) ambient.Tuning {
	if t.Particles == 0 {
		t.Particles = def.Particles
	}
	fill := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&t.Spread, def.Spread)
	fill(&t.SizeMin, def.SizeMin)
	fill(&t.SizeMax, def.SizeMax)
	fill(&t.Eccentricity, def.Eccentricity)
	fill(&t.Deviation, def.Deviation)
	fill(&t.DxThetaMin, def.DxThetaMin)
	fill(&t.DxThetaMax, def.DxThetaMax)
	fill(&t.DyMin, def.DyMin)
	fill(&t.DyMax, def.DyMax)
	fill(&t.DThetaMin, def.DThetaMin)
	fill(&t.DThetaMax, def.DThetaMax)
	fill(&t.Period, def.Period)
	return t
}
