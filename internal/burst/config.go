package burst

import (
	"image/color"
	"log"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Config shapes one burst. Zero fields fall back to DefaultConfig. Emojis and
// Icon are alternatives to the colour palette; Icon wins if both are set.
type Config struct {
	Count     int      `yaml:"count" json:"count"`
	Radius    float64  `yaml:"radius" json:"radius"`
	EmojiSize float64  `yaml:"emoji_size" json:"emojiSize"`
	IconSize  float64  `yaml:"icon_size" json:"iconSize"`
	Colors    []string `yaml:"colors" json:"colors"`
	Emojis    []string `yaml:"emojis" json:"emojis"`
	Icon      string   `yaml:"icon" json:"icon"`
}

// DefaultColors is the palette used when a burst names none.
var DefaultColors = []string{
	"#fcf403", "#62fc03", "#f4fc03", "#03e7fc",
	"#03fca5", "#a503fc", "#fc03ad", "#fc03c2",
}

// DefaultConfig returns the documented burst defaults.
func DefaultConfig() Config {
	return Config{
		Count:     295,
		Radius:    5,
		EmojiSize: 50,
		IconSize:  30,
		Colors:    append([]string(nil), DefaultColors...),
	}
}

// Merged returns c with every unset field taken from DefaultConfig.
func (c Config) Merged() Config {
	def := DefaultConfig()
	if c.Count <= 0 {
		c.Count = def.Count
	}
	if c.Radius <= 0 {
		c.Radius = def.Radius
	}
	if c.EmojiSize <= 0 {
		c.EmojiSize = def.EmojiSize
	}
	if c.IconSize <= 0 {
		c.IconSize = def.IconSize
	}
	if len(c.Colors) == 0 {
		c.Colors = def.Colors
	}
	return c
}

// ParsePalette converts CSS hex colours ("#fff", "#ffc700"). Entries that do
// not parse are logged and skipped; an empty result falls back to DefaultColors.
func ParsePalette(hex []string) []color.RGBA {
	out := make([]color.RGBA, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			log.Printf("[burst] ignoring colour %q: %v", h, err)
			continue
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	if len(out) == 0 {
		return ParsePalette(DefaultColors)
	}
	return out
}
