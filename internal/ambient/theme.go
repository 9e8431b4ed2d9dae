package ambient

import (
	"image/color"
	"math/rand/v2"
)

// Theme produces the colour of each new particle.
type Theme func() color.RGBA

func rgb(r, g, b int) color.RGBA {
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func channel(max int) int { return rand.IntN(max) }

func mixedTheme() color.RGBA { return rgb(channel(200), channel(200), channel(200)) }

func redTheme() color.RGBA {
	k := channel(200)
	return rgb(200, k, k)
}

func greenTheme() color.RGBA {
	k := channel(200)
	return rgb(k, 200, k)
}

func blueTheme() color.RGBA {
	k := channel(200)
	return rgb(k, k, 200)
}

func pinkTheme() color.RGBA { return rgb(200, 100, channel(200)) }

func cyanTheme() color.RGBA { return rgb(channel(200), 200, 200) }

func grayTheme() color.RGBA {
	k := channel(256)
	return rgb(k, k, k)
}

func either(a, b Theme) Theme {
	return func() color.RGBA {
		if rand.Float64() < .5 {
			return a()
		}
		return b()
	}
}

// Themes lists the available palettes. The shower uses Themes[0].
var Themes = []Theme{
	mixedTheme,
	redTheme,
	greenTheme,
	blueTheme,
	pinkTheme,
	cyanTheme,
	grayTheme,
	either(redTheme, greenTheme),
	either(blueTheme, cyanTheme),
}
