// Package burst implements the two-edge confetti burst: physically animated
// particles drawn onto a full-viewport canvas by a perpetual frame loop.
//
// All distances are viewport pixels and all rates are per millisecond; the
// canvas backing store is scaled by the device pixel ratio only when drawing.
package burst

import (
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/confetti/internal/asset"
	"github.com/iburimskiy/confetti/internal/util"
)

const (
	minInitialSpeed      = 0.9
	maxInitialSpeed      = 1.7
	minFinalSpeedX       = 0.2
	maxFinalSpeedX       = 0.6
	minRotationSpeed     = 0.03
	maxRotationSpeed     = 0.07
	minDragCoefficient   = 0.0005
	maxDragCoefficient   = 0.0009
	minLaunchAngle       = 15
	maxLaunchAngle       = 82
	maxPositionShift     = 150
	gravity              = 0.000625 // half the free-fall acceleration, px/ms²
	rotationSlowdown     = 0.00001
	glyphRotationSpeed   = 0.01
	glyphRotationSlowing = 0.0001
	visibilityThreshold  = 100
)

// Direction is the horizontal travel direction of a particle.
type Direction int

const (
	// Left travels toward x=0; such particles start at the right edge.
	Left Direction = iota
	// Right travels toward the right edge; such particles start at x=0.
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

func (d Direction) sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// RadiusDirection is the phase of the flat "tumbling" oscillation.
type RadiusDirection int

const (
	Down RadiusDirection = iota
	Up
)

// Vec is a point or velocity in viewport pixels.
type Vec struct {
	X, Y float64
}

// RenderMode selects how a particle is drawn. It is one of Fill, Glyph or Icon
// and never changes after construction.
type RenderMode interface {
	isRenderMode()
}

// Fill draws a coloured ellipse.
type Fill struct {
	Color color.RGBA
}

// Glyph draws a text glyph, usually an emoji.
type Glyph struct {
	Text string
	Size float64
}

// Icon draws an image once it has loaded.
type Icon struct {
	Image *asset.Icon
	Size  float64
}

func (Fill) isRenderMode()  {}
func (Glyph) isRenderMode() {}
func (Icon) isRenderMode()  {}

// ParticleOptions are the construction inputs of a Particle.
type ParticleOptions struct {
	Origin        Vec
	Direction     Direction
	Radius        float64
	Colors        []color.RGBA
	Emojis        []string
	EmojiSize     float64
	Icon          *asset.Icon
	IconSize      float64
	ViewportWidth float64
}

// Particle is one piece of burst confetti.
type Particle struct {
	Position        Vec
	InitialPosition Vec
	Speed           Vec
	FinalSpeedX     float64

	Radius           Vec
	InitialRadius    float64
	RadiusYDirection RadiusDirection

	RotationAngle   float64
	RotationSpeed   float64
	GlyphRotation   float64
	DragCoefficient float64

	Direction Direction
	Mode      RenderMode
	CreatedAt time.Time

	absCos, absSin float64
}

// NewParticle launches a particle from opts.Origin. The render mode is picked
// here: icon if given, else a random emoji, else a random colour.
func NewParticle(opts ParticleOptions, now time.Time) *Particle {
	scale := util.ScaleFactor(opts.ViewportWidth)

	speed := util.RandomInRange(minInitialSpeed, maxInitialSpeed, 3) * scale
	p := &Particle{
		Speed:            Vec{X: speed, Y: speed},
		FinalSpeedX:      math.Min(util.RandomInRange(minFinalSpeedX, maxFinalSpeedX, 3), speed),
		Radius:           Vec{X: opts.Radius, Y: opts.Radius},
		InitialRadius:    opts.Radius,
		RadiusYDirection: Down,
		GlyphRotation:    util.RandomInRange(0, 2*math.Pi, 3),
		DragCoefficient:  util.RandomInRange(minDragCoefficient, maxDragCoefficient, 6),
		Direction:        opts.Direction,
		Mode:             pickMode(opts),
		CreatedAt:        now,
	}

	if _, ok := p.Mode.(Fill); ok {
		p.RotationSpeed = util.RandomInRange(minRotationSpeed, maxRotationSpeed, 3) * scale
	} else {
		p.RotationSpeed = glyphRotationSpeed
	}

	var angle float64
	if opts.Direction == Left {
		p.RotationAngle = util.RandomInRange(0, 0.2, 3)
		angle = util.RandomInRange(maxLaunchAngle, minLaunchAngle, 0)
	} else {
		p.RotationAngle = util.RandomInRange(-0.2, 0, 3)
		angle = util.RandomInRange(-minLaunchAngle, -maxLaunchAngle, 0)
	}
	angle = angle * math.Pi / 180
	p.absCos = math.Abs(math.Cos(angle))
	p.absSin = math.Abs(math.Sin(angle))

	shift := util.RandomInRange(-maxPositionShift, 0, 0)
	p.InitialPosition = Vec{
		X: opts.Origin.X + shift*opts.Direction.sign()*p.absCos,
		Y: opts.Origin.Y - shift*p.absSin,
	}
	p.Position = p.InitialPosition
	return p
}

func pickMode(opts ParticleOptions) RenderMode {
	switch {
	case opts.Icon != nil:
		return Icon{Image: opts.Icon, Size: opts.IconSize}
	case len(opts.Emojis) > 0:
		return Glyph{Text: util.RandomItem(opts.Emojis), Size: opts.EmojiSize}
	default:
		return Fill{Color: util.RandomItem(opts.Colors)}
	}
}

// Update advances the particle by deltaMs milliseconds; now is the frame time.
func (p *Particle) Update(deltaMs float64, now time.Time) {
	elapsed := millis(now.Sub(p.CreatedAt))

	if p.Speed.X > p.FinalSpeedX {
		p.Speed.X = math.Max(p.FinalSpeedX, p.Speed.X-p.DragCoefficient*deltaMs)
	}
	p.Position.X += p.Speed.X * p.Direction.sign() * p.absCos * deltaMs
	p.Position.Y = p.InitialPosition.Y - p.Speed.Y*p.absSin*elapsed + gravity*elapsed*elapsed

	if _, ok := p.Mode.(Fill); !ok {
		p.RotationSpeed = math.Max(0, p.RotationSpeed-glyphRotationSlowing)
		p.GlyphRotation += math.Mod(p.RotationSpeed*deltaMs, 2*math.Pi)
		return
	}

	p.RotationSpeed = math.Max(0, p.RotationSpeed-rotationSlowdown*deltaMs)
	step := p.RotationSpeed * deltaMs
	if p.RadiusYDirection == Down {
		p.Radius.Y -= step
		if p.Radius.Y <= 0 {
			p.Radius.Y = 0
			p.RadiusYDirection = Up
		}
	} else {
		p.Radius.Y += step
		if p.Radius.Y >= p.InitialRadius {
			p.Radius.Y = p.InitialRadius
			p.RadiusYDirection = Down
		}
	}
}

// Draw renders the particle onto s, scaling coordinates by dpr. Icons that
// have not finished loading draw nothing.
func (p *Particle) Draw(s Surface, dpr float64) {
	x, y := p.Position.X*dpr, p.Position.Y*dpr
	switch m := p.Mode.(type) {
	case Fill:
		s.FillEllipse(x, y, p.Radius.X*dpr, p.Radius.Y*dpr, p.RotationAngle, m.Color)
	case Glyph:
		s.DrawGlyph(m.Text, x, y, m.Size*dpr, p.GlyphRotation)
	case Icon:
		img := m.Image.Image()
		if img == nil {
			return
		}
		s.DrawImage(img, x, y, m.Size*dpr, p.GlyphRotation)
	}
}

// Visible reports whether the particle is above the removal line 100px below
// the bottom edge. viewportHeight is in viewport pixels, the same units as
// Position, not the backing store height scaled by the pixel ratio.
func (p *Particle) Visible(viewportHeight float64) bool {
	return p.Position.Y < viewportHeight+visibilityThreshold
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
