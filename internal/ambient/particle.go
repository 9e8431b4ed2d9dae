package ambient

import (
	"image/color"
	"math"

	"github.com/iburimskiy/confetti/internal/spline"
	"github.com/iburimskiy/confetti/internal/util"
)

// Tuning holds the shower constants. Ranges are [Min, Max); rates are per
// millisecond.
type Tuning struct {
	Particles    int     `yaml:"particles"`
	Spread       float64 `yaml:"spread"` // max ms between spawns
	SizeMin      float64 `yaml:"size_min"`
	SizeMax      float64 `yaml:"size_max"`
	Eccentricity float64 `yaml:"eccentricity"`
	Deviation    float64 `yaml:"deviation"`
	DxThetaMin   float64 `yaml:"dx_theta_min"`
	DxThetaMax   float64 `yaml:"dx_theta_max"`
	DyMin        float64 `yaml:"dy_min"`
	DyMax        float64 `yaml:"dy_max"`
	DThetaMin    float64 `yaml:"dtheta_min"`
	DThetaMax    float64 `yaml:"dtheta_max"`
	Period       float64 `yaml:"period"` // ms per wobble loop
}

// DefaultTuning returns the stock shower.
func DefaultTuning() Tuning {
	return Tuning{
		Particles:    150,
		Spread:       40,
		SizeMin:      3,
		SizeMax:      12,
		Eccentricity: 10,
		Deviation:    100,
		DxThetaMin:   -0.1,
		DxThetaMax:   0.1,
		DyMin:        0.13,
		DyMax:        0.31,
		DThetaMin:    0.4,
		DThetaMax:    0.7,
		Period:       7777,
	}
}

// Particle is one falling square.
type Particle struct {
	X, Y   float64
	DX, DY float64

	SplineX []float64
	SplineY []float64

	Theta, DTheta float64
	Rotation      float64
	Axis          Axis
	Frame         float64

	Size  float64
	Color color.RGBA

	Left, Top float64 // last placed position

	el        Element
	deviation float64
	period    float64
}

// NewParticle creates a square just above the viewport and appends it to c.
func NewParticle(c Container, theme Theme, viewportWidth float64, tu Tuning) *Particle {
	p := &Particle{
		X:         viewportWidth * util.RandomFloat(0, 1),
		Y:         -tu.Deviation,
		DX:        math.Sin(util.RandomFloat(tu.DxThetaMin, tu.DxThetaMax)),
		DY:        util.RandomFloat(tu.DyMin, tu.DyMax),
		Theta:     util.RandomFloat(0, 360),
		DTheta:    util.RandomFloat(tu.DThetaMin, tu.DThetaMax),
		Rotation:  util.RandomFloat(0, 360),
		Axis:      Axis{X: math.Cos(util.RandomFloat(0, 360)), Y: math.Cos(util.RandomFloat(0, 360))},
		Size:      util.RandomFloat(tu.SizeMin, tu.SizeMax),
		Color:     theme(),
		deviation: tu.Deviation,
		period:    tu.Period,
	}

	p.SplineX = spline.Generate(tu.Eccentricity)
	n := len(p.SplineX)
	p.SplineY = make([]float64, n)
	for i := 1; i < n-1; i++ {
		p.SplineY[i] = util.RandomFloat(0, tu.Deviation)
	}
	p.SplineY[0] = util.RandomFloat(0, tu.Deviation)
	p.SplineY[n-1] = p.SplineY[0]

	p.el = c.Append(p.Size, p.Color)
	p.Left, p.Top = p.X, p.Y
	p.el.Place(p.Left, p.Top, p.transform())
	return p
}

// Update advances the particle by deltaMs and repositions its element. It
// reports true once the particle has fallen past the bottom of the viewport.
func (p *Particle) Update(viewportHeight, deltaMs float64) bool {
	p.Frame += deltaMs
	p.X += p.DX * deltaMs
	p.Y += p.DY * deltaMs
	p.Theta += p.DTheta * deltaMs

	phi := math.Mod(p.Frame, p.period) / p.period
	i, j := spline.Bracket(p.SplineX, phi)
	t := (phi - p.SplineX[i]) / (p.SplineX[j] - p.SplineX[i])
	rho := spline.Cosine(p.SplineY[i], p.SplineY[j], t)
	phi *= 2 * math.Pi

	p.Left = p.X + rho*math.Cos(phi)
	p.Top = p.Y + rho*math.Sin(phi)
	p.el.Place(p.Left, p.Top, p.transform())

	return p.Y > viewportHeight+p.deviation
}

// Element returns the stage element backing the particle.
func (p *Particle) Element() Element { return p.el }

func (p *Particle) transform() Transform {
	return Transform{Rotation: p.Rotation, Axis: p.Axis, Theta: p.Theta}
}
