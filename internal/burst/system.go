package burst

import (
	"log"
	"time"

	"github.com/iburimskiy/confetti/internal/asset"
	"github.com/iburimskiy/confetti/internal/frame"
	"github.com/iburimskiy/confetti/internal/util"
)

// ResizeDelay is the quiet period before a viewport change reaches the canvas.
const ResizeDelay = 200 * time.Millisecond

// Viewport is the visible area in viewport pixels plus the device pixel ratio
// of the backing store.
type Viewport struct {
	Width, Height float64
	PixelRatio    float64
}

func (v Viewport) backing() (int, int) {
	return int(v.Width * v.PixelRatio), int(v.Height * v.PixelRatio)
}

// IconLoader resolves icon sources. *asset.Loader satisfies it.
type IconLoader interface {
	Load(src string) *asset.Icon
}

// Option configures a System.
type Option func(*System)

// WithViewport sets the initial viewport.
func WithViewport(v Viewport) Option {
	return func(s *System) { s.view = v }
}

// WithIconLoader sets where icon sources are loaded from.
func WithIconLoader(l IconLoader) Option {
	return func(s *System) { s.icons = l }
}

// System owns the canvas and its live particles. Its frame loop starts in
// NewSystem and never stops; drop the System and its Loop to release it.
type System struct {
	loop      *frame.Loop
	surface   Surface
	icons     IconLoader
	view      Viewport
	particles []*Particle
	lastFrame time.Time
	resize    func(Viewport)
}

// NewSystem sizes surface to the viewport and starts the render loop on loop.
func NewSystem(loop *frame.Loop, surface Surface, opts ...Option) *System {
	s := &System{
		loop:    loop,
		surface: surface,
		view:    Viewport{Width: 1024, Height: 768, PixelRatio: 1},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.view.PixelRatio <= 0 {
		s.view.PixelRatio = 1
	}
	s.resize = util.Debounce(loop, ResizeDelay, s.Resize)

	s.surface.Resize(s.view.backing())
	s.lastFrame = loop.Now()
	loop.RequestFrame(s.render)
	return s
}

// Spawn launches cfg.Count particles, half from each side edge at 5/7 of the
// viewport height.
func (s *System) Spawn(cfg Config) {
	cfg = cfg.Merged()

	var icon *asset.Icon
	if cfg.Icon != "" {
		if s.icons == nil {
			log.Printf("[burst] no icon loader, ignoring icon %s", cfg.Icon)
		} else {
			icon = s.icons.Load(cfg.Icon)
		}
	}

	base := ParticleOptions{
		Radius:        cfg.Radius,
		Colors:        ParsePalette(cfg.Colors),
		Emojis:        cfg.Emojis,
		EmojiSize:     cfg.EmojiSize,
		Icon:          icon,
		IconSize:      cfg.IconSize,
		ViewportWidth: s.view.Width,
	}
	y := s.view.Height * 5 / 7
	now := s.loop.Now()

	for i := 0; i < cfg.Count/2; i++ {
		fromLeft := base
		fromLeft.Origin = Vec{X: 0, Y: y}
		fromLeft.Direction = Right

		fromRight := base
		fromRight.Origin = Vec{X: s.view.Width, Y: y}
		fromRight.Direction = Left

		s.particles = append(s.particles, NewParticle(fromLeft, now), NewParticle(fromRight, now))
	}
	log.Printf("[burst] spawned %d particles, %d live", cfg.Count/2*2, len(s.particles))
}

// Reset drops every live particle and spawns a fresh burst.
func (s *System) Reset(cfg Config) {
	clear(s.particles)
	s.particles = s.particles[:0]
	s.Spawn(cfg)
}

// Resize applies a new viewport immediately. Particle positions are kept.
func (s *System) Resize(v Viewport) {
	if v.PixelRatio <= 0 {
		v.PixelRatio = s.view.PixelRatio
	}
	s.view = v
	s.surface.Resize(v.backing())
}

// ResizeDebounced applies v once no other resize has arrived for ResizeDelay.
func (s *System) ResizeDebounced(v Viewport) {
	s.resize(v)
}

// Viewport returns the current viewport.
func (s *System) Viewport() Viewport { return s.view }

// Len returns the number of live particles.
func (s *System) Len() int { return len(s.particles) }

// Particles returns the live particles. The slice must not be modified.
func (s *System) Particles() []*Particle { return s.particles }

func (s *System) render(now time.Time) {
	delta := millis(now.Sub(s.lastFrame))
	s.lastFrame = now

	s.surface.Clear()
	live := s.particles[:0]
	for _, p := range s.particles {
		p.Update(delta, now)
		p.Draw(s.surface, s.view.PixelRatio)
		if p.Visible(s.view.Height) {
			live = append(live, p)
		}
	}
	clear(s.particles[len(live):])
	s.particles = live

	s.loop.RequestFrame(s.render)
}
