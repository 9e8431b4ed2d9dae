package ambient

import (
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/iburimskiy/confetti/internal/frame"
)

// Option configures a System.
type Option func(*System)

// WithTuning replaces DefaultTuning.
func WithTuning(tu Tuning) Option {
	return func(s *System) { s.tuning = tu }
}

// WithTheme replaces the colour theme, Themes[0] by default.
func WithTheme(th Theme) Option {
	return func(s *System) { s.theme = th }
}

// System runs one shower at a time. It spawns particles on staggered timers,
// moves them every frame and tears its container down once the last spawn has
// happened and every particle has fallen out of view.
type System struct {
	loop   *frame.Loop
	stage  Stage
	tuning Tuning
	theme  Theme

	container Container
	particles []*Particle
	spawned   int

	spawnTimer   frame.TimerID
	spawnPending bool
	frameID      frame.FrameID
	running      bool

	prev    time.Time
	hasPrev bool
}

// NewSystem creates an idle shower on stage.
func NewSystem(loop *frame.Loop, stage Stage, opts ...Option) *System {
	s := &System{
		loop:   loop,
		stage:  stage,
		tuning: DefaultTuning(),
		theme:  Themes[0],
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a shower. It does nothing while one is already running.
func (s *System) Start() {
	if s.running {
		return
	}
	s.running = true
	s.container = s.stage.Attach()
	s.spawned = 0
	s.hasPrev = false

	s.spawn()
	s.frameID = s.loop.RequestFrame(s.tick)
	log.Printf("[ambient] shower started, %d particles", s.tuning.Particles)
}

// Stop ends a running shower at once, cancelling the pending spawn and frame
// and removing every particle.
func (s *System) Stop() {
	if !s.running {
		return
	}
	if s.spawnPending {
		s.loop.Stop(s.spawnTimer)
		s.spawnPending = false
	}
	s.loop.CancelFrame(s.frameID)
	for _, p := range s.particles {
		s.container.Remove(p.el)
	}
	clear(s.particles)
	s.particles = s.particles[:0]
	s.teardown()
}

// Running reports whether a shower is in progress.
func (s *System) Running() bool { return s.running }

// Len returns the number of live particles.
func (s *System) Len() int { return len(s.particles) }

// Particles returns the live particles in stage order. The slice must not be
// modified.
func (s *System) Particles() []*Particle { return s.particles }

func (s *System) spawn() {
	s.spawnPending = false
	if s.spawned >= s.tuning.Particles {
		return
	}

	width, _ := s.stage.Viewport()
	s.particles = append(s.particles, NewParticle(s.container, s.theme, width, s.tuning))
	s.spawned++
	if s.spawned >= s.tuning.Particles {
		return
	}

	delay := time.Duration(s.tuning.Spread * rand.Float64() * float64(time.Millisecond))
	s.spawnTimer = s.loop.AfterFunc(delay, s.spawn)
	s.spawnPending = true
}

func (s *System) tick(now time.Time) {
	var delta float64
	if s.hasPrev {
		delta = float64(now.Sub(s.prev)) / float64(time.Millisecond)
	}
	s.prev, s.hasPrev = now, true

	_, height := s.stage.Viewport()
	for i := len(s.particles) - 1; i >= 0; i-- {
		p := s.particles[i]
		if p.Update(height, delta) {
			s.container.Remove(p.el)
			s.particles = slices.Delete(s.particles, i, i+1)
		}
	}

	if s.spawnPending || len(s.particles) > 0 {
		s.frameID = s.loop.RequestFrame(s.tick)
		return
	}

	s.teardown()
}

func (s *System) teardown() {
	s.stage.Detach(s.container)
	s.container = nil
	s.running = false
	log.Printf("[ambient] shower finished after %d particles", s.spawned)
}
