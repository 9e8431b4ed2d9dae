// Package game is the desktop host: an Ebitengine window showing the burst
// canvas over the ambient shower behind an optional password gate.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/confetti/internal/ambient"
	"github.com/iburimskiy/confetti/internal/asset"
	"github.com/iburimskiy/confetti/internal/audio"
	"github.com/iburimskiy/confetti/internal/burst"
	"github.com/iburimskiy/confetti/internal/config"
	"github.com/iburimskiy/confetti/internal/frame"
	"github.com/iburimskiy/confetti/internal/gate"
	"github.com/iburimskiy/confetti/internal/remote"
	"github.com/iburimskiy/confetti/internal/render"
)

var background = color.RGBA{R: 16, G: 18, B: 28, A: 255}

// Game implements ebiten.Game. Every effect runs on its frame.Loop, which
// Update ticks once per tick, so nothing in the core needs locking.
type Game struct {
	cfg    *config.Config
	loop   *frame.Loop
	canvas *render.Canvas
	board  *ambient.Board
	layer  *render.Layer
	bursts *burst.System
	shower *ambient.System
	player *audio.Player
	gate   gate.Gate

	commands <-chan remote.Command
	prompts  chan error
	icons    chan string

	burstCfg  burst.Config
	button    button
	unlocked  bool
	prompting bool

	width, height int
	dpr           float64
	unlockedAt    time.Time
	lastErr       error
}

// Option configures a Game.
type Option func(*Game)

// WithCommands feeds remote triggers into the game.
func WithCommands(ch <-chan remote.Command) Option {
	return func(g *Game) { g.commands = ch }
}

// WithPlayer sets the cue player. Without one the game is silent.
func WithPlayer(p *audio.Player) Option {
	return func(g *Game) { g.player = p }
}

// New builds the game from cfg. face may be nil to skip emoji bursts.
func New(cfg *config.Config, face *text.GoTextFaceSource, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		loop:     frame.NewLoop(nil),
		canvas:   render.NewCanvas(face),
		board:    ambient.NewBoard(float64(cfg.Window.Width), float64(cfg.Window.Height)),
		gate:     gate.Gate{Hash: []byte(cfg.Gate.Hash)},
		prompts:  make(chan error, 1),
		icons:    make(chan string, 1),
		burstCfg: cfg.Burst,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		dpr:      1,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.layer = render.NewLayer(g.board)
	g.bursts = burst.NewSystem(g.loop, g.canvas,
		burst.WithViewport(burst.Viewport{Width: float64(g.width), Height: float64(g.height), PixelRatio: g.dpr}),
		burst.WithIconLoader(asset.NewLoader()),
	)
	g.shower = ambient.NewSystem(g.loop, g.board,
		ambient.WithTuning(cfg.Ambient.Tuning),
		ambient.WithTheme(cfg.Theme()),
	)
	g.button = button{
		x: config.ButtonX, y: config.ButtonY,
		w: config.ButtonWidth, h: config.ButtonHeight,
		label: "Enter",
	}
	if g.gate.Open() {
		g.button.label = "Celebrate"
	}
	return g
}

func (g *Game) Update() error {
	g.loop.Tick()
	g.drain()

	mx, my := ebiten.CursorPosition()
	clicked := g.button.update(float64(mx)/g.dpr, float64(my)/g.dpr,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
	if clicked {
		if g.unlocked {
			g.celebrate()
		} else {
			g.requestUnlock()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if !g.unlocked {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.requestUnlock()
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.bursts.Reset(g.burstCfg)
		g.cue()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.celebrate()
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.shower.Start()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.shower.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.pickIcon()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.burstCfg.Icon = ""
	}
	return nil
}

// drain applies results from dialogs and remote clients.
func (g *Game) drain() {
	for {
		select {
		case err := <-g.prompts:
			g.prompting = false
			switch {
			case err == nil:
				g.unlock()
			case errors.Is(err, gate.ErrCanceled):
			default:
				g.lastErr = err
			}
		case path := <-g.icons:
			g.burstCfg.Icon = path
			g.celebrate()
		case cmd := <-g.commands:
			g.apply(cmd)
		default:
			return
		}
	}
}

func (g *Game) apply(cmd remote.Command) {
	if !g.unlocked {
		log.Printf("[game] ignoring remote %s while locked", cmd.Kind)
		return
	}
	switch cmd.Kind {
	case remote.KindBurst:
		g.bursts.Spawn(cmd.Config)
		g.cue()
	case remote.KindReset:
		g.bursts.Reset(cmd.Config)
		g.cue()
	case remote.KindShower:
		g.shower.Start()
	}
}

func (g *Game) requestUnlock() {
	if g.gate.Open() {
		g.unlock()
		return
	}
	if g.prompting {
		return
	}
	g.prompting = true
	go func() { g.prompts <- gate.Prompt(g.gate) }()
}

func (g *Game) unlock() {
	g.unlocked = true
	g.unlockedAt = time.Now()
	g.lastErr = nil
	g.button.label = "Celebrate"
	log.Printf("[game] unlocked")

	g.celebrate()
	if g.cfg.Ambient.AutoStart {
		g.shower.Start()
	}
}

func (g *Game) celebrate() {
	g.bursts.Spawn(g.burstCfg)
	g.cue()
}

func (g *Game) cue() {
	if g.player == nil || g.cfg.Audio.Mute {
		return
	}
	if g.cfg.Audio.Cue == "" {
		g.player.Chime()
		return
	}
	if err := g.player.PlayFile(g.cfg.Audio.Cue); err != nil {
		g.lastErr = err
		g.player.Chime()
	}
}

func (g *Game) pickIcon() {
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Choose a confetti icon"),
			zenity.FileFilters{{
				Name:     "Images",
				Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.bmp"},
			}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				log.Printf("[game] icon picker: %v", err)
			}
			return
		}
		g.icons <- path
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.layer.Draw(screen, g.dpr)
	if img := g.canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}

	scaled := g.button
	scaled.x, scaled.y, scaled.w, scaled.h = scaled.x*g.dpr, scaled.y*g.dpr, scaled.w*g.dpr, scaled.h*g.dpr
	scaled.draw(screen, g.dpr)

	var status string
	switch {
	case g.prompting:
		status = "Waiting for password..."
	case !g.unlocked:
		status = "Press Enter or click the button to unlock"
	default:
		status = fmt.Sprintf("%s | %d confetti, %d falling | Space reset, C burst, A/S shower, I/E icon, Esc quit",
			formatDuration(time.Since(g.unlockedAt)), g.bursts.Len(), g.shower.Len())
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	if g.player != nil && g.player.Ready() {
		g.drawLevel(screen)
	}
}

func (g *Game) drawLevel(screen *ebiten.Image) {
	level := g.player.Level()
	x := float32((config.ButtonX + config.ButtonWidth + 20) * g.dpr)
	y := float32((config.ButtonY + config.ButtonHeight/2) * g.dpr)
	w, h := float32(config.LevelBarWidth*g.dpr), float32(config.LevelBarHeight*g.dpr)

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.DrawFilledRect(screen, x, y, w*float32(level), h, levelColor(level), false)
}

// Layout reports a backing store at device resolution. Viewport changes reach
// the burst canvas debounced; the shower sees them at once.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := ebiten.Monitor().DeviceScaleFactor()
	if dpr <= 0 {
		dpr = 1
	}
	if outsideWidth != g.width || outsideHeight != g.height || dpr != g.dpr {
		g.width, g.height, g.dpr = outsideWidth, outsideHeight, dpr
		g.board.SetViewport(float64(outsideWidth), float64(outsideHeight))
		g.bursts.ResizeDebounced(burst.Viewport{
			Width: float64(outsideWidth), Height: float64(outsideHeight), PixelRatio: dpr,
		})
	}
	return int(float64(outsideWidth) * dpr), int(float64(outsideHeight) * dpr)
}
