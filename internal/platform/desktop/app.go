// Package desktop runs Space Warior in an ebiten window.
package desktop

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-warior/internal/core"
	"github.com/vovakirdan/space-warior/internal/effects"
	"github.com/vovakirdan/space-warior/internal/games/warior"
	"github.com/vovakirdan/space-warior/internal/storage"
)

//go:embed starfield.kage
var starfieldSrc []byte

// Options configures the desktop window.
type Options struct {
	Store      *storage.Store
	TPS        int
	Seed       int64
	Scale      float64 // window pixels per field unit
	Difficulty string
	Logger     *log.Logger
}

// App adapts a game to ebiten.Game.
type App struct {
	game     *warior.Game
	shader   *ebiten.Shader
	opts     Options
	recorder *storage.Recorder
	logger   *log.Logger
}

// NewApp compiles the background shader and prepares the game.
func NewApp(game *warior.Game, opts Options) (*App, error) {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shader, err := ebiten.NewShader(starfieldSrc)
	if err != nil {
		return nil, fmt.Errorf("desktop: compile starfield shader: %w", err)
	}

	game.Reset(core.RuntimeConfig{TickRate: opts.TPS, Seed: opts.Seed})
	rec := storage.NewRecorder(opts.Store, game.ID(), opts.Difficulty)
	rec.Reset(game.State())

	return &App{
		game:     game,
		shader:   shader,
		opts:     opts,
		recorder: rec,
		logger:   logger,
	}, nil
}

// Update advances the game by one fixed tick.
func (a *App) Update() error {
	dt := 1 / float64(ebiten.TPS())
	state := a.game.Step(readInput(), dt).State

	if saved, err := a.recorder.Observe(state, dt); err != nil {
		a.logger.Warn("could not record session", "game", a.game.ID(), "error", err)
	} else if saved {
		a.logger.Debug("session recorded", "game", a.game.ID(), "score", state.Score)
	}

	if state.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	s := a.game.Snapshot()
	a.drawBackground(screen, s)

	if s.Mode.ShowsScene() {
		for _, e := range s.Enemies {
			a.drawEntity(screen, e)
		}
		for _, b := range s.Bullets {
			a.drawEntity(screen, b)
		}
		a.drawPlayer(screen, s)
		a.drawBursts(screen, s)
		ebitenutil.DebugPrintAt(screen, s.HUD(), 8, 4)
	}

	if lines := s.MenuLines(); len(lines) > 0 {
		a.drawPanel(screen, lines)
	}
}

// Layout keeps the logical field size regardless of the window size.
func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.game.Config().Field
	return int(cfg.Width), int(cfg.Height)
}

func (a *App) drawBackground(screen *ebiten.Image, s warior.Snapshot) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Direction":  float32(s.Background),
		"Resolution": []float32{float32(w), float32(h)},
		"Time":       float32(s.Uptime),
	}
	screen.DrawRectShader(w, h, a.shader, op)
}

func (a *App) drawEntity(screen *ebiten.Image, e warior.Entity) {
	r := e.Rect()
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), a.spriteColor(e.Sprite), false)
}

func (a *App) drawPlayer(screen *ebiten.Image, s warior.Snapshot) {
	p := s.Player
	clr := a.spriteColor(p.Sprite)
	if s.Round {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(s.Radius), clr, true)
		return
	}

	// Lean the ship with its pose.
	r := p.Rect()
	shift := float32(0)
	switch s.Pose {
	case warior.TiltSlightLeft:
		shift = -2
	case warior.TiltLeft:
		shift = -4
	case warior.TiltSlightRight:
		shift = 2
	case warior.TiltRight:
		shift = 4
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y+r.H/3), float32(r.W), float32(r.H*2/3), clr, false)
	vector.DrawFilledRect(screen, float32(r.X+r.W/3)+shift, float32(r.Y), float32(r.W/3), float32(r.H/3), clr, false)
}

func (a *App) drawBursts(screen *ebiten.Image, s warior.Snapshot) {
	clr := a.spriteColor("explosion")
	for _, b := range s.Bursts {
		fade := 1 - b.Progress()
		c := fadeColor(clr, fade)
		for _, p := range b.Particles {
			x, y := effects.ParticlePosition(b, p)
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(1+2*fade), c, true)
		}
	}
}

func (a *App) drawPanel(screen *ebiten.Image, lines []string) {
	const lineH, charW = 16, 6
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	pw, ph := float32(w*charW+32), float32(len(lines)*lineH+24)
	sw, sh := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	x, y := (sw-pw)/2, (sh-ph)/2

	vector.DrawFilledRect(screen, x, y, pw, ph, color.RGBA{A: 200}, false)
	vector.StrokeRect(screen, x, y, pw, ph, 2, color.RGBA{R: 229, G: 229, B: 229, A: 255}, false)
	for i, l := range lines {
		lx := int(x) + int(pw-float32(len(l)*charW))/2
		ebitenutil.DebugPrintAt(screen, l, lx, int(y)+12+i*lineH)
	}
}

// spriteColor returns the manifest colour of a sprite.
func (a *App) spriteColor(id string) color.RGBA {
	c := core.ColorWhite
	if sp, ok := a.game.Assets().Sprite(id); ok {
		c = sp.Color
	}
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func fadeColor(c color.RGBA, f float64) color.RGBA {
	f = core.ClampF(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(255 * f),
	}
}

// Run opens the window and blocks until it closes or the game quits.
func Run(game *warior.Game, opts Options) error {
	app, err := NewApp(game, opts)
	if err != nil {
		return err
	}

	field := game.Config().Field
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(field.Width*app.opts.Scale), int(field.Height*app.opts.Scale))
	ebiten.SetTPS(app.opts.TPS)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

var _ ebiten.Game = (*App)(nil)
