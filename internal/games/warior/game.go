// Package warior implements Space Warior: a ship dodges and shoots enemies
// descending from the top of the field.
//
// Two variants are registered. "warior" is the full game with sprite enemies
// and box collisions everywhere. "squares" is the early prototype: a round
// ship against coloured squares, using a circle-vs-square test for the player.
package warior

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-warior/internal/assets"
	"github.com/vovakirdan/space-warior/internal/config"
	"github.com/vovakirdan/space-warior/internal/core"
	"github.com/vovakirdan/space-warior/internal/effects"
	"github.com/vovakirdan/space-warior/internal/registry"
)

// Variant identifiers.
const (
	IDWarior  = "warior"
	IDSquares = "squares"
)

var titles = map[string]string{
	IDWarior:  "Space Warior",
	IDSquares: "Squares",
}

func init() {
	for id, title := range titles {
		registry.Register(id, title, func(deps registry.Deps) (registry.Game, error) {
			return New(id, deps)
		})
	}
}

// Game is one variant of Space Warior.
type Game struct {
	id         string
	cfg        config.GameConfig
	audio      core.AudioPort
	effects    core.VisualEffects
	lib        *assets.Library
	logger     *log.Logger
	difficulty *config.DifficultyManager

	runtime core.RuntimeConfig
	rng     *rand.Rand
	spawner *SpawnController
	scores  *ScoreKeeper

	mode       Mode
	quit       bool
	world      EntityStore
	clock      float64 // session seconds, advances only while playing
	lastShot   float64
	tilt       tiltTracker
	pose       Tilt
	background float64 // scroll direction of the background
	uptime     float64
	fps        fpsMeter
}

// New loads the variant's configuration and creates the game.
func New(id string, deps registry.Deps) (*Game, error) {
	cfg, err := config.Load(id, deps.ConfigPath)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, deps.Difficulty)
	return NewWithConfig(id, cfg, deps)
}

// NewWithConfig creates the game from an explicit configuration. Required
// sprites and sounds are checked here, before any frame runs.
func NewWithConfig(id string, cfg config.GameConfig, deps registry.Deps) (*Game, error) {
	if _, ok := titles[id]; !ok {
		return nil, fmt.Errorf("warior: unknown variant %q", id)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lib := deps.Assets
	if lib == nil {
		var err error
		if lib, err = assets.Load(""); err != nil {
			return nil, err
		}
	}
	if err := lib.Require(append(cfg.Sprites(), "explosion"), cfg.Sounds()); err != nil {
		return nil, err
	}

	g := &Game{
		id:         id,
		cfg:        cfg,
		audio:      deps.Audio,
		effects:    deps.Effects,
		lib:        lib,
		logger:     deps.Logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	if g.audio == nil {
		g.audio = core.NopAudio{}
	}
	if g.effects == nil {
		g.effects = effects.NewBursts(cfg.Effects.BurstLife, cfg.Effects.Particles, 0)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	store := deps.HighScores
	if store == nil {
		store = &memoryStore{}
	}
	g.scores = NewScoreKeeper(store, g.logger)
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return titles[g.id] }

// Config returns the active configuration.
func (g *Game) Config() config.GameConfig { return g.cfg }

// Mode returns the current state machine mode.
func (g *Game) Mode() Mode { return g.mode }

// Reset returns to the main menu with an empty field. The high score survives.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.spawner = NewSpawnController(g.rng, g.cfg.Enemies, g.cfg.Field.Width, g.difficulty)
	g.mode = ModeMainMenu
	g.quit = false
	g.world.Reset(g.newPlayer())
	g.scores.Reset()
	g.effects.Clear()
	if b, ok := g.effects.(*effects.Bursts); ok {
		b.Seed(rc.Seed)
	}
	g.tilt = tiltTracker{delay: g.cfg.Player.TiltDelay}
	g.pose = TiltIdle
	g.clock = 0
	g.lastShot = math.Inf(-1)
}

// Step advances the game by dt seconds. Exactly one mode handler runs.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	dt = max(dt, 0)
	g.uptime += dt
	g.fps.observe(dt)

	switch g.mode {
	case ModeMainMenu:
		g.stepMainMenu(in)
	case ModePlaying:
		g.stepPlaying(in, dt)
	case ModePaused:
		g.stepPaused(in)
	case ModeGameOver:
		g.stepGameOver(in)
	}
	return core.StepResult{State: g.State()}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     int(g.scores.Score()),
		HighScore: int(g.scores.High()),
		GameOver:  g.mode == ModeGameOver,
		Paused:    g.mode == ModePaused,
		InMenu:    g.mode == ModeMainMenu,
		Quit:      g.quit,
	}
}

// Render draws the game into a terminal cell buffer.
func (g *Game) Render(dst *core.Screen) {
	RenderTerminal(dst, g.Snapshot(), g.lib)
}

// Assets returns the sprite library the game was checked against.
func (g *Game) Assets() *assets.Library { return g.lib }

func (g *Game) newPlayer() Entity {
	p := g.cfg.Player
	size := p.Size
	if p.Collision == config.CollisionCircle {
		size = 2 * p.Radius
	}
	return Entity{
		X:      g.cfg.Field.Width / 2,
		Y:      g.cfg.Field.Height / 2,
		W:      size,
		H:      size,
		Speed:  p.Speed,
		Sprite: p.Sprite,
	}
}

// playerMargin is the distance from the player centre to the field edge
// at which movement is clamped.
func (g *Game) playerMargin() (float64, float64) {
	if g.cfg.Player.Collision == config.CollisionCircle {
		return g.cfg.Player.Radius, g.cfg.Player.Radius
	}
	return g.world.Player.W / 2, g.world.Player.H / 2
}

// fpsMeter averages frame rate over half-second windows.
type fpsMeter struct {
	frames int
	acc    float64
	value  int
}

func (m *fpsMeter) observe(dt float64) {
	m.frames++
	m.acc += dt
	if m.acc >= 0.5 {
		m.value = int(math.Round(float64(m.frames) / m.acc))
		m.frames = 0
		m.acc = 0
	}
}

var _ registry.Game = (*Game)(nil)
