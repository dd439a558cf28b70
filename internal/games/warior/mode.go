package warior

import (
	"math"

	"github.com/vovakirdan/space-warior/internal/core"
)

// Mode is the state of the game state machine.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ShowsScene reports whether the frozen or live battlefield is drawn.
func (m Mode) ShowsScene() bool {
	return m != ModeMainMenu
}

// stepMainMenu: fire starts a session, quit asks the platform to exit.
func (g *Game) stepMainMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionFire):
		g.startSession()
	case in.Has(core.ActionQuit):
		g.quit = true
	}
}

// stepPaused: fire resumes, pause leaves to the main menu.
func (g *Game) stepPaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionFire):
		g.mode = ModePlaying
		g.audio.SetVolume(g.cfg.Audio.Theme, g.cfg.Audio.ThemeVolume)
	case in.Has(core.ActionPause):
		g.mode = ModeMainMenu
	}
}

// stepGameOver: fire starts a fresh session, pause leaves to the main menu.
func (g *Game) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionFire):
		g.startSession()
	case in.Has(core.ActionPause):
		g.mode = ModeMainMenu
	}
}

// stepPlaying runs one frame of the session in a fixed order: spawn, move,
// fire, advance, collide, cull, purge, then the game-over check.
func (g *Game) stepPlaying(in core.InputFrame, dt float64) {
	if in.Has(core.ActionPause) {
		g.mode = ModePaused
		g.audio.SetVolume(g.cfg.Audio.Theme, g.cfg.Audio.PausedVolume)
		return
	}

	g.clock += dt
	g.effects.Update(dt)

	if e, ok := g.spawner.Maybe(g.scores.Score(), g.clock); ok {
		g.world.Enemies = append(g.world.Enemies, e)
	}

	dx := in.Axis(core.ActionLeft, core.ActionRight)
	dy := in.Axis(core.ActionUp, core.ActionDown)
	halfW, halfH := g.playerMargin()
	g.world.MovePlayer(dx, dy, dt, halfW, halfH, g.cfg.Field.Width, g.cfg.Field.Height)
	g.pose = g.tilt.update(dx, dt)
	g.background += dx * g.cfg.Background.Drift * dt

	if in.Has(core.ActionFire) {
		g.fire()
	}

	g.world.Advance(dt)

	playerCollided, hits := ResolveCollisions(&g.world, g.cfg.Player.Collision)
	for _, h := range hits {
		enemy := g.world.Enemies[h.Enemy]
		g.scores.Add(uint64(math.Round(enemy.H)))
		g.effects.Burst(enemy.X, enemy.Y, enemy.Size())
		g.audio.PlayOnce(g.cfg.Audio.Explosion)
	}

	g.world.Cull(g.cfg.Field.Height)
	g.world.Purge()

	if playerCollided {
		g.enterGameOver()
	}
}

// startSession clears the field and enters Playing.
func (g *Game) startSession() {
	g.world.Reset(g.newPlayer())
	g.scores.Reset()
	g.effects.Clear()
	g.tilt.reset()
	g.pose = TiltIdle
	g.clock = 0
	g.lastShot = math.Inf(-1)
	g.mode = ModePlaying

	g.audio.PlayLooped(g.cfg.Audio.Theme, g.cfg.Audio.ThemeVolume)
	g.audio.SetVolume(g.cfg.Audio.Theme, g.cfg.Audio.ThemeVolume)
	g.logger.Debug("session started", "game", g.id)
}

// enterGameOver stops the ambient music and persists a new record.
func (g *Game) enterGameOver() {
	g.mode = ModeGameOver
	g.audio.Stop(g.cfg.Audio.Theme)
	g.audio.PlayOnce(g.cfg.Audio.GameOver)
	saved := g.scores.Persist()
	g.logger.Info("game over", "game", g.id, "score", g.scores.Score(), "record", saved)
}

// fire launches a bullet unless the reload cooldown is still running.
func (g *Game) fire() {
	b := g.cfg.Bullets
	if !b.Enabled || g.clock-g.lastShot < b.Reload {
		return
	}
	p := g.world.Player
	g.world.Bullets = append(g.world.Bullets, Entity{
		X:      p.X,
		Y:      p.Y - p.H/2,
		W:      b.Size,
		H:      b.Size,
		Speed:  b.Speed,
		Sprite: b.Sprite,
		Born:   g.clock,
	})
	g.lastShot = g.clock
	g.audio.PlayOnce(g.cfg.Audio.Laser)
}
