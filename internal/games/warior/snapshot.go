package warior

import (
	"slices"

	"github.com/vovakirdan/space-warior/internal/config"
	"github.com/vovakirdan/space-warior/internal/core"
)

// Snapshot is everything a renderer needs to draw one frame. The playing
// scene is drawn from it in Playing, Paused and GameOver alike.
type Snapshot struct {
	Variant    string
	Title      string
	Mode       Mode
	FieldW     float64
	FieldH     float64
	Player     Entity
	Pose       Tilt
	Round      bool    // player is drawn and tested as a circle
	Radius     float64 // player radius when Round
	Bullets    []Entity
	Enemies    []Entity
	Bursts     []core.Burst
	Score      uint64
	HighScore  uint64
	Record     bool // the session holds the high score
	FPS        int
	Background float64
	Clock      float64 // session seconds
	Uptime     float64 // seconds since the game was created
}

// Snapshot copies the current frame state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Variant:    g.id,
		Title:      g.Title(),
		Mode:       g.mode,
		FieldW:     g.cfg.Field.Width,
		FieldH:     g.cfg.Field.Height,
		Player:     g.world.Player,
		Pose:       g.pose,
		Round:      g.cfg.Player.Collision == config.CollisionCircle,
		Radius:     g.cfg.Player.Radius,
		Bullets:    slices.Clone(g.world.Bullets),
		Enemies:    slices.Clone(g.world.Enemies),
		Bursts:     slices.Clone(g.effects.Active()),
		Score:      g.scores.Score(),
		HighScore:  g.scores.High(),
		Record:     g.scores.IsRecord(),
		FPS:        g.fps.value,
		Background: g.background,
		Clock:      g.clock,
		Uptime:     g.uptime,
	}
}

// GameOverText is the headline shown when a session ends.
func (s Snapshot) GameOverText() string {
	if s.Variant == IDSquares {
		return "CRITICAL ERROR DETECTED!!!"
	}
	return "GAME OVER"
}

// HUD returns the status line.
func (s Snapshot) HUD() string {
	return "Score: " + itoa(s.Score) + "   High: " + itoa(s.HighScore) + "   FPS: " + itoa(uint64(s.FPS))
}

// MenuLines returns the overlay text for non-playing modes, or nil.
func (s Snapshot) MenuLines() []string {
	switch s.Mode {
	case ModeMainMenu:
		return []string{
			s.Title,
			"",
			"High score: " + itoa(s.HighScore),
			"",
			"SPACE  start",
			"Q      quit",
		}
	case ModePaused:
		return []string{
			"PAUSED",
			"",
			"SPACE  resume",
			"ESC    main menu",
		}
	case ModeGameOver:
		lines := []string{s.GameOverText(), "", "Score: " + itoa(s.Score)}
		if s.Record {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		return append(lines, "", "SPACE  play again", "ESC    main menu")
	default:
		return nil
	}
}
