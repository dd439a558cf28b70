package warior

import (
	"math/rand"

	"github.com/vovakirdan/space-warior/internal/config"
)

// SpawnController decides each frame whether a new enemy enters the field.
// The chance is per frame, not per second, so pacing follows the frame rate.
type SpawnController struct {
	rng        *rand.Rand
	cfg        config.EnemyConfig
	fieldW     float64
	difficulty *config.DifficultyManager
}

// NewSpawnController creates a controller drawing from rng.
func NewSpawnController(rng *rand.Rand, cfg config.EnemyConfig, fieldW float64, dm *config.DifficultyManager) *SpawnController {
	return &SpawnController{rng: rng, cfg: cfg, fieldW: fieldW, difficulty: dm}
}

// Maybe rolls once and returns a new enemy when the roll succeeds.
// now is the session clock, used for difficulty and animation phase.
func (c *SpawnController) Maybe(score uint64, now float64) (Entity, bool) {
	chance := c.difficulty.SpawnChance(c.cfg.SpawnChance, score, now)
	if c.rng.Float64() >= chance {
		return Entity{}, false
	}
	return c.Spawn(score, now), true
}

// Spawn creates an enemy one size above the top edge with its whole width
// inside the field.
func (c *SpawnController) Spawn(score uint64, now float64) Entity {
	size := c.uniform(c.cfg.MinSize, c.cfg.MaxSize)
	speed := c.difficulty.Speed(c.uniform(c.cfg.MinSpeed, c.cfg.MaxSpeed), score, now)
	return Entity{
		X:      c.uniform(size/2, c.fieldW-size/2),
		Y:      -size,
		W:      size,
		H:      size,
		Speed:  speed,
		Sprite: c.cfg.Variants[c.rng.Intn(len(c.cfg.Variants))],
		Born:   now,
	}
}

func (c *SpawnController) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.Float64()*(hi-lo)
}
