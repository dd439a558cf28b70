package warior

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/space-warior/internal/config"
)

func TestSpawnBounds(t *testing.T) {
	for _, id := range []string{IDWarior, IDSquares} {
		t.Run(id, func(t *testing.T) {
			cfg, _ := config.DefaultConfig(id)
			c := NewSpawnController(rand.New(rand.NewSource(11)), cfg.Enemies, cfg.Field.Width, config.NewDifficultyManager(cfg.Difficulty))

			for i := 0; i < 2000; i++ {
				e := c.Spawn(0, 0)
				if e.W < cfg.Enemies.MinSize || e.W > cfg.Enemies.MaxSize || e.W != e.H {
					t.Fatalf("size %v outside [%v, %v]", e.W, cfg.Enemies.MinSize, cfg.Enemies.MaxSize)
				}
				if e.Speed < cfg.Enemies.MinSpeed || e.Speed > cfg.Enemies.MaxSpeed {
					t.Fatalf("speed %v outside [%v, %v]", e.Speed, cfg.Enemies.MinSpeed, cfg.Enemies.MaxSpeed)
				}
				if e.X-e.W/2 < 0 || e.X+e.W/2 > cfg.Field.Width {
					t.Fatalf("enemy at x=%v size %v leaves the field", e.X, e.W)
				}
				if e.Y != -e.H {
					t.Fatalf("enemy y = %v, expected one size above the top", e.Y)
				}
				if !slices.Contains(cfg.Enemies.Variants, e.Sprite) {
					t.Fatalf("variant %q not in palette", e.Sprite)
				}
			}
		})
	}
}

func TestSpawnChanceExtremes(t *testing.T) {
	cfg := config.DefaultWariorConfig()
	dm := config.NewDifficultyManager(cfg.Difficulty)

	cfg.Enemies.SpawnChance = 0
	never := NewSpawnController(rand.New(rand.NewSource(1)), cfg.Enemies, 800, dm)
	cfg.Enemies.SpawnChance = 1
	always := NewSpawnController(rand.New(rand.NewSource(1)), cfg.Enemies, 800, dm)

	for i := 0; i < 500; i++ {
		if _, ok := never.Maybe(0, 0); ok {
			t.Fatal("spawn chance 0 produced an enemy")
		}
		if _, ok := always.Maybe(0, 0); !ok {
			t.Fatal("spawn chance 1 skipped a frame")
		}
	}
}

func TestSpawnRateIsPerFrame(t *testing.T) {
	cfg := config.DefaultWariorConfig()
	c := NewSpawnController(rand.New(rand.NewSource(5)), cfg.Enemies, 800, config.NewDifficultyManager(cfg.Difficulty))

	spawned := 0
	const frames = 20000
	for i := 0; i < frames; i++ {
		if _, ok := c.Maybe(0, 0); ok {
			spawned++
		}
	}
	rate := float64(spawned) / frames
	if rate < 0.04 || rate > 0.06 {
		t.Errorf("spawn rate = %v per frame, expected about 0.05", rate)
	}
}

func TestSpawnDifficultyScalesSpeed(t *testing.T) {
	cfg := config.DefaultWariorConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)
	c := NewSpawnController(rand.New(rand.NewSource(2)), cfg.Enemies, 800, config.NewDifficultyManager(cfg.Difficulty))

	e := c.Spawn(uint64(cfg.Difficulty.Progression.MaxAt), 0)
	if e.Speed <= cfg.Enemies.MaxSpeed {
		t.Errorf("speed %v at max difficulty, expected above base range", e.Speed)
	}
}
