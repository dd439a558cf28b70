package config

import (
	_ "embed"
)

//go:embed defaults/warior.yaml
var defaultWariorYAML []byte

//go:embed defaults/squares.yaml
var defaultSquaresYAML []byte

// DefaultWariorConfig returns the default configuration for the full game.
func DefaultWariorConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Size:      32,
			Radius:    16,
			Speed:     300,
			Collision: CollisionAABB,
			TiltDelay: 0.15,
			Sprite:    "player",
		},
		Bullets: BulletConfig{
			Enabled: true,
			Size:    16,
			Speed:   600,
			Reload:  0.5,
			Sprite:  "bullet",
		},
		Enemies: EnemyConfig{
			SpawnChance: 0.05,
			MinSize:     36,
			MaxSize:     84,
			MinSpeed:    300,
			MaxSpeed:    400,
			Variants:    []string{"enemy_small", "enemy_medium", "enemy_big"},
		},
		Effects: EffectsConfig{BurstLife: 0.6, Particles: 12},
		Audio: AudioConfig{
			Theme:        "theme",
			Laser:        "laser",
			Explosion:    "explosion",
			GameOver:     "game_over",
			ThemeVolume:  0.6,
			PausedVolume: 0.2,
		},
		Background: BackgroundConfig{Drift: 0.05},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnMultiplier: 1.0,
			},
		},
	}
}

// DefaultSquaresConfig returns the default configuration for the squares prototype.
func DefaultSquaresConfig() GameConfig {
	cfg := DefaultWariorConfig()
	cfg.Player.Speed = 200
	cfg.Player.Collision = CollisionCircle
	cfg.Player.Sprite = "ship_round"
	cfg.Bullets.Size = 10
	cfg.Bullets.Speed = 400
	cfg.Bullets.Sprite = "pellet"
	cfg.Enemies = EnemyConfig{
		SpawnChance: 0.05,
		MinSize:     16,
		MaxSize:     64,
		MinSpeed:    50,
		MaxSpeed:    150,
		Variants:    []string{"square_red", "square_green", "square_blue", "square_yellow", "square_magenta"},
	}
	cfg.Effects = EffectsConfig{BurstLife: 0.4, Particles: 8}
	cfg.Audio.ThemeVolume = 0.5
	cfg.Difficulty.Progression.MaxAt = 1000
	cfg.Difficulty.Scaling.SpeedMultiplier = 1.0
	return cfg
}

// DefaultConfig returns the hardcoded default for a variant.
func DefaultConfig(variant string) (GameConfig, bool) {
	switch variant {
	case "warior":
		return DefaultWariorConfig(), true
	case "squares":
		return DefaultSquaresConfig(), true
	default:
		return GameConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case "warior":
		return defaultWariorYAML
	case "squares":
		return defaultSquaresYAML
	default:
		return nil
	}
}
