// Package config provides YAML-based game configuration loading,
// difficulty management and environment settings for Space Warior.
package config

import (
	"errors"
	"fmt"
)

// Collision modes for the player-vs-enemy test.
const (
	CollisionAABB   = "aabb"
	CollisionCircle = "circle"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be played.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig contains all tuning for one game variant.
type GameConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Effects    EffectsConfig    `yaml:"effects"`
	Audio      AudioConfig      `yaml:"audio"`
	Background BackgroundConfig `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical playfield in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Size      float64 `yaml:"size"`
	Radius    float64 `yaml:"radius"`     // used when collision is "circle"
	Speed     float64 `yaml:"speed"`      // field units per second
	Collision string  `yaml:"collision"`  // "aabb" or "circle"
	TiltDelay float64 `yaml:"tilt_delay"` // seconds before a slight tilt becomes a full one
	Sprite    string  `yaml:"sprite"`
}

// BulletConfig defines player shots.
type BulletConfig struct {
	Enabled bool    `yaml:"enabled"`
	Size    float64 `yaml:"size"`
	Speed   float64 `yaml:"speed"`
	Reload  float64 `yaml:"reload"` // minimum seconds between shots
	Sprite  string  `yaml:"sprite"`
}

// EnemyConfig defines enemy spawning.
type EnemyConfig struct {
	SpawnChance float64  `yaml:"spawn_chance"` // probability per frame
	MinSize     float64  `yaml:"min_size"`
	MaxSize     float64  `yaml:"max_size"`
	MinSpeed    float64  `yaml:"min_speed"`
	MaxSpeed    float64  `yaml:"max_speed"`
	Variants    []string `yaml:"variants"`
}

// EffectsConfig defines decorative effects.
type EffectsConfig struct {
	BurstLife float64 `yaml:"burst_life"`
	Particles int     `yaml:"particles"`
}

// AudioConfig defines sound ids and volumes used on state transitions.
type AudioConfig struct {
	Theme        string  `yaml:"theme"`
	Laser        string  `yaml:"laser"`
	Explosion    string  `yaml:"explosion"`
	GameOver     string  `yaml:"game_over"`
	ThemeVolume  float64 `yaml:"theme_volume"`
	PausedVolume float64 `yaml:"paused_volume"`
}

// BackgroundConfig defines the scrolling background.
type BackgroundConfig struct {
	Drift float64 `yaml:"drift"` // direction change per second of horizontal movement
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Added to spawn chance factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means "keep config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if t := cfg.Difficulty.Progression.Type; t == "" || t == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}

// Validate checks that every entity extent is positive and ranges are ordered.
func (c GameConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must be positive: %w", ErrInvalidConfig)
	case c.Player.Size <= 0:
		return fmt.Errorf("config: player size must be positive: %w", ErrInvalidConfig)
	case c.Player.Collision != CollisionAABB && c.Player.Collision != CollisionCircle:
		return fmt.Errorf("config: unknown collision mode %q: %w", c.Player.Collision, ErrInvalidConfig)
	case c.Player.Collision == CollisionCircle && c.Player.Radius <= 0:
		return fmt.Errorf("config: player radius must be positive: %w", ErrInvalidConfig)
	case c.Bullets.Enabled && c.Bullets.Size <= 0:
		return fmt.Errorf("config: bullet size must be positive: %w", ErrInvalidConfig)
	case c.Enemies.MinSize <= 0 || c.Enemies.MaxSize < c.Enemies.MinSize:
		return fmt.Errorf("config: enemy size range [%v, %v] invalid: %w", c.Enemies.MinSize, c.Enemies.MaxSize, ErrInvalidConfig)
	case c.Enemies.MaxSpeed < c.Enemies.MinSpeed:
		return fmt.Errorf("config: enemy speed range [%v, %v] invalid: %w", c.Enemies.MinSpeed, c.Enemies.MaxSpeed, ErrInvalidConfig)
	case c.Enemies.MaxSize > c.Field.Width:
		return fmt.Errorf("config: enemies wider than the field: %w", ErrInvalidConfig)
	case c.Enemies.SpawnChance < 0 || c.Enemies.SpawnChance > 1:
		return fmt.Errorf("config: spawn chance %v outside [0, 1]: %w", c.Enemies.SpawnChance, ErrInvalidConfig)
	case len(c.Enemies.Variants) == 0:
		return fmt.Errorf("config: no enemy variants: %w", ErrInvalidConfig)
	}
	return nil
}

// Sprites returns every sprite id the config refers to.
func (c GameConfig) Sprites() []string {
	ids := make([]string, 0, len(c.Enemies.Variants)+2)
	if c.Player.Sprite != "" {
		ids = append(ids, c.Player.Sprite)
	}
	if c.Bullets.Enabled && c.Bullets.Sprite != "" {
		ids = append(ids, c.Bullets.Sprite)
	}
	return append(ids, c.Enemies.Variants...)
}

// Sounds returns every sound id the config refers to.
func (c GameConfig) Sounds() []string {
	var ids []string
	for _, id := range []string{c.Audio.Theme, c.Audio.Laser, c.Audio.Explosion, c.Audio.GameOver} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
