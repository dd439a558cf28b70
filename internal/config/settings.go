package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-level options read from the environment.
// Command-line flags take precedence over these values.
type Settings struct {
	DataDir    string        `env:"WARIOR_DATA_DIR"    envDefault:"~/.warior"`
	FPS        int           `env:"WARIOR_FPS"         envDefault:"60"`
	LogLevel   string        `env:"WARIOR_LOG_LEVEL"   envDefault:"info"`
	Mute       bool          `env:"WARIOR_MUTE"        envDefault:"false"`
	HoldWindow time.Duration `env:"WARIOR_HOLD_WINDOW" envDefault:"120ms"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.FPS <= 0 {
		return Settings{}, fmt.Errorf("parse env: WARIOR_FPS must be positive, got %d", s.FPS)
	}
	s.DataDir = ExpandHome(s.DataDir)
	return s, nil
}

// HighScorePath returns the path of the persisted best score for a variant.
func (s Settings) HighScorePath(variant string) string {
	return filepath.Join(s.DataDir, variant+".highscore")
}

// ScoresDBPath returns the path of the score history database.
func (s Settings) ScoresDBPath() string {
	return filepath.Join(s.DataDir, "scores.db")
}

// LogPath returns the path of the log file used by interactive sessions.
func (s Settings) LogPath() string {
	return filepath.Join(s.DataDir, "warior.log")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
