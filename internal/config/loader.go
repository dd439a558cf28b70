package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Variants lists the game variants that ship a default config.
var Variants = []string{"warior", "squares"}

// Load loads the configuration for a game variant and validates it.
// Search order: customPath -> ~/.warior/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
func Load(variant, customPath string) (GameConfig, error) {
	defaults, ok := DefaultConfig(variant)
	if !ok {
		return GameConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	// Custom path errors are fatal; the user asked for that file.
	if customPath != "" {
		cfg, err := readConfig(customPath, defaults)
		if err != nil {
			return GameConfig{}, err
		}
		return cfg, cfg.Validate()
	}

	filename := variant + ".yaml"
	for _, path := range []string{UserConfigPath(variant), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, err := readConfig(path, defaults); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := defaults
	if err := yaml.Unmarshal(GetDefaultYAML(variant), &cfg); err != nil {
		return defaults, nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// readConfig overlays the YAML file at path onto base.
func readConfig(path string, base GameConfig) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns the per-user config file of a variant, or empty if
// home is unavailable.
func UserConfigPath(variant string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".warior", "configs", variant+".yaml")
}
