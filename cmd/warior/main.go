// warior is Space Warior: a ship dodges and shoots enemies falling from the
// top of the field, in the terminal, in a desktop window or over SSH.
//
// Usage:
//
//	warior list               - List game variants
//	warior play [variant]     - Play a variant (default: warior)
//	warior menu               - Pick variants interactively
//	warior scores [variant]   - Show recorded sessions
//	warior serve              - Start SSH server for remote play
//	warior config <variant>   - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60, env WARIOR_FPS)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--data-dir <path>   - High scores, database and logs (env WARIOR_DATA_DIR)
//	--db <path>         - Set database path (default: <data-dir>/scores.db)
//	--log-level <lvl>   - debug, info, warn, error (env WARIOR_LOG_LEVEL)
//	--assets <dir>      - Directory with a manifest.yaml overriding the built-in assets
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-warior/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/space-warior/internal/games/warior"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagDataDir  string
	flagLogLevel string
	flagAssets   string
)

// Environment settings are read before any init so they can serve as flag
// defaults in every command.
var settings, settingsErr = loadSettings()

func loadSettings() (config.Settings, error) {
	s, err := config.LoadSettings()
	if err != nil {
		return config.Settings{DataDir: config.ExpandHome("~/.warior"), FPS: 60, LogLevel: "info"}, err
	}
	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "warior",
	Short: "Space Warior - dodge and shoot falling enemies",
	Long: `Space Warior is a small shooter: move the ship, shoot the enemies
falling from the top of the field and avoid touching them.

Two variants are available:
  warior   - the full game with sprite enemies
  squares  - the early prototype: a round ship against coloured squares

Examples:
  warior play
  warior play squares --difficulty hard
  warior play --desktop
  warior menu
  warior serve --ssh :2222
  warior scores squares`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if settingsErr != nil {
			return settingsErr
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		flagDataDir = config.ExpandHome(flagDataDir)
		settings.DataDir = flagDataDir
		if flagDBPath == "" {
			flagDBPath = settings.ScoresDBPath()
		}
		return nil
	},
}

func init() {
	// Environment values become flag defaults; flags win.
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", settings.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", settings.DataDir, "Directory for high scores, database and logs")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default <data-dir>/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with a manifest.yaml overriding the built-in assets")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
