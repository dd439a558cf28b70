package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-warior/internal/audio"
	"github.com/vovakirdan/space-warior/internal/config"
	"github.com/vovakirdan/space-warior/internal/games/warior"
	"github.com/vovakirdan/space-warior/internal/platform/desktop"
	"github.com/vovakirdan/space-warior/internal/platform/tui"
	"github.com/vovakirdan/space-warior/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDesktop    bool
	flagMute       bool
	flagScale      float64
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: warior).

Controls:
  Arrows/WASD  - Move
  Space        - Fire, start a session, resume
  P/Esc        - Pause; from pause or game over, back to the main menu
  Q            - Quit from the main menu
  Ctrl+C       - Quit at any time

Difficulty options:
  easy   - Start at lowest difficulty, progresses with score
  normal - Start at 30% difficulty, progresses with score
  hard   - Start at 70% difficulty, progresses with score
  fixed  - No progression

Examples:
  warior play
  warior play squares
  warior play --difficulty hard
  warior play --desktop
  warior play --config ./my-warior.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagDesktop, "desktop", false, "Open a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", settings.Mute, "Disable sound")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Desktop window scale")
}

func runPlay(_ *cobra.Command, args []string) error {
	id := warior.IDWarior
	if len(args) == 1 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return unknownVariant(id)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	lib, err := loadAssets()
	if err != nil {
		return err
	}

	sound, closeAudio := audio.Open(lib, flagMute, logger)
	defer closeAudio()

	factory := newGameFactory(sound, lib, logger)
	factory.configPath = flagConfig
	factory.difficulty = preset

	// Missing assets or a bad config stop here, before any frame runs.
	game, err := factory.Create(id)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "game", id, "desktop", flagDesktop, "difficulty", string(preset))

	if flagDesktop {
		wg, ok := game.(*warior.Game)
		if !ok {
			return errors.New("the desktop window only runs Space Warior variants")
		}
		return desktop.Run(wg, desktop.Options{
			Store:      store,
			TPS:        flagFPS,
			Seed:       flagSeed,
			Scale:      flagScale,
			Difficulty: string(preset),
			Logger:     logger,
		})
	}

	if err := tui.Run(game, tui.Options{
		Store:      store,
		Config:     runtimeConfig(),
		HoldWindow: settings.HoldWindow,
		Difficulty: string(preset),
		DataDir:    settings.DataDir,
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
