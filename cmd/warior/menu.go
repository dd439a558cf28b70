package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-warior/internal/audio"
	"github.com/vovakirdan/space-warior/internal/config"
	"github.com/vovakirdan/space-warior/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants interactively",
	Long: `Start Space Warior with a variant picker.

Use arrow keys or j/k to navigate, Enter to play, Tab for the scoreboard.
Quitting a game from its main menu returns to the picker.

Examples:
  warior menu
  warior menu --fps 30`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagMute, "mute", settings.Mute, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	factory.difficulty = preset

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("run menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("run scoreboard: %w", err)
			}
			if !back {
				return nil
			}

		default:
			game, err := factory.Create(result.GameID)
			if err != nil {
				return err
			}
			runErr := tui.Run(game, tui.Options{
				Store:      store,
				Config:     cfg,
				HoldWindow: settings.HoldWindow,
				Difficulty: string(preset),
				DataDir:    settings.DataDir,
				Logger:     logger,
			})
			stopAudio(sound)
			if runErr != nil {
				return fmt.Errorf("run game: %w", runErr)
			}
		}
	}
}
