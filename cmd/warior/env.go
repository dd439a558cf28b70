package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/space-warior/internal/assets"
	"github.com/vovakirdan/space-warior/internal/config"
	"github.com/vovakirdan/space-warior/internal/core"
	"github.com/vovakirdan/space-warior/internal/highscore"
	"github.com/vovakirdan/space-warior/internal/registry"
	"github.com/vovakirdan/space-warior/internal/storage"
)

// newLogger creates a structured logger at the configured level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger logs to <data-dir>/warior.log; the alternate screen owns stdout
// while a game runs.
func fileLogger() (*log.Logger, func(), error) {
	path := settings.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f, "warior")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// loadAssets reads the asset manifest once per process.
func loadAssets() (*assets.Library, error) {
	lib, err := assets.Load(flagAssets)
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	return lib, nil
}

// openStore opens the score history. The game still runs without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runtimeConfig() core.RuntimeConfig {
	w, h := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameFactory builds games with shared collaborators. High score files are
// opened once per variant so concurrent sessions share one store.
type gameFactory struct {
	audio      core.AudioPort
	lib        *assets.Library
	logger     *log.Logger
	configPath string
	difficulty config.DifficultyPreset

	mu     sync.Mutex
	scores map[string]*highscore.FileStore
}

func newGameFactory(audio core.AudioPort, lib *assets.Library, logger *log.Logger) *gameFactory {
	return &gameFactory{
		audio:  audio,
		lib:    lib,
		logger: logger,
		scores: make(map[string]*highscore.FileStore),
	}
}

func (f *gameFactory) highScores(id string) *highscore.FileStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.scores[id]; ok {
		return s
	}
	s := highscore.NewFileStore(settings.HighScorePath(id), f.logger)
	f.scores[id] = s
	return s
}

// Create builds a fresh game for the variant.
func (f *gameFactory) Create(id string) (registry.Game, error) {
	return registry.Create(id, registry.Deps{
		Audio:      f.audio,
		HighScores: f.highScores(id),
		Assets:     f.lib,
		Logger:     f.logger.With("game", id),
		ConfigPath: f.configPath,
		Difficulty: f.difficulty,
	})
}

// stopAudio silences any sound left playing when a game closes.
func stopAudio(a core.AudioPort) {
	if s, ok := a.(interface{ StopAll() }); ok {
		s.StopAll()
	}
}

func unknownVariant(id string) error {
	return fmt.Errorf("unknown variant %q (run 'warior list' to see variants)", id)
}
