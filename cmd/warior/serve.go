package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-warior/internal/config"
	"github.com/vovakirdan/space-warior/internal/core"
	"github.com/vovakirdan/space-warior/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Space Warior SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant picker and runs
without sound. All users share the high score files and the session
database of the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at <data-dir>/host_key

Examples:
  warior serve
  warior serve --ssh :2222
  warior serve --host-key ./my_host_key --idle-timeout 10m

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every session")
}

func runServe(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "warior-ssh")
	if err != nil {
		return err
	}

	lib, err := loadAssets()
	if err != nil {
		return err
	}

	factory := newGameFactory(core.NopAudio{}, lib, logger)
	factory.difficulty = preset

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = flagIdleTimeout
	cfg.DataDir = settings.DataDir
	cfg.TickRate = flagFPS
	cfg.HoldWindow = settings.HoldWindow
	cfg.Difficulty = string(preset)

	server, err := tui.NewSSHServer(cfg, store, factory.Create, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Space Warior SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
