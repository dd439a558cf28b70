package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-warior/internal/config"
)

var flagWrite bool

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print the default config of a variant",
	Long: `Print the built-in YAML tuning of a variant. With --write the file is
saved to ~/.warior/configs/<variant>.yaml, where 'warior play' picks it up.

Examples:
  warior config warior > my-warior.yaml
  warior config squares --write`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Variants,
	RunE:      runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWrite, "write", false, "Save to the user config directory")
}

func runConfig(_ *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return unknownVariant(args[0])
	}
	if !flagWrite {
		_, err := os.Stdout.Write(data)
		return err
	}

	path := config.UserConfigPath(args[0])
	if path == "" {
		return fmt.Errorf("cannot resolve home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Println("Wrote", path)
	return nil
}
