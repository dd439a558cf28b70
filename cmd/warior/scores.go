package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-warior/internal/games/warior"
	"github.com/vovakirdan/space-warior/internal/highscore"
	"github.com/vovakirdan/space-warior/internal/platform/tui"
	"github.com/vovakirdan/space-warior/internal/registry"
	"github.com/vovakirdan/space-warior/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded sessions",
	Long: `Display the best recorded sessions for a variant (default: warior).

Without --plain an interactive table opens; Tab switches variants.

Examples:
  warior scores
  warior scores squares --plain
  warior scores squares --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded sessions of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	id := warior.IDWarior
	if len(args) == 1 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return unknownVariant(id)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(id); err != nil {
			return err
		}
		fmt.Printf("Cleared recorded sessions for %s.\n", registry.Title(id))
		return nil

	case flagPlain:
		return printScores(store, id)
	}

	w, h := terminalSize()
	if _, err := tui.RunScoreboard(store, id, w, h); err != nil {
		return fmt.Errorf("run scoreboard: %w", err)
	}
	return nil
}

func printScores(store *storage.Store, id string) error {
	scores, err := store.TopScores(id, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", registry.Title(id))

	best := highscore.NewFileStore(settings.HighScorePath(id), nil).Load()
	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		if best > 0 {
			fmt.Printf("Best: %d\n", best)
		}
		fmt.Printf("\nPlay 'warior play %s' to record the first one!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "Rank", "Score", "Time", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "----", "-----", "----", "-----", "----")
	for i, e := range scores {
		level := e.Difficulty
		if level == "" {
			level = "-"
		}
		secs := int(e.Duration.Seconds())
		fmt.Printf("  %-4d  %-10d  %-6s  %-8s  %s\n",
			i+1, e.Score, fmt.Sprintf("%d:%02d", secs/60, secs%60), level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d  Sessions: %d  Average: %.0f\n", max(best, stats.HighScore), stats.GamesCount, stats.AvgScore)
	return nil
}
