package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/config"
	"github.com/vovakirdan/blockdrop/internal/platform/tui"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
	flagScoresYes         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores for the selected preset.

Examples:
  blockdrop scores
  blockdrop scores --preset compact --limit 20
  blockdrop scores --interactive
  blockdrop scores --preset roomy --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the scoreboard browser")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the preset")
	scoresCmd.Flags().BoolVarP(&flagScoresYes, "yes", "y", false, "Do not ask for confirmation")
}

func runScores(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		fail("%v", err)
	}
	mode := string(preset)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		clearScores(store, preset)
	case flagScoresInteractive:
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, modes(), mode, cfg.ScreenW, cfg.ScreenH); err != nil {
			store.Close()
			fail("%v", err)
		}
	default:
		if err := printScores(store, preset); err != nil {
			store.Close()
			fail("%v", err)
		}
	}
}

func printScores(store *storage.Store, preset config.Preset) error {
	mode := string(preset)
	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", preset.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockdrop play --preset %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Lines", "Pieces", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-6d  %s\n",
			i+1, entry.Score, entry.Level, entry.Lines, entry.Pieces, dateStr)
	}

	fmt.Println()
	stats, err := store.GetModeStats(mode)
	if err == nil {
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	}
	return nil
}

func clearScores(store *storage.Store, preset config.Preset) {
	if !flagScoresYes {
		fmt.Printf("Delete all %s scores? [y/N] ", preset.Title())
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled.")
			return
		}
	}

	if err := store.ClearScores(string(preset)); err != nil {
		store.Close()
		fail("%v", err)
	}
	fmt.Printf("Cleared %s scores.\n", preset.Title())
}
