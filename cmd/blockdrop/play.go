package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/platform/tui"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the selected preset.

Controls:
  Arrows/WASD     - Move the placement cursor
  Tab/Shift+Tab   - Next/previous piece
  1-4             - Pick a piece directly
  Space/Enter     - Place the piece at the cursor
  P/Esc           - Pause
  R               - Restart (after game over)
  ?               - Show all keys
  X/Ctrl+C        - Quit

Presets:
  classic  - 8x10 board, three pieces
  compact  - 6x8 board, three pieces
  roomy    - 10x12 board, four pieces

Examples:
  blockdrop play
  blockdrop play --preset compact
  blockdrop play --seed 42 --log-level debug
  blockdrop play --config ./my-blockdrop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := openLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore(logger)

	err = playOnce(flagPreset, runtimeConfig(), logger, store)
	if store != nil {
		store.Close()
	}
	if err != nil {
		logger.Error("game failed", "err", err)
		closeLog()
		fail("%v", err)
	}
}

// openStore opens the scores database. A nil store means scores are not saved.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// playOnce runs one game on the preset until the player quits.
func playOnce(preset string, cfg core.RuntimeConfig, logger *log.Logger, store *storage.Store) error {
	game, err := newGame(preset, logger)
	if err != nil {
		return err
	}

	// A nil *Store must not become a non-nil interface.
	var saver tui.ScoreSaver
	if store != nil {
		saver = store
	}

	if err := tui.Run(game, saver, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	st := game.State()
	logger.Info("game finished", "preset", preset, "score", st.Score, "level", st.Level, "lines", st.Lines)
	return nil
}
