package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/platform/tui"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := openLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	modeList := modes()
	lastMode := flagPreset

	for {
		result, err := tui.RunMenu(modeList, highScores(store), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			if store == nil {
				continue
			}
			goBack, err := tui.RunScoreboard(store, modeList, lastMode, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			lastMode = result.Mode
			if err := playOnce(result.Mode, cfg, logger, store); err != nil {
				logger.Error("game failed", "preset", result.Mode, "err", err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
		}
	}
}

// highScores collects the best score per preset for the menu.
func highScores(store *storage.Store) map[string]int {
	if store == nil {
		return nil
	}
	stats, err := store.GetAllModesStats()
	if err != nil {
		return nil
	}
	out := make(map[string]int, len(stats))
	for mode, st := range stats {
		out[mode] = int(st.HighScore)
	}
	return out
}
