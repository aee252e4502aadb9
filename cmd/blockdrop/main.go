// blockdrop is a block-placement puzzle for the terminal: drop the offered
// pieces onto the board and clear full rows and columns.
//
// Usage:
//
//	blockdrop                  - Pick a board from the menu and play
//	blockdrop play             - Play directly on the selected preset
//	blockdrop shapes           - List the piece catalog
//	blockdrop scores           - Show high scores
//	blockdrop settings         - Show or change volume settings
//
// Global flags:
//
//	--preset <name>    - Board preset: classic, compact, roomy
//	--config <path>    - Custom configuration YAML
//	--seed <value>     - RNG seed for reproducible games
//	--db <path>        - Database path (default: ~/.blockdrop/scores.db)
//	--log-file <path>  - Log file (default: ~/.blockdrop/blockdrop.log)
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockdrop/internal/config"
	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/games/blockdrop"
	"github.com/vovakirdan/blockdrop/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockdrop",
	Short: "BlockDrop - a block-placement puzzle in your terminal",
	Long: `BlockDrop offers you a few pieces at a time. Place each one anywhere it
fits on the board; every full row or column is cleared and scores points.
Clearing several lines with one piece earns a combo bonus. The game ends
when none of the offered pieces fit anywhere.

Available commands:
  play      - Play directly on the selected preset
  shapes    - List the piece catalog
  scores    - View high scores
  settings  - Show or change volume settings

Examples:
  blockdrop
  blockdrop play --preset compact
  blockdrop play --seed 42
  blockdrop scores --preset roomy`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate of the terminal loop")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockdrop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "classic", "Board preset: classic, compact, roomy")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ~/.blockdrop/blockdrop.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// openLogger creates the file logger. The terminal belongs to the game, so
// logs never go to stdout. The returned close function is always non-nil.
func openLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" {
		dir := config.DataDir()
		if dir == "" {
			return nil, func() {}, fmt.Errorf("cannot locate home directory for the log file")
		}
		path = filepath.Join(dir, "blockdrop.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockdrop",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// loadConfig loads the configuration and applies the preset.
func loadConfig(preset string) (config.BlockDropConfig, error) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return config.BlockDropConfig{}, err
	}

	cfg, err := config.LoadBlockDrop(flagConfig)
	if err != nil {
		return config.BlockDropConfig{}, err
	}
	config.ApplyPreset(&cfg, p)

	if err := cfg.Validate(); err != nil {
		return config.BlockDropConfig{}, err
	}
	return cfg, nil
}

// newGame builds a game for the preset.
func newGame(preset string, logger *log.Logger) (*blockdrop.Game, error) {
	cfg, err := loadConfig(preset)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return blockdrop.New(preset, opts, logger)
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// modes lists the presets for the menu and the scoreboard.
func modes() []tui.ModeInfo {
	presets := config.Presets()
	out := make([]tui.ModeInfo, len(presets))
	for i, p := range presets {
		out[i] = tui.ModeInfo{ID: string(p), Title: p.Title()}
	}
	return out
}

// fail prints the error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
