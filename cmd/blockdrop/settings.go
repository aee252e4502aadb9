package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change volume settings",
	Long: `Show the stored settings, or change them with flags.
Volumes range from 0 to 1; out-of-range values are clamped.

Examples:
  blockdrop settings
  blockdrop settings --music 0.4 --sfx 1
  blockdrop settings --mute`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().Float64("music", 0, "Music volume (0-1)")
	settingsCmd.Flags().Float64("sfx", 0, "Sound effects volume (0-1)")
	settingsCmd.Flags().Bool("mute", false, "Mute all sound")
}

func runSettings(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	st, err := store.GetSettings()
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("music") {
		st.MusicVolume, _ = flags.GetFloat64("music")
		changed = true
	}
	if flags.Changed("sfx") {
		st.SFXVolume, _ = flags.GetFloat64("sfx")
		changed = true
	}
	if flags.Changed("mute") {
		st.Muted, _ = flags.GetBool("mute")
		changed = true
	}

	if changed {
		st, err = store.SaveSettings(st)
		if err != nil {
			store.Close()
			fail("%v", err)
		}
	}

	fmt.Printf("Music volume: %.2f\n", st.MusicVolume)
	fmt.Printf("SFX volume:   %.2f\n", st.SFXVolume)
	fmt.Printf("Muted:        %t\n", st.Muted)
}
