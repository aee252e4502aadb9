package config

import "fmt"

// Preset represents a named board layout.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetCompact Preset = "compact"
	PresetRoomy   Preset = "roomy"
)

// Presets returns every preset in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetCompact, PresetRoomy}
}

// Title returns the display name of the preset.
func (p Preset) Title() string {
	switch p {
	case PresetClassic:
		return "Classic 8x10"
	case PresetCompact:
		return "Compact 6x8"
	case PresetRoomy:
		return "Roomy 10x12"
	default:
		return string(p)
	}
}

// ParsePreset validates a preset name. The empty string selects classic.
func ParsePreset(s string) (Preset, error) {
	if s == "" {
		return PresetClassic, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want classic, compact or roomy)", s)
}

// ApplyPreset modifies the config for a named preset.
// Classic leaves the loaded configuration untouched.
func ApplyPreset(cfg *BlockDropConfig, preset Preset) {
	switch preset {
	case PresetCompact:
		cfg.Board.Width = 6
		cfg.Board.Height = 8
	case PresetRoomy:
		cfg.Board.Width = 10
		cfg.Board.Height = 12
		cfg.Batch.Size = 4
	}
}
