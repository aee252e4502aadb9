package config

import (
	_ "embed"

	"github.com/vovakirdan/blockdrop/internal/games/blockdrop/core"
)

//go:embed defaults/blockdrop.yaml
var defaultBlockDropYAML []byte

// DefaultBlockDropConfig returns the classic configuration: an 8x10 board,
// three offered pieces, every kind and color.
func DefaultBlockDropConfig() BlockDropConfig {
	kinds := make([]string, 0, core.KindCount)
	for _, k := range core.AllKinds() {
		kinds = append(kinds, k.String())
	}
	colors := make([]string, 0, core.ColorCount)
	for _, c := range core.AllColors() {
		colors = append(colors, c.String())
	}

	return BlockDropConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 10,
		},
		Batch: BatchConfig{
			Size:   3,
			Refill: string(core.RefillEveryPlacement),
		},
		Pieces: PiecesConfig{
			Kinds:  kinds,
			Colors: colors,
		},
		Scoring: ScoringConfig{
			BasePerLine:     100,
			ComboMultiplier: 50,
			ScorePerLevel:   1000,
		},
	}
}
