package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/games/blockdrop/core"
)

func TestDefaultConfigMatchesEngineDefaults(t *testing.T) {
	opts, err := DefaultBlockDropConfig().Options()
	require.NoError(t, err)

	def := core.DefaultOptions()
	assert.Equal(t, def.Width, opts.Width)
	assert.Equal(t, def.Height, opts.Height)
	assert.Equal(t, def.BatchSize, opts.BatchSize)
	assert.Equal(t, def.Kinds, opts.Kinds)
	assert.Equal(t, def.Colors, opts.Colors)
	assert.Equal(t, def.Rules, opts.Rules)
	assert.Equal(t, def.Refill, opts.Refill)
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBlockDrop("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockDropConfig(), cfg)
}

func TestLoadCustomPathKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 6\nbatch:\n  refill: when_exhausted\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadBlockDrop(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Board.Width)
	assert.Equal(t, 10, cfg.Board.Height)
	assert.Equal(t, 3, cfg.Batch.Size)
	assert.Equal(t, "when_exhausted", cfg.Batch.Refill)
	assert.Len(t, cfg.Pieces.Kinds, int(core.KindCount))
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadBlockDrop(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [1, 2"), 0o644))
	_, err = LoadBlockDrop(path)
	assert.Error(t, err)
}

func TestLoadPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".blockdrop", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blockdrop.yaml"), []byte("board:\n  height: 14\n"), 0o644))

	cfg, err := LoadBlockDrop("")
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Board.Height)
	assert.Equal(t, 8, cfg.Board.Width)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BlockDropConfig)
		valid  bool
	}{
		{"defaults", func(*BlockDropConfig) {}, true},
		{"unknown kind", func(c *BlockDropConfig) { c.Pieces.Kinds = []string{"zigzag"} }, false},
		{"unknown color", func(c *BlockDropConfig) { c.Pieces.Colors = []string{"mauve"} }, false},
		{"empty kinds", func(c *BlockDropConfig) { c.Pieces.Kinds = nil }, false},
		{"zero batch", func(c *BlockDropConfig) { c.Batch.Size = 0 }, false},
		{"bad refill", func(c *BlockDropConfig) { c.Batch.Refill = "never" }, false},
		{"board too narrow for line4", func(c *BlockDropConfig) { c.Board.Width = 3 }, false},
		{"short aliases", func(c *BlockDropConfig) { c.Pieces.Kinds = []string{"l", "t", "square"} }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockDropConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        Preset
		width, height int
		batch         int
	}{
		{PresetClassic, 8, 10, 3},
		{PresetCompact, 6, 8, 3},
		{PresetRoomy, 10, 12, 4},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBlockDropConfig()
			ApplyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.width, cfg.Board.Width)
			assert.Equal(t, tc.height, cfg.Board.Height)
			assert.Equal(t, tc.batch, cfg.Batch.Size)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, PresetClassic, p)

	p, err = ParsePreset("roomy")
	require.NoError(t, err)
	assert.Equal(t, PresetRoomy, p)

	_, err = ParsePreset("huge")
	assert.Error(t, err)
}
