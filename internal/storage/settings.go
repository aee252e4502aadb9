package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Settings holds the persisted player preferences.
type Settings struct {
	MusicVolume float64 // In [0,1]
	SFXVolume   float64 // In [0,1]
	Muted       bool
}

// DefaultSettings returns the preferences used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		MusicVolume: 0.7,
		SFXVolume:   0.7,
	}
}

// Clamped returns a copy with both volumes restricted to [0,1].
func (s Settings) Clamped() Settings {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SFXVolume = clampVolume(s.SFXVolume)
	return s
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GetSettings returns the saved preferences, or DefaultSettings if none were saved.
func (s *Store) GetSettings() (Settings, error) {
	var st Settings
	var muted int
	err := s.db.QueryRow(
		"SELECT music_volume, sfx_volume, muted FROM settings WHERE id = 1",
	).Scan(&st.MusicVolume, &st.SFXVolume, &muted)

	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("storage: cannot query settings: %w", err)
	}

	st.Muted = muted != 0
	return st, nil
}

// SaveSettings stores the preferences, clamping volumes to [0,1].
// Returns the values actually stored.
func (s *Store) SaveSettings(st Settings) (Settings, error) {
	st = st.Clamped()

	muted := 0
	if st.Muted {
		muted = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO settings (id, music_volume, sfx_volume, muted)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   music_volume = excluded.music_volume,
		   sfx_volume = excluded.sfx_volume,
		   muted = excluded.muted`,
		st.MusicVolume, st.SFXVolume, muted,
	)
	if err != nil {
		return Settings{}, fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return st, nil
}
