package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// RefillPolicy decides when a new batch is dealt.
type RefillPolicy string

const (
	// RefillEveryPlacement discards the whole batch after every placement.
	RefillEveryPlacement RefillPolicy = "every_placement"
	// RefillWhenExhausted deals a new batch only once every slot is used.
	RefillWhenExhausted RefillPolicy = "when_exhausted"
)

// Rules holds the scoring constants.
type Rules struct {
	BaseScorePerLine int // Points per cleared row or column
	ComboMultiplier  int // Bonus per extra line cleared by the same placement
	ScorePerLevel    int // Score span of one level; 0 disables levels
}

// DefaultRules returns the classic scoring constants.
func DefaultRules() Rules {
	return Rules{
		BaseScorePerLine: 100,
		ComboMultiplier:  50,
		ScorePerLevel:    1000,
	}
}

// LineScore returns the points for clearing lines lines in one placement:
// base*lines + combo*(lines-1). Zero lines score nothing.
func (r Rules) LineScore(lines int) int {
	if lines <= 0 {
		return 0
	}
	return r.BaseScorePerLine*lines + r.ComboMultiplier*(lines-1)
}

// LevelFor returns the level reached at the given cumulative score.
// Levels start at 1.
func (r Rules) LevelFor(score int) int {
	if r.ScorePerLevel <= 0 {
		return 1
	}
	return score/r.ScorePerLevel + 1
}

// Progress returns how far score is into its current level, in [0,1).
func (r Rules) Progress(score int) float64 {
	if r.ScorePerLevel <= 0 {
		return 0
	}
	return float64(score%r.ScorePerLevel) / float64(r.ScorePerLevel)
}

// Options configures a Session.
type Options struct {
	Width     int
	Height    int
	BatchSize int
	Kinds     []Kind
	Colors    []Color
	Rules     Rules
	Refill    RefillPolicy

	// Logger receives engine diagnostics. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the classic 8x10 board with three offered pieces,
// every kind, and every color.
func DefaultOptions() Options {
	return Options{
		Width:     8,
		Height:    10,
		BatchSize: 3,
		Kinds:     AllKinds(),
		Colors:    AllColors(),
		Rules:     DefaultRules(),
		Refill:    RefillEveryPlacement,
	}
}

// Validate checks the options. Every kind must fit on the empty board so a
// fresh session always has a legal move.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size %d", ErrInvalidOptions, o.BatchSize)
	}
	if len(o.Kinds) == 0 {
		return fmt.Errorf("%w: no piece kinds", ErrInvalidOptions)
	}
	if len(o.Colors) == 0 {
		return fmt.Errorf("%w: no piece colors", ErrInvalidOptions)
	}
	for _, k := range o.Kinds {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown kind %d", ErrInvalidOptions, k)
		}
		w, h := shapeCatalog[k].Bounds()
		if w > o.Width || h > o.Height {
			return fmt.Errorf("%w: %s does not fit a %dx%d board", ErrInvalidOptions, k, o.Width, o.Height)
		}
	}
	for _, c := range o.Colors {
		if c >= ColorCount {
			return fmt.Errorf("%w: unknown color %d", ErrInvalidOptions, c)
		}
	}
	if o.Rules.BaseScorePerLine < 0 || o.Rules.ComboMultiplier < 0 || o.Rules.ScorePerLevel < 0 {
		return fmt.Errorf("%w: negative scoring constant", ErrInvalidOptions)
	}
	switch o.Refill {
	case RefillEveryPlacement, RefillWhenExhausted, "":
	default:
		return fmt.Errorf("%w: refill policy %q", ErrInvalidOptions, o.Refill)
	}
	return nil
}

// discardLogger is used when Options.Logger is nil.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
