package core

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// State is the session state machine position.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Turn describes the outcome of one placement.
type Turn struct {
	Slot      int
	Piece     Piece
	Anchor    Coord
	Cleared   LineClear
	Lines     int     // Rows plus columns cleared
	Added     int     // Points earned by this placement
	Score     int     // Cumulative score after the placement
	Level     int     // Level after the placement
	Progress  float64 // Progress toward the next level, in [0,1)
	LeveledUp bool
	NewBatch  bool // Whether a new batch was dealt after this placement
	GameOver  bool
}

// Session runs one game: it owns the board and the current batch, applies
// placements, scores cleared lines, tracks the level, and detects game over.
// A Session is not safe for concurrent use; hosts running several games keep
// one Session per game.
type Session struct {
	opts      Options
	rng       Random
	logger    *log.Logger
	listeners []Listener

	board *Board
	batch *Batch

	state        State
	score        int
	level        int
	piecesPlaced int
	linesCleared int
	batchesDealt int
}

// NewSession validates opts, creates an empty board, and deals the first
// batch. Listeners receive every event, starting with the first BatchEvent.
func NewSession(opts Options, rng Random, listeners ...Listener) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Refill == "" {
		opts.Refill = RefillEveryPlacement
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidOptions)
	}

	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	s := &Session{
		opts:      opts,
		rng:       rng,
		logger:    logger,
		listeners: listeners,
		board:     NewBoard(opts.Width, opts.Height),
		state:     StatePlaying,
		level:     1,
	}
	s.dealBatch()

	return s, nil
}

// emit delivers an event to every listener.
func (s *Session) emit(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}

// dealBatch replaces the current batch with a freshly generated one.
func (s *Session) dealBatch() {
	s.batch = GenerateBatch(s.opts.BatchSize, s.opts.Kinds, s.opts.Colors, s.rng)
	s.batchesDealt++
	s.logger.Debug("batch dealt", "pieces", s.batch.Pieces(), "batch", s.batchesDealt)
	s.emit(BatchEvent{Pieces: s.batch.Pieces()})
}

// CanPlace reports whether the pending piece in slot fits at anchor. It is
// meant for placement previews and never mutates the session.
func (s *Session) CanPlace(slot int, anchor Coord) bool {
	sl, err := s.batch.Slot(slot)
	if err != nil || sl.Consumed {
		return false
	}
	return s.board.CanPlace(sl.Piece, anchor)
}

// PlacePiece places the piece in slot with its anchor at anchor, clears
// complete lines, scores them, advances the level, refills the batch, and
// checks for game over. Nothing changes when an error is returned.
func (s *Session) PlacePiece(slot int, anchor Coord) (Turn, error) {
	if s.state == StateGameOver {
		return Turn{}, ErrGameOver
	}

	sl, err := s.batch.Slot(slot)
	if err != nil {
		return Turn{}, err
	}
	if sl.Consumed {
		return Turn{}, fmt.Errorf("slot %d: %w", slot, ErrSlotConsumed)
	}
	if !s.board.CanPlace(sl.Piece, anchor) {
		return Turn{}, fmt.Errorf("%s at %s: %w", sl.Piece, anchor, ErrInvalidPlacement)
	}

	s.board.Place(sl.Piece, anchor)
	if err := s.batch.Consume(slot); err != nil {
		// Slot was checked above.
		panic(err)
	}
	s.piecesPlaced++

	cleared := s.board.ClearLines()
	lines := cleared.Count()
	turn := Turn{
		Slot:    slot,
		Piece:   sl.Piece,
		Anchor:  anchor,
		Cleared: cleared,
		Lines:   lines,
	}

	if lines > 0 {
		turn.Added = s.opts.Rules.LineScore(lines)
		s.score += turn.Added
		s.linesCleared += lines
		s.logger.Debug("lines cleared", "rows", cleared.Rows, "cols", cleared.Cols, "points", turn.Added)
	}

	if level := s.opts.Rules.LevelFor(s.score); level > s.level {
		from := s.level
		s.level = level
		turn.LeveledUp = true
		s.logger.Info("level up", "from", from, "to", level, "score", s.score)
		s.emit(LevelUpEvent{From: from, To: level})
	}

	turn.Score = s.score
	turn.Level = s.level
	turn.Progress = s.Progress()
	s.emit(ScoreEvent{
		Score:    turn.Score,
		Level:    turn.Level,
		Progress: turn.Progress,
		Added:    turn.Added,
		Lines:    lines,
	})

	if s.opts.Refill == RefillEveryPlacement || s.batch.Exhausted() {
		s.dealBatch()
		turn.NewBatch = true
	}

	if !s.batch.CanAnyFit(s.board) {
		s.state = StateGameOver
		turn.GameOver = true
		s.logger.Info("game over", "score", s.score, "level", s.level, "pieces", s.piecesPlaced)
		s.emit(GameOverEvent{
			FinalScore:   s.score,
			Level:        s.level,
			PiecesPlaced: s.piecesPlaced,
			LinesCleared: s.linesCleared,
		})
	}

	return turn, nil
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// IsOver reports whether the session reached its terminal state.
func (s *Session) IsOver() bool {
	return s.state == StateGameOver
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// Progress returns the normalized progress toward the next level.
func (s *Session) Progress() float64 {
	return s.opts.Rules.Progress(s.score)
}

// PiecesPlaced returns how many pieces have been placed.
func (s *Session) PiecesPlaced() int {
	return s.piecesPlaced
}

// LinesCleared returns the total rows plus columns cleared.
func (s *Session) LinesCleared() int {
	return s.linesCleared
}

// Board returns a copy of the board.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// Slots returns the slots of the current batch.
func (s *Session) Slots() []Slot {
	return s.batch.Slots()
}

// Options returns the options the session was created with.
func (s *Session) Options() Options {
	return s.opts
}
