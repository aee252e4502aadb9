package core

// Snapshot captures the complete session state for determinism testing and
// replay checks.
type Snapshot struct {
	State        State
	Score        int
	Level        int
	PiecesPlaced int
	LinesCleared int
	Board        string   // Board.String() dump
	Batch        []string // Piece.String() per slot, consumed slots included
	Pending      []int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	pieces := s.batch.Pieces()
	batch := make([]string, len(pieces))
	for i, p := range pieces {
		batch[i] = p.String()
	}

	return Snapshot{
		State:        s.state,
		Score:        s.score,
		Level:        s.level,
		PiecesPlaced: s.piecesPlaced,
		LinesCleared: s.linesCleared,
		Board:        s.board.String(),
		Batch:        batch,
		Pending:      s.batch.Pending(),
	}
}
