package core

// Event is a notification delivered to session listeners.
type Event interface {
	sessionEvent()
}

// Listener receives session events synchronously, in emission order.
type Listener func(Event)

// ScoreEvent is sent after every successful placement, whether or not any
// line cleared.
type ScoreEvent struct {
	Score    int
	Level    int
	Progress float64 // Fraction of the way to the next level, in [0,1)
	Added    int     // Points earned by this placement
	Lines    int     // Rows plus columns cleared by this placement
}

func (ScoreEvent) sessionEvent() {}

// BatchEvent is sent whenever a new batch is dealt, including the first.
type BatchEvent struct {
	Pieces []Piece
}

func (BatchEvent) sessionEvent() {}

// LevelUpEvent is sent when the cumulative score crosses a level threshold.
type LevelUpEvent struct {
	From int
	To   int
}

func (LevelUpEvent) sessionEvent() {}

// GameOverEvent is sent once, when no pending piece fits anywhere.
type GameOverEvent struct {
	FinalScore   int
	Level        int
	PiecesPlaced int
	LinesCleared int
}

func (GameOverEvent) sessionEvent() {}
