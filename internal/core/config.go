package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second of the front-end loop
	Seed     int64 // RNG seed for deterministic piece generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a running game for the front end.
type GameState struct {
	Score    int
	Level    int
	Lines    int // Rows plus columns cleared
	Pieces   int // Pieces placed
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	// Message is a short status line for the frame, e.g. "+250 (2 lines)".
	Message string
}
