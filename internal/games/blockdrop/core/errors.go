package core

import "errors"

// Errors returned by Session and Batch for misuse that callers can detect.
var (
	ErrGameOver         = errors.New("game is over")
	ErrInvalidPlacement = errors.New("piece does not fit at anchor")
	ErrUnknownSlot      = errors.New("no such batch slot")
	ErrSlotConsumed     = errors.New("batch slot already used")
)

// ErrInvalidOptions wraps every Options validation failure.
var ErrInvalidOptions = errors.New("invalid session options")
