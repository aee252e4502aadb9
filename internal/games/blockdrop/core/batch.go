package core

import "fmt"

// Slot is one position of a batch.
type Slot struct {
	Index    int
	Piece    Piece
	Consumed bool
}

// Batch is the set of pieces currently offered to the player. Each slot is
// either pending or consumed; consumed slots are never reused.
type Batch struct {
	pieces   []Piece
	consumed []bool
}

// GenerateBatch draws size pieces. For each slot a kind and then a color are
// drawn uniformly and independently, so repeats are expected.
// Empty pools or a non-positive size are configuration defects and panic.
func GenerateBatch(size int, kinds []Kind, colors []Color, rng Random) *Batch {
	if size <= 0 {
		panic(fmt.Sprintf("blockdrop: invalid batch size %d", size))
	}
	if len(kinds) == 0 || len(colors) == 0 {
		panic("blockdrop: batch needs at least one kind and one color")
	}

	pieces := make([]Piece, size)
	for i := range pieces {
		kind := kinds[rng.Intn(len(kinds))]
		color := colors[rng.Intn(len(colors))]
		pieces[i] = NewPiece(kind, color)
	}

	return NewBatch(pieces...)
}

// NewBatch wraps the given pieces as a fresh batch with every slot pending.
func NewBatch(pieces ...Piece) *Batch {
	p := make([]Piece, len(pieces))
	copy(p, pieces)
	return &Batch{
		pieces:   p,
		consumed: make([]bool, len(pieces)),
	}
}

// Len returns the number of slots, pending or consumed.
func (b *Batch) Len() int {
	return len(b.pieces)
}

// Slot returns the slot at index i.
func (b *Batch) Slot(i int) (Slot, error) {
	if i < 0 || i >= len(b.pieces) {
		return Slot{}, fmt.Errorf("slot %d: %w", i, ErrUnknownSlot)
	}
	return Slot{Index: i, Piece: b.pieces[i], Consumed: b.consumed[i]}, nil
}

// Slots returns every slot in order.
func (b *Batch) Slots() []Slot {
	slots := make([]Slot, len(b.pieces))
	for i, p := range b.pieces {
		slots[i] = Slot{Index: i, Piece: p, Consumed: b.consumed[i]}
	}
	return slots
}

// Pieces returns the pieces of every slot, consumed or not.
func (b *Batch) Pieces() []Piece {
	out := make([]Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// Pending returns the indices of slots not yet consumed.
func (b *Batch) Pending() []int {
	var pending []int
	for i, used := range b.consumed {
		if !used {
			pending = append(pending, i)
		}
	}
	return pending
}

// Exhausted reports whether every slot has been consumed.
func (b *Batch) Exhausted() bool {
	for _, used := range b.consumed {
		if !used {
			return false
		}
	}
	return true
}

// Consume marks slot i as used.
func (b *Batch) Consume(i int) error {
	if i < 0 || i >= len(b.pieces) {
		return fmt.Errorf("slot %d: %w", i, ErrUnknownSlot)
	}
	if b.consumed[i] {
		return fmt.Errorf("slot %d: %w", i, ErrSlotConsumed)
	}
	b.consumed[i] = true
	return nil
}

// CanAnyFit reports whether at least one pending piece fits somewhere on the
// board. The search is exhaustive over pieces and anchor cells and stops at
// the first fit.
func (b *Batch) CanAnyFit(board *Board) bool {
	for i, p := range b.pieces {
		if b.consumed[i] {
			continue
		}
		if PieceFits(board, p) {
			return true
		}
	}
	return false
}

// PieceFits reports whether p can be placed at any anchor on the board.
func PieceFits(board *Board, p Piece) bool {
	_, ok := FirstFit(board, p)
	return ok
}

// FirstFit returns the first anchor, scanning rows bottom-up and columns
// left to right, where p can be placed.
func FirstFit(board *Board, p Piece) (Coord, bool) {
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			anchor := C(x, y)
			if board.CanPlace(p, anchor) {
				return anchor, true
			}
		}
	}
	return Coord{}, false
}
