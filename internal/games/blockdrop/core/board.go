package core

import (
	"fmt"
	"strings"
)

// Cell is a single board square.
type Cell struct {
	Filled bool  // Whether a piece occupies the cell
	Color  Color // Valid only when Filled is true
}

// LineClear lists the rows and columns removed by one clearing pass.
type LineClear struct {
	Rows []int
	Cols []int
}

// Count returns rows plus columns. A cell shared by a cleared row and a
// cleared column counts toward both.
func (lc LineClear) Count() int {
	return len(lc.Rows) + len(lc.Cols)
}

// Board is the occupancy grid. Cells are stored in row-major order:
// index = y*w + x.
type Board struct {
	w     int
	h     int
	cells []Cell
}

// NewBoard creates an empty board. Non-positive dimensions panic.
func NewBoard(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("blockdrop: invalid board size %dx%d", w, h))
	}
	return &Board{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Y*b.w + c.X
}

// InBounds returns true if the coordinate is on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

// Cell returns the cell at c. Out-of-range access panics.
func (b *Board) Cell(c Coord) Cell {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("blockdrop: cell %s outside %dx%d board", c, b.w, b.h))
	}
	return b.cells[b.index(c)]
}

// Occupied reports whether the in-bounds cell at c is filled.
func (b *Board) Occupied(c Coord) bool {
	return b.Cell(c).Filled
}

// CanPlace reports whether every cell of the piece, anchored at anchor, is on
// the board and empty.
func (b *Board) CanPlace(p Piece, anchor Coord) bool {
	for _, off := range p.shape {
		c := anchor.AddCoord(off)
		if !b.InBounds(c) {
			return false
		}
		if b.cells[b.index(c)].Filled {
			return false
		}
	}
	return true
}

// Place fills the piece's cells with its color. Callers must check CanPlace
// first; placing onto an occupied or off-board cell panics. Place never
// clears lines on its own.
func (b *Board) Place(p Piece, anchor Coord) {
	if !b.CanPlace(p, anchor) {
		panic(fmt.Sprintf("blockdrop: cannot place %s at %s", p, anchor))
	}
	for _, off := range p.shape {
		b.cells[b.index(anchor.AddCoord(off))] = Cell{Filled: true, Color: p.color}
	}
}

// rowComplete reports whether every cell of row y is filled.
func (b *Board) rowComplete(y int) bool {
	for x := 0; x < b.w; x++ {
		if !b.cells[y*b.w+x].Filled {
			return false
		}
	}
	return true
}

// colComplete reports whether every cell of column x is filled.
func (b *Board) colComplete(x int) bool {
	for y := 0; y < b.h; y++ {
		if !b.cells[y*b.w+x].Filled {
			return false
		}
	}
	return true
}

// CompleteLines returns the complete rows and columns without clearing them.
func (b *Board) CompleteLines() LineClear {
	var lc LineClear
	for y := 0; y < b.h; y++ {
		if b.rowComplete(y) {
			lc.Rows = append(lc.Rows, y)
		}
	}
	for x := 0; x < b.w; x++ {
		if b.colComplete(x) {
			lc.Cols = append(lc.Cols, x)
		}
	}
	return lc
}

// ClearLines empties every row and column that is complete in the current
// state and reports which ones were cleared. Completeness is decided before
// any cell is emptied.
func (b *Board) ClearLines() LineClear {
	lc := b.CompleteLines()
	for _, y := range lc.Rows {
		for x := 0; x < b.w; x++ {
			b.cells[y*b.w+x] = Cell{}
		}
	}
	for _, x := range lc.Cols {
		for y := 0; y < b.h; y++ {
			b.cells[y*b.w+x] = Cell{}
		}
	}
	return lc
}

// CheckAndClearLines clears complete rows and columns and returns how many
// were cleared (rows + columns).
func (b *Board) CheckAndClearLines() int {
	return b.ClearLines().Count()
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// IsEmpty returns true if no cell is occupied.
func (b *Board) IsEmpty() bool {
	return b.FilledCount() == 0
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		w:     b.w,
		h:     b.h,
		cells: cells,
	}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.w != other.w || b.h != other.h {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as text, top row first. Empty cells are '.',
// filled cells use the color's letter.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for y := b.h - 1; y >= 0; y-- {
		for x := 0; x < b.w; x++ {
			cell := b.cells[y*b.w+x]
			if cell.Filled {
				sb.WriteRune(cell.Color.Char())
			} else {
				sb.WriteRune('.')
			}
		}
		if y > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
