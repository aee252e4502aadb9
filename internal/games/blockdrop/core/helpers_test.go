package core

import (
	"strings"
	"testing"
)

// scriptedRandom returns queued values from Intn, then 0 once the queue runs out.
type scriptedRandom struct {
	values []int
	next   int
}

func (r *scriptedRandom) Intn(n int) int {
	if r.next >= len(r.values) {
		return 0
	}
	v := r.values[r.next]
	r.next++
	return v % n
}

// boardFromRows builds a board from text rows given top row first.
// '#' marks a filled cell, anything else is empty.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	h := len(rows)
	if h == 0 {
		t.Fatal("boardFromRows needs at least one row")
	}
	w := len(rows[0])
	b := NewBoard(w, h)
	for i, row := range rows {
		if len(row) != w {
			t.Fatalf("row %d has width %d, want %d", i, len(row), w)
		}
		y := h - 1 - i
		for x, ch := range row {
			if ch == '#' {
				b.cells[b.index(C(x, y))] = Cell{Filled: true, Color: ColorBlue}
			}
		}
	}
	return b
}

// checkerboard returns a w x h board with cell (x,y) filled iff (x+y) is even.
func checkerboard(w, h int) *Board {
	b := NewBoard(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				b.cells[b.index(C(x, y))] = Cell{Filled: true, Color: ColorGreen}
			}
		}
	}
	return b
}

// fullBoard returns a w x h board with every cell filled.
func fullBoard(w, h int) *Board {
	b := NewBoard(w, h)
	for i := range b.cells {
		b.cells[i] = Cell{Filled: true, Color: ColorRed}
	}
	return b
}

// occupancy renders only filled/empty, ignoring colors.
func occupancy(b *Board) string {
	var sb strings.Builder
	for y := b.Height() - 1; y >= 0; y-- {
		for x := 0; x < b.Width(); x++ {
			if b.Occupied(C(x, y)) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
