package core

import "fmt"

// Piece is an offered block: a kind, a color, and the kind's resolved shape.
// It is immutable once created.
type Piece struct {
	kind  Kind
	color Color
	shape Shape
}

// NewPiece builds a piece, resolving its shape from the catalog.
func NewPiece(kind Kind, color Color) Piece {
	return Piece{
		kind:  kind,
		color: color,
		shape: ShapeOf(kind),
	}
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind {
	return p.kind
}

// Color returns the piece color.
func (p Piece) Color() Color {
	return p.color
}

// Shape returns a copy of the piece footprint.
func (p Piece) Shape() Shape {
	return p.shape.Clone()
}

// Size returns the number of cells the piece covers.
func (p Piece) Size() int {
	return len(p.shape)
}

// Cells returns the board cells the piece covers when anchored at anchor.
func (p Piece) Cells(anchor Coord) []Coord {
	cells := make([]Coord, len(p.shape))
	for i, off := range p.shape {
		cells[i] = anchor.AddCoord(off)
	}
	return cells
}

// String returns a short description such as "Line4/red".
func (p Piece) String() string {
	return fmt.Sprintf("%s/%s", p.kind, p.color)
}
