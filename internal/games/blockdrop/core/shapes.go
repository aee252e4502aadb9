// Package core provides the deterministic game-state engine for BlockDrop:
// the shape catalog, the board, piece batches, and the scoring session.
// This package is UI-agnostic and holds no global state.
package core

import (
	"fmt"
	"strings"
)

// Kind identifies a piece shape. The set is closed; every Kind has exactly one
// fixed orientation.
type Kind uint8

const (
	KindLShape Kind = iota
	KindLine3
	KindLine4
	KindSquare
	KindPlane
	KindCount // Sentinel value for iteration
)

// Shape is an ordered list of cell offsets relative to a piece's anchor.
type Shape []Coord

// shapeCatalog holds the footprint of every kind, indexed by Kind.
var shapeCatalog = [KindCount]Shape{
	KindLShape: {C(0, 0), C(0, 1), C(0, 2), C(1, 0)},
	KindLine3:  {C(0, 0), C(1, 0), C(2, 0)},
	KindLine4:  {C(0, 0), C(1, 0), C(2, 0), C(3, 0)},
	KindSquare: {C(0, 0), C(1, 0), C(0, 1), C(1, 1)},
	KindPlane:  {C(0, 0), C(1, 0), C(2, 0), C(1, 1)},
}

// String returns the catalog name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLShape:
		return "LShape"
	case KindLine3:
		return "Line3"
	case KindLine4:
		return "Line4"
	case KindSquare:
		return "Square"
	case KindPlane:
		return "Plane"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is a member of the catalog.
func (k Kind) Valid() bool {
	return k < KindCount
}

// ParseKind converts a catalog name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lshape", "l":
		return KindLShape, true
	case "line3":
		return KindLine3, true
	case "line4":
		return KindLine4, true
	case "square":
		return KindSquare, true
	case "plane", "t":
		return KindPlane, true
	default:
		return KindLShape, false
	}
}

// AllKinds returns every kind in catalog order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ShapeOf returns a copy of the footprint for the given kind.
// An unknown kind is a programming error and panics rather than falling back
// to a placeholder shape.
func ShapeOf(k Kind) Shape {
	if !k.Valid() {
		panic(fmt.Sprintf("blockdrop: unknown piece kind %d", k))
	}
	return shapeCatalog[k].Clone()
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Bounds returns the width and height of the smallest box containing every
// offset, measured from the anchor.
func (s Shape) Bounds() (w, h int) {
	for _, off := range s {
		if off.X+1 > w {
			w = off.X + 1
		}
		if off.Y+1 > h {
			h = off.Y + 1
		}
	}
	return w, h
}

// Contains reports whether the offset is part of the shape.
func (s Shape) Contains(off Coord) bool {
	for _, o := range s {
		if o == off {
			return true
		}
	}
	return false
}
