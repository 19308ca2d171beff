package chess

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Cell is one square of the grid: either empty or holding exactly one piece.
type Cell struct {
	piece    Piece
	occupied bool
}

// Piece returns the occupant and whether there is one.
func (c Cell) Piece() (Piece, bool) {
	return c.piece, c.occupied
}

// Empty reports whether the cell has no occupant.
func (c Cell) Empty() bool {
	return !c.occupied
}

// Grid is the 8x8 arena of cells, indexed [rank][file].
// The zero value is an empty board.
type Grid struct {
	cells [BoardSize][BoardSize]Cell
}

// At returns the piece on sq, if any.
func (g *Grid) At(sq Square) (Piece, bool) {
	mustBeOnBoard("Grid.At", sq)
	return g.cells[sq.Rank][sq.File].Piece()
}

// IsEmpty reports whether sq has no occupant.
func (g *Grid) IsEmpty(sq Square) bool {
	mustBeOnBoard("Grid.IsEmpty", sq)
	return g.cells[sq.Rank][sq.File].Empty()
}

// Ref returns a pointer to the occupant of sq for in-place mutation.
// The pointer is valid until the occupant is relocated or cleared.
func (g *Grid) Ref(sq Square) (*Piece, bool) {
	mustBeOnBoard("Grid.Ref", sq)
	c := &g.cells[sq.Rank][sq.File]
	if !c.occupied {
		return nil, false
	}
	return &c.piece, true
}

// Put places p on sq, replacing any occupant.
func (g *Grid) Put(sq Square, p Piece) {
	mustBeOnBoard("Grid.Put", sq)
	g.cells[sq.Rank][sq.File] = Cell{piece: p, occupied: true}
}

// Clear empties sq.
func (g *Grid) Clear(sq Square) {
	mustBeOnBoard("Grid.Clear", sq)
	g.cells[sq.Rank][sq.File] = Cell{}
}

// Relocate moves the occupant of from onto to, overwriting whatever was
// there, and returns a pointer to the moved piece.
func (g *Grid) Relocate(from, to Square) *Piece {
	mustBeOnBoard("Grid.Relocate", from)
	mustBeOnBoard("Grid.Relocate", to)
	src := g.cells[from.Rank][from.File]
	if !src.occupied {
		errors.Violation("Grid.Relocate", errors.ErrEmptySquare, from, "")
	}
	g.cells[from.Rank][from.File] = Cell{}
	g.cells[to.Rank][to.File] = src
	return &g.cells[to.Rank][to.File].piece
}

// Each calls fn for every occupied square in rank-major order.
func (g *Grid) Each(fn func(sq Square, p *Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			c := &g.cells[rank][file]
			if c.occupied {
				fn(Square{File: file, Rank: rank}, &c.piece)
			}
		}
	}
}

// Copy returns an independent grid: every one of the 64 cells is copied and
// every occupant gets its own candidate slice.
func (g *Grid) Copy() *Grid {
	ng := &Grid{}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			c := g.cells[rank][file]
			if c.occupied {
				c.piece = c.piece.Clone()
			}
			ng.cells[rank][file] = c
		}
	}
	return ng
}

// Equal reports whether two grids hold the same pieces in the same states
// with the same candidate lists.
func (g *Grid) Equal(o *Grid) bool {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			a, b := g.cells[rank][file], o.cells[rank][file]
			if a.occupied != b.occupied {
				return false
			}
			if !a.occupied {
				continue
			}
			if a.piece.Type != b.piece.Type || a.piece.Owner != b.piece.Owner || a.piece.State != b.piece.State {
				return false
			}
			if !slices.EqualFunc(a.piece.Moves, b.piece.Moves, Move.Equal) {
				return false
			}
		}
	}
	return true
}
