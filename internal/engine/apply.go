package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// The Apply methods mutate the grid without checking legality. Callers look
// the move up in the piece's candidates and simulate it first. Each method
// panics if from is empty or the piece does not fit the move kind.

// ApplyNormalMove moves the piece on from to to, capturing any occupant.
func (b *Board) ApplyNormalMove(from, to chess.Square) {
	b.mustOccupy("ApplyNormalMove", from)
	b.grid.Relocate(from, to).SetMoved()
}

// ApplyPawnDoubleStep advances an unmoved pawn two ranks and leaves it
// vulnerable to en passant for one opponent ply.
func (b *Board) ApplyPawnDoubleStep(from, to chess.Square) {
	p := b.mustOccupy("ApplyPawnDoubleStep", from)
	if p.Type != chess.Pawn {
		errors.Violation("ApplyPawnDoubleStep", errors.ErrNotAPawn, from, p.String())
	}
	if p.State != chess.NeverMoved {
		errors.Violation("ApplyPawnDoubleStep", errors.ErrPawnAlreadyMoved, from, p.State.String())
	}
	b.grid.Relocate(from, to).SetEnPassantVulnerable()
}

// ApplyEnPassant moves a pawn diagonally onto to and removes the enemy pawn
// beside its origin, on to's file.
func (b *Board) ApplyEnPassant(from, to chess.Square) {
	p := b.mustOccupy("ApplyEnPassant", from)
	if p.Type != chess.Pawn {
		errors.Violation("ApplyEnPassant", errors.ErrNotAPawn, from, p.String())
	}
	b.grid.Clear(chess.Sq(to.File, from.Rank))
	b.grid.Relocate(from, to).SetMoved()
}

// ApplyCastling moves the king from from to to and the matching corner rook
// to the square the king crossed.
func (b *Board) ApplyCastling(from, to chess.Square) {
	king := b.mustOccupy("ApplyCastling", from)
	if king.Type != chess.King || king.State != chess.NeverMoved || from.Rank != king.Owner.HomeRank() || to.Rank != from.Rank {
		errors.Violation("ApplyCastling", errors.ErrInvalidCastling, from, king.String())
	}
	rookFrom, rookTo := movegen.CastlingRook(to)
	rook, ok := b.grid.At(rookFrom)
	if !ok || rook.Type != chess.Rook || rook.Owner != king.Owner || rook.State != chess.NeverMoved {
		errors.Violation("ApplyCastling", errors.ErrInvalidCastling, rookFrom, "no unmoved rook")
	}
	b.grid.Relocate(from, to).SetMoved()
	b.grid.Relocate(rookFrom, rookTo).SetMoved()
}

// ApplyMove dispatches on the move's kind.
func (b *Board) ApplyMove(from chess.Square, m chess.Move) {
	switch m.Kind() {
	case chess.PawnDoubleStep:
		b.ApplyPawnDoubleStep(from, m.To())
	case chess.EnPassantCapture:
		b.ApplyEnPassant(from, m.To())
	case chess.Castling:
		b.ApplyCastling(from, m.To())
	default:
		b.ApplyNormalMove(from, m.To())
	}
}

func (b *Board) mustOccupy(op string, sq chess.Square) chess.Piece {
	p, ok := b.grid.At(sq)
	if !ok {
		errors.Violation(op, errors.ErrEmptySquare, sq, "")
	}
	return p
}
