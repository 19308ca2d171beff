// Package movegen computes candidate moves for a single piece on a grid.
//
// Candidates are pseudo-legal: they respect how each piece moves and what
// blocks it, but ignore whether the mover's own king would be left in check.
// Filtering by check is the board's job.
package movegen

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Generate returns the candidate moves of the piece on from, castling excluded.
// It panics if from is empty or holds an unknown piece type.
func Generate(g *chess.Grid, from chess.Square) []chess.Move {
	p, ok := g.At(from)
	if !ok {
		errors.Violation("Generate", errors.ErrEmptySquare, from, "")
	}

	switch p.Type {
	case chess.Pawn:
		return pawnMoves(g, from, p.Owner, p.State)
	case chess.Rook:
		return slide(g, from, p.Owner, rookDirs)
	case chess.Knight:
		return leap(g, from, p.Owner, knightOffsets)
	case chess.Bishop:
		return slide(g, from, p.Owner, bishopDirs)
	case chess.Queen:
		return slide(g, from, p.Owner, queenDirs)
	case chess.King:
		return leap(g, from, p.Owner, kingOffsets)
	default:
		errors.Violation("Generate", errors.ErrUnknownPiece, from, p.Type.String())
	}
	return nil
}

// occupiedBy reports whether sq holds a piece owned by player.
func occupiedBy(g *chess.Grid, sq chess.Square, player chess.Player) bool {
	p, ok := g.At(sq)
	return ok && p.Owner == player
}
