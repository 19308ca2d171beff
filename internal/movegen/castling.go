package movegen

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Files involved in castling.
const (
	kingFile          = 4
	queenRookFile     = 0
	kingRookFile      = chess.BoardSize - 1
	queenSideLanding  = 2
	kingSideLanding   = 6
	queenSideRookDest = 3
	kingSideRookDest  = 5
)

// Castling returns the structurally available castling moves for the king on
// from. The king and rook must both be unmoved and every square between them
// empty. Attacked squares are not considered here.
func Castling(g *chess.Grid, from chess.Square) []chess.Move {
	king, ok := g.At(from)
	if !ok || king.Type != chess.King || king.State != chess.NeverMoved {
		return nil
	}
	home := king.Owner.HomeRank()
	if from != chess.Sq(kingFile, home) {
		return nil
	}

	var moves []chess.Move
	for _, side := range []struct{ rookFile, landing int }{
		{queenRookFile, queenSideLanding},
		{kingRookFile, kingSideLanding},
	} {
		rook, ok := g.At(chess.Sq(side.rookFile, home))
		if !ok || rook.Type != chess.Rook || rook.Owner != king.Owner || rook.State != chess.NeverMoved {
			continue
		}
		if !emptyBetween(g, home, side.rookFile, kingFile) {
			continue
		}
		moves = append(moves, chess.NewMove(chess.Sq(side.landing, home), chess.Castling))
	}
	return moves
}

// CastlingRook returns the rook's origin and destination for a king landing
// on landing. It panics if landing is not a castling destination.
func CastlingRook(landing chess.Square) (from, to chess.Square) {
	switch landing.File {
	case queenSideLanding:
		return chess.Sq(queenRookFile, landing.Rank), chess.Sq(queenSideRookDest, landing.Rank)
	case kingSideLanding:
		return chess.Sq(kingRookFile, landing.Rank), chess.Sq(kingSideRookDest, landing.Rank)
	}
	errors.Violation("CastlingRook", errors.ErrInvalidCastling, landing, "landing file must be 2 or 6")
	return chess.Square{}, chess.Square{}
}

// TransitFiles returns the files the king crosses from its home file to
// landing, landing included.
func TransitFiles(landing chess.Square) []int {
	step := 1
	if landing.File < kingFile {
		step = -1
	}
	var files []int
	for f := kingFile; f != landing.File && f >= 0 && f < chess.BoardSize; {
		f += step
		files = append(files, f)
	}
	return files
}

func emptyBetween(g *chess.Grid, rank, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	for f := a + 1; f < b; f++ {
		if !g.IsEmpty(chess.Sq(f, rank)) {
			return false
		}
	}
	return true
}
