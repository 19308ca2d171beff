// Package setup builds starting boards: the standard position, the named
// test scenarios and arbitrary positions read from FEN.
//
// Every board returned here has been recomputed and has its game state set,
// so a driver can start accepting moves immediately.
package setup

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Standard is the name of the normal starting position.
const Standard = "standard"

var backRank = []chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

type placement struct {
	file, rank int
	t          chess.PieceType
	owner      chess.Player
}

// scenarios are small positions that exercise one rule each. They start
// with Black to move.
var scenarios = map[string][]placement{
	"check": {
		{4, 0, chess.Rook, chess.Black},
		{3, 4, chess.King, chess.Black},
		{5, 4, chess.King, chess.White},
	},
	"promotion": {
		{0, 5, chess.Pawn, chess.Black},
		{7, 2, chess.Pawn, chess.White},
	},
	"castling": {
		{4, 0, chess.King, chess.Black},
		{0, 0, chess.Rook, chess.Black},
		{7, 0, chess.Rook, chess.Black},
		{4, 7, chess.King, chess.White},
		{0, 7, chess.Rook, chess.White},
		{7, 7, chess.Rook, chess.White},
	},
	"enpassant": {
		{4, 1, chess.Pawn, chess.Black},
		{5, 3, chess.Pawn, chess.White},
		{3, 3, chess.Pawn, chess.White},
		{4, 4, chess.Pawn, chess.Black},
		{6, 4, chess.Pawn, chess.Black},
		{5, 6, chess.Pawn, chess.White},
	},
}

// NewStandard returns the normal starting position with White to move.
func NewStandard() *engine.Board {
	b := engine.NewBoard()
	for file, t := range backRank {
		b.PlacePiece(chess.Sq(file, chess.Black.HomeRank()), t, chess.Black)
		b.PlacePiece(chess.Sq(file, chess.White.HomeRank()), t, chess.White)
		b.PlacePiece(chess.Sq(file, chess.Black.HomeRank()+chess.Black.Forward()), chess.Pawn, chess.Black)
		b.PlacePiece(chess.Sq(file, chess.White.HomeRank()+chess.White.Forward()), chess.Pawn, chess.White)
	}
	b.ToggleTurn()
	return finish(b)
}

// Scenario returns the named position. "standard" is accepted as well.
func Scenario(name string) (*engine.Board, error) {
	if name == Standard {
		return NewStandard(), nil
	}
	pieces, ok := scenarios[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownScenario, "%q", name)
	}
	b := engine.NewBoard()
	for _, p := range pieces {
		b.PlacePiece(chess.Sq(p.file, p.rank), p.t, p.owner)
	}
	return finish(b), nil
}

// Names lists every name Scenario accepts, sorted.
func Names() []string {
	names := []string{Standard}
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func finish(b *engine.Board) *engine.Board {
	b.RecomputeAllMoves()
	b.SetGameState()
	return b
}
