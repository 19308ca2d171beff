package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

// direction is a single (file, rank) step.
type direction [2]int

var (
	rookDirs   = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = []direction{{-1, -1}, {1, 1}, {-1, 1}, {1, -1}}
	queenDirs  = append(append([]direction{}, rookDirs...), bishopDirs...)

	knightOffsets = []direction{
		{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
		{-1, -2}, {1, -2}, {-1, 2}, {1, 2},
	}
	kingOffsets = queenDirs
)

// slide walks each ray until the edge or the first occupied square.
// An enemy on that square is a capture; a friendly piece is not.
func slide(g *chess.Grid, from chess.Square, owner chess.Player, dirs []direction) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		for sq := from.Offset(d[0], d[1]); sq.OnBoard(); sq = sq.Offset(d[0], d[1]) {
			p, occupied := g.At(sq)
			if !occupied {
				moves = append(moves, chess.NewMove(sq, chess.NormalMove))
				continue
			}
			if p.Owner != owner {
				moves = append(moves, chess.NewMove(sq, chess.NormalMove))
			}
			break
		}
	}
	return moves
}

// leap tries each fixed offset once.
func leap(g *chess.Grid, from chess.Square, owner chess.Player, offsets []direction) []chess.Move {
	var moves []chess.Move
	for _, d := range offsets {
		sq := from.Offset(d[0], d[1])
		if !sq.OnBoard() || occupiedBy(g, sq, owner) {
			continue
		}
		moves = append(moves, chess.NewMove(sq, chess.NormalMove))
	}
	return moves
}
