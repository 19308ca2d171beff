package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// SimulateCheckAfterMove reports whether player would be in check after the
// piece on from moved to to. The move is played as a normal move on a deep
// copy; the receiver is never modified.
func (b *Board) SimulateCheckAfterMove(player chess.Player, from, to chess.Square) bool {
	sim := b.Copy()
	sim.ApplyNormalMove(from, to)
	sim.RecomputeAllMoves()
	return sim.IsInCheck(player)
}

// CastlingPathAttacked reports whether the king on from would be in check on
// any square it crosses on the way to landing, landing included.
func (b *Board) CastlingPathAttacked(player chess.Player, from, landing chess.Square) bool {
	for _, file := range movegen.TransitFiles(landing) {
		if b.SimulateCheckAfterMove(player, from, chess.Sq(file, from.Rank)) {
			return true
		}
	}
	return false
}
