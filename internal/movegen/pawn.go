package movegen

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates, in order: double step, single step, the two diagonal
// captures and the two en passant captures.
func pawnMoves(g *chess.Grid, from chess.Square, owner chess.Player, state chess.MoveState) []chess.Move {
	var moves []chess.Move
	fwd := owner.Forward()

	one := from.Offset(0, fwd)
	two := from.Offset(0, 2*fwd)
	if state == chess.NeverMoved && two.OnBoard() && g.IsEmpty(one) && g.IsEmpty(two) {
		moves = append(moves, chess.NewMove(two, chess.PawnDoubleStep))
	}
	if one.OnBoard() && g.IsEmpty(one) {
		moves = append(moves, chess.NewMove(one, chess.NormalMove))
	}

	for _, df := range []int{-1, 1} {
		sq := from.Offset(df, fwd)
		if sq.OnBoard() && occupiedBy(g, sq, owner.Opposite()) {
			moves = append(moves, chess.NewMove(sq, chess.NormalMove))
		}
	}

	for _, df := range []int{-1, 1} {
		beside := from.Offset(df, 0)
		if !beside.OnBoard() {
			continue
		}
		victim, ok := g.At(beside)
		if !ok || victim.Owner == owner || victim.Type != chess.Pawn || victim.State != chess.EnPassantVulnerable {
			continue
		}
		dest := beside.Offset(0, fwd)
		if dest.OnBoard() {
			moves = append(moves, chess.NewMove(dest, chess.EnPassantCapture))
		}
	}

	return moves
}
