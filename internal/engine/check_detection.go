package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck reports whether any enemy candidate lands on player's king.
// It reads the cached lists, so it is only meaningful after a recompute.
func (b *Board) IsInCheck(player chess.Player) bool {
	attacked := false
	b.grid.Each(func(_ chess.Square, p *chess.Piece) {
		if attacked || p.Owner == player {
			return
		}
		for _, m := range p.Moves {
			if target, ok := b.grid.At(m.To()); ok && target.Type == chess.King && target.Owner == player {
				attacked = true
				return
			}
		}
	})
	return attacked
}
