package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// StatusLines describes the position for the side to move.
func StatusLines(b *engine.Board) []string {
	switch b.State() {
	case chess.Checkmate:
		winner := b.Turn().Opposite()
		return []string{fmt.Sprintf("Checkmate : %s is Winner!", strings.ToUpper(winner.String()))}
	case chess.Stalemate:
		return []string{"Stalemate : Draw!"}
	case chess.PendingPromotion:
		sq, _ := b.PendingPromotion()
		return []string{
			fmt.Sprintf("Promotion on %s", sq.Algebraic()),
			"Choose R (Rook), N (Knight), B (Bishop) or Q (Queen)",
		}
	case chess.Check:
		return []string{"CHECK", turnLine(b)}
	}
	return []string{turnLine(b)}
}

func turnLine(b *engine.Board) string {
	return "Turn: " + b.Turn().String()
}

// WriteStatus writes the status lines, one per line.
func WriteStatus(w io.Writer, b *engine.Board) error {
	for _, line := range StatusLines(b) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
