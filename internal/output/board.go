package output

import (
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const fileLabels = "    a  b  c  d  e  f  g  h\n"

// DrawBoard writes the board with rank 0 at the top. Each square is three
// characters wide: " P " for a piece, " . " for an empty square. A selected
// piece is drawn as "[P]"; its candidate destinations as " * " when empty
// and "(p)" when occupied.
func DrawBoard(w io.Writer, b *engine.Board, selected *chess.Square, dc *config.DisplayConfig) error {
	targets := candidateTargets(b, selected, dc)

	var sb strings.Builder
	if dc.Coordinates {
		sb.WriteString(fileLabels)
	}
	for rank := 0; rank < chess.BoardSize; rank++ {
		label := string(rune('8' - rank))
		if dc.Coordinates {
			sb.WriteString(" " + label + " ")
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			sb.WriteString(cell(b, sq, selected != nil && *selected == sq, targets[sq]))
		}
		if dc.Coordinates {
			sb.WriteString(" " + label)
		}
		sb.WriteByte('\n')
	}
	if dc.Coordinates {
		sb.WriteString(fileLabels)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func cell(b *engine.Board, sq chess.Square, selected, target bool) string {
	p, ok := b.PieceAt(sq)
	switch {
	case !ok && target:
		return " * "
	case !ok:
		return " . "
	case selected:
		return "[" + string(p.Symbol()) + "]"
	case target:
		return "(" + string(p.Symbol()) + ")"
	}
	return " " + string(p.Symbol()) + " "
}

// candidateTargets returns the destinations of the selected piece's cached
// candidate moves. Castling marks the king's landing square.
func candidateTargets(b *engine.Board, selected *chess.Square, dc *config.DisplayConfig) map[chess.Square]bool {
	targets := make(map[chess.Square]bool)
	if selected == nil || !dc.ShowCandidates {
		return targets
	}
	p, ok := b.PieceAt(*selected)
	if !ok {
		return targets
	}
	for _, m := range p.Moves {
		targets[m.To()] = true
	}
	return targets
}
