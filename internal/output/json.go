package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN        string      `json:"fen"`
	Turn       string      `json:"turn"`
	State      string      `json:"state"`
	Winner     string      `json:"winner,omitempty"`
	Promotion  string      `json:"promotion,omitempty"`
	Pieces     []JSONPiece `json:"pieces"`
	LegalMoves []JSONMove  `json:"legalMoves,omitempty"`
}

// JSONPiece represents one occupied square.
type JSONPiece struct {
	Square string `json:"square"`
	Type   string `json:"type"`
	Owner  string `json:"owner"`
	State  string `json:"state"`
}

// JSONMove represents a legal move of the side to move.
type JSONMove struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"`
}

// JSONOutput wraps multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts a board to its JSON form. Legal moves are listed
// only while the game is in play and ShowCandidates is enabled.
func PositionToJSON(b *engine.Board, cfg *config.Config) *JSONPosition {
	jp := &JSONPosition{
		FEN:   engine.BoardToFEN(b),
		Turn:  b.Turn().String(),
		State: b.State().String(),
	}

	if b.State() == chess.Checkmate {
		jp.Winner = b.Turn().Opposite().String()
	}
	if sq, ok := b.PendingPromotion(); ok {
		jp.Promotion = sq.Algebraic()
	}

	b.Each(func(sq chess.Square, p chess.Piece) {
		jp.Pieces = append(jp.Pieces, JSONPiece{
			Square: sq.Algebraic(),
			Type:   p.Type.String(),
			Owner:  p.Owner.String(),
			State:  p.State.String(),
		})
	})

	if cfg.Display.ShowCandidates && !b.State().Terminal() && b.State() != chess.PendingPromotion {
		for _, ply := range b.LegalMoves(b.Turn()) {
			jp.LegalMoves = append(jp.LegalMoves, JSONMove{
				From: ply.From.Algebraic(),
				To:   ply.Move.To().Algebraic(),
				Kind: ply.Move.Kind().String(),
			})
		}
	}

	return jp
}
