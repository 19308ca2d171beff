package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestSimulateCheckAfterMove(t *testing.T) {
	b := layout(t, chess.White,
		"....r..k",
		"........",
		"........",
		"........",
		"........",
		"....B...",
		"........",
		"....K...",
	)

	tests := []struct {
		name     string
		from, to chess.Square
		want     bool
	}{
		{"pinned bishop leaves the file", chess.Sq(4, 5), chess.Sq(3, 4), true},
		{"king steps off the file", chess.Sq(4, 7), chess.Sq(3, 7), false},
		{"king steps along the file", chess.Sq(4, 7), chess.Sq(4, 6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.SimulateCheckAfterMove(chess.White, tt.from, tt.to); got != tt.want {
				t.Errorf("SimulateCheckAfterMove(%v->%v) = %v; want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSimulationLeavesBoardUntouched(t *testing.T) {
	b := layout(t, chess.Black, castlingRows...)
	before := b.Copy()
	fen := BoardToFEN(b)

	for _, ply := range b.candidates(chess.Black) {
		b.SimulateCheckAfterMove(chess.Black, ply.From, ply.Move.To())
	}
	b.CastlingPathAttacked(chess.Black, chess.Sq(4, 0), chess.Sq(6, 0))
	b.LegalMoves(chess.White)

	if !b.Equal(before) {
		t.Error("board changed during simulation")
	}
	if got := BoardToFEN(b); got != fen {
		t.Errorf("BoardToFEN() = %q after simulation; want %q", got, fen)
	}
}

func TestCastlingPathAttacked(t *testing.T) {
	tests := []struct {
		name    string
		row5    string
		landing chess.Square
		want    bool
	}{
		{"clear king side", "........", chess.Sq(6, 7), false},
		{"clear queen side", "........", chess.Sq(2, 7), false},
		{"transit square attacked", ".....r..", chess.Sq(6, 7), true},
		{"landing square attacked", "......r.", chess.Sq(6, 7), true},
		{"queen side landing attacked", "..r.....", chess.Sq(2, 7), true},
		{"b-file attack does not matter", ".r......", chess.Sq(2, 7), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := append([]string(nil), castlingRows...)
			rows[0] = "....k..."
			rows[5] = tt.row5
			b := layout(t, chess.White, rows...)
			if got := b.CastlingPathAttacked(chess.White, chess.Sq(4, 7), tt.landing); got != tt.want {
				t.Errorf("CastlingPathAttacked(%v) = %v; want %v", tt.landing, got, tt.want)
			}
		})
	}
}

func TestEnPassantWindow(t *testing.T) {
	b := layout(t, chess.Black,
		"........",
		"....p...",
		"........",
		"...P.P..",
		"....p.p.",
		"........",
		".....P..",
		"........",
	)

	play(t, b, chess.Sq(4, 1), chess.Sq(4, 3))
	wp, _ := b.PieceAt(chess.Sq(5, 3))
	if !hasMove(wp, chess.Sq(4, 2), chess.EnPassantCapture) {
		t.Fatalf("white pawn on (5,3) has no en passant to (4,2): %v", wp.Moves)
	}
	wp2, _ := b.PieceAt(chess.Sq(3, 3))
	if !hasMove(wp2, chess.Sq(4, 2), chess.EnPassantCapture) {
		t.Errorf("white pawn on (3,3) has no en passant to (4,2): %v", wp2.Moves)
	}

	play(t, b, chess.Sq(5, 6), chess.Sq(5, 4))
	for _, sq := range []chess.Square{chess.Sq(4, 4), chess.Sq(6, 4)} {
		bp, _ := b.PieceAt(sq)
		if !hasMove(bp, chess.Sq(5, 5), chess.EnPassantCapture) {
			t.Errorf("black pawn on %v has no en passant to (5,5): %v", sq, bp.Moves)
		}
	}
	victim, _ := b.PieceAt(chess.Sq(4, 3))
	if victim.State != chess.Moved {
		t.Errorf("pawn on (4,3) State = %v; want Moved once the window closed", victim.State)
	}

	play(t, b, chess.Sq(4, 4), chess.Sq(5, 5))
	if _, ok := b.PieceAt(chess.Sq(5, 4)); ok {
		t.Error("en passant victim still on (5,4)")
	}
	wp, _ = b.PieceAt(chess.Sq(5, 3))
	if _, ok := wp.MoveTo(chess.Sq(4, 2)); ok {
		t.Error("expired en passant still offered")
	}
}
