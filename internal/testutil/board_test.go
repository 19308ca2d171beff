package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	cerrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestMustBoard(t *testing.T) {
	b := MustBoard(t, chess.White,
		P(4, 7, chess.King, chess.White),
		P(4, 0, chess.King, chess.Black),
		P(0, 6, chess.Pawn, chess.White),
	)

	if b.Turn() != chess.White {
		t.Errorf("Turn() = %v, want White", b.Turn())
	}
	AssertState(t, b, chess.Normal)

	p, ok := b.PieceAt(chess.Sq(0, 6))
	AssertTrue(t, ok, "pawn placed")
	AssertEqual(t, len(p.Moves), 2, "pawn candidates after recompute")
}

func TestMustBoard_BlackToMove(t *testing.T) {
	b := MustBoard(t, chess.Black, P(0, 0, chess.Rook, chess.Black))
	if b.Turn() != chess.Black {
		t.Errorf("Turn() = %v, want Black", b.Turn())
	}
}

func TestAssertPanicsWith_Success(t *testing.T) {
	AssertPanicsWith(t, cerrors.ErrNoPendingPromotion, func() {
		MustBoard(t, chess.White).Promote(chess.Queen)
	})
	AssertPanicsWith(t, cerrors.ErrOffBoard, func() {
		var g chess.Grid
		g.At(chess.Sq(-1, 0))
	}, "off-board lookup")
}
