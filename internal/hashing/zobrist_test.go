package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/setup"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	b1 := setup.NewStandard()
	b2 := setup.NewStandard()

	testutil.AssertEqual(t, GenerateZobristHash(b1), GenerateZobristHash(b2))
	testutil.AssertEqual(t, WeakHash(b1), WeakHash(b2))
	testutil.AssertEqual(t, GenerateZobristHash(b1.Copy()), GenerateZobristHash(b1))
}

func TestZobristHashDifferentPositions(t *testing.T) {
	start := setup.NewStandard()

	moved := setup.NewStandard()
	moved.ApplyNormalMove(chess.Sq(6, 7), chess.Sq(5, 5))

	if GenerateZobristHash(start) == GenerateZobristHash(moved) {
		t.Error("Different positions produced the same hash")
	}
	if WeakHash(start) == WeakHash(moved) {
		t.Error("Different positions produced the same weak hash")
	}
}

func TestSideToMoveAffectsHash(t *testing.T) {
	b := setup.NewStandard()
	white := GenerateZobristHash(b)
	b.ToggleTurn()
	black := GenerateZobristHash(b)

	if white == black {
		t.Error("Side to move should affect the hash")
	}
}

func TestMoveStateAffectsHash(t *testing.T) {
	// Same squares, but one king has moved and lost its castling right.
	fresh := testutil.MustBoard(t, chess.White,
		testutil.P(4, 7, chess.King, chess.White),
		testutil.P(7, 7, chess.Rook, chess.White),
		testutil.P(4, 0, chess.King, chess.Black),
	)
	moved := testutil.MustBoard(t, chess.White,
		testutil.P(4, 7, chess.King, chess.White),
		testutil.P(7, 7, chess.Rook, chess.White),
		testutil.P(4, 0, chess.King, chess.Black),
	)
	moved.PlacePieceWithState(chess.Sq(4, 7), chess.King, chess.White, chess.Moved)

	if GenerateZobristHash(fresh) == GenerateZobristHash(moved) {
		t.Error("Move state should affect the hash")
	}
}

func TestHashIgnoresCandidateCache(t *testing.T) {
	b := setup.NewStandard()
	before := GenerateZobristHash(b)
	b.RecomputeAllMoves()
	b.SetGameState()
	testutil.AssertEqual(t, GenerateZobristHash(b), before)
}

func TestSimulationLeavesHashUnchanged(t *testing.T) {
	b := setup.NewStandard()
	before := NewSignature(b, 3)

	for _, ply := range b.LegalMoves(b.Turn()) {
		b.SimulateCheckAfterMove(b.Turn(), ply.From, ply.Move.To())
	}

	testutil.AssertEqual(t, NewSignature(b, 3), before)
}

func TestNewSignature(t *testing.T) {
	b := setup.NewStandard()
	sig := NewSignature(b, 4)
	testutil.AssertEqual(t, sig, Signature{
		Hash:     GenerateZobristHash(b),
		WeakHash: WeakHash(b),
		Depth:    4,
	})
}
