package testutil

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Placement describes one piece to put on a test board.
type Placement struct {
	Square chess.Square
	Type   chess.PieceType
	Owner  chess.Player
}

// P is shorthand for a Placement at (file, rank).
func P(file, rank int, t chess.PieceType, owner chess.Player) Placement {
	return Placement{Square: chess.Sq(file, rank), Type: t, Owner: owner}
}

// MustBoard builds a board with the given pieces and side to move, then
// recomputes candidates and game state the way a driver does after setup.
// Placing off the board aborts the test.
func MustBoard(t testing.TB, turn chess.Player, pieces ...Placement) *engine.Board {
	t.Helper()
	b := engine.NewBoard()
	for _, p := range pieces {
		if !p.Square.OnBoard() {
			t.Fatalf("MustBoard: %v is off the board", p.Square)
		}
		b.PlacePiece(p.Square, p.Type, p.Owner)
	}
	if b.Turn() != turn {
		b.ToggleTurn()
	}
	b.RecomputeAllMoves()
	b.SetGameState()
	return b
}

// AssertPanicsWith fails unless fn panics with an error that matches want
// under errors.Is.
func AssertPanicsWith(t *testing.T, want error, fn func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			fail(t, msgAndArgs, "expected panic with %v but none occurred", want)
			return
		}
		err, ok := r.(error)
		if !ok {
			fail(t, msgAndArgs, "panic value %v (%T) is not an error", r, r)
			return
		}
		if !errors.Is(err, want) {
			fail(t, msgAndArgs, "panic %v does not match %v", err, want)
		}
	}()
	fn()
}

// AssertState fails unless the board reports the given state.
func AssertState(t *testing.T, b *engine.Board, want chess.GameState, msgAndArgs ...interface{}) {
	t.Helper()
	if got := b.State(); got != want {
		fail(t, msgAndArgs, "State() = %v, want %v", got, want)
	}
}
