package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Failures cannot be observed without a fake *testing.T, so these cover the
// passing paths and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e4", "e4")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Sq(4, 4), chess.Sq(4, 4), "square %s", "e4")
}

func TestAssertEqual_UsesEqualMethod(t *testing.T) {
	a := chess.NewMove(chess.Sq(4, 4), chess.PawnDoubleStep)
	b := chess.NewMove(chess.Sq(4, 4), chess.PawnDoubleStep)
	AssertEqual(t, a, b)
	AssertEqual(t, []chess.Ply{{From: chess.Sq(4, 6), Move: a}}, []chess.Ply{{From: chess.Sq(4, 6), Move: b}})
}

func TestAssertStringHelpers_Success(t *testing.T) {
	AssertContains(t, "Turn: White", "White")
	AssertContains(t, "anything", "")
	AssertNotContains(t, "Turn: White", "CHECK")
}

func TestAssertBoolHelpers_Success(t *testing.T) {
	AssertNoError(t, nil, "operation should succeed")
	AssertTrue(t, chess.Sq(0, 0).OnBoard())
	AssertFalse(t, chess.Sq(8, 0).OnBoard(), "file 8 is off the board")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"format multiple", []interface{}{"%s %d", "depth", 3}, "depth 3"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
