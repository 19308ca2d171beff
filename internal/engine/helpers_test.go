package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var startRows = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

// layout builds a recomputed board from eight rows of piece letters, rank 0
// first, with '.' for empty squares. Pawns off their starting rank are
// marked as moved.
func layout(t testing.TB, turn chess.Player, rows ...string) *Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("layout: got %d rows; want 8", len(rows))
	}
	b := NewBoard()
	for rank, row := range rows {
		if len(row) != chess.BoardSize {
			t.Fatalf("layout: row %d has %d files; want 8", rank, len(row))
		}
		for file := 0; file < chess.BoardSize; file++ {
			c := row[file]
			if c == '.' {
				continue
			}
			pt, ok := chess.ParsePieceType(c)
			if !ok {
				t.Fatalf("layout: bad piece letter %q", c)
			}
			owner := chess.White
			if c >= 'a' {
				owner = chess.Black
			}
			state := chess.NeverMoved
			if pt == chess.Pawn && rank != owner.HomeRank()+owner.Forward() {
				state = chess.Moved
			}
			b.PlacePieceWithState(chess.Sq(file, rank), pt, owner, state)
		}
	}
	if b.Turn() != turn {
		b.ToggleTurn()
	}
	b.RecomputeAllMoves()
	b.SetGameState()
	return b
}

// play looks up the candidate, applies it by kind and runs the turn change.
func play(t *testing.T, b *Board, from, to chess.Square) {
	t.Helper()
	p, ok := b.PieceAt(from)
	if !ok {
		t.Fatalf("play %v->%v: origin empty", from, to)
	}
	m, ok := b.LegalMoveTo(to, p)
	if !ok {
		t.Fatalf("play %v->%v: not a candidate of %v (have %v)", from, to, p, p.Moves)
	}
	if b.SimulateCheckAfterMove(b.Turn(), from, to) {
		t.Fatalf("play %v->%v: leaves own king in check", from, to)
	}
	b.ApplyMove(from, m)
	b.ToggleTurn()
	b.RecomputeAllMoves()
	b.SetGameState()
}

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		err, _ := recover().(error)
		if !errors.Is(err, want) {
			t.Errorf("recover() = %v; want %v", err, want)
		}
	}()
	fn()
}

func hasMove(p chess.Piece, to chess.Square, kind chess.MoveKind) bool {
	m, ok := p.MoveTo(to)
	return ok && m.Kind() == kind
}
