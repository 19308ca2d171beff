package movegen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	cerrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func castlingGrid() *chess.Grid {
	return gridOf(
		placement{sq: chess.Sq(4, 0), t: chess.King, owner: chess.Black},
		placement{sq: chess.Sq(0, 0), t: chess.Rook, owner: chess.Black},
		placement{sq: chess.Sq(7, 0), t: chess.Rook, owner: chess.Black},
		placement{sq: chess.Sq(4, 7), t: chess.King, owner: chess.White},
		placement{sq: chess.Sq(0, 7), t: chess.Rook, owner: chess.White},
		placement{sq: chess.Sq(7, 7), t: chess.Rook, owner: chess.White},
	)
}

func TestCastling_BothSides(t *testing.T) {
	g := castlingGrid()
	for _, tc := range []struct {
		name string
		king chess.Square
		rank int
	}{
		{"black", chess.Sq(4, 0), 0},
		{"white", chess.Sq(4, 7), 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want := []chess.Move{
				chess.NewMove(chess.Sq(2, tc.rank), chess.Castling),
				chess.NewMove(chess.Sq(6, tc.rank), chess.Castling),
			}
			if diff := cmp.Diff(want, Castling(g, tc.king)); diff != "" {
				t.Errorf("Castling() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCastling_Refused(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *chess.Grid)
		want   []chess.Move
	}{
		{
			name: "king moved",
			mutate: func(g *chess.Grid) {
				k, _ := g.Ref(chess.Sq(4, 7))
				k.SetMoved()
			},
			want: nil,
		},
		{
			name: "queen rook moved",
			mutate: func(g *chess.Grid) {
				r, _ := g.Ref(chess.Sq(0, 7))
				r.SetMoved()
			},
			want: []chess.Move{chess.NewMove(chess.Sq(6, 7), chess.Castling)},
		},
		{
			name: "piece between on king side",
			mutate: func(g *chess.Grid) {
				g.Put(chess.Sq(5, 7), chess.NewPiece(chess.Bishop, chess.White))
			},
			want: []chess.Move{chess.NewMove(chess.Sq(2, 7), chess.Castling)},
		},
		{
			name: "enemy on b-file square still blocks",
			mutate: func(g *chess.Grid) {
				g.Put(chess.Sq(1, 7), chess.NewPiece(chess.Knight, chess.Black))
			},
			want: []chess.Move{chess.NewMove(chess.Sq(6, 7), chess.Castling)},
		},
		{
			name: "rook missing",
			mutate: func(g *chess.Grid) {
				g.Clear(chess.Sq(7, 7))
			},
			want: []chess.Move{chess.NewMove(chess.Sq(2, 7), chess.Castling)},
		},
		{
			name: "enemy rook in the corner",
			mutate: func(g *chess.Grid) {
				g.Put(chess.Sq(7, 7), chess.NewPiece(chess.Rook, chess.Black))
			},
			want: []chess.Move{chess.NewMove(chess.Sq(2, 7), chess.Castling)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := castlingGrid()
			tt.mutate(g)
			if diff := cmp.Diff(tt.want, Castling(g, chess.Sq(4, 7)), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Castling() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCastling_KingOffHomeSquare(t *testing.T) {
	g := gridOf(
		placement{sq: chess.Sq(3, 7), t: chess.King, owner: chess.White},
		placement{sq: chess.Sq(0, 7), t: chess.Rook, owner: chess.White},
	)
	if got := Castling(g, chess.Sq(3, 7)); len(got) != 0 {
		t.Errorf("Castling() = %v; want none", got)
	}
}

func TestCastlingRook(t *testing.T) {
	tests := []struct {
		landing  chess.Square
		wantFrom chess.Square
		wantTo   chess.Square
	}{
		{chess.Sq(2, 0), chess.Sq(0, 0), chess.Sq(3, 0)},
		{chess.Sq(6, 0), chess.Sq(7, 0), chess.Sq(5, 0)},
		{chess.Sq(2, 7), chess.Sq(0, 7), chess.Sq(3, 7)},
		{chess.Sq(6, 7), chess.Sq(7, 7), chess.Sq(5, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.landing.String(), func(t *testing.T) {
			from, to := CastlingRook(tt.landing)
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("CastlingRook(%v) = %v, %v; want %v, %v", tt.landing, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}

	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, cerrors.ErrInvalidCastling) {
			t.Errorf("recover() = %v; want ErrInvalidCastling", err)
		}
	}()
	CastlingRook(chess.Sq(5, 7))
}

func TestTransitFiles(t *testing.T) {
	if diff := cmp.Diff([]int{3, 2}, TransitFiles(chess.Sq(2, 7))); diff != "" {
		t.Errorf("queen side mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{5, 6}, TransitFiles(chess.Sq(6, 0))); diff != "" {
		t.Errorf("king side mismatch (-want +got):\n%s", diff)
	}
}
