// Package engine provides the chess rules core: the board, move application,
// check detection, hypothetical-move simulation and game-state detection.
//
// The board holds no auxiliary indexes. Every query scans the grid and the
// candidate lists cached on each piece, which RecomputeAllMoves rebuilds.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is the full game position: grid, side to move and derived state.
type Board struct {
	grid      chess.Grid
	turn      chess.Player
	state     chess.GameState
	promotion chess.Square
	promoting bool
}

// NewBoard returns an empty board with Black to move and state Normal.
func NewBoard() *Board {
	return &Board{}
}

// PlacePiece puts a new unmoved piece on sq, replacing any occupant.
// It performs no legality checks and is meant for setup.
func (b *Board) PlacePiece(sq chess.Square, t chess.PieceType, owner chess.Player) {
	b.PlacePieceWithState(sq, t, owner, chess.NeverMoved)
}

// PlacePieceWithState is PlacePiece with an explicit move state, used when
// loading positions whose history is only known from FEN fields.
func (b *Board) PlacePieceWithState(sq chess.Square, t chess.PieceType, owner chess.Player, state chess.MoveState) {
	if t < chess.Pawn || t >= chess.NumPieceTypes {
		errors.Violation("PlacePiece", errors.ErrUnknownPiece, sq, t.String())
	}
	p := chess.NewPiece(t, owner)
	p.State = state
	b.grid.Put(sq, p)
}

// PieceAt returns a copy of the piece on sq, if any.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	p, ok := b.grid.At(sq)
	if !ok {
		return chess.Piece{}, false
	}
	return p.Clone(), true
}

// Each calls fn with a copy of every piece in rank-major order.
func (b *Board) Each(fn func(sq chess.Square, p chess.Piece)) {
	b.grid.Each(func(sq chess.Square, p *chess.Piece) {
		fn(sq, p.Clone())
	})
}

// Turn returns the side to move.
func (b *Board) Turn() chess.Player {
	return b.turn
}

// ToggleTurn passes the move to the other side.
func (b *Board) ToggleTurn() {
	b.turn = b.turn.Opposite()
}

// State returns the state computed by the last SetGameState.
func (b *Board) State() chess.GameState {
	return b.state
}

// PendingPromotion returns the square of the pawn awaiting promotion.
func (b *Board) PendingPromotion() (chess.Square, bool) {
	return b.promotion, b.promoting
}

// Copy returns an independent deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	nb.grid = *b.grid.Copy()
	return &nb
}

// Equal reports whether two boards have identical grids, turn and state.
func (b *Board) Equal(o *Board) bool {
	return b.turn == o.turn &&
		b.state == o.state &&
		b.promoting == o.promoting &&
		b.promotion == o.promotion &&
		b.grid.Equal(&o.grid)
}
