package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SetGameState derives the state of the side to move from the grid.
// Call it after RecomputeAllMoves.
//
// Check takes precedence. Otherwise a pawn standing on its promotion rank
// makes the state PendingPromotion, and only then is stalemate considered.
func (b *Board) SetGameState() {
	b.promoting = false

	if b.IsInCheck(b.turn) {
		b.state = chess.Check
		b.detectCheckmate()
		return
	}

	b.state = chess.Normal
	if sq, ok := b.findPromotablePawn(); ok {
		b.state = chess.PendingPromotion
		b.promotion = sq
		b.promoting = true
		return
	}
	b.detectStalemate()
}

func (b *Board) detectCheckmate() {
	if b.state != chess.Check {
		errors.Violation("detectCheckmate", errors.ErrWrongGameState, nil, b.state.String())
	}
	if b.noSafeMove() {
		b.state = chess.Checkmate
	}
}

func (b *Board) detectStalemate() {
	if b.state != chess.Normal {
		errors.Violation("detectStalemate", errors.ErrWrongGameState, nil, b.state.String())
	}
	if b.CountCandidateMoves(b.turn) == 0 || b.noSafeMove() {
		b.state = chess.Stalemate
	}
}

// noSafeMove reports whether every candidate of the side to move leaves its
// king in check. It is true when there are no candidates at all.
func (b *Board) noSafeMove() bool {
	for _, ply := range b.candidates(b.turn) {
		if !b.SimulateCheckAfterMove(b.turn, ply.From, ply.Move.To()) {
			return false
		}
	}
	return true
}

// findPromotablePawn returns the first pawn, in rank-major order, standing
// on its own promotion rank.
func (b *Board) findPromotablePawn() (chess.Square, bool) {
	var (
		found chess.Square
		ok    bool
	)
	b.grid.Each(func(sq chess.Square, p *chess.Piece) {
		if !ok && p.Type == chess.Pawn && sq.Rank == p.Owner.PromotionRank() {
			found, ok = sq, true
		}
	})
	return found, ok
}

// Promote turns the pending pawn into t in place and clears the record. The
// state stays PendingPromotion until the next SetGameState.
func (b *Board) Promote(t chess.PieceType) {
	if !b.promoting {
		errors.Violation("Promote", errors.ErrNoPendingPromotion, nil, b.state.String())
	}
	p, ok := b.grid.Ref(b.promotion)
	if !ok {
		errors.Violation("Promote", errors.ErrEmptySquare, b.promotion, "")
	}
	p.Promote(t)
	b.promoting = false
}
