package chess

import (
	"fmt"
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Piece is a unit occupying one square. Moves caches the piece's candidate
// moves and is only valid until the next recompute, which rebuilds it.
type Piece struct {
	Type  PieceType
	Owner Player
	State MoveState
	Moves []Move
}

// NewPiece creates an unmoved piece with an empty candidate list.
func NewPiece(t PieceType, owner Player) Piece {
	return Piece{Type: t, Owner: owner, State: NeverMoved}
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Owner, p.Type)
}

// Symbol returns the piece letter, uppercase for White and lowercase for Black.
func (p Piece) Symbol() byte {
	c := p.Type.Letter()
	if p.Owner == Black {
		c += 'a' - 'A'
	}
	return c
}

// SetMoved marks the piece as having moved.
func (p *Piece) SetMoved() {
	p.State = Moved
}

// SetEnPassantVulnerable marks a pawn that has just made its double step.
func (p *Piece) SetEnPassantVulnerable() {
	if p.Type != Pawn {
		errors.Violation("SetEnPassantVulnerable", errors.ErrNotAPawn, nil, p.String())
	}
	if p.State != NeverMoved {
		errors.Violation("SetEnPassantVulnerable", errors.ErrPawnAlreadyMoved, nil, p.String())
	}
	p.State = EnPassantVulnerable
}

// Promote changes a pawn's type in place.
func (p *Piece) Promote(t PieceType) {
	if p.Type != Pawn {
		errors.Violation("Promote", errors.ErrNotAPawn, nil, p.String())
	}
	if !t.CanPromoteTo() {
		errors.Violation("Promote", errors.ErrInvalidPromotion, nil, t.String())
	}
	p.Type = t
}

// MoveTo returns the cached candidate move landing on sq, if any.
func (p Piece) MoveTo(sq Square) (Move, bool) {
	i := slices.IndexFunc(p.Moves, func(m Move) bool { return m.to == sq })
	if i < 0 {
		return Move{}, false
	}
	return p.Moves[i], true
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Moves = slices.Clone(p.Moves)
	return p
}
