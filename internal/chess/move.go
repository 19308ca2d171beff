package chess

import "fmt"

// Move is one candidate destination and the kind of move that reaches it.
// For Castling the destination is the king's landing square; the rook's
// displacement is a fixed function of it.
type Move struct {
	to   Square
	kind MoveKind
}

// NewMove creates a move to the given square.
func NewMove(to Square, kind MoveKind) Move {
	return Move{to: to, kind: kind}
}

// To returns the destination square.
func (m Move) To() Square {
	return m.to
}

// Kind returns the move kind.
func (m Move) Kind() MoveKind {
	return m.kind
}

// Equal reports whether two moves have the same destination and kind.
func (m Move) Equal(o Move) bool {
	return m.to == o.to && m.kind == o.kind
}

// String returns e.g. "(4,4) PawnDoubleStep".
func (m Move) String() string {
	if m.kind == NormalMove {
		return m.to.String()
	}
	return fmt.Sprintf("%s %s", m.to, m.kind)
}

// Ply is a move bound to the square it is played from.
type Ply struct {
	From Square
	Move Move
}

// String returns e.g. "(4,6)->(4,4) PawnDoubleStep".
func (p Ply) String() string {
	return fmt.Sprintf("%s->%s", p.From, p.Move)
}
