// Package chess provides the core value types of the rules engine: players,
// piece kinds, move kinds, squares, pieces and the 8x8 grid that holds them.
package chess

// Player represents the owner of a piece or the side to move.
type Player int

const (
	Black Player = iota
	White
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other player.
func (p Player) Opposite() Player {
	if p == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a pawn step: White moves toward rank 0,
// Black toward rank 7.
func (p Player) Forward() int {
	if p == White {
		return -1
	}
	return 1
}

// HomeRank returns the player's back rank.
func (p Player) HomeRank() int {
	if p == White {
		return BoardSize - 1
	}
	return 0
}

// PromotionRank returns the rank on which the player's pawns promote.
func (p Player) PromotionRank() int {
	return p.Opposite().HomeRank()
}

// PieceType represents one of the six chess piece kinds.
type PieceType int

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece type.
func (t PieceType) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// CanPromoteTo reports whether a pawn may become this piece type.
func (t PieceType) CanPromoteTo() bool {
	switch t {
	case Rook, Knight, Bishop, Queen:
		return true
	}
	return false
}

// ParsePieceType converts a piece letter (either case) to a piece type.
func ParsePieceType(c byte) (PieceType, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'R', 'r':
		return Rook, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// MoveState is a piece's movement history as far as the rules care.
type MoveState int

const (
	NeverMoved          MoveState = iota // Eligible for pawn double step and castling
	Moved                                // Has moved at least once
	EnPassantVulnerable                  // Pawn that double stepped on the previous ply
)

// String returns the string representation of a move state.
func (s MoveState) String() string {
	switch s {
	case NeverMoved:
		return "NeverMoved"
	case Moved:
		return "Moved"
	case EnPassantVulnerable:
		return "EnPassantVulnerable"
	}
	return "Unknown"
}

// MoveKind categorizes candidate moves by how they are applied.
type MoveKind int

const (
	NormalMove MoveKind = iota
	PawnDoubleStep
	EnPassantCapture
	Castling
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case NormalMove:
		return "Normal"
	case PawnDoubleStep:
		return "PawnDoubleStep"
	case EnPassantCapture:
		return "EnPassant"
	case Castling:
		return "Castling"
	}
	return "Unknown"
}

// GameState is the derived status of the position for the side to move.
type GameState int

const (
	Normal GameState = iota
	Check
	Checkmate
	Stalemate
	PendingPromotion
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case PendingPromotion:
		return "PendingPromotion"
	}
	return "Unknown"
}

// Terminal reports whether the state ends the game.
func (s GameState) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// BoardSize is the number of files and ranks.
const BoardSize = 8
