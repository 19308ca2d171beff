package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a board coordinate. File and Rank are both 0..7 on the board;
// Offset may produce off-board squares, which callers test with OnBoard.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard reports whether both coordinates are in 0..7.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the "(file,rank)" form used in diagnostics.
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
}

// mustBeOnBoard panics with ErrOffBoard for out-of-range squares.
func mustBeOnBoard(op string, s Square) {
	if !s.OnBoard() {
		errors.Violation(op, errors.ErrOffBoard, s, "")
	}
}

// Algebraic returns the square's conventional name, with rank 0 as "8" and
// rank 7 as "1".
func (s Square) Algebraic() string {
	return string([]byte{byte('a' + s.File), byte('8' - s.Rank)})
}

// ParseAlgebraic converts a name such as "e2" to a square.
func ParseAlgebraic(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	s := Square{File: int(name[0]) - 'a', Rank: '8' - int(name[1])}
	return s, s.OnBoard()
}
