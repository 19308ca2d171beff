package setup

import (
	"strings"

	chesslib "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var pieceTypes = map[chesslib.PieceType]chess.PieceType{
	chesslib.Pawn:   chess.Pawn,
	chesslib.Rook:   chess.Rook,
	chesslib.Knight: chess.Knight,
	chesslib.Bishop: chess.Bishop,
	chesslib.Queen:  chess.Queen,
	chesslib.King:   chess.King,
}

// FromFEN builds a board from a FEN string.
//
// FEN carries no move history, so move states are inferred: pawns off their
// starting rank have moved, kings and rooks without a matching castling
// right have moved, and the pawn behind the en passant target is vulnerable.
// Halfmove and fullmove clocks are validated but otherwise ignored.
func FromFEN(fen string) (*engine.Board, error) {
	opt, err := chesslib.FEN(strings.TrimSpace(fen))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}
	pos := chesslib.NewGame(opt).Position()
	rights := string(pos.CastleRights())

	var epVictim chess.Square
	hasEP := pos.EnPassantSquare() != chesslib.NoSquare
	if hasEP {
		target := convertSquare(pos.EnPassantSquare())
		mover := chess.White
		if pos.Turn() == chesslib.White {
			mover = chess.Black
		}
		epVictim = target.Offset(0, mover.Forward())
	}

	b := engine.NewBoard()
	for sq, p := range pos.Board().SquareMap() {
		t, ok := pieceTypes[p.Type()]
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "unsupported piece %v", p)
		}
		owner := chess.Black
		if p.Color() == chesslib.White {
			owner = chess.White
		}
		at := convertSquare(sq)
		b.PlacePieceWithState(at, t, owner, inferState(at, t, owner, rights, hasEP && at == epVictim))
	}

	if pos.Turn() == chesslib.White {
		b.ToggleTurn()
	}
	return finish(b), nil
}

// convertSquare maps a square with rank 1 at index 0 onto the grid, where
// rank 1 is row 7.
func convertSquare(sq chesslib.Square) chess.Square {
	return chess.Sq(int(sq.File()), chess.BoardSize-1-int(sq.Rank()))
}

func inferState(at chess.Square, t chess.PieceType, owner chess.Player, rights string, epVictim bool) chess.MoveState {
	home := owner.HomeRank()
	switch t {
	case chess.Pawn:
		if epVictim {
			return chess.EnPassantVulnerable
		}
		if at.Rank != home+owner.Forward() {
			return chess.Moved
		}
	case chess.King:
		if at != chess.Sq(4, home) || !strings.ContainsAny(rights, castleLetters(owner, 0)+castleLetters(owner, chess.BoardSize-1)) {
			return chess.Moved
		}
	case chess.Rook:
		if at.Rank != home || (at.File != 0 && at.File != chess.BoardSize-1) || !strings.ContainsAny(rights, castleLetters(owner, at.File)) {
			return chess.Moved
		}
	}
	return chess.NeverMoved
}

// castleLetters returns the FEN castling letter for the rook in the given
// corner file.
func castleLetters(owner chess.Player, rookFile int) string {
	letter := "q"
	if rookFile != 0 {
		letter = "k"
	}
	if owner == chess.White {
		letter = strings.ToUpper(letter)
	}
	return letter
}
