// Package game drives a board through a game: it validates and commits
// moves, resolves promotions and tracks whether the game is over.
//
// Rejected actions are reported as Outcome values and leave the board
// untouched. Only driver bugs, such as an off-board square, panic.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Mode is the input the session is waiting for.
type Mode int

const (
	Play      Mode = iota // A move by the side to move
	Promotion             // The piece a pawn on the last rank becomes
	Over                  // Nothing; the game has ended
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case Play:
		return "Play"
	case Promotion:
		return "Promotion"
	case Over:
		return "Over"
	}
	return "Unknown"
}

// Outcome reports what happened to a requested action.
type Outcome int

const (
	Applied Outcome = iota
	EmptySquare
	NotYourPiece
	NotACandidate
	LeavesKingInCheck
	CastlingThroughCheck
	AwaitingPromotion
	GameOver
	NoPromotionPending
	InvalidPromotion
)

var outcomeText = map[Outcome]string{
	Applied:              "move applied",
	EmptySquare:          "no piece on that square",
	NotYourPiece:         "that piece belongs to the other side",
	NotACandidate:        "that piece cannot move there",
	LeavesKingInCheck:    "Cannot go there. Check if you go there!",
	CastlingThroughCheck: "Cannot do Castling now. The way is under attack!",
	AwaitingPromotion:    "choose a promotion piece first",
	GameOver:             "the game is over",
	NoPromotionPending:   "no pawn is waiting for promotion",
	InvalidPromotion:     "pawns promote to R, N, B or Q",
}

// String returns a message suitable for the player.
func (o Outcome) String() string {
	if s, ok := outcomeText[o]; ok {
		return s
	}
	return "unknown outcome"
}

// Session owns a board and the mode machine around it.
type Session struct {
	board *engine.Board
	cfg   *config.Config
	mode  Mode
	plies []chess.Ply
}

// NewSession wraps a board whose candidates and state are already computed,
// as returned by the setup package.
func NewSession(b *engine.Board, cfg *config.Config) *Session {
	s := &Session{board: b, cfg: cfg}
	s.mode = modeFor(b.State())
	return s
}

// Board returns the session's board. Callers must not mutate it.
func (s *Session) Board() *engine.Board {
	return s.board
}

// Mode returns the input the session is waiting for.
func (s *Session) Mode() Mode {
	return s.mode
}

// Plies returns the moves committed so far.
func (s *Session) Plies() []chess.Ply {
	return append([]chess.Ply(nil), s.plies...)
}

// Winner returns the side that delivered checkmate.
func (s *Session) Winner() (chess.Player, bool) {
	if s.board.State() != chess.Checkmate {
		return chess.Black, false
	}
	return s.board.Turn().Opposite(), true
}

// Move tries to play the piece on from to to for the side to move.
func (s *Session) Move(from, to chess.Square) Outcome {
	switch s.mode {
	case Promotion:
		return s.reject(AwaitingPromotion, from, to)
	case Over:
		return s.reject(GameOver, from, to)
	}

	piece, ok := s.board.PieceAt(from)
	if !ok {
		return s.reject(EmptySquare, from, to)
	}
	if piece.Owner != s.board.Turn() {
		return s.reject(NotYourPiece, from, to)
	}
	move, ok := s.board.LegalMoveTo(to, piece)
	if !ok {
		return s.reject(NotACandidate, from, to)
	}

	if move.Kind() == chess.Castling {
		if s.board.CastlingPathAttacked(piece.Owner, from, to) {
			return s.reject(CastlingThroughCheck, from, to)
		}
	} else if s.board.SimulateCheckAfterMove(piece.Owner, from, to) {
		return s.reject(LeavesKingInCheck, from, to)
	}

	s.board.ApplyMove(from, move)
	s.plies = append(s.plies, chess.Ply{From: from, Move: move})
	s.cfg.Logf(2, "%s: %s", piece, chess.Ply{From: from, Move: move})

	s.board.ToggleTurn()
	s.advance()
	return Applied
}

// Promote resolves a pending promotion with the chosen piece type.
func (s *Session) Promote(t chess.PieceType) Outcome {
	if s.mode != Promotion {
		s.cfg.Logf(2, "promote %s rejected: %s", t, NoPromotionPending)
		return NoPromotionPending
	}
	if !t.CanPromoteTo() {
		s.cfg.Logf(2, "promote %s rejected: %s", t, InvalidPromotion)
		return InvalidPromotion
	}
	sq, _ := s.board.PendingPromotion()
	s.board.Promote(t)
	s.cfg.Logf(2, "promoted %s to %s", sq, t)
	s.advance()
	return Applied
}

// advance recomputes candidates, derives the new state and picks the mode.
func (s *Session) advance() {
	s.board.RecomputeAllMoves()
	s.board.SetGameState()
	s.mode = modeFor(s.board.State())
	s.cfg.Logf(2, "%s to move, state %s", s.board.Turn(), s.board.State())
}

func (s *Session) reject(o Outcome, from, to chess.Square) Outcome {
	s.cfg.Logf(2, "%s->%s rejected: %s", from, to, o)
	return o
}

func modeFor(state chess.GameState) Mode {
	switch state {
	case chess.PendingPromotion:
		return Promotion
	case chess.Checkmate, chess.Stalemate:
		return Over
	}
	return Play
}
