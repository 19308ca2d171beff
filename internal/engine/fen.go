package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// BoardToFEN converts a board to a FEN string. Castling rights are derived
// from unmoved kings and corner rooks, and the en passant field from a pawn
// that is still vulnerable. The clocks are not tracked and always read "0 1".
func BoardToFEN(b *Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, b)
	sb.WriteByte(' ')
	writeSideToMove(&sb, b)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, b)
	sb.WriteByte(' ')
	writeEnPassant(&sb, b)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
// FEN lists rank 8 first, which is rank 0 here.
func writePiecePositions(sb *strings.Builder, b *Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := b.grid.At(chess.Sq(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, b *Board) {
	if b.turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes KQkq for every unmoved king and corner rook pair.
func writeCastlingRights(sb *strings.Builder, b *Board) {
	hasCastling := false
	for _, right := range []struct {
		owner    chess.Player
		rookFile int
		letter   byte
	}{
		{chess.White, chess.BoardSize - 1, 'K'},
		{chess.White, 0, 'Q'},
		{chess.Black, chess.BoardSize - 1, 'k'},
		{chess.Black, 0, 'q'},
	} {
		home := right.owner.HomeRank()
		if unmoved(b, chess.Sq(4, home), chess.King, right.owner) && unmoved(b, chess.Sq(right.rookFile, home), chess.Rook, right.owner) {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind a vulnerable pawn of the side
// that just moved.
func writeEnPassant(sb *strings.Builder, b *Board) {
	target := ""
	b.grid.Each(func(sq chess.Square, p *chess.Piece) {
		if target == "" && p.Owner != b.turn && p.State == chess.EnPassantVulnerable {
			target = sq.Offset(0, -p.Owner.Forward()).Algebraic()
		}
	})
	if target == "" {
		target = "-"
	}
	sb.WriteString(target)
}

func unmoved(b *Board, sq chess.Square, t chess.PieceType, owner chess.Player) bool {
	p, ok := b.grid.At(sq)
	return ok && p.Type == t && p.Owner == owner && p.State == chess.NeverMoved
}
