package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/movegen"
)

// RecomputeAllMoves rebuilds every piece's candidate list.
//
// Pawns of the side to move that are still en passant vulnerable lost that
// status when the opponent replied, so they are demoted first. Castling is
// appended last, after the fresh lists show whether each king is in check.
func (b *Board) RecomputeAllMoves() {
	b.grid.Each(func(_ chess.Square, p *chess.Piece) {
		if p.Owner == b.turn && p.State == chess.EnPassantVulnerable {
			p.SetMoved()
		}
	})

	b.grid.Each(func(sq chess.Square, p *chess.Piece) {
		p.Moves = movegen.Generate(&b.grid, sq)
	})

	inCheck := [2]bool{b.IsInCheck(chess.Black), b.IsInCheck(chess.White)}
	b.grid.Each(func(sq chess.Square, p *chess.Piece) {
		if p.Type != chess.King || p.State != chess.NeverMoved || inCheck[p.Owner] {
			return
		}
		p.Moves = append(p.Moves, movegen.Castling(&b.grid, sq)...)
	})
}

// LegalMoveTo returns piece's cached candidate landing on sq.
func (b *Board) LegalMoveTo(sq chess.Square, piece chess.Piece) (chess.Move, bool) {
	return piece.MoveTo(sq)
}

// CountCandidateMoves returns the total number of cached candidates of player.
func (b *Board) CountCandidateMoves(player chess.Player) int {
	n := 0
	b.grid.Each(func(_ chess.Square, p *chess.Piece) {
		if p.Owner == player {
			n += len(p.Moves)
		}
	})
	return n
}

// candidates returns every cached candidate of player bound to its origin.
func (b *Board) candidates(player chess.Player) []chess.Ply {
	var plies []chess.Ply
	b.grid.Each(func(sq chess.Square, p *chess.Piece) {
		if p.Owner != player {
			return
		}
		for _, m := range p.Moves {
			plies = append(plies, chess.Ply{From: sq, Move: m})
		}
	})
	return plies
}

// LegalMoves returns the candidates of player that survive the check test.
// Castling moves must also pass the transit test.
func (b *Board) LegalMoves(player chess.Player) []chess.Ply {
	var legal []chess.Ply
	for _, ply := range b.candidates(player) {
		if b.SimulateCheckAfterMove(player, ply.From, ply.Move.To()) {
			continue
		}
		if ply.Move.Kind() == chess.Castling && b.CastlingPathAttacked(player, ply.From, ply.Move.To()) {
			continue
		}
		legal = append(legal, ply)
	}
	return legal
}
