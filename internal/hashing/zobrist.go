// Package hashing provides position hashes and the subtree-count cache used
// by perft.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const numMoveStates = 3

// Keys are indexed by owner, piece type, move state and square. Move state
// is part of the key because it decides castling and en passant rights.
var (
	zobristPiece [2][chess.NumPieceTypes][numMoveStates][chess.BoardSize * chess.BoardSize]uint64
	zobristWhite uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0x5EED))
	for owner := range zobristPiece {
		for t := range zobristPiece[owner] {
			for s := range zobristPiece[owner][t] {
				for sq := range zobristPiece[owner][t][s] {
					zobristPiece[owner][t][s][sq] = rnd.Uint64()
				}
			}
		}
	}
	zobristWhite = rnd.Uint64()
}

// GenerateZobristHash hashes the pieces, their move states and the side to
// move. Cached candidate lists and the derived game state are not hashed.
func GenerateZobristHash(b *engine.Board) uint64 {
	var key uint64
	b.Each(func(sq chess.Square, p chess.Piece) {
		key ^= zobristPiece[p.Owner][p.Type][p.State][sq.Rank*chess.BoardSize+sq.File]
	})
	if b.Turn() == chess.White {
		key ^= zobristWhite
	}
	return key
}

// WeakHash is a cheap second hash used to confirm Zobrist matches.
func WeakHash(b *engine.Board) uint32 {
	var h uint32 = 2166136261
	b.Each(func(sq chess.Square, p chess.Piece) {
		for _, c := range []byte{byte(sq.Rank*chess.BoardSize + sq.File), p.Symbol(), byte(p.State)} {
			h ^= uint32(c)
			h *= 16777619
		}
	})
	h ^= uint32(b.Turn())
	h *= 16777619
	return h
}

// NewSignature builds the cache signature of b with depth plies remaining.
func NewSignature(b *engine.Board, depth int) Signature {
	return Signature{Hash: GenerateZobristHash(b), WeakHash: WeakHash(b), Depth: depth}
}
