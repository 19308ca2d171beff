// Package perft counts the leaf nodes of the legal move tree. The counts are
// compared against published values to verify move generation.
//
// Promotion is a separate game action here, so a pawn reaching the last rank
// counts as one move rather than four.
package perft

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Cache memoizes subtree counts. Both hashing.PerftCache and
// hashing.ThreadSafeCache satisfy it.
type Cache interface {
	Lookup(sig hashing.Signature) (uint64, bool)
	Store(sig hashing.Signature, nodes uint64)
}

// Count returns the number of leaf nodes depth plies below b. b must have
// its candidates computed; it is not modified. cache may be nil.
func Count(b *engine.Board, depth int, cache Cache) uint64 {
	if depth == 0 {
		return 1
	}

	var sig hashing.Signature
	useCache := cache != nil && depth > 1
	if useCache {
		sig = hashing.NewSignature(b, depth)
		if nodes, ok := cache.Lookup(sig); ok {
			return nodes
		}
	}

	plies := b.LegalMoves(b.Turn())
	if depth == 1 {
		return uint64(len(plies))
	}

	var nodes uint64
	for _, ply := range plies {
		nodes += Count(Play(b, ply), depth-1, cache)
	}

	if useCache {
		cache.Store(sig, nodes)
	}
	return nodes
}

// Play returns a copy of b with ply applied, the turn passed and candidates
// recomputed. The game state is not derived.
func Play(b *engine.Board, ply chess.Ply) *engine.Board {
	nb := b.Copy()
	nb.ApplyMove(ply.From, ply.Move)
	nb.ToggleTurn()
	nb.RecomputeAllMoves()
	return nb
}
