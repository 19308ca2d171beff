package perft

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Result is the node count below one root move.
type Result struct {
	Ply   chess.Ply
	Nodes uint64
}

// String returns e.g. "e2e4: 20".
func (r Result) String() string {
	return fmt.Sprintf("%s%s: %d", r.Ply.From.Algebraic(), r.Ply.Move.To().Algebraic(), r.Nodes)
}

// Runner splits perft across a worker pool, one job per root move.
type Runner struct {
	cfg   *config.Config
	cache *hashing.ThreadSafeCache // nil when caching is disabled
}

// NewRunner creates a runner from cfg.Perft.
func NewRunner(cfg *config.Config) *Runner {
	r := &Runner{cfg: cfg}
	if cfg.Perft.UseCache {
		r.cache = hashing.NewThreadSafeCache(0)
	}
	return r
}

// CacheHits returns the number of subtree counts served from the cache.
func (r *Runner) CacheHits() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.Hits()
}

// Divide counts the nodes below each legal root move of b, in the order the
// moves are generated. A contract violation inside a worker is returned as
// an error.
func (r *Runner) Divide(b *engine.Board, depth int) ([]Result, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "divide depth %d must be positive", depth)
	}

	plies := b.LegalMoves(b.Turn())
	pool := worker.NewPool(r.process,
		worker.WithWorkers(r.cfg.Perft.Workers),
		worker.WithBufferSize(len(plies)+1),
	)
	pool.Start()

	go func() {
		for i, ply := range plies {
			pool.Submit(worker.WorkItem{Board: b.Copy(), Ply: ply, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	results := make([]Result, len(plies))
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = res.Error
				pool.Stop()
			}
			continue
		}
		results[res.Index] = Result{Ply: res.Ply, Nodes: res.Nodes}
		r.cfg.Logf(2, "perft: %s", results[res.Index])
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// Run returns the total node count depth plies below b.
func (r *Runner) Run(b *engine.Board, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	start := time.Now()
	results, err := r.Divide(b, depth)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, res := range results {
		total += res.Nodes
	}
	r.cfg.Logf(1, "perft depth %d: %d nodes in %s, %d cache hits",
		depth, total, time.Since(start).Round(time.Millisecond), r.CacheHits())
	return total, nil
}

func (r *Runner) process(item worker.WorkItem) (res worker.ProcessResult) {
	res = worker.ProcessResult{Ply: item.Ply, Index: item.Index}
	defer func() {
		if p := recover(); p != nil {
			err, ok := p.(error)
			if !ok {
				panic(p)
			}
			res.Error = errors.Wrapf(err, "perft %s", item.Ply)
		}
	}()

	var cache Cache
	if r.cache != nil {
		cache = r.cache
	}
	res.Nodes = Count(Play(item.Board, item.Ply), item.Depth, cache)
	return res
}
