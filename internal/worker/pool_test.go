package worker

import (
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/setup"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// countingProcessFunc returns a process function that counts calls and
// reports the number of legal replies as the node count.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		b := item.Board
		b.ApplyMove(item.Ply.From, item.Ply.Move)
		b.ToggleTurn()
		b.RecomputeAllMoves()
		return ProcessResult{
			Ply:   item.Ply,
			Index: item.Index,
			Nodes: uint64(len(b.LegalMoves(b.Turn()))),
		}
	}
}

// submitAll queues one item per legal root move of the standard position and
// closes the pool once everything is queued.
func submitAll(pool *Pool) int {
	root := setup.NewStandard()
	plies := root.LegalMoves(root.Turn())
	go func() {
		for i, ply := range plies {
			pool.Submit(WorkItem{Board: root.Copy(), Ply: ply, Depth: 1, Index: i})
		}
		pool.Close()
	}()
	return len(plies)
}

// collectResults drains the result channel.
func collectResults(pool *Pool) []ProcessResult {
	var results []ProcessResult
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(4))
	pool.Start()

	n := submitAll(pool)
	results := collectResults(pool)

	testutil.AssertEqual(t, len(results), n)
	testutil.AssertEqual(t, int(atomic.LoadInt32(&processed)), n)

	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	testutil.AssertEqual(t, total, uint64(400))
}

func TestPoolResultIndexes(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(3))
	pool.Start()

	n := submitAll(pool)
	results := collectResults(pool)

	indexes := make([]int, 0, len(results))
	for _, r := range results {
		indexes = append(indexes, r.Index)
	}
	sort.Ints(indexes)
	for i := 0; i < n; i++ {
		testutil.AssertEqual(t, indexes[i], i)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	release := make(chan struct{})
	slow := func(item WorkItem) ProcessResult {
		<-release
		atomic.AddInt32(&processed, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slow, WithWorkers(1), WithBufferSize(10))
	pool.Start()
	for i := 0; i < 10; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	pool.Stop()
	close(release)
	go pool.Close()

	results := collectResults(pool)
	if len(results) > 1 {
		t.Errorf("results after Stop = %d; want at most 1", len(results))
	}
	testutil.AssertTrue(t, pool.IsStopped())
}

func TestPoolStopBeforeWork(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(2))
	pool.Stop()
	pool.Start()

	submitAll(pool)
	results := collectResults(pool)

	testutil.AssertEqual(t, len(results), 0)
	testutil.AssertEqual(t, atomic.LoadInt32(&processed), int32(0))
}

func TestNewPoolOptions(t *testing.T) {
	noop := func(item WorkItem) ProcessResult { return ProcessResult{Index: item.Index} }

	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 64},
		{"workers", []PoolOption{WithWorkers(8)}, 8, 64},
		{"buffer", []PoolOption{WithBufferSize(5)}, 1, 5},
		{"invalid values ignored", []PoolOption{WithWorkers(0), WithBufferSize(-1)}, 1, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(noop, tt.opts...)
			testutil.AssertEqual(t, p.NumWorkers(), tt.wantWorkers)
			testutil.AssertEqual(t, cap(p.workChan), tt.wantBuffer)
			testutil.AssertEqual(t, cap(p.resultChan), tt.wantBuffer)
		})
	}
}

func TestPoolPlyRoundTrip(t *testing.T) {
	echo := func(item WorkItem) ProcessResult {
		return ProcessResult{Ply: item.Ply, Index: item.Index}
	}
	pool := NewPool(echo)
	pool.Start()

	ply := chess.Ply{From: chess.Sq(6, 7), Move: chess.NewMove(chess.Sq(5, 5), chess.NormalMove)}
	pool.Submit(WorkItem{Ply: ply, Index: 3})

	done := make(chan struct{})
	go func() {
		pool.Close()
		close(done)
	}()

	r := <-pool.Results()
	testutil.AssertEqual(t, r.Index, 3)
	testutil.AssertTrue(t, r.Ply.From == ply.From && r.Ply.Move.Equal(ply.Move))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}
}
