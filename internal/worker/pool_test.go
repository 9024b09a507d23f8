package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

func echo(item WorkItem) Result {
	return Result{FEN: item.FEN, Index: item.Index}
}

// counting wraps process so every call increments n.
func counting(n *int32, process ProcessFunc) ProcessFunc {
	return func(item WorkItem) Result {
		atomic.AddInt32(n, 1)
		return process(item)
	}
}

// submitAll queues count copies of the initial position, closes the pool
// from a separate goroutine and returns the indices received.
func submitAll(pool *Pool, count int) map[int]int {
	go func() {
		for i := 0; i < count; i++ {
			pool.Submit(WorkItem{FEN: engine.InitialFEN, Index: i})
		}
		pool.Close()
	}()
	seen := make(map[int]int)
	for r := range pool.Results() {
		seen[r.Index]++
	}
	return seen
}

func TestPool_ProcessesEveryItem(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		items   int
	}{
		{"single worker", 1, 5, 5},
		{"more items than buffer", 4, 2, 25},
		{"many workers", 8, 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			pool := NewPool(tt.workers, tt.buffer, counting(&calls, echo))
			pool.Start()

			seen := submitAll(pool, tt.items)
			if len(seen) != tt.items {
				t.Errorf("distinct results = %d; want %d", len(seen), tt.items)
			}
			for i := 0; i < tt.items; i++ {
				if seen[i] != 1 {
					t.Errorf("index %d seen %d times", i, seen[i])
				}
			}
			if got := atomic.LoadInt32(&calls); int(got) != tt.items {
				t.Errorf("process calls = %d; want %d", got, tt.items)
			}
		})
	}
}

func TestPool_SearchesConcurrently(t *testing.T) {
	pool := NewPoolWithOptions(SearchFunc(1), WithWorkers(4), WithBufferSize(4))
	pool.Start()

	go func() {
		for i := 0; i < 8; i++ {
			pool.Submit(WorkItem{FEN: engine.InitialFEN, Index: i})
		}
		pool.Close()
	}()

	var first *Result
	for r := range pool.Results() {
		r := r
		if r.Error != nil || !r.Found {
			t.Fatalf("item %d: found=%v err=%v", r.Index, r.Found, r.Error)
		}
		if first == nil {
			first = &r
			continue
		}
		if r.Move != first.Move || r.Score != first.Score {
			t.Errorf("item %d = %s/%d; item %d = %s/%d", r.Index, r.Move, r.Score, first.Index, first.Move, first.Score)
		}
	}
}

func TestPool_Stop(t *testing.T) {
	var calls int32
	slow := func(item WorkItem) Result {
		time.Sleep(10 * time.Millisecond)
		return echo(item)
	}
	pool := NewPool(2, 100, counting(&calls, slow))
	pool.Start()
	if pool.IsStopped() {
		t.Fatal("new pool reports stopped")
	}

	const items = 50
	for i := 0; i < items; i++ {
		pool.Submit(WorkItem{FEN: engine.InitialFEN, Index: i})
	}
	time.Sleep(30 * time.Millisecond)
	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("IsStopped() = false after Stop")
	}

	go pool.Close()
	for range pool.Results() {
	}
	if got := atomic.LoadInt32(&calls); got >= items {
		t.Logf("stop did not skip any work: %d processed", got)
	}
}

func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"zero workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(echo, tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}

	if got := NewPool(-1, 10, echo).NumWorkers(); got != 1 {
		t.Errorf("NewPool(-1).NumWorkers() = %d; want 1", got)
	}
}
