// Package worker provides a worker pool for searching independent
// positions in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// WorkItem represents a position to be searched.
type WorkItem struct {
	FEN   string
	Index int // Original index for tracking
}

// Result represents the outcome of searching one position.
type Result struct {
	Index int
	FEN   string
	Move  chess.Move   // Best move; zero when Found is false
	Found bool         // False when the position has no legal moves
	Score int          // White-positive search score
	Stats search.Stats // Work done by the search
	Mate  bool         // Side to move is checkmated
	Stale bool         // Side to move is stalemated
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) Result

// Pool manages a pool of workers. Each ProcessFunc call must own every
// game it touches; nothing is shared between workers.
type Pool struct {
	numWorkers int
	bufferSize int
	positions  chan WorkItem
	results    chan Result
	process    ProcessFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with the given worker count and channel buffer size.
func NewPool(numWorkers, bufferSize int, process ProcessFunc) *Pool {
	return NewPoolWithOptions(process, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool from functional options. Without
// options it has one worker and a buffer of 10.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{numWorkers: 1, bufferSize: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.positions = make(chan WorkItem, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker searches positions until the input channel is closed. After Stop
// it keeps draining the channel without searching.
func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.positions {
		if p.IsStopped() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues a position, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.positions <- item
}

// Stop makes workers skip every position not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting positions, waits for the workers and then closes
// the results channel.
func (p *Pool) Close() {
	close(p.positions)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished searches.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
