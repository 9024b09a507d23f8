package worker

import (
	"sort"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// SearchFunc returns a ProcessFunc that loads each item's FEN into a fresh
// game and searches it for the side to move.
func SearchFunc(depth int, opts ...search.Option) ProcessFunc {
	return func(item WorkItem) Result {
		result := Result{Index: item.Index, FEN: item.FEN}

		g, err := engine.NewGameFromFEN(item.FEN)
		if err != nil {
			result.Error = err
			return result
		}

		s := search.NewSearcher(g, opts...)
		result.Move, result.Score, result.Found = s.BestMove(depth)
		result.Stats = s.Stats()
		result.Mate, result.Stale = g.Checkmate, g.Stalemate
		return result
	}
}

// Run searches every FEN on the pool and returns the results in input
// order.
func Run(fens []string, process ProcessFunc, opts ...PoolOption) []Result {
	return run(fens, process, false, opts)
}

// RunUntilError is Run, except that the first failed item stops the pool.
// Positions not yet started are skipped, so only the results produced
// before the pool noticed the failure are returned, in input order.
func RunUntilError(fens []string, process ProcessFunc, opts ...PoolOption) []Result {
	return run(fens, process, true, opts)
}

func run(fens []string, process ProcessFunc, stopOnError bool, opts []PoolOption) []Result {
	var pool *Pool
	if stopOnError {
		inner := process
		process = func(item WorkItem) Result {
			result := inner(item)
			if result.Error != nil {
				pool.Stop()
			}
			return result
		}
	}
	pool = NewPoolWithOptions(process, opts...)
	pool.Start()

	go func() {
		for i, fen := range fens {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(fens))
	for result := range pool.Results() {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
