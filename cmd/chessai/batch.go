package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// runBatch searches every position in the positions file on the worker
// pool and prints one line per position in file order.
func runBatch(cfg *config.Config) error {
	file, err := os.Open(cfg.Batch.PositionsFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("opening positions file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	fens, err := readPositions(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.Batch.PositionsFile, err)
	}

	runFunc := worker.Run
	if cfg.Batch.FailFast {
		runFunc = worker.RunUntilError
	}
	results := runFunc(fens,
		worker.SearchFunc(cfg.Search.Depth, searchOptions(cfg)...),
		worker.WithWorkers(cfg.Batch.Workers),
		worker.WithBufferSize(cfg.Batch.BufferSize),
	)

	failures := 0
	var firstErr error
	for _, r := range results {
		writeBatchResult(cfg, r)
		if r.Error != nil {
			failures++
			if firstErr == nil {
				firstErr = fmt.Errorf("position %d: %w", r.Index+1, r.Error)
			}
		}
	}

	cfg.Logf(1, "%d position(s) searched, %d error(s), %d worker(s)\n",
		len(results), failures, cfg.Batch.Workers)
	if cfg.Batch.FailFast && firstErr != nil {
		return fmt.Errorf("batch stopped: %w", firstErr)
	}
	return nil
}

// writeBatchResult prints one result line, numbered from 1.
func writeBatchResult(cfg *config.Config, r worker.Result) {
	out := cfg.OutputFile
	n := r.Index + 1
	switch {
	case r.Error != nil:
		fmt.Fprintf(out, "%d: error: %v\n", n, r.Error)
	case !r.Found && r.Mate:
		fmt.Fprintf(out, "%d: checkmate\n", n)
	case !r.Found:
		fmt.Fprintf(out, "%d: stalemate\n", n)
	default:
		fmt.Fprintf(out, "%d: bestmove %s score %d\n", n, r.Move, r.Score)
	}
	if cfg.Output.ShowStats && r.Error == nil {
		fmt.Fprintf(out, "%d: nodes %d leaves %d cutoffs %d\n", n, r.Stats.Nodes, r.Stats.Leaves, r.Stats.Cutoffs)
	}
	cfg.Logf(2, "%d: %s\n", n, r.FEN)
}

// readPositions reads one FEN per line, skipping blank lines and lines
// starting with '#'.
func readPositions(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}
