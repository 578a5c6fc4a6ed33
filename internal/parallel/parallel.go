// Package parallel provides worker-pool execution helpers for elementwise
// traversals.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of concurrent workers to allow.
	MinChunkSize int  // Minimum items per worker to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// ForRange splits [0, n) into contiguous chunks and hands each chunk to a
// worker as a half-open [start, end) range. Falls back to a single
// sequential call when parallelism is disabled or n is too small.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
}

// For executes f(i) for i in [0, n) with optional parallelism.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
