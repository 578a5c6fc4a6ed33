package parallel

import (
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForRangeCoversEveryIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	n := 137
	seen := make([]int32, n)
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestForRangeSequentialFallback(t *testing.T) {
	calls := 0
	ForRange(10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("sequential fallback got [%d, %d), want [0, 10)", start, end)
		}
	}, Sequential())
	if calls != 1 {
		t.Errorf("sequential fallback made %d calls, want 1", calls)
	}
}

func TestForRangeEmpty(t *testing.T) {
	ForRange(0, func(_, _ int) {
		t.Fatal("no chunks expected for n = 0")
	}, DefaultConfig())
}

func TestForSmallFallsBackToSequential(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 100

	sum := 0 // safe: below MinChunkSize everything runs on this goroutine
	For(10, func(i int) {
		sum += i
	}, cfg)

	if sum != 45 {
		t.Errorf("Expected 45, got %d", sum)
	}
}
