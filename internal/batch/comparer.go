// Package batch fans a stream of pairs out across a worker pool of
// Engine.Distance calls, deduping identical (a, b) pairs first and
// reassembling results in input order.
package batch

import (
	"runtime"
	"strings"
	"sync"

	"github.com/trey314159/tokendist"
	"github.com/trey314159/tokendist/internal/dedupe"
	"github.com/trey314159/tokendist/internal/pairs"
)

// MaxInMemoryDedupeSize is the pair-count threshold above which the
// comparer switches its dedup set from the in-memory map backend to
// the disk-backed one.
const MaxInMemoryDedupeSize = 500_000

// Result is one computed distance, still tagged with its source line
// so results can be restored to input order after the worker pool's
// fan-in, which completes out of order.
type Result struct {
	Line int
	A    string
	B    string
	Dist float64
}

// Comparer computes distances for a stream of pairs under a fixed
// Engine, using a bounded worker pool and pre-computation dedup.
type Comparer struct {
	engine  *tokendist.Engine
	workers int
}

// NewComparer builds a Comparer. workers <= 0 uses runtime.NumCPU() as
// the default pool size.
func NewComparer(engine *tokendist.Engine, workers int) *Comparer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Comparer{engine: engine, workers: workers}
}

// Run computes every pair's distance and returns the results in input
// (line-number) order. Identical (a, b) pairs are computed once: every
// pair is first upserted into a dedupe.Backend (in-memory, or
// disk-backed above MaxInMemoryDedupeSize), then each unique key the
// backend yields is dispatched to the worker pool exactly once.
func (c *Comparer) Run(input []pairs.Pair) []Result {
	backend := dedupeBackend(len(input))
	defer backend.Cleanup()

	for _, p := range input {
		backend.Upsert(pairKey(p.A, p.B))
	}

	var uniqueKeys []string
	backend.IterCallback(func(key string) {
		uniqueKeys = append(uniqueKeys, key)
	})

	distByKey := make(map[string]float64, len(uniqueKeys))
	var mu sync.Mutex

	jobs := make(chan string)
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range jobs {
				a, b := splitPairKey(key)
				d := c.engine.Distance(a, b)
				mu.Lock()
				distByKey[key] = d
				mu.Unlock()
			}
		}()
	}
	for _, key := range uniqueKeys {
		jobs <- key
	}
	close(jobs)
	wg.Wait()

	results := make([]Result, len(input))
	for i, p := range input {
		results[i] = Result{
			Line: p.Line,
			A:    p.A,
			B:    p.B,
			Dist: distByKey[pairKey(p.A, p.B)],
		}
	}
	return results
}

func dedupeBackend(n int) dedupe.Backend {
	if n > MaxInMemoryDedupeSize {
		return dedupe.NewLevelDBBackend()
	}
	return dedupe.NewMapBackend()
}

// pairKey keys dedup by the exact ordered pair: distance is not
// guaranteed symmetric under NormFirst, so (a, b) and (b, a) are never
// treated as the same comparison.
const pairKeySep = "\x00"

func pairKey(a, b string) string {
	return a + pairKeySep + b
}

func splitPairKey(key string) (a, b string) {
	idx := strings.Index(key, pairKeySep)
	if idx < 0 {
		return key, ""
	}
	return key[:idx], key[idx+1:]
}
