package walk

import (
	"math/rand"
	"sync"
)

// GenerateParallel splits the sample budget across workers, each with its
// own rng seeded seed+index, and merges the per-worker frequency tables by
// addition. Merge order does not affect the result, so the frame is
// identical for a fixed seed and worker count and satisfies the same
// invariants as Generate.
func GenerateParallel(cfg Config, seed int64, workers int) Frame {
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Samples {
		workers = cfg.Samples
	}

	tables := make([]map[int]int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			n := cfg.Samples / workers
			if idx < cfg.Samples%workers {
				n++
			}

			rng := rand.New(rand.NewSource(seed + int64(idx)))
			counts := make(map[int]int, cfg.Steps+BucketPadding+1)
			for j := 0; j < n; j++ {
				counts[Endpoint(cfg.Steps, rng)]++
			}
			tables[idx] = counts
		}(i)
	}
	wg.Wait()

	merged := make(map[int]int, cfg.Steps+BucketPadding+1)
	for _, t := range tables {
		for label, n := range t {
			merged[label] += n
		}
	}
	return assemble(cfg.Steps, merged)
}
