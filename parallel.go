package azimint

import (
	"sync"

	"azimint/internal/accum"
)

// splitPixel deposits one pixel's contribution into acc and reports whether
// it was accepted.
type splitPixel func(i int, acc *accum.Accumulator) bool

// runPixelLoop drives splitPixel over [0,n) into a freshly allocated
// accumulator of binCount bins. With workers <= 1 it runs sequentially in
// pixel-index order, the engine's reference ordering. With workers > 1 it
// partitions the range into contiguous chunks, accumulates each chunk into
// its own shard concurrently, and sums the shards - this changes the
// floating-point summation order (and so the last few ULPs of each bin) and
// nothing else, since Splitter values carry no shared mutable state between
// calls.
func runPixelLoop(n, workers, binCount int, split splitPixel) (*accum.Accumulator, int) {
	if workers < 2 || n == 0 {
		acc := accum.New(binCount)
		discarded := 0
		for i := 0; i < n; i++ {
			if !split(i, acc) {
				discarded++
			}
		}
		return acc, discarded
	}

	chunk := (n + workers - 1) / workers
	shards := make([]*accum.Accumulator, workers)
	discarded := make([]int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		shards[w] = accum.New(binCount)
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			local := shards[w]
			d := 0
			for i := lo; i < hi; i++ {
				if !split(i, local) {
					d++
				}
			}
			discarded[w] = d
		}(w, lo, hi)
	}
	wg.Wait()

	merged := accum.New(binCount)
	total := 0
	for w, s := range shards {
		for k := range merged.Data {
			merged.Data[k] += s.Data[k]
			merged.Count[k] += s.Count[k]
		}
		total += discarded[w]
	}
	return merged, total
}
