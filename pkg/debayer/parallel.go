package debayer

import(
	"runtime"
	"sync"
)

// parallelRows splits [0,total) into contiguous row shards, one per
// worker goroutine. Sharding is purely a scheduling optimization:
// every row is an independent pure function of the inputs, so any
// partitioning produces identical output.
func parallelRows(total int, fn func(start, end int)) {
	if total <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		fn(0, total)
		return
	}

	step := (total + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * step
		end := start + step
		if end > total {
			end = total
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
