package hgvs

import (
	"runtime"
	"sync"
)

// WorkItem holds one raw position string ready for parsing.
type WorkItem struct {
	Seq   int
	Input string
	Extra any // caller-specific data (e.g. a source line number)
}

// WorkResult holds the parse outcome for a single input.
type WorkResult struct {
	Seq   int
	Input string
	Pos   *VariantPosition
	Err   error
	Extra any
}

// ParallelParse parses work items using a pool of workers.
// Results are sent to the returned channel in arrival order (not sequence
// order). Use OrderedCollect to consume results in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
func ParallelParse(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				pos, err := ParsePosition(item.Input)
				results <- WorkResult{
					Seq:   item.Seq,
					Input: item.Input,
					Pos:   pos,
					Err:   err,
					Extra: item.Extra,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them
// as soon as the next expected sequence number is available.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
