package sheet

import (
	"context"
	"sync"
	"time"

	"github.com/gradescan/omr-engine/internal/grading"
	"github.com/gradescan/omr-engine/internal/logger"
)

// BatchItem is the outcome of grading one sheet within a batch. Exactly one
// of Result and Error is set: a per-sheet failure becomes an error
// placeholder rather than aborting the remaining sheets.
type BatchItem struct {
	ImagePath string          `json:"image_path"`
	Result    *grading.Result `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	Elapsed   time.Duration   `json:"processing_time_ns"`
}

// ProcessBatch grades every image against key using a bounded worker pool.
//
// Sheets have no data dependencies on each other, so they are fanned out to
// `workers` goroutines (minimum 1). Each worker appends to the shared output
// under a mutex; the collected items are reassembled into input order before
// returning, so callers can zip them back with their inputs.
//
// Cancelling ctx stops the batch between sheets: unstarted images are
// recorded as error placeholders carrying the context error. A sheet already
// being processed runs to completion — the pipeline itself has no internal
// cancellation contract.
func ProcessBatch(ctx context.Context, p Processor, imagePaths []string, key grading.AnswerKey, workers int) []BatchItem {
	if workers < 1 {
		workers = 1
	}

	type job struct {
		index int
		path  string
	}

	jobs := make(chan job)
	var mu sync.Mutex
	collected := make(map[int]BatchItem, len(imagePaths))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				item := BatchItem{ImagePath: j.path}

				if err := ctx.Err(); err != nil {
					item.Error = err.Error()
				} else {
					start := time.Now()
					result, err := p.Process(j.path, key)
					item.Elapsed = time.Since(start)
					if err != nil {
						logger.Debugf("batch: sheet %s failed: %v", j.path, err)
						item.Error = err.Error()
					} else {
						item.Result = result
					}
				}

				mu.Lock()
				collected[j.index] = item
				mu.Unlock()
			}
		}()
	}

	for i, path := range imagePaths {
		jobs <- job{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	items := make([]BatchItem, len(imagePaths))
	for i := range imagePaths {
		items[i] = collected[i]
	}
	return items
}
