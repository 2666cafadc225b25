package renderer

import (
	"context"
	"runtime"
	"sync"
)

// rowResult reports completion of a single scanline
type rowResult struct {
	Row int
	Err error
}

// workerPool renders scanline rows in parallel. Rows are the unit of work:
// they partition the framebuffer statically, so no two workers ever touch
// the same pixel.
type workerPool struct {
	numWorkers int
	tasks      chan int
	resultCh   chan rowResult
	wg         sync.WaitGroup
}

// newWorkerPool creates a pool sized for the given number of rows
func newWorkerPool(numWorkers, rows int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		numWorkers: numWorkers,
		tasks:      make(chan int, rows),
		resultCh:   make(chan rowResult, rows),
	}
}

// start launches the workers. Cancellation is cooperative: the context is
// checked before each row, and a cancelled row is reported with ctx.Err()
// without being rendered.
func (wp *workerPool) start(ctx context.Context, renderRow func(row int)) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for row := range wp.tasks {
				select {
				case <-ctx.Done():
					wp.resultCh <- rowResult{Row: row, Err: ctx.Err()}
					continue
				default:
				}
				renderRow(row)
				wp.resultCh <- rowResult{Row: row}
			}
		}()
	}
}

// submitRows queues every row and closes the task channel
func (wp *workerPool) submitRows(rows int) {
	for j := 0; j < rows; j++ {
		wp.tasks <- j
	}
	close(wp.tasks)
}

// results returns the completion channel
func (wp *workerPool) results() <-chan rowResult {
	return wp.resultCh
}

// stop waits for all workers to finish
func (wp *workerPool) stop() {
	wp.wg.Wait()
	close(wp.resultCh)
}
