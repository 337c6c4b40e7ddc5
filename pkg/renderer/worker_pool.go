package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs independent render tasks across a fixed set of worker
// goroutines. Tasks share read-only scene data and write to disjoint
// raster cells, so the completion counter is the only cross-task
// coordination. There is no cancellation: submitted work runs to
// completion.
type WorkerPool struct {
	tasks     chan func()
	workers   sync.WaitGroup
	pending   sync.WaitGroup
	total     int64
	completed atomic.Int64
}

// NewWorkerPool creates a pool sized for a known amount of work and starts
// its workers. A non-positive worker count defaults to the number of CPUs.
// totalTasks fixes the denominator Progress reports against, so the
// fraction stays monotonic while submission and completion overlap.
func NewWorkerPool(numWorkers, totalTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		tasks: make(chan func(), 4*numWorkers),
		total: int64(totalTasks),
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers.Add(1)
		go wp.run()
	}

	return wp
}

// run is the worker loop
func (wp *WorkerPool) run() {
	defer wp.workers.Done()

	for task := range wp.tasks {
		task()
		wp.completed.Add(1)
		wp.pending.Done()
	}
}

// Submit enqueues a task, blocking when the queue is full
func (wp *WorkerPool) Submit(task func()) {
	wp.pending.Add(1)
	wp.tasks <- task
}

// Wait blocks until every submitted task has finished
func (wp *WorkerPool) Wait() {
	wp.pending.Wait()
}

// Stop shuts the pool down after draining outstanding tasks
func (wp *WorkerPool) Stop() {
	close(wp.tasks)
	wp.workers.Wait()
}

// Progress returns the completed fraction of the pool's total planned
// tasks in [0, 1]. It is monotonically non-decreasing and safe to read
// concurrently; the value is advisory only.
func (wp *WorkerPool) Progress() float64 {
	if wp.total == 0 {
		return 0
	}
	return float64(wp.completed.Load()) / float64(wp.total)
}
