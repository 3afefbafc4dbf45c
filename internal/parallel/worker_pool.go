// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel fans batch cleaning work out across worker goroutines.
// Jobs are contiguous row spans of a table; each worker runs the supplied
// process function over its span and results are merged back in row order by
// the caller. Row records are independent of each other, so span partitioning
// needs no coordination beyond the shared read-only pattern tables.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"table-tamer/internal/observability"
)

// Job is one contiguous span of table rows, Start inclusive and End
// exclusive.
type Job struct {
	ID    string
	Start int
	End   int
}

// Result carries the processed rows for one span. Rows holds the produced
// cells for rows Start through End-1 in order.
type Result struct {
	JobID    string
	Start    int
	End      int
	Rows     [][]string
	Invalid  int
	Err      error
	Duration time.Duration
}

// ProcessFunc handles one span. Implementations must not retain the job.
type ProcessFunc func(ctx context.Context, job *Job) *Result

// WorkerPool manages parallel span processing.
type WorkerPool struct {
	workers  int
	jobs     chan *Job
	results  chan *Result
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	observer *observability.StandardObserver
	process  ProcessFunc
}

// DefaultWorkers is the worker count used when the caller does not choose
// one.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// NewWorkerPool creates a pool of the given size. Sizes below 1 are raised
// to 1.
func NewWorkerPool(workers int, process ProcessFunc, observer *observability.StandardObserver) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:  workers,
		jobs:     make(chan *Job, workers*2),
		results:  make(chan *Result, workers*2),
		ctx:      ctx,
		cancel:   cancel,
		observer: observer,
		process:  process,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Submit queues a job. Submit blocks when the queue is full and returns
// without queuing once the pool is stopped.
func (wp *WorkerPool) Submit(job *Job) {
	select {
	case wp.jobs <- job:
	case <-wp.ctx.Done():
	}
}

// Close signals that no further jobs will be submitted.
func (wp *WorkerPool) Close() {
	close(wp.jobs)
}

// Stop waits for in-flight jobs, closes the results channel and releases the
// pool. Call after Close.
func (wp *WorkerPool) Stop() {
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
}

// Results returns the channel span results arrive on. Results are not
// ordered; callers merge by the span's Start index.
func (wp *WorkerPool) Results() <-chan *Result {
	return wp.results
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobs {
		result := wp.runJob(job, id)

		select {
		case wp.results <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

func (wp *WorkerPool) runJob(job *Job, workerID int) *Result {
	start := time.Now()

	var finishTiming func(bool, map[string]interface{})
	if wp.observer != nil {
		finishTiming = wp.observer.StartTiming("worker_pool", "process_span", job.ID)
	}

	result := wp.process(wp.ctx, job)
	if result == nil {
		result = &Result{JobID: job.ID, Start: job.Start, End: job.End}
	}
	result.Duration = time.Since(start)

	if finishTiming != nil {
		finishTiming(result.Err == nil, map[string]interface{}{
			"worker_id":     workerID,
			"rows":          job.End - job.Start,
			"invalid_count": result.Invalid,
			"duration_ms":   result.Duration.Milliseconds(),
		})
	}

	return result
}

// SpanJobs cuts n rows into roughly even spans, at most one per worker.
func SpanJobs(n, workers int) []*Job {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	var jobs []*Job
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		jobs = append(jobs, &Job{
			ID:    fmt.Sprintf("span-%d-%d", start, end),
			Start: start,
			End:   end,
		})
	}
	return jobs
}
