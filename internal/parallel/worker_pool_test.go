// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"sort"
	"strconv"
	"testing"
)

func TestSpanJobs(t *testing.T) {
	tests := []struct {
		n, workers int
		wantSpans  int
	}{
		{n: 0, workers: 4, wantSpans: 0},
		{n: 1, workers: 4, wantSpans: 1},
		{n: 10, workers: 1, wantSpans: 1},
		{n: 10, workers: 3, wantSpans: 3},
		{n: 9, workers: 3, wantSpans: 3},
		{n: 2, workers: 8, wantSpans: 2},
	}
	for _, tt := range tests {
		jobs := SpanJobs(tt.n, tt.workers)
		if len(jobs) != tt.wantSpans {
			t.Errorf("SpanJobs(%d, %d) produced %d spans, want %d", tt.n, tt.workers, len(jobs), tt.wantSpans)
			continue
		}
		// Spans must tile the row range exactly.
		next := 0
		for _, j := range jobs {
			if j.Start != next {
				t.Errorf("SpanJobs(%d, %d): span starts at %d, want %d", tt.n, tt.workers, j.Start, next)
			}
			if j.End <= j.Start {
				t.Errorf("SpanJobs(%d, %d): empty span %d-%d", tt.n, tt.workers, j.Start, j.End)
			}
			next = j.End
		}
		if tt.n > 0 && next != tt.n {
			t.Errorf("SpanJobs(%d, %d): spans end at %d, want %d", tt.n, tt.workers, next, tt.n)
		}
	}
}

func TestWorkerPoolProcessesAllSpans(t *testing.T) {
	const rows = 100

	process := func(_ context.Context, job *Job) *Result {
		out := make([][]string, 0, job.End-job.Start)
		for i := job.Start; i < job.End; i++ {
			out = append(out, []string{strconv.Itoa(i)})
		}
		return &Result{JobID: job.ID, Start: job.Start, End: job.End, Rows: out}
	}

	pool := NewWorkerPool(4, process, nil)
	pool.Start()

	jobs := SpanJobs(rows, 4)
	go func() {
		for _, j := range jobs {
			pool.Submit(j)
		}
		pool.Close()
	}()

	done := make(chan struct{})
	var results []*Result
	go func() {
		defer close(done)
		for r := range pool.Results() {
			results = append(results, r)
		}
	}()

	pool.Stop()
	<-done

	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Start < results[j].Start })
	row := 0
	for _, r := range results {
		for _, cells := range r.Rows {
			if cells[0] != strconv.Itoa(row) {
				t.Fatalf("row %d produced %q", row, cells[0])
			}
			row++
		}
	}
	if row != rows {
		t.Fatalf("merged %d rows, want %d", row, rows)
	}
}

func TestWorkerPoolMinimumSize(t *testing.T) {
	pool := NewWorkerPool(0, func(_ context.Context, job *Job) *Result {
		return &Result{JobID: job.ID, Start: job.Start, End: job.End}
	}, nil)
	if pool.workers != 1 {
		t.Errorf("workers = %d, want 1", pool.workers)
	}
	pool.Start()
	pool.Close()
	pool.Stop()
}
