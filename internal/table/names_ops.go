// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"context"
	"sort"
	"strconv"

	"table-tamer/internal/names"
	"table-tamer/internal/parallel"
	"table-tamer/internal/patterns"
)

// stringNameLabels are the columns joined back by ParseNameColumn, in output
// order.
var stringNameLabels = []string{
	"prefix", "fname", "mname", "lname", "suffix",
	"prefix_2", "fname_2", "mname_2", "lname_2", "suffix_2",
	"alt_name", "alt_name_2", "valid",
}

// tokenNameLabels are the columns joined back by ParseTokenizedNames. The
// pre-split pipeline has no affix or alternate-name phases, so only the core
// fields appear.
var tokenNameLabels = []string{
	"fname", "mname", "lname",
	"fname_2", "mname_2", "lname_2",
	"valid",
}

// ParseNameColumn runs the free-text name parser over every value in the
// given column and joins the parsed fields back as new columns. nameNum
// distinguishes repeated applications on the same table: when positive, each
// new label gets it as a trailing numeric suffix ("fname_1", "fname_2_1").
// Rows are partitioned into spans across the given number of workers; the
// pattern set is shared read-only. Returns per-run counters including the
// number of records flagged invalid.
func (t *Table) ParseNameColumn(ps *patterns.Set, column string, nameNum, workers int) (OperationStats, error) {
	stats := OperationStats{Name: "parse_name_column", Details: map[string]int{}}
	col, err := t.ColumnIndex(column)
	if err != nil {
		return stats, err
	}

	parser := names.NewStringParser(ps)
	values, invalid := t.parseRows(workers, func(row []string) ([]string, bool) {
		parsed := parser.Parse(row[col])
		return stringNameCells(parsed), parsed.Valid
	})

	t.AppendColumns(suffixLabels(stringNameLabels, nameNum), values)
	stats.RowsAffected = len(t.Rows)
	stats.Details["invalid_names"] = invalid
	stats.Details["parsed"] = len(t.Rows)
	return stats, nil
}

// ParseTokenizedNames runs the pre-split name parser over the given columns
// (conventionally first/middle/last, or first/last) and joins the parsed
// fields back as new columns.
func (t *Table) ParseTokenizedNames(ps *patterns.Set, columns []string, nameNum, workers int) (OperationStats, error) {
	stats := OperationStats{Name: "parse_tokenized_names", Details: map[string]int{}}
	idx, err := t.columnIndexes(columns)
	if err != nil {
		return stats, err
	}

	parser := names.NewTokenParser(ps)
	values, invalid := t.parseRows(workers, func(row []string) ([]string, bool) {
		fields := make([]string, len(idx))
		for i, col := range idx {
			fields[i] = row[col]
		}
		parsed := parser.Parse(fields)
		return tokenNameCells(parsed), parsed.Valid
	})

	t.AppendColumns(suffixLabels(tokenNameLabels, nameNum), values)
	stats.RowsAffected = len(t.Rows)
	stats.Details["invalid_names"] = invalid
	stats.Details["parsed"] = len(t.Rows)
	return stats, nil
}

// parseRows applies fn to every row via a span worker pool and returns the
// produced cells in row order plus the count of rows fn flagged invalid.
func (t *Table) parseRows(workers int, fn func(row []string) ([]string, bool)) ([][]string, int) {
	if workers < 1 {
		workers = parallel.DefaultWorkers()
	}

	process := func(_ context.Context, job *parallel.Job) *parallel.Result {
		res := &parallel.Result{JobID: job.ID, Start: job.Start, End: job.End}
		for i := job.Start; i < job.End; i++ {
			cells, valid := fn(t.Rows[i])
			if !valid {
				res.Invalid++
			}
			res.Rows = append(res.Rows, cells)
		}
		return res
	}

	pool := parallel.NewWorkerPool(workers, process, nil)
	pool.Start()

	jobs := parallel.SpanJobs(len(t.Rows), workers)
	go func() {
		for _, j := range jobs {
			pool.Submit(j)
		}
		pool.Close()
	}()

	var results []*parallel.Result
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range pool.Results() {
			results = append(results, r)
		}
	}()
	pool.Stop()
	<-done

	sort.Slice(results, func(i, j int) bool { return results[i].Start < results[j].Start })
	values := make([][]string, 0, len(t.Rows))
	invalid := 0
	for _, r := range results {
		values = append(values, r.Rows...)
		invalid += r.Invalid
	}
	return values, invalid
}

func suffixLabels(labels []string, nameNum int) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		if nameNum > 0 {
			l = l + "_" + strconv.Itoa(nameNum)
		}
		out[i] = l
	}
	return out
}

func stringNameCells(p names.Parsed) []string {
	return []string{
		p.Prefix, p.FirstName, p.MiddleName, p.LastName, p.Suffix,
		p.Prefix2, p.FirstName2, p.MiddleName2, p.LastName2, p.Suffix2,
		p.AltName, p.AltName2, strconv.FormatBool(p.Valid),
	}
}

func tokenNameCells(p names.Parsed) []string {
	return []string{
		p.FirstName, p.MiddleName, p.LastName,
		p.FirstName2, p.MiddleName2, p.LastName2,
		strconv.FormatBool(p.Valid),
	}
}
