// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package table holds the in-memory table model and the cleaning operations
// that run over it. Cells are strings; the empty string is the missing-value
// sentinel throughout. Every operation records what it changed into a Report
// so that no row or cell is altered or dropped silently.
package table

import (
	"fmt"
)

// Table is an ordered set of column labels over a row grid. Rows are ragged
// on ingest; Normalize pads or truncates them to the column count.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates a table from labels and rows.
func New(columns []string, rows [][]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Normalize pads short rows with empty cells and truncates long ones so
// every row matches the column count.
func (t *Table) Normalize() {
	width := len(t.Columns)
	for i, row := range t.Rows {
		switch {
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			t.Rows[i] = padded
		case len(row) > width:
			t.Rows[i] = row[:width]
		}
	}
}

// ColumnIndex returns the position of a column label, or an error naming the
// label when it does not exist.
func (t *Table) ColumnIndex(label string) (int, error) {
	for i, c := range t.Columns {
		if c == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no column %q in table", label)
}

// columnIndexes resolves several labels at once.
func (t *Table) columnIndexes(labels []string) ([]int, error) {
	idx := make([]int, len(labels))
	for i, label := range labels {
		j, err := t.ColumnIndex(label)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}
	return idx, nil
}

// AppendColumns adds labels with the given per-row values. values must hold
// one slice per existing row.
func (t *Table) AppendColumns(labels []string, values [][]string) {
	t.Columns = append(t.Columns, labels...)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i]...)
	}
}

// CompleteClusters forward-fills empty cells in the given columns from the
// nearest non-empty cell above, the standard fixup for spreadsheet exports
// that only write a group label on its first row. Returns per-column fill
// counts.
func (t *Table) CompleteClusters(labels []string) (OperationStats, error) {
	stats := OperationStats{Name: "complete_clusters", Details: map[string]int{}}
	idx, err := t.columnIndexes(labels)
	if err != nil {
		return stats, err
	}

	for k, col := range idx {
		last := ""
		filled := 0
		for _, row := range t.Rows {
			if row[col] == "" {
				if last != "" {
					row[col] = last
					filled++
				}
				continue
			}
			last = row[col]
		}
		stats.Details[labels[k]] = filled
		stats.RowsAffected += filled
	}
	return stats, nil
}

// RejectIncompleteRows removes rows with an empty cell in any required
// column. The removed rows come back with their original indexes so the
// caller can report them rather than lose them.
func (t *Table) RejectIncompleteRows(required []string) ([]RejectedRow, error) {
	idx, err := t.columnIndexes(required)
	if err != nil {
		return nil, err
	}

	var rejected []RejectedRow
	kept := t.Rows[:0]
	for i, row := range t.Rows {
		complete := true
		for _, col := range idx {
			if row[col] == "" {
				complete = false
				break
			}
		}
		if complete {
			kept = append(kept, row)
			continue
		}
		rejected = append(rejected, RejectedRow{Index: i, Cells: row})
	}
	t.Rows = kept
	return rejected, nil
}
