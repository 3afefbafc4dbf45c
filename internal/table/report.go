// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package table

// Report accumulates the metadata of one cleaning run: which operations ran,
// what they touched, and every row that was rejected. Formatters render it
// after the cleaned table is written.
type Report struct {
	Source       string           `json:"source" yaml:"source"`
	RowsIn       int              `json:"rows_in" yaml:"rows_in"`
	RowsOut      int              `json:"rows_out" yaml:"rows_out"`
	Operations   []OperationStats `json:"operations" yaml:"operations"`
	RejectedRows []RejectedRow    `json:"rejected_rows,omitempty" yaml:"rejected_rows,omitempty"`
}

// OperationStats describes one operation's effect on the table.
type OperationStats struct {
	Name         string         `json:"name" yaml:"name"`
	RowsAffected int            `json:"rows_affected" yaml:"rows_affected"`
	Details      map[string]int `json:"details,omitempty" yaml:"details,omitempty"`
}

// RejectedRow is a row removed from the table, kept with its pre-removal
// index for the run report.
type RejectedRow struct {
	Index int      `json:"index" yaml:"index"`
	Cells []string `json:"cells" yaml:"cells"`
}

// Record appends one operation's stats to the report.
func (r *Report) Record(stats OperationStats) {
	r.Operations = append(r.Operations, stats)
}

// Reject appends rejected rows to the report.
func (r *Report) Reject(rows []RejectedRow) {
	r.RejectedRows = append(r.RejectedRows, rows...)
}

// InvalidNames sums the invalid-name counters across all recorded name
// parsing operations.
func (r *Report) InvalidNames() int {
	total := 0
	for _, op := range r.Operations {
		total += op.Details["invalid_names"]
	}
	return total
}
