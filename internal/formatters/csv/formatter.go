// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"table-tamer/internal/formatters"
	"table-tamer/internal/table"
)

// Formatter implements CSV output formatting: one record per operation, for
// spreadsheet-side inspection of a cleaning run.
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "CSV cleaning report, one record per operation"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(report *table.Report, options formatters.FormatterOptions) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	header := []string{"source", "operation", "rows_affected", "details"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, op := range report.Operations {
		record := []string{
			report.Source,
			op.Name,
			strconv.Itoa(op.RowsAffected),
			detailString(op.Details),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	if options.Verbose {
		for _, row := range report.RejectedRows {
			record := []string{
				report.Source,
				"rejected_row",
				strconv.Itoa(row.Index),
				strings.Join(row.Cells, "|"),
			}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return builder.String(), nil
}

func detailString(details map[string]int) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + strconv.Itoa(details[k])
	}
	return strings.Join(pairs, ";")
}

func init() {
	formatters.Register(NewFormatter())
}
