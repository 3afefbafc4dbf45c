// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"table-tamer/internal/formatters"
	"table-tamer/internal/table"

	"github.com/fatih/color"
)

// Formatter implements human-readable text output
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable cleaning report with colors and tables"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(report *table.Report, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	builder.WriteString(f.colors["white"].Sprintf("Cleaning report: %s", report.Source))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Rows in: %d, rows out: %d\n", report.RowsIn, report.RowsOut))

	rejected := len(report.RejectedRows)
	invalid := report.InvalidNames()
	switch {
	case rejected == 0 && invalid == 0:
		builder.WriteString(f.colors["green"].Sprint("No rows rejected, no invalid names"))
		builder.WriteString("\n")
	default:
		if rejected > 0 {
			builder.WriteString(f.colors["yellow"].Sprintf("Rejected rows: %d", rejected))
			builder.WriteString("\n")
		}
		if invalid > 0 {
			builder.WriteString(f.colors["red"].Sprintf("Invalid names: %d", invalid))
			builder.WriteString("\n")
		}
	}

	if len(report.Operations) > 0 {
		builder.WriteString("\n")
		w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "OPERATION\tAFFECTED\tDETAILS")
		for _, op := range report.Operations {
			fmt.Fprintf(w, "%s\t%d\t%s\n", op.Name, op.RowsAffected, formatDetails(op.Details))
		}
		w.Flush()
	}

	if options.Verbose && rejected > 0 {
		builder.WriteString(f.colors["cyan"].Sprint("\nRejected rows:"))
		builder.WriteString("\n")
		for _, row := range report.RejectedRows {
			builder.WriteString(fmt.Sprintf("  #%d: %s\n", row.Index, strings.Join(row.Cells, " | ")))
		}
	}

	return builder.String(), nil
}

// formatDetails renders a details map as stable "key=value" pairs.
func formatDetails(details map[string]int) string {
	if len(details) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%d", k, details[k])
	}
	return strings.Join(pairs, ", ")
}

func init() {
	formatters.Register(NewFormatter())
}
