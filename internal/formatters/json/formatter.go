// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"table-tamer/internal/formatters"
	"table-tamer/internal/table"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "JSON cleaning report for machine consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(report *table.Report, options formatters.FormatterOptions) (string, error) {
	out := *report
	if !options.Verbose {
		// Rejected row contents can be large; without --verbose only the
		// counts survive in the summary.
		out.RejectedRows = nil
	}

	payload := struct {
		table.Report
		RejectedCount int `json:"rejected_count"`
		InvalidNames  int `json:"invalid_names"`
	}{
		Report:        out,
		RejectedCount: len(report.RejectedRows),
		InvalidNames:  report.InvalidNames(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}
