// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"table-tamer/internal/formatters"
	"table-tamer/internal/table"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML cleaning report, same structure as the JSON output"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(report *table.Report, options formatters.FormatterOptions) (string, error) {
	out := *report
	if !options.Verbose {
		out.RejectedRows = nil
	}

	payload := struct {
		table.Report  `yaml:",inline"`
		RejectedCount int `yaml:"rejected_count"`
		InvalidNames  int `yaml:"invalid_names"`
	}{
		Report:        out,
		RejectedCount: len(report.RejectedRows),
		InvalidNames:  report.InvalidNames(),
	}

	data, err := yaml.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}
