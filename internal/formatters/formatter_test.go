// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goyaml "gopkg.in/yaml.v3"

	"table-tamer/internal/formatters"
	_ "table-tamer/internal/formatters/csv"
	_ "table-tamer/internal/formatters/json"
	_ "table-tamer/internal/formatters/text"
	_ "table-tamer/internal/formatters/yaml"
	"table-tamer/internal/table"
)

func sampleReport() *table.Report {
	return &table.Report{
		Source:  "input.csv",
		RowsIn:  10,
		RowsOut: 8,
		Operations: []table.OperationStats{
			{Name: "standardize_header", RowsAffected: 3},
			{Name: "parse_name_column", RowsAffected: 8, Details: map[string]int{"invalid_names": 2, "parsed": 8}},
		},
		RejectedRows: []table.RejectedRow{
			{Index: 4, Cells: []string{"", "20"}},
			{Index: 7, Cells: []string{"x", ""}},
		},
	}
}

func TestRegistryHasAllFormats(t *testing.T) {
	for _, name := range []string{"text", "json", "csv", "yaml"} {
		f, ok := formatters.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, f.Name())
		assert.NotEmpty(t, f.Description())
		assert.True(t, strings.HasPrefix(f.FileExtension(), "."))
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := formatters.Export("xml", sampleReport(), formatters.FormatterOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestTextFormat(t *testing.T) {
	out, err := formatters.Export("text", sampleReport(), formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, out, "input.csv")
	assert.Contains(t, out, "Rejected rows: 2")
	assert.Contains(t, out, "Invalid names: 2")
	assert.Contains(t, out, "parse_name_column")
	assert.NotContains(t, out, "#4:")

	out, err = formatters.Export("text", sampleReport(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	require.NoError(t, err)
	assert.Contains(t, out, "#4:")
}

func TestJSONFormat(t *testing.T) {
	out, err := formatters.Export("json", sampleReport(), formatters.FormatterOptions{})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "input.csv", decoded["source"])
	assert.Equal(t, float64(2), decoded["rejected_count"])
	assert.Equal(t, float64(2), decoded["invalid_names"])
	// Row contents only appear with --verbose.
	assert.NotContains(t, decoded, "rejected_rows")
}

func TestYAMLFormat(t *testing.T) {
	out, err := formatters.Export("yaml", sampleReport(), formatters.FormatterOptions{Verbose: true})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, goyaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "input.csv", decoded["source"])
	assert.Equal(t, 2, decoded["rejected_count"])
	assert.Contains(t, decoded, "rejected_rows")
}

func TestCSVFormat(t *testing.T) {
	out, err := formatters.Export("csv", sampleReport(), formatters.FormatterOptions{})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "source,operation,rows_affected,details", lines[0])
	assert.Contains(t, lines[2], "invalid_names=2;parsed=8")
}
