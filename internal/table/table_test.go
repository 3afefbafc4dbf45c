// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-tamer/internal/patterns"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Customer Name", "customer_name"},
		{"  Billing   Address  ", "billing_address"},
		{"Q1 (Revenue)", "q1_revenue"},
		{"already_standard", "already_standard"},
		{"", "unnamed"},
		{"!!!", "unnamed"},
		{"Name-2", "name2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLabel(tt.in), tt.in)
	}
}

func TestStandardizeHeaderDedupes(t *testing.T) {
	tbl := New([]string{"Name", "name", "NAME", "Address"}, nil)
	stats := tbl.StandardizeHeader()
	assert.Equal(t, []string{"name", "name_1", "name_2", "address"}, tbl.Columns)
	assert.Equal(t, 4, stats.RowsAffected)
}

func TestDetectHeader(t *testing.T) {
	tbl := New(nil, [][]string{
		{"Quarterly Export", "", ""},
		{"", "", ""},
		{"Name", "City", "Amount"},
		{"Bob Parr", "Metroville", "12.50"},
	})
	stats, found := tbl.DetectHeader()
	require.True(t, found)
	assert.Equal(t, []string{"Name", "City", "Amount"}, tbl.Columns)
	assert.Len(t, tbl.Rows, 1)
	assert.Equal(t, 3, stats.RowsAffected)
	assert.Equal(t, 2, stats.Details["preamble_rows"])
}

func TestDetectHeaderNotFound(t *testing.T) {
	tbl := New(nil, [][]string{
		{"1", "2"},
		{"3", ""},
	})
	_, found := tbl.DetectHeader()
	assert.False(t, found)
	assert.Len(t, tbl.Rows, 2)
}

func TestNormalizePadsAndTruncates(t *testing.T) {
	tbl := New([]string{"a", "b", "c"}, [][]string{
		{"1"},
		{"1", "2", "3", "4"},
	})
	tbl.Normalize()
	assert.Equal(t, []string{"1", "", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, tbl.Rows[1])
}

func TestCompleteClusters(t *testing.T) {
	tbl := New([]string{"region", "name"}, [][]string{
		{"East", "Bob"},
		{"", "Helen"},
		{"", "Violet"},
		{"West", "Dash"},
		{"", "Jack"},
	})
	stats, err := tbl.CompleteClusters([]string{"region"})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Details["region"])
	assert.Equal(t, "East", tbl.Rows[2][0])
	assert.Equal(t, "West", tbl.Rows[4][0])

	_, err = tbl.CompleteClusters([]string{"missing"})
	assert.Error(t, err)
}

func TestCompleteClustersLeadingGap(t *testing.T) {
	tbl := New([]string{"region"}, [][]string{
		{""},
		{"East"},
		{""},
	})
	stats, err := tbl.CompleteClusters([]string{"region"})
	require.NoError(t, err)
	// Nothing above the first value to fill from.
	assert.Equal(t, "", tbl.Rows[0][0])
	assert.Equal(t, "East", tbl.Rows[2][0])
	assert.Equal(t, 1, stats.Details["region"])
}

func TestRejectIncompleteRows(t *testing.T) {
	tbl := New([]string{"name", "amount"}, [][]string{
		{"Bob Parr", "10"},
		{"", "20"},
		{"Helen Parr", ""},
		{"Dash Parr", "5"},
	})
	rejected, err := tbl.RejectIncompleteRows([]string{"name", "amount"})
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)
	require.Len(t, rejected, 2)
	assert.Equal(t, 1, rejected[0].Index)
	assert.Equal(t, 2, rejected[1].Index)
	assert.Equal(t, []string{"", "20"}, rejected[0].Cells)
}

func TestParseNameColumn(t *testing.T) {
	ps, err := patterns.Default()
	require.NoError(t, err)

	tbl := New([]string{"customer"}, [][]string{
		{"Dr. Bob D. Parr"},
		{"mary ann williamson"},
		{"The Anderson Family"},
	})
	stats, err := tbl.ParseNameColumn(ps, "customer", 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Details["parsed"])
	assert.Equal(t, 1, stats.Details["invalid_names"])
	assert.Contains(t, tbl.Columns, "fname")
	assert.Contains(t, tbl.Columns, "valid")

	fname, err := tbl.ColumnIndex("fname")
	require.NoError(t, err)
	lname, err := tbl.ColumnIndex("lname")
	require.NoError(t, err)
	prefix, err := tbl.ColumnIndex("prefix")
	require.NoError(t, err)
	valid, err := tbl.ColumnIndex("valid")
	require.NoError(t, err)

	assert.Equal(t, "Dr.", tbl.Rows[0][prefix])
	assert.Equal(t, "Bob", tbl.Rows[0][fname])
	assert.Equal(t, "Parr", tbl.Rows[0][lname])
	assert.Equal(t, "true", tbl.Rows[0][valid])

	assert.Equal(t, "Mary Ann", tbl.Rows[1][fname])
	assert.Equal(t, "Williamson", tbl.Rows[1][lname])

	assert.Equal(t, "false", tbl.Rows[2][valid])

	_, err = tbl.ParseNameColumn(ps, "no_such_column", 0, 1)
	assert.Error(t, err)
}

func TestParseNameColumnNumericSuffix(t *testing.T) {
	ps, err := patterns.Default()
	require.NoError(t, err)

	tbl := New([]string{"owner", "agent"}, [][]string{
		{"Bob Parr", "Rick Dicker"},
	})
	_, err = tbl.ParseNameColumn(ps, "owner", 1, 1)
	require.NoError(t, err)
	_, err = tbl.ParseNameColumn(ps, "agent", 2, 1)
	require.NoError(t, err)

	assert.Contains(t, tbl.Columns, "fname_1")
	assert.Contains(t, tbl.Columns, "fname_2_2")

	fname2, err := tbl.ColumnIndex("fname_2")
	require.NoError(t, err)
	assert.Equal(t, "Rick", tbl.Rows[0][fname2])
}

func TestParseTokenizedNames(t *testing.T) {
	ps, err := patterns.Default()
	require.NoError(t, err)

	tbl := New([]string{"first", "middle", "last"}, [][]string{
		{"Bob & Helen", "", "Parr"},
		{"Mary Jo R.", "", "Truman"},
		{"N", "", "R"},
	})
	stats, err := tbl.ParseTokenizedNames(ps, []string{"first", "middle", "last"}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Details["invalid_names"])

	fname, err := tbl.ColumnIndex("fname")
	require.NoError(t, err)
	fname2, err := tbl.ColumnIndex("fname_2")
	require.NoError(t, err)
	lname2, err := tbl.ColumnIndex("lname_2")
	require.NoError(t, err)
	mname, err := tbl.ColumnIndex("mname")
	require.NoError(t, err)

	assert.Equal(t, "Bob", tbl.Rows[0][fname])
	assert.Equal(t, "Helen", tbl.Rows[0][fname2])
	assert.Equal(t, "Parr", tbl.Rows[0][lname2])
	assert.Equal(t, "R.", tbl.Rows[1][mname])
}

func TestReportInvalidNames(t *testing.T) {
	r := &Report{}
	r.Record(OperationStats{Name: "parse_name_column", Details: map[string]int{"invalid_names": 2}})
	r.Record(OperationStats{Name: "parse_tokenized_names", Details: map[string]int{"invalid_names": 1}})
	r.Record(OperationStats{Name: "standardize_header"})
	assert.Equal(t, 3, r.InvalidNames())
}
