// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"strconv"
	"strings"
	"unicode"
)

// StandardizeHeader rewrites every column label into snake_case: lowercased,
// punctuation stripped, whitespace runs collapsed to a single underscore.
// Blank labels become "unnamed" and duplicate labels get a numeric suffix so
// lookups by label stay unambiguous. Returns the number of labels changed.
func (t *Table) StandardizeHeader() OperationStats {
	stats := OperationStats{Name: "standardize_header", Details: map[string]int{}}
	seen := map[string]int{}

	for i, label := range t.Columns {
		std := NormalizeLabel(label)
		if n, dup := seen[std]; dup {
			seen[std] = n + 1
			std = std + "_" + strconv.Itoa(n)
		} else {
			seen[std] = 1
		}
		if std != label {
			stats.RowsAffected++
		}
		t.Columns[i] = std
	}
	return stats
}

// NormalizeLabel converts one label to its standardized form.
func NormalizeLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '_' || unicode.IsSpace(r):
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}

// DetectHeader finds the first row in which every cell is a non-empty,
// non-numeric string and promotes it to the column labels. Rows above it are
// title or junk preamble and are removed along with the header row itself.
// Reports whether a header row was found and how many rows were consumed.
func (t *Table) DetectHeader() (OperationStats, bool) {
	stats := OperationStats{Name: "detect_header", Details: map[string]int{}}

	for i, row := range t.Rows {
		if !headerLike(row) {
			continue
		}
		t.Columns = append([]string(nil), row...)
		t.Rows = t.Rows[i+1:]
		stats.RowsAffected = i + 1
		stats.Details["preamble_rows"] = i
		return stats, true
	}
	return stats, false
}

// headerLike reports whether a row could be a header: no empty cells and no
// cell that parses as a number.
func headerLike(row []string) bool {
	if len(row) == 0 {
		return false
	}
	for _, cell := range row {
		if cell == "" {
			return false
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			return false
		}
	}
	return true
}
