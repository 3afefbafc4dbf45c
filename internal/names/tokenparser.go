// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"strings"

	"table-tamer/internal/patterns"
)

// TokenParser parses records whose name already arrives split into fields,
// typically first/middle/last columns. Field positions carry meaning, so
// missing fields are preserved as nulls rather than collapsed away.
type TokenParser struct {
	ps *patterns.Set
}

// NewTokenParser returns a parser backed by the given pattern set. The
// parser is stateless and safe for concurrent use.
func NewTokenParser(ps *patterns.Set) *TokenParser {
	return &TokenParser{ps: ps}
}

// Parse runs the pre-split pipeline over the given fields. Empty or
// whitespace-only fields are treated as missing. Unlike the string pipeline
// there is no person split of the record itself; instead each field may
// carry an inline ampersand ("Bob & Helen") that routes its tail to the
// matching second-person field.
func (p *TokenParser) Parse(fields []string) Parsed {
	pc := newParseContext(p.ps)
	pc.tokens = tokenizeFields(fields)

	pc.runOperations([]operation{
		cleanseInvalidChars,
		cleanseInvalidWord,
		manageCases,
		assignTrailingMiddleInitial,
		splitFieldOnAmpersand,
	})

	pc.allocateTokens()
	pc.validateFinal()
	return pc.out
}

// assignTrailingMiddleInitial peels a trailing initial off the first field,
// so a record like ["Mary Jo R.", "Truman"] yields the middle name "R."
// instead of polluting the first name. Only the leading field is inspected;
// an initial elsewhere is positional data the allocator handles.
func assignTrailingMiddleInitial(pc *parseContext, s string, index int) opResult {
	if index != 0 {
		return keep(s)
	}
	parts := strings.Split(s, " ")
	if len(parts) < 2 {
		return keep(s)
	}
	last := parts[len(parts)-1]
	if isInitial(last) {
		pc.out.MiddleName = last
		parts = parts[:len(parts)-1]
	}
	joined := strings.Join(parts, " ")
	if joined == "" {
		return drop()
	}
	return keep(joined)
}

// splitFieldOnAmpersand splits a single field on its first inline ampersand
// word. The words before it stay in the field; the words after it go to the
// second person's counterpart of that field, chosen by field position
// (first, middle, otherwise last).
func splitFieldOnAmpersand(pc *parseContext, s string, index int) opResult {
	parts := strings.Split(s, " ")
	ampAt := -1
	for i, p := range parts {
		if pc.ps.IsAmpersand(p) {
			ampAt = i
			break
		}
	}
	if ampAt < 0 {
		return keep(s)
	}
	second := strings.Join(parts[ampAt+1:], " ")
	if second != "" {
		switch index {
		case 0:
			pc.out.FirstName2 = second
		case 1:
			pc.out.MiddleName2 = second
		default:
			pc.out.LastName2 = second
		}
	}
	remainder := strings.Join(parts[:ampAt], " ")
	if remainder == "" {
		return drop()
	}
	return keep(remainder)
}
