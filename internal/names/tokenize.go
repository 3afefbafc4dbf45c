// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// standardizeHyphen tightens spaced hyphens so "smith - jones" tokenizes as
// the single token "smith-jones".
func standardizeHyphen(s string) string {
	s = strings.ReplaceAll(s, "- ", "-")
	return strings.ReplaceAll(s, " -", "-")
}

// tokenizeString lowercases a free-text name and splits it on single spaces.
// Runs of extra whitespace surface as empty tokens here and are swept out by
// the invalid-character cleanse.
func tokenizeString(raw string) []Token {
	raw = strings.ToLower(standardizeHyphen(raw))
	parts := strings.Split(raw, " ")
	tokens := make([]Token, len(parts))
	for i, p := range parts {
		tokens[i] = Token{Value: p}
	}
	return tokens
}

// tokenizeFields converts pre-split name fields into tokens, lowercasing
// values and preserving missing fields as null tokens so each surviving
// value keeps its positional meaning.
func tokenizeFields(fields []string) []Token {
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			tokens[i] = Token{Null: true}
			continue
		}
		tokens[i] = Token{Value: strings.ToLower(standardizeHyphen(f))}
	}
	return tokens
}

func containsLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// isInitial reports whether a token looks like a name initial: a single
// letter, or a single letter followed by a period.
func isInitial(s string) bool {
	switch len(s) {
	case 1:
		return true
	case 2:
		return s[1] == '.'
	default:
		return false
	}
}

func joinTokens(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Null {
			continue
		}
		parts = append(parts, t.Value)
	}
	return strings.Join(parts, " ")
}

// standardizeCaps uppercases the first letter of a word. Words shorter than
// two characters are uppercased entirely, so bare initials come out as "G"
// rather than "g".
func standardizeCaps(s string) string {
	if utf8.RuneCountInString(s) < 2 {
		return strings.ToUpper(s)
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
