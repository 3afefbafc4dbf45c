// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"strings"

	"table-tamer/internal/patterns"
)

// cleanseInvalidChars strips punctuation that carries no name information,
// keeping only the characters the pattern set allows (letters, digits,
// ampersands, apostrophes, hyphens and periods). A token reduced to nothing
// is dropped.
func cleanseInvalidChars(pc *parseContext, s string, _ int) opResult {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if pc.ps.IsInvalidChar(r) {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return drop()
	}
	return keep(b.String())
}

// cleanseInvalidWord removes words that signal a non-person record, such as
// "family", "trust" or "llc". Multi-word tokens lose only the offending
// words; a token left with no words is dropped.
func cleanseInvalidWord(pc *parseContext, s string, _ int) opResult {
	parts := strings.Split(s, " ")
	kept := parts[:0]
	for _, p := range parts {
		if pc.ps.IsInvalidWord(p) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return drop()
	}
	return keep(strings.Join(kept, " "))
}

// manageCases normalizes a token to name casing. The full transform is
// idempotent, so tokens that pass through it more than once are unchanged.
func manageCases(pc *parseContext, s string, _ int) opResult {
	s = normalizeCase(pc.ps, s)
	if s == "" {
		return drop()
	}
	return keep(s)
}

// normalizeCase capitalizes each space or hyphen separated word and restores
// camelcase humps after configured particles, turning "mcgucket" into
// "McGucket" and "o'brien" into "O'Brien".
func normalizeCase(ps *patterns.Set, s string) string {
	for _, particle := range ps.CamelcaseParticles {
		s = raiseCamelcaseHump(s, particle)
	}
	for _, sep := range []string{" ", "-"} {
		if strings.Contains(s, sep) {
			parts := strings.Split(s, sep)
			for i, p := range parts {
				parts[i] = standardizeCaps(p)
			}
			s = strings.Join(parts, sep)
		}
	}
	return standardizeCaps(s)
}

// raiseCamelcaseHump uppercases the lowercase letter that follows the given
// particle, if any. Matching is case sensitive so already-cased tokens are
// left alone.
func raiseCamelcaseHump(s, particle string) string {
	idx := strings.Index(s, particle)
	if idx < 0 {
		return s
	}
	humpAt := idx + len(particle)
	if humpAt >= len(s) || s[humpAt] < 'a' || s[humpAt] > 'z' {
		return s
	}
	return s[:humpAt] + string(s[humpAt]-'a'+'A') + s[humpAt+1:]
}
