// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"regexp"
	"strings"

	"table-tamer/internal/patterns"
)

// StringParser parses free-text name strings such as "Mr. Bob D. Parr Jr."
// or "Bob and Helen Parr (The Incredibles)".
type StringParser struct {
	ps *patterns.Set
}

// NewStringParser returns a parser backed by the given pattern set. The
// parser is stateless and safe for concurrent use.
func NewStringParser(ps *patterns.Set) *StringParser {
	return &StringParser{ps: ps}
}

// Parse runs the full string pipeline: alternate-name extraction,
// tokenization, the per-token cleanse and assignment operations, ampersand
// person splitting, compound and particle merging, positional allocation and
// final validation.
func (p *StringParser) Parse(raw string) Parsed {
	pc := newParseContext(p.ps)
	rest, alt1, alt2 := extractAltNames(raw)
	pc.tokens = tokenizeString(rest)
	if alt1 != "" {
		pc.out.AltName = normalizeCase(p.ps, alt1)
	}
	if alt2 != "" {
		pc.out.AltName2 = normalizeCase(p.ps, alt2)
	}

	pc.runOperations([]operation{
		cleanseInvalidChars,
		cleanseInvalidWord,
		manageCases,
		assignMiddleInitials,
		assignAffix,
	})

	if pc.out.Valid {
		pc.splitOnAmpersand()
		if pc.split {
			pc.tokensA = mergeNameTokens(p.ps, pc.tokensA)
			pc.tokensB = mergeNameTokens(p.ps, pc.tokensB)
		} else {
			pc.tokens = mergeNameTokens(p.ps, pc.tokens)
		}
	}

	pc.allocateString()
	pc.validateFinal()
	return pc.out
}

// parenGroupRE matches a parenthesized aside along with the surrounding
// spaces that would otherwise leave doubled whitespace behind.
var parenGroupRE = regexp.MustCompile(` *\([^)]+\) *`)

// extractAltNames pulls parenthesized asides out of a raw name string. The
// first two become alternate names; any further asides are removed and
// discarded. Returns the remaining string and the two aside contents.
func extractAltNames(s string) (rest, alt1, alt2 string) {
	for {
		loc := parenGroupRE.FindStringIndex(s)
		if loc == nil {
			break
		}
		content := strings.Trim(s[loc[0]:loc[1]], " ()")
		if content != "" {
			if alt1 == "" {
				alt1 = content
			} else if alt2 == "" {
				alt2 = content
			}
		}
		s = strings.TrimSpace(strings.TrimSpace(s[:loc[0]]) + " " + strings.TrimSpace(s[loc[1]:]))
	}
	return s, alt1, alt2
}

// assignMiddleInitials collects runs of initial tokens ("D.", "G") after the
// first position into middle-name clusters. A run is flushed into the middle
// name when a regular token follows it; the first cluster becomes the
// primary middle name and the second the co-person's. A run still open when
// the tokens end is discarded, since a trailing initial is more likely a
// truncated surname than a middle name.
func assignMiddleInitials(pc *parseContext, s string, index int) opResult {
	if index == 0 || !containsLetter(s) {
		return keep(s)
	}
	if isInitial(s) {
		v := s
		if len(v) == 1 {
			v += "."
		}
		pc.chain = append(pc.chain, v)
		return drop()
	}
	if len(pc.chain) > 0 {
		pc.flushInitialChain()
	}
	return keep(s)
}

func (pc *parseContext) flushInitialChain() {
	joined := strings.Join(pc.chain, "")
	switch pc.clusters {
	case 0:
		pc.out.MiddleName = joined
	case 1:
		pc.out.MiddleName2 = joined
	}
	pc.clusters++
	pc.chain = nil
}

// assignAffix routes honorific prefixes and generational or professional
// suffixes out of the token stream and into the affix fields. The first
// match of each kind goes to the primary person, the second to the
// co-person, and further matches are discarded. A token matching an affix
// table is always removed even when every slot is already taken.
func assignAffix(pc *parseContext, s string, _ int) opResult {
	matched := false
	if pc.ps.MatchesPrefix(s) {
		if pc.out.Prefix == "" {
			pc.out.Prefix = s
		} else if pc.out.Prefix2 == "" {
			pc.out.Prefix2 = s
		}
		matched = true
	}
	if pc.ps.MatchesSuffix(s) {
		if pc.out.Suffix == "" {
			pc.out.Suffix = s
		} else if pc.out.Suffix2 == "" {
			pc.out.Suffix2 = s
		}
		matched = true
	}
	if matched {
		return drop()
	}
	return keep(s)
}

// splitOnAmpersand looks for the first ampersand token past the leading
// position and, when found, splits the record into two per-person token
// lists around it. Ampersand tokens themselves are removed from every list.
// A leading ampersand cannot introduce a second person, so it is stripped
// without splitting.
func (pc *parseContext) splitOnAmpersand() {
	splitAt := -1
	for i, t := range pc.tokens {
		if i > 0 && !t.Null && pc.ps.IsAmpersand(t.Value) {
			splitAt = i
			break
		}
	}
	if splitAt > 0 {
		pc.tokensA = removeAmpersands(pc.ps, pc.tokens[:splitAt])
		pc.tokensB = removeAmpersands(pc.ps, pc.tokens[splitAt+1:])
		pc.split = true
	}
	pc.tokens = removeAmpersands(pc.ps, pc.tokens)
}

// removeAmpersands copies the given tokens minus any ampersands. Copying
// matters: the split halves alias the main token slice and must not share
// its backing array once the lists diverge.
func removeAmpersands(ps *patterns.Set, tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.Null && ps.IsAmpersand(t.Value) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// mergeNameTokens applies the two merge passes to one person's tokens:
// compound first names first, then last-name particle chains.
func mergeNameTokens(ps *patterns.Set, tokens []Token) []Token {
	return mergeParticleChains(ps, mergeCompoundFirstNames(ps, tokens))
}

// mergeCompoundFirstNames joins adjacent token pairs that form a known
// compound first name, so "Mary Ann Williamson" allocates "Mary Ann" as the
// first name rather than demoting "Ann" to a middle name.
func mergeCompoundFirstNames(ps *patterns.Set, tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) && !tokens[i].Null && !tokens[i+1].Null {
			combo := tokens[i].Value + " " + tokens[i+1].Value
			if ps.IsCompoundFirstName(combo) {
				out = append(out, Token{Value: combo})
				i++
				continue
			}
		}
		out = append(out, tokens[i])
	}
	return out
}

// mergeParticleChains joins last-name particle chains into single tokens:
// starting at a particle, the chain absorbs following tokens through the
// first non-particle, so "maria de las casas" yields the last name
// "De Las Casas". A particle with nothing after it is left alone.
func mergeParticleChains(ps *patterns.Set, tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Null || !ps.IsParticle(t.Value) || i+1 >= len(tokens) {
			out = append(out, t)
			continue
		}
		chain := []string{t.Value}
		j := i + 1
		for ; j < len(tokens); j++ {
			chain = append(chain, tokens[j].Value)
			if !ps.IsParticle(tokens[j].Value) {
				j++
				break
			}
		}
		out = append(out, Token{Value: strings.Join(chain, " ")})
		i = j - 1
	}
	return out
}
