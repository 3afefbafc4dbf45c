// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package names implements the person-name parsing engine: a multi-phase
// token-stream parser that turns free-text or pre-split name records into
// structured prefix/first/middle/last/suffix fields, with support for dual
// person records ("Bob and Helen Parr"), parenthetical alternate names,
// compound first names and multi-part last names.
//
// Two parser variants share the same cleansing, validation and allocation
// primitives: StringParser for single free-text strings and TokenParser for
// records already split into first/middle/last fields. All pattern matching
// is driven by an injected patterns.Set; parsers hold no mutable state and a
// single parser may be used concurrently.
package names

import (
	"table-tamer/internal/patterns"
)

// Token is one slot in a working name list. Pre-split inputs keep missing
// fields in place as null tokens so positional allocation stays meaningful.
type Token struct {
	Value string
	Null  bool
}

// Parsed is the structured result of a single name parse. An empty string
// means the field was never assigned. The *2 fields describe a second
// co-named person when an ampersand split was detected.
type Parsed struct {
	Prefix     string
	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string

	Prefix2     string
	FirstName2  string
	MiddleName2 string
	LastName2   string
	Suffix2     string

	// Alternate names pulled from parenthetical asides; string parser only.
	AltName  string
	AltName2 string

	// Valid starts true and latches false on the first failed validation
	// rule. No phase ever resets it to true.
	Valid bool
}

// HasSecondPerson reports whether the parse produced a usable second person.
func (p Parsed) HasSecondPerson() bool {
	return p.FirstName2 != "" && p.LastName2 != ""
}

// parseContext carries one record through the pipeline phases. Each record
// gets a fresh context; contexts are never shared or reused, so parsing many
// records concurrently only requires the pattern set to stay read-only.
type parseContext struct {
	ps *patterns.Set

	// tokens is the working token list, mutated by each phase.
	tokens []Token

	// tokensA/tokensB hold the two halves after an ampersand person split.
	tokensA []Token
	tokensB []Token
	split   bool

	// chain accumulates consecutive middle-initial tokens until a
	// non-initial token flushes it; clusters counts completed flushes.
	chain    []string
	clusters int

	out Parsed
}

func newParseContext(ps *patterns.Set) *parseContext {
	return &parseContext{ps: ps, out: Parsed{Valid: true}}
}

// opResult is the tagged keep/drop outcome of a per-token operation. An
// explicit drop flag avoids overloading the empty string, which can appear
// as a legitimate token value in malformed input.
type opResult struct {
	value string
	drop  bool
}

func keep(v string) opResult { return opResult{value: v} }
func drop() opResult         { return opResult{drop: true} }

// operation transforms one token given its index in the current token list.
// Operations may also record findings (affixes, initials, second-person
// fields) on the parse context.
type operation func(pc *parseContext, value string, index int) opResult

// runOperations applies each operation across the token list in order,
// revalidating before every pass and stopping as soon as the record goes
// invalid. Null tokens pass through operations untouched.
func (pc *parseContext) runOperations(ops []operation) {
	for _, op := range ops {
		pc.validate()
		if !pc.out.Valid {
			break
		}
		pc.applyToTokens(op)
	}
}

// applyToTokens runs one operation over every non-null token and removes the
// tokens the operation dropped.
func (pc *parseContext) applyToTokens(op operation) {
	next := make([]Token, 0, len(pc.tokens))
	for i, tok := range pc.tokens {
		if tok.Null {
			next = append(next, tok)
			continue
		}
		res := op(pc, tok.Value, i)
		if res.drop {
			continue
		}
		next = append(next, Token{Value: res.value})
	}
	pc.tokens = next
}
