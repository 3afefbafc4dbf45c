// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"strings"
	"unicode/utf8"
)

const digits = "0123456789"

// validate applies the pre-allocation rules: any token containing a digit
// invalidates the record, as does having fewer than two tokens. Null tokens
// count toward the length so sparse pre-split records are judged on their
// original width. Validity only ever moves from true to false.
func (pc *parseContext) validate() {
	for _, t := range pc.tokens {
		if !t.Null && strings.ContainsAny(t.Value, digits) {
			pc.out.Valid = false
		}
	}
	if len(pc.tokens) < 2 {
		pc.out.Valid = false
	}
}

// validateFinal re-runs the token rules and then checks the allocated
// fields: both first and last name must be present, and at most one of them
// may be a single character.
func (pc *parseContext) validateFinal() {
	pc.validate()
	oneChar := 0
	for _, f := range []string{pc.out.FirstName, pc.out.LastName} {
		if f == "" {
			pc.out.Valid = false
		} else if utf8.RuneCountInString(f) == 1 {
			oneChar++
		}
	}
	if oneChar > 1 {
		pc.out.Valid = false
	}
}
