// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

// allocateString maps the surviving free-text tokens onto name fields by
// position: token 0 is the first name, token 1 the middle name when three or
// more tokens remain, and everything after that joins into the last name.
// When the record split into two people, each half is allocated
// independently and a missing last name on either side is backfilled from
// the other, covering shared-surname records like "Bob and Helen Parr".
func (pc *parseContext) allocateString() {
	a := pc.tokens
	if pc.split {
		a = pc.tokensA
	}
	allocateHalf(a, &pc.out.FirstName, &pc.out.MiddleName, &pc.out.LastName)
	if !pc.split {
		return
	}
	allocateHalf(pc.tokensB, &pc.out.FirstName2, &pc.out.MiddleName2, &pc.out.LastName2)
	if pc.out.LastName == "" {
		pc.out.LastName = pc.out.LastName2
	}
	if pc.out.LastName2 == "" && pc.out.FirstName2 != "" {
		pc.out.LastName2 = pc.out.LastName
	}
}

// allocateHalf assigns one person's tokens. A half can legitimately be empty
// when every token on one side of the split was an affix or was cleansed
// away; that half simply stays unassigned.
func allocateHalf(tokens []Token, first, middle, last *string) {
	if len(tokens) == 0 {
		return
	}
	*first = tokens[0].Value
	switch {
	case len(tokens) > 2:
		if *middle == "" {
			*middle = tokens[1].Value
		}
		*last = joinTokens(tokens[2:])
	case len(tokens) == 2:
		*last = tokens[1].Value
	}
}

// allocateTokens maps pre-split fields onto names by original position:
// field 0 is the first name, the final field the last name, and field 1 the
// middle name only in a three-field record. Null fields leave their target
// unassigned. A second person found during a field-level ampersand split
// inherits the primary last name when their own was never given.
func (pc *parseContext) allocateTokens() {
	ts := pc.tokens
	if len(ts) > 0 && !ts[0].Null {
		pc.out.FirstName = ts[0].Value
	}
	if len(ts) == 3 && !ts[1].Null && pc.out.MiddleName == "" {
		pc.out.MiddleName = ts[1].Value
	}
	if len(ts) > 1 && !ts[len(ts)-1].Null {
		pc.out.LastName = ts[len(ts)-1].Value
	}
	if pc.out.FirstName2 != "" && pc.out.LastName2 == "" {
		pc.out.LastName2 = pc.out.LastName
	}
}
