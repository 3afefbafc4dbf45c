// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-tamer/internal/patterns"
)

func newStringParser(t *testing.T) *StringParser {
	t.Helper()
	ps, err := patterns.Default()
	require.NoError(t, err)
	return NewStringParser(ps)
}

func newTokenParser(t *testing.T) *TokenParser {
	t.Helper()
	ps, err := patterns.Default()
	require.NoError(t, err)
	return NewTokenParser(ps)
}

func TestStringParser_SinglePerson(t *testing.T) {
	p := newStringParser(t)

	tests := []struct {
		in   string
		want Parsed
	}{
		{
			in:   "William Cyrus Jehosephat",
			want: Parsed{FirstName: "William", MiddleName: "Cyrus", LastName: "Jehosephat", Valid: true},
		},
		{
			in:   "Dr. Bob D. Parr",
			want: Parsed{Prefix: "Dr.", FirstName: "Bob", MiddleName: "D.", LastName: "Parr", Valid: true},
		},
		{
			in:   "mary ann williamson",
			want: Parsed{FirstName: "Mary Ann", LastName: "Williamson", Valid: true},
		},
		{
			in:   "bethany van houten",
			want: Parsed{FirstName: "Bethany", LastName: "Van Houten", Valid: true},
		},
		{
			in:   "maria de las casas",
			want: Parsed{FirstName: "Maria", LastName: "De Las Casas", Valid: true},
		},
		{
			in:   "Kay O. G. Williams",
			want: Parsed{FirstName: "Kay", MiddleName: "O.G.", LastName: "Williams", Valid: true},
		},
		{
			in:   "Mr. Alex J. White, III",
			want: Parsed{Prefix: "Mr.", FirstName: "Alex", MiddleName: "J.", LastName: "White", Suffix: "Iii", Valid: true},
		},
		{
			in:   "E. B. White",
			want: Parsed{FirstName: "E.", MiddleName: "B.", LastName: "White", Valid: true},
		},
		{
			in:   "sarah smith - jones",
			want: Parsed{FirstName: "Sarah", LastName: "Smith-Jones", Valid: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.in))
		})
	}
}

func TestStringParser_TwoPeople(t *testing.T) {
	p := newStringParser(t)

	got := p.Parse("Bob and Helen Parr")
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, "Parr", got.LastName)
	assert.Equal(t, "Helen", got.FirstName2)
	assert.Equal(t, "Parr", got.LastName2)
	assert.True(t, got.Valid)
	assert.True(t, got.HasSecondPerson())

	got = p.Parse("Mr. and Mrs. Bob Parr Jr.")
	assert.Equal(t, Parsed{
		Prefix: "Mr.", Prefix2: "Mrs.", Suffix: "Jr.",
		FirstName: "Bob", LastName: "Parr", Valid: true,
	}, got)

	got = p.Parse("Barbara O Hammond and Nicholas L. Krupke")
	assert.Equal(t, "Barbara", got.FirstName)
	assert.Equal(t, "O.", got.MiddleName)
	assert.Equal(t, "Hammond", got.LastName)
	assert.Equal(t, "Nicholas", got.FirstName2)
	assert.Equal(t, "L.", got.MiddleName2)
	assert.Equal(t, "Krupke", got.LastName2)
	assert.True(t, got.Valid)

	// Particle merge applies to each half independently.
	got = p.Parse("Samantha Jones & kelly van houten")
	assert.Equal(t, "Jones", got.LastName)
	assert.Equal(t, "Van Houten", got.LastName2)

	// Only the first splitting ampersand introduces a second person; a half
	// left with nothing after affix removal fails final validation instead
	// of panicking.
	got = p.Parse("Mr. and Mrs. and Dr. Bob Parr")
	assert.False(t, got.Valid)
}

func TestStringParser_AltNames(t *testing.T) {
	p := newStringParser(t)

	got := p.Parse("Bob Parr (Mr. Incredible)")
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, "Parr", got.LastName)
	assert.Equal(t, "Mr. Incredible", got.AltName)
	assert.True(t, got.Valid)

	got = p.Parse("Bob and Helen Parr (The Incredibles) (supers)")
	assert.Equal(t, "The Incredibles", got.AltName)
	assert.Equal(t, "Supers", got.AltName2)
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, "Helen", got.FirstName2)

	// An unterminated parenthetical is not an aside.
	got = p.Parse("Bob (Smith")
	assert.Empty(t, got.AltName)
}

func TestStringParser_Invalid(t *testing.T) {
	p := newStringParser(t)

	for _, in := range []string{
		"123 come with me",
		"Bob",
		"The Anderson Family",
		"Current Resident",
		"",
	} {
		t.Run(in, func(t *testing.T) {
			assert.False(t, p.Parse(in).Valid)
		})
	}
}

func TestStringParser_Casing(t *testing.T) {
	p := newStringParser(t)

	tests := []struct {
		in, first, last string
	}{
		{"fiddleford mcgucket", "Fiddleford", "McGucket"},
		{"shannon o'brien", "Shannon", "O'Brien"},
		{"sarah aloysius-heitkamp", "Sarah", "Aloysius-Heitkamp"},
		{"GEORGE CARLIN", "George", "Carlin"},
	}
	for _, tt := range tests {
		got := p.Parse(tt.in)
		assert.Equal(t, tt.first, got.FirstName, tt.in)
		assert.Equal(t, tt.last, got.LastName, tt.in)
	}
}

func TestNormalizeCaseIdempotent(t *testing.T) {
	ps, err := patterns.Default()
	require.NoError(t, err)

	for _, in := range []string{"mcgucket", "o'brien", "smith-jones", "mary jo", "G"} {
		once := normalizeCase(ps, in)
		assert.Equal(t, once, normalizeCase(ps, once), in)
	}
}

func TestTokenParser(t *testing.T) {
	p := newTokenParser(t)

	tests := []struct {
		name   string
		fields []string
		want   Parsed
	}{
		{
			name:   "first and last",
			fields: []string{"George", "Carlin"},
			want:   Parsed{FirstName: "George", LastName: "Carlin", Valid: true},
		},
		{
			name:   "three fields",
			fields: []string{"George", "Denis", "Carlin"},
			want:   Parsed{FirstName: "George", MiddleName: "Denis", LastName: "Carlin", Valid: true},
		},
		{
			name:   "trailing initial in first field",
			fields: []string{"Mary Jo R.", "Truman"},
			want:   Parsed{FirstName: "Mary Jo", MiddleName: "R.", LastName: "Truman", Valid: true},
		},
		{
			name:   "null middle field",
			fields: []string{"Heather", "", "Vandemar"},
			want:   Parsed{FirstName: "Heather", LastName: "Vandemar", Valid: true},
		},
		{
			name:   "ampersand in first field",
			fields: []string{"Bob & Helen", "Parr"},
			want:   Parsed{FirstName: "Bob", FirstName2: "Helen", LastName: "Parr", LastName2: "Parr", Valid: true},
		},
		{
			name:   "ampersand with null middle",
			fields: []string{"Heather and Rob", "", "Vandemar"},
			want:   Parsed{FirstName: "Heather", FirstName2: "Rob", LastName: "Vandemar", LastName2: "Vandemar", Valid: true},
		},
		{
			name:   "single initial first name",
			fields: []string{"S", "Ramachandran"},
			want:   Parsed{FirstName: "S", LastName: "Ramachandran", Valid: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.fields))
		})
	}
}

func TestTokenParser_Invalid(t *testing.T) {
	p := newTokenParser(t)

	// Two one-character required fields.
	assert.False(t, p.Parse([]string{"N", "", "R"}).Valid)
	// Digits anywhere invalidate the record.
	assert.False(t, p.Parse([]string{"George", "C4rlin"}).Valid)
	// A single field is not a person.
	assert.False(t, p.Parse([]string{"George"}).Valid)
	assert.False(t, p.Parse(nil).Valid)
}

func TestValidityNeverRecovers(t *testing.T) {
	p := newStringParser(t)

	// A digit-bearing token keeps the record invalid even though later
	// phases would otherwise produce a clean allocation.
	got := p.Parse("Bob 2nd Parr")
	assert.False(t, got.Valid)
}
