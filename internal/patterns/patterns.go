// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Embedded default pattern tables
//
//go:embed data/*.yml
var defaultsFS embed.FS

// Set is the read-only collection of lookup tables that drives all heuristic
// name matching. It is loaded once before parsing begins and shared across
// workers; nothing mutates it after construction, so concurrent reads need no
// locking.
type Set struct {
	CompoundFirstNames []string
	LastNameParticles  []string
	Ampersands         []string
	CamelcaseParticles []string
	Prefixes           []string
	Suffixes           []string
	InvalidWords       []string
	InvalidChars       []rune

	compoundFirstNames map[string]bool
	lastNameParticles  map[string]bool
	ampersands         map[string]bool
	invalidWords       map[string]bool
	invalidChars       map[rune]bool
}

// rawTables mirrors the keys used by the YAML pattern files.
type rawTables struct {
	CompoundFirstNames []string `yaml:"compound_fnames"`
	LastNameParticles  []string `yaml:"lname_particles"`
	Ampersands         []string `yaml:"ampersands"`
	CamelcaseParticles []string `yaml:"camelcase_particles"`
	Prefixes           []string `yaml:"prefixes"`
	Suffixes           []string `yaml:"suffixes"`
	InvalidWords       []string `yaml:"invalid_words"`
}

// merge concatenates the other tables onto r. Lists are unioned, never
// replaced; deduplication is the supplier's responsibility.
func (r *rawTables) merge(other rawTables) {
	r.CompoundFirstNames = append(r.CompoundFirstNames, other.CompoundFirstNames...)
	r.LastNameParticles = append(r.LastNameParticles, other.LastNameParticles...)
	r.Ampersands = append(r.Ampersands, other.Ampersands...)
	r.CamelcaseParticles = append(r.CamelcaseParticles, other.CamelcaseParticles...)
	r.Prefixes = append(r.Prefixes, other.Prefixes...)
	r.Suffixes = append(r.Suffixes, other.Suffixes...)
	r.InvalidWords = append(r.InvalidWords, other.InvalidWords...)
}

var (
	defaultSet  *Set
	defaultErr  error
	defaultOnce sync.Once
)

// Default returns the Set built from the embedded pattern files.
// Thread-safe lazy loading; the embedded tables are parsed at most once.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = loadEmbedded()
	})
	return defaultSet, defaultErr
}

// Load builds a Set from the embedded defaults plus an optional custom pattern
// file. A malformed custom file is a hard error: a broken pattern table would
// corrupt every subsequent parse, so it must fail before any record is parsed.
func Load(customFile string) (*Set, error) {
	raw, err := loadEmbeddedRaw()
	if err != nil {
		return nil, err
	}
	if customFile != "" {
		custom, err := loadCustomFile(customFile)
		if err != nil {
			return nil, err
		}
		raw.merge(custom)
	}
	return newSet(raw), nil
}

func loadEmbedded() (*Set, error) {
	raw, err := loadEmbeddedRaw()
	if err != nil {
		return nil, err
	}
	return newSet(raw), nil
}

func loadEmbeddedRaw() (rawTables, error) {
	var raw rawTables
	entries, err := defaultsFS.ReadDir("data")
	if err != nil {
		return raw, fmt.Errorf("failed to read embedded pattern files: %w", err)
	}
	for _, entry := range entries {
		data, err := defaultsFS.ReadFile("data/" + entry.Name())
		if err != nil {
			return raw, fmt.Errorf("failed to read embedded pattern file %s: %w", entry.Name(), err)
		}
		var tables rawTables
		if err := yaml.Unmarshal(data, &tables); err != nil {
			return raw, fmt.Errorf("failed to parse embedded pattern file %s: %w", entry.Name(), err)
		}
		raw.merge(tables)
	}
	return raw, nil
}

// loadCustomFile loads a user-supplied pattern file. Only .yml/.yaml files with
// exclusively list-valued entries are accepted.
func loadCustomFile(path string) (rawTables, error) {
	var raw rawTables
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yml" && ext != ".yaml" {
		return raw, fmt.Errorf("custom pattern file %s must be a .yml or .yaml file", path)
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return raw, fmt.Errorf("error reading custom pattern file: %w", err)
	}

	// Every top-level value must be a list. Checked before unmarshaling into
	// rawTables so scalar values produce a clear error instead of a partial set.
	var shape map[string]interface{}
	if err := yaml.Unmarshal(data, &shape); err != nil {
		return raw, fmt.Errorf("error parsing custom pattern file %s: %w", path, err)
	}
	for key, value := range shape {
		if _, ok := value.([]interface{}); !ok {
			return raw, fmt.Errorf("custom pattern file must contain only lists: key %q holds %T", key, value)
		}
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("error parsing custom pattern file %s: %w", path, err)
	}
	return raw, nil
}

// newSet builds the lookup maps from the merged raw tables. All matching is
// case-insensitive, so entries are lowercased up front.
func newSet(raw rawTables) *Set {
	s := &Set{
		CompoundFirstNames: lowerAll(raw.CompoundFirstNames),
		LastNameParticles:  lowerAll(raw.LastNameParticles),
		Ampersands:         lowerAll(raw.Ampersands),
		CamelcaseParticles: lowerAll(raw.CamelcaseParticles),
		Prefixes:           lowerAll(raw.Prefixes),
		Suffixes:           lowerAll(raw.Suffixes),
		InvalidWords:       lowerAll(raw.InvalidWords),
		InvalidChars:       invalidChars(),
	}
	s.compoundFirstNames = toLookup(s.CompoundFirstNames)
	s.lastNameParticles = toLookup(s.LastNameParticles)
	s.ampersands = toLookup(s.Ampersands)
	s.invalidWords = toLookup(s.InvalidWords)
	s.invalidChars = make(map[rune]bool, len(s.InvalidChars))
	for _, r := range s.InvalidChars {
		s.invalidChars[r] = true
	}
	return s
}

// invalidChars returns the punctuation characters not allowed in names.
// Ampersands, apostrophes, hyphens and periods are structural and stay.
func invalidChars() []rune {
	const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	var chars []rune
	for _, r := range punctuation {
		switch r {
		case '&', '\'', '-', '.':
			continue
		}
		chars = append(chars, r)
	}
	return chars
}

// IsAmpersand reports whether the token is a conjunction between two names.
func (s *Set) IsAmpersand(token string) bool {
	return s.ampersands[strings.ToLower(token)]
}

// IsCompoundFirstName reports whether the space-joined token pair is a known
// multi-part first name such as "mary ann".
func (s *Set) IsCompoundFirstName(pair string) bool {
	return s.compoundFirstNames[strings.ToLower(pair)]
}

// IsParticle reports whether the token is a last-name particle such as "van".
func (s *Set) IsParticle(token string) bool {
	return s.lastNameParticles[strings.ToLower(token)]
}

// IsInvalidWord reports whether the word disqualifies a token ("Family",
// "Subscriber" and similar non-name vocabulary).
func (s *Set) IsInvalidWord(word string) bool {
	return s.invalidWords[strings.ToLower(word)]
}

// IsInvalidChar reports whether the rune must be stripped from name tokens.
func (s *Set) IsInvalidChar(r rune) bool {
	return s.invalidChars[r]
}

// MatchesPrefix reports whether the token matches the prefix table.
func (s *Set) MatchesPrefix(token string) bool {
	return matchesAffix(token, s.Prefixes)
}

// MatchesSuffix reports whether the token matches the suffix table.
func (s *Set) MatchesSuffix(token string) bool {
	return matchesAffix(token, s.Suffixes)
}

// matchesAffix implements the starts-with affix semantics: a token matches
// when its lowercase form is a leading substring of any table entry. "mr"
// matches the "mr." entry, and a bare initial like "m" matches too — that
// looseness is intentional and mirrors how affix tables have always behaved
// here, with the initial-clustering pass sweeping up most single letters
// before affixes are tested.
func matchesAffix(token string, entries []string) bool {
	t := strings.ToLower(token)
	if t == "" {
		return false
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry, t) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func toLookup(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
