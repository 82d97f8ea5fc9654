// Package nlp normalizes raw chat messages into canonical intent tokens.
// Tokens are matched against a synonym table with weighted-ratio fuzzy
// string similarity, so near-miss spellings ("helo", "bok") still resolve
// to their canonical keyword.
package nlp

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum similarity score (0-100 scale) for a
// token to be replaced by a canonical keyword.
const DefaultThreshold = 80

// TokenSet is a deduplicated set of message tokens after canonicalization.
type TokenSet map[string]struct{}

// Has reports whether the set contains the token.
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Group maps a canonical intent keyword to its surface-form synonyms.
// Groups are held in declaration order: when two groups tie on the best
// similarity score for a token, the earlier group wins.
type Group struct {
	Canonical string
	Synonyms  []string
}

// Canonicalizer converts raw messages to canonical token sets.
type Canonicalizer struct {
	groups    []Group
	threshold int
}

// New creates a canonicalizer over the given synonym groups.
// A threshold outside (0,100] falls back to DefaultThreshold.
func New(groups []Group, threshold int) *Canonicalizer {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Canonicalizer{
		groups:    groups,
		threshold: threshold,
	}
}

// Canonicalize lowercases and whitespace-tokenizes the message, replaces
// each token whose best similarity score meets the threshold with its
// canonical keyword, and returns the deduplicated token set.
//
// Deterministic for fixed input, table, and threshold: scoring is
// deterministic and score ties between groups resolve to the first group
// in table order.
func (c *Canonicalizer) Canonicalize(message string) TokenSet {
	tokens := strings.Fields(strings.ToLower(message))
	set := make(TokenSet, len(tokens))
	for _, token := range tokens {
		if canonical, ok := c.Match(token); ok {
			set[canonical] = struct{}{}
		} else {
			set[token] = struct{}{}
		}
	}
	return set
}

// minFuzzyTokenLen is the shortest token eligible for fuzzy scoring.
// Weighted-ratio partial matching scores one- and two-letter tokens
// ("i", "a", "do") at 90 against longer synonyms, which would bend
// nearly every message toward some canonical group. Short tokens match
// by exact synonym equality only.
const minFuzzyTokenLen = 3

// Match returns the canonical keyword for a single lowercased token, or
// false when no synonym scores at or above the threshold.
func (c *Canonicalizer) Match(token string) (string, bool) {
	for _, group := range c.groups {
		for _, synonym := range group.Synonyms {
			if token == synonym {
				return group.Canonical, true
			}
		}
	}
	if len([]rune(token)) < minFuzzyTokenLen {
		return "", false
	}

	bestScore := 0
	bestCanonical := ""
	for _, group := range c.groups {
		for _, synonym := range group.Synonyms {
			// Strictly greater keeps the earliest group on ties.
			if score := fuzzy.WRatio(token, synonym); score > bestScore {
				bestScore = score
				bestCanonical = group.Canonical
			}
		}
	}
	if bestScore >= c.threshold {
		return bestCanonical, true
	}
	return "", false
}
