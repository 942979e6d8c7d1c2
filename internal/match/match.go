// Package match scores a user query against the FAQ keyword vocabulary
// using fuzzy string matching.
package match

import (
	"strings"
	"unicode/utf8"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	// DefaultThreshold is the minimum 0-100 score to accept a match.
	DefaultThreshold = 80
	// DefaultMinLength is the minimum query length worth matching.
	// Single characters fuzzy-match too many keywords to be useful.
	DefaultMinLength = 2
)

// Matcher matches queries against a fixed keyword vocabulary. It is pure and
// stateless after construction, safe for concurrent use.
type Matcher struct {
	vocab     []string
	threshold int
	minLength int
}

// New creates a matcher over the vocabulary with default limits. The
// vocabulary's iteration order is the tie-break order: when two keywords
// score equally, the earlier one wins, keeping results deterministic.
func New(vocabulary []string) *Matcher {
	return &Matcher{
		vocab:     vocabulary,
		threshold: DefaultThreshold,
		minLength: DefaultMinLength,
	}
}

// SetLimits overrides the score threshold and minimum query length.
func (m *Matcher) SetLimits(threshold, minLength int) {
	if threshold > 0 {
		m.threshold = threshold
	}
	if minLength > 0 {
		m.minLength = minLength
	}
}

// Match returns the best-scoring vocabulary keyword for the query, if its
// score reaches the threshold. Queries shorter than the minimum length never
// match.
func (m *Matcher) Match(query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) < m.minLength {
		return "", false
	}

	best := ""
	bestScore := -1
	for _, kw := range m.vocab {
		score := fuzzywuzzy.WRatio(query, kw)
		if score > bestScore {
			best = kw
			bestScore = score
		}
	}

	if bestScore < m.threshold {
		return "", false
	}
	return best, true
}
