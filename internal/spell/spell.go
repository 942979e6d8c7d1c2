// Package spell provides best-effort spelling correction of user utterances
// toward the FAQ keyword vocabulary. Correction is advisory: any failure
// degrades to returning the input unchanged.
package spell

import (
	"strings"

	"github.com/sajari/fuzzy"
)

// minWordLength is the shortest word worth correcting; below this almost
// everything is within edit distance of something.
const minWordLength = 3

// stopwords are common function words that must never be "corrected" into a
// keyword ("your" is one edit from "yours" and two from "hours").
var stopwords = map[string]bool{
	"a": true, "about": true, "all": true, "and": true, "any": true,
	"are": true, "but": true, "can": true, "could": true, "do": true,
	"does": true, "for": true, "from": true, "get": true, "got": true,
	"has": true, "have": true, "how": true, "is": true, "it": true,
	"me": true, "my": true, "not": true, "of": true, "on": true,
	"our": true, "please": true, "should": true, "that": true,
	"the": true, "their": true, "them": true, "there": true,
	"they": true, "this": true, "to": true, "was": true, "we": true,
	"what": true, "when": true, "where": true, "which": true,
	"who": true, "why": true, "will": true, "with": true,
	"would": true, "you": true, "your": true,
}

// Normalizer corrects individual words against a model trained on the
// corpus vocabulary. Safe for concurrent use after construction.
type Normalizer struct {
	model *fuzzy.Model
	known map[string]bool
}

// NewNormalizer trains a correction model on the vocabulary. Multi-word
// keywords are split so each word is independently correctable.
func NewNormalizer(vocabulary []string) *Normalizer {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(1)

	known := make(map[string]bool)
	for _, kw := range vocabulary {
		for _, w := range strings.Fields(strings.ToLower(kw)) {
			model.TrainWord(w)
			known[w] = true
		}
	}

	return &Normalizer{model: model, known: known}
}

// Normalize returns the utterance with misspelled words replaced by their
// closest vocabulary word. Words already in the vocabulary, words too short
// to correct reliably, and words with no close suggestion pass through
// unchanged. Never fails: the worst case is the input coming back as-is.
func (n *Normalizer) Normalize(raw string) (out string) {
	out = raw
	defer func() {
		if r := recover(); r != nil {
			out = raw
		}
	}()

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return raw
	}

	changed := false
	for i, w := range fields {
		lw := strings.ToLower(w)
		if len(lw) < minWordLength || n.known[lw] || stopwords[lw] {
			fields[i] = lw
			continue
		}
		corrected := n.model.SpellCheck(lw)
		if corrected != "" && corrected != lw {
			fields[i] = corrected
			changed = true
		} else {
			fields[i] = lw
		}
	}

	if !changed {
		return raw
	}
	return strings.Join(fields, " ")
}
