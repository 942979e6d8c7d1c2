// Package classify routes an utterance to a company FAQ answer, an
// acknowledgment reply, or general conversation.
package classify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/prushal/supportbot/internal/ack"
	"github.com/prushal/supportbot/internal/corpus"
	"github.com/prushal/supportbot/internal/match"
	"github.com/prushal/supportbot/internal/pick"
)

// Category is the classifier's verdict.
type Category string

const (
	// CategoryCompany means the utterance matched a FAQ entry.
	CategoryCompany Category = "company"
	// CategoryAmbiguous means the utterance was a short acknowledgment.
	CategoryAmbiguous Category = "ambiguous"
	// CategoryGeneral means the utterance is not company-related; the
	// smalltalk engine handles it.
	CategoryGeneral Category = "general"
)

// Result is a classification verdict with optional response text. Text is
// empty for CategoryGeneral.
type Result struct {
	Category Category
	Text     string
}

// Normalizer is the advisory spelling corrector. Implementations must never
// fail: the contract is corrected-or-unchanged.
type Normalizer interface {
	Normalize(raw string) string
}

// Classifier ties the acknowledgment table, fuzzy matcher, and spelling
// normalizer together. Stateless per call; safe for concurrent use.
type Classifier struct {
	corpus     *corpus.Corpus
	matcher    *match.Matcher
	normalizer Normalizer
	picker     pick.Func
}

// New creates a classifier. normalizer may be nil to disable spelling
// correction; picker may be nil for uniform random response choice.
func New(c *corpus.Corpus, m *match.Matcher, normalizer Normalizer, picker pick.Func) *Classifier {
	return &Classifier{
		corpus:     c,
		matcher:    m,
		normalizer: normalizer,
		picker:     picker,
	}
}

// Classify runs the ordered checks: acknowledgment table, length guard,
// fuzzy match plus independent spelling normalization.
//
// When the normalizer altered the message and a match exists, the reply asks
// for confirmation ("Did you mean ...?") instead of answering directly, even
// if the unaltered message already matched. That precedence is intentional.
func (cl *Classifier) Classify(msg string) Result {
	lower := strings.ToLower(strings.TrimSpace(msg))

	if text, ok := ack.Lookup(lower); ok {
		return Result{Category: CategoryAmbiguous, Text: text}
	}

	if utf8.RuneCountInString(lower) < 2 {
		return Result{Category: CategoryGeneral}
	}

	keyword, matched := cl.matcher.Match(lower)

	normalized := lower
	if cl.normalizer != nil {
		normalized = cl.normalizer.Normalize(lower)
	}
	corrected := normalized != lower

	// A query that only matches after correction is still answerable,
	// but always through the confirmation branch.
	if !matched && corrected {
		keyword, matched = cl.matcher.Match(normalized)
	}

	if !matched {
		return Result{Category: CategoryGeneral}
	}

	entry, ok := cl.corpus.EntryForKeyword(keyword)
	if !ok {
		return Result{Category: CategoryGeneral}
	}

	response := pick.One(cl.picker, entry.Responses)
	if corrected {
		return Result{
			Category: CategoryCompany,
			Text:     fmt.Sprintf("Did you mean '%s'? %s", entry.Question, response),
		}
	}
	return Result{Category: CategoryCompany, Text: response}
}
