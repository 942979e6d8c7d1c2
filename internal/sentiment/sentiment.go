// Package sentiment scores utterance polarity with VADER. The score is an
// auxiliary signal: routing never consults it, but transports surface it for
// observability.
package sentiment

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Polarity buckets a compound VADER score.
type Polarity string

const (
	Positive Polarity = "positive"
	Neutral  Polarity = "neutral"
	Negative Polarity = "negative"
)

// compoundCutoff is the absolute compound score needed to leave neutral.
const compoundCutoff = 0.5

// Score classifies the message's polarity. Pure; no history interaction.
func Score(msg string) Polarity {
	parsed := sentitext.Parse(msg, lexicon.DefaultLexicon)
	compound := sentitext.PolarityScore(parsed).Compound

	switch {
	case compound >= compoundCutoff:
		return Positive
	case compound <= -compoundCutoff:
		return Negative
	default:
		return Neutral
	}
}
