// Package dispatch orchestrates one conversation turn. The pipeline order is
// a correctness contract:
//
//  1. farewell short-circuits everything and clears history
//  2. contextual follow-up, so repeats are not reclassified as fresh queries
//  3. FAQ classification (acknowledgments included)
//  4. smalltalk, with its fallback as the last resort
package dispatch

import (
	"errors"
	"strings"

	"github.com/prushal/supportbot/internal/classify"
	"github.com/prushal/supportbot/internal/followup"
	"github.com/prushal/supportbot/internal/logging"
	"github.com/prushal/supportbot/internal/session"
	"github.com/prushal/supportbot/internal/smalltalk"
)

// ErrEmptyUtterance is returned for a missing or blank utterance. The
// transport reports it as an invalid request; no classification happens.
var ErrEmptyUtterance = errors.New("empty utterance")

// Category labels the branch that produced the response.
type Category string

const (
	CategoryFarewell   Category = "farewell"
	CategoryContextual Category = "contextual"
	CategoryAmbiguous  Category = "ambiguous"
	CategoryFAQ        Category = "faq"
	CategorySmalltalk  Category = "smalltalk"
	CategoryFallback   Category = "fallback"
)

// Result is one turn's outcome. Produced fresh each turn; never persisted.
type Result struct {
	Category Category
	Text     string
}

// Dispatcher routes utterances through the turn pipeline and maintains
// per-session history.
type Dispatcher struct {
	sessions   *session.Store
	resolver   *followup.Resolver
	classifier *classify.Classifier
	smalltalk  *smalltalk.Engine
}

// New wires a dispatcher from its collaborators.
func New(sessions *session.Store, resolver *followup.Resolver, classifier *classify.Classifier, engine *smalltalk.Engine) *Dispatcher {
	return &Dispatcher{
		sessions:   sessions,
		resolver:   resolver,
		classifier: classifier,
		smalltalk:  engine,
	}
}

// Respond processes one turn for the given session. On success the turn is
// appended to history, except for farewells, which clear it instead.
func (d *Dispatcher) Respond(sessionID, utterance string) (Result, error) {
	if strings.TrimSpace(utterance) == "" {
		return Result{}, ErrEmptyUtterance
	}

	if smalltalk.IsFarewell(utterance) {
		d.sessions.Clear(sessionID)
		logging.Debug("dispatch", "session %s: farewell, history cleared", sessionID)
		return Result{Category: CategoryFarewell, Text: smalltalk.FarewellText}, nil
	}

	turns := d.sessions.Turns(sessionID)
	if text, ok := d.resolver.Resolve(utterance, turns); ok {
		d.record(sessionID, utterance, text)
		logging.Debug("dispatch", "session %s: contextual follow-up", sessionID)
		return Result{Category: CategoryContextual, Text: text}, nil
	}

	if res := d.classifier.Classify(utterance); res.Text != "" {
		cat := CategoryFAQ
		if res.Category == classify.CategoryAmbiguous {
			cat = CategoryAmbiguous
		}
		d.record(sessionID, utterance, res.Text)
		logging.Debug("dispatch", "session %s: %s -> %s", sessionID, logging.Truncate(utterance, 40), cat)
		return Result{Category: cat, Text: res.Text}, nil
	}

	st := d.smalltalk.Reply(utterance)
	if st.Farewell {
		// Unreachable via the normal pipeline (step 1 catches the
		// exact tokens) but the engine contract still holds when the
		// dispatcher is bypassed.
		d.sessions.Clear(sessionID)
		return Result{Category: CategoryFarewell, Text: st.Text}, nil
	}

	cat := CategorySmalltalk
	if st.Fallback {
		cat = CategoryFallback
	}
	d.record(sessionID, utterance, st.Text)
	return Result{Category: cat, Text: st.Text}, nil
}

func (d *Dispatcher) record(sessionID, query, response string) {
	d.sessions.Append(sessionID, session.Turn{Query: query, Response: response})
}

// Sessions exposes the underlying store for transports that need lifecycle
// control (counting, teardown).
func (d *Dispatcher) Sessions() *session.Store {
	return d.sessions
}
