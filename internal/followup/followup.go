// Package followup detects utterances that echo an earlier query in the
// conversation, so a repeated question gets the prior answer back instead of
// being reclassified from scratch.
package followup

import (
	"strings"

	"github.com/prushal/supportbot/internal/pick"
	"github.com/prushal/supportbot/internal/session"
)

// leadIns prefix a repeated answer so the user knows the bot noticed the
// repetition.
var leadIns = []string{
	"As I mentioned earlier, ",
	"Like I said before, ",
	"Just to repeat: ",
}

// minTokens guards against a single word spuriously matching a long-past
// exchange.
const minTokens = 2

// Resolver matches the current utterance against prior queries in history.
type Resolver struct {
	picker pick.Func
}

// New creates a resolver. A nil picker means uniform random lead-in choice.
func New(picker pick.Func) *Resolver {
	return &Resolver{picker: picker}
}

// Resolve returns a lead-in-prefixed copy of a previous response when the
// normalized query is a substring of a previous query. History is scanned
// newest to oldest and is never modified. Queries with fewer than two
// whitespace-separated tokens never match.
func (r *Resolver) Resolve(query string, turns []session.Turn) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(strings.Fields(q)) < minTokens {
		return "", false
	}

	for i := len(turns) - 1; i >= 0; i-- {
		prev := strings.ToLower(turns[i].Query)
		if strings.Contains(prev, q) {
			return pick.One(r.picker, leadIns) + turns[i].Response, true
		}
	}

	return "", false
}

// LeadIns exposes the lead-in candidate set for membership assertions in
// tests.
func LeadIns() []string {
	out := make([]string, len(leadIns))
	copy(out, leadIns)
	return out
}
