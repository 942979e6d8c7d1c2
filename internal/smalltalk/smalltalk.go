// Package smalltalk answers conversational utterances that are not FAQ
// material: greetings, status questions, positive affect, thanks, farewells,
// and a clarification fallback for everything else.
//
// Rules are ordered and first-match-wins; the order is a correctness
// contract, not an implementation detail.
package smalltalk

import (
	"strings"

	prose "github.com/tsawler/prose/v3"

	"github.com/prushal/supportbot/internal/pick"
)

// FarewellText is the fixed farewell reply. A farewell also clears the
// conversation history, which the caller performs on seeing Farewell set.
const FarewellText = "Ok bye! Have a good day!"

// FallbackText is the fixed clarification reply when no rule matches.
const FallbackText = "Could you clarify your question? I'm happy to help!"

var greetingTokens = map[string]bool{
	"hi": true, "hello": true, "hey": true, "hii": true,
}

var positiveTokens = map[string]bool{
	"great": true, "good": true, "awesome": true, "fantastic": true, "amazing": true,
}

var farewellTokens = map[string]bool{
	"bye": true, "exit": true, "goodbye": true,
}

var greetings = []string{
	"Hey there! How's your day going?",
	"Hello! What's up?",
	"Hi! How can I assist you today?",
}

var statusReplies = []string{
	"I'm doing great, thanks for asking! How about you?",
	"I'm good! Hope you're having a great day too.",
}

var affirmations = []string{
	"That's great to hear!",
	"Glad to hear it!",
	"Happy to hear that!",
}

var thanksReplies = []string{
	"You're very welcome!",
	"Anytime! Glad I could help.",
}

// Result is the engine's verdict for one utterance.
type Result struct {
	Text     string
	Farewell bool // utterance ends the conversation; history must be cleared
	Fallback bool // no rule matched; Text is the clarification fallback
}

// Engine is the ordered smalltalk rule list. Stateless; safe for concurrent
// use.
type Engine struct {
	picker pick.Func
}

// New creates an engine. A nil picker means uniform random reply choice.
func New(picker pick.Func) *Engine {
	return &Engine{picker: picker}
}

// IsFarewell reports whether the normalized message is exactly a farewell
// token. Exposed so the dispatcher can short-circuit before any other check.
func IsFarewell(msg string) bool {
	return farewellTokens[strings.ToLower(strings.TrimSpace(msg))]
}

// Reply runs the rule list against the raw utterance.
func (e *Engine) Reply(msg string) Result {
	lower := strings.ToLower(strings.TrimSpace(msg))

	for _, tok := range tokenize(msg) {
		if greetingTokens[strings.ToLower(tok)] {
			return Result{Text: pick.One(e.picker, greetings)}
		}
	}

	if strings.Contains(lower, "how are you") {
		return Result{Text: pick.One(e.picker, statusReplies)}
	}

	if positiveTokens[strings.TrimSuffix(lower, "!")] {
		return Result{Text: pick.One(e.picker, affirmations)}
	}

	if strings.Contains(lower, "thank you") || strings.Contains(lower, "thanks") {
		return Result{Text: pick.One(e.picker, thanksReplies)}
	}

	if farewellTokens[lower] {
		return Result{Text: FarewellText, Farewell: true}
	}

	return Result{Text: FallbackText, Fallback: true}
}

// tokenize splits the utterance into word tokens, so "hello!" still counts
// as a greeting. Falls back to whitespace fields if NLP tokenization fails.
func tokenize(msg string) []string {
	doc, err := prose.NewDocument(msg)
	if err != nil {
		return strings.Fields(msg)
	}

	var tokens []string
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, tok.Text)
	}
	if len(tokens) == 0 {
		return strings.Fields(msg)
	}
	return tokens
}

// Greetings exposes the greeting candidate set for tests.
func Greetings() []string { return clone(greetings) }

// StatusReplies exposes the status candidate set for tests.
func StatusReplies() []string { return clone(statusReplies) }

// Affirmations exposes the positive-affect candidate set for tests.
func Affirmations() []string { return clone(affirmations) }

// ThanksReplies exposes the thanks candidate set for tests.
func ThanksReplies() []string { return clone(thanksReplies) }

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
