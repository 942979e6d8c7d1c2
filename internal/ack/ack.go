// Package ack handles short ambiguous acknowledgments ("yes", "okay", ...)
// that must never reach fuzzy FAQ matching, where they would spuriously
// match a keyword.
package ack

import "strings"

// reply is the fixed response for every acknowledgment token. Keeping it
// fixed (not randomized) makes acknowledgments fully deterministic.
const reply = "You're right!"

// tokens is the exact-match acknowledgment set.
var tokens = map[string]bool{
	"indeed":    true,
	"sure":      true,
	"yes":       true,
	"okay":      true,
	"alright":   true,
	"correct":   true,
	"right":     true,
	"true":      true,
	"inspiring": true,
}

// Lookup returns the canned reply when the case-normalized message is
// exactly an acknowledgment token.
func Lookup(msg string) (string, bool) {
	if tokens[strings.ToLower(strings.TrimSpace(msg))] {
		return reply, true
	}
	return "", false
}

// Is reports whether the message is an acknowledgment token.
func Is(msg string) bool {
	_, ok := Lookup(msg)
	return ok
}
