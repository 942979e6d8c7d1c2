package smalltalk

import (
	"testing"

	"github.com/prushal/supportbot/internal/pick"
)

func contains(set []string, s string) bool {
	for _, c := range set {
		if c == s {
			return true
		}
	}
	return false
}

func TestGreeting(t *testing.T) {
	e := New(nil)
	for _, msg := range []string{"hi", "Hello!", "hey there", "hii"} {
		res := e.Reply(msg)
		if !contains(Greetings(), res.Text) {
			t.Errorf("Reply(%q) = %q, expected a greeting", msg, res.Text)
		}
		if res.Farewell || res.Fallback {
			t.Errorf("Reply(%q): unexpected flags %+v", msg, res)
		}
	}
}

func TestHowAreYou(t *testing.T) {
	e := New(nil)
	res := e.Reply("So, how are you doing today?")
	if !contains(StatusReplies(), res.Text) {
		t.Errorf("Expected a status reply, got %q", res.Text)
	}
}

func TestPositiveAffect(t *testing.T) {
	e := New(nil)
	for _, msg := range []string{"great", "great!", "Awesome", "fantastic!", "amazing", "good"} {
		res := e.Reply(msg)
		if !contains(Affirmations(), res.Text) {
			t.Errorf("Reply(%q) = %q, expected an affirmation", msg, res.Text)
		}
	}

	// Positive words inside a sentence are not exact-token matches.
	res := e.Reply("that was a good answer thanks")
	if contains(Affirmations(), res.Text) {
		t.Errorf("Expected thanks rule, got affirmation %q", res.Text)
	}
}

func TestThanks(t *testing.T) {
	e := New(nil)
	for _, msg := range []string{"thanks", "thank you so much", "ok thanks!"} {
		res := e.Reply(msg)
		if !contains(ThanksReplies(), res.Text) {
			t.Errorf("Reply(%q) = %q, expected a thanks reply", msg, res.Text)
		}
	}
}

func TestFarewell(t *testing.T) {
	e := New(nil)
	for _, msg := range []string{"bye", "exit", "goodbye", "BYE"} {
		res := e.Reply(msg)
		if !res.Farewell {
			t.Errorf("Reply(%q): expected farewell flag", msg)
		}
		if res.Text != FarewellText {
			t.Errorf("Reply(%q) = %q, want fixed farewell", msg, res.Text)
		}
		if !IsFarewell(msg) {
			t.Errorf("IsFarewell(%q) = false", msg)
		}
	}

	if IsFarewell("goodbye friend") {
		t.Error("IsFarewell must require an exact token")
	}
}

func TestFallback(t *testing.T) {
	e := New(nil)
	res := e.Reply("quantum flux capacitor manual")
	if !res.Fallback {
		t.Error("Expected fallback flag")
	}
	if res.Text != FallbackText {
		t.Errorf("Expected fixed fallback text, got %q", res.Text)
	}
}

func TestDeterministicPicker(t *testing.T) {
	e := New(pick.First)
	if res := e.Reply("hi"); res.Text != Greetings()[0] {
		t.Errorf("Expected first greeting with pick.First, got %q", res.Text)
	}
}

func TestRuleOrderGreetingBeatsThanks(t *testing.T) {
	e := New(pick.First)
	res := e.Reply("hi, thanks")
	if !contains(Greetings(), res.Text) {
		t.Errorf("Greeting rule must fire before thanks, got %q", res.Text)
	}
}
