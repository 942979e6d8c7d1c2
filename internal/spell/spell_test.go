package spell

import "testing"

var vocabulary = []string{"hours", "open", "location", "services", "pricing"}

func TestKnownWordsPassThrough(t *testing.T) {
	n := NewNormalizer(vocabulary)
	in := "what are your hours"
	if got := n.Normalize(in); got != in {
		t.Errorf("Expected input unchanged, got %q", got)
	}
}

func TestCorrectsTypoTowardVocabulary(t *testing.T) {
	n := NewNormalizer(vocabulary)
	got := n.Normalize("what are your hourz")
	if got != "what are your hours" {
		t.Errorf("Expected hourz corrected to hours, got %q", got)
	}
}

func TestShortWordsNeverCorrected(t *testing.T) {
	n := NewNormalizer(vocabulary)
	in := "r u ok"
	if got := n.Normalize(in); got != in {
		t.Errorf("Expected short words untouched, got %q", got)
	}
}

func TestEmptyInput(t *testing.T) {
	n := NewNormalizer(vocabulary)
	if got := n.Normalize(""); got != "" {
		t.Errorf("Expected empty string back, got %q", got)
	}
	if got := n.Normalize("   "); got != "   " {
		t.Errorf("Expected whitespace back, got %q", got)
	}
}

func TestUncorrectableWordsPassThrough(t *testing.T) {
	n := NewNormalizer(vocabulary)
	in := "completely unrelated gibberish xqzv"
	got := n.Normalize(in)
	if got != in {
		t.Errorf("Expected no correction for far-off words, got %q", got)
	}
}
