package classify

import (
	"strings"
	"testing"

	"github.com/prushal/supportbot/internal/corpus"
	"github.com/prushal/supportbot/internal/match"
	"github.com/prushal/supportbot/internal/pick"
	"github.com/prushal/supportbot/internal/spell"
)

func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.New([]corpus.Entry{
		{Question: "What are your hours?", Keywords: []string{"hours", "open"}, Responses: []string{"We are open 9-5."}},
		{Question: "Where are you located?", Keywords: []string{"location", "address"}, Responses: []string{"Our office is in Pune."}},
	})
	if err != nil {
		t.Fatalf("corpus.New failed: %v", err)
	}
	return c
}

// fakeNormalizer returns mapped corrections and passes everything else
// through, standing in for the trained spelling model.
type fakeNormalizer struct {
	corrections map[string]string
}

func (f fakeNormalizer) Normalize(raw string) string {
	if out, ok := f.corrections[raw]; ok {
		return out
	}
	return raw
}

func newClassifier(t *testing.T, n Normalizer) *Classifier {
	t.Helper()
	c := testCorpus(t)
	return New(c, match.New(c.Vocabulary()), n, pick.First)
}

func TestFuzzyQueryAnswersDirectly(t *testing.T) {
	cl := newClassifier(t, nil)
	res := cl.Classify("what hours r u open")
	if res.Category != CategoryCompany {
		t.Fatalf("Expected company, got %s", res.Category)
	}
	if res.Text != "We are open 9-5." {
		t.Errorf("Expected direct answer, got %q", res.Text)
	}
}

func TestAcknowledgmentBypassesFAQ(t *testing.T) {
	cl := newClassifier(t, nil)
	for _, msg := range []string{"yes", "OKAY", "right"} {
		res := cl.Classify(msg)
		if res.Category != CategoryAmbiguous {
			t.Errorf("Classify(%q): expected ambiguous, got %s", msg, res.Category)
		}
		if res.Text != "You're right!" {
			t.Errorf("Classify(%q) = %q, want fixed acknowledgment reply", msg, res.Text)
		}
	}
}

func TestTooShortIsGeneral(t *testing.T) {
	cl := newClassifier(t, nil)
	for _, msg := range []string{"", "h", "!"} {
		res := cl.Classify(msg)
		if res.Category != CategoryGeneral || res.Text != "" {
			t.Errorf("Classify(%q) = %+v, want general with no text", msg, res)
		}
	}
}

func TestUnmatchedIsGeneral(t *testing.T) {
	cl := newClassifier(t, nil)
	res := cl.Classify("tell me a story about dragons")
	if res.Category != CategoryGeneral {
		t.Errorf("Expected general, got %s (%q)", res.Category, res.Text)
	}
}

func TestSpellingChangeForcesConfirmation(t *testing.T) {
	n := fakeNormalizer{corrections: map[string]string{
		"what are your hours": "what are your hours corrected",
	}}
	cl := newClassifier(t, n)

	// The uncorrected query already matches confidently, but the
	// normalizer reporting a change still routes to the confirmation
	// branch.
	res := cl.Classify("what are your hours")
	if res.Category != CategoryCompany {
		t.Fatalf("Expected company, got %s", res.Category)
	}
	if !strings.HasPrefix(res.Text, "Did you mean 'What are your hours?'") {
		t.Errorf("Expected confirmation branch, got %q", res.Text)
	}
	if !strings.HasSuffix(res.Text, "We are open 9-5.") {
		t.Errorf("Expected the entry response appended, got %q", res.Text)
	}
}

func TestNoSpellingChangeAnswersDirectly(t *testing.T) {
	n := fakeNormalizer{corrections: map[string]string{}}
	cl := newClassifier(t, n)
	res := cl.Classify("what are your hours")
	if res.Text != "We are open 9-5." {
		t.Errorf("Expected direct answer without confirmation, got %q", res.Text)
	}
}

func TestTrainedNormalizerTypo(t *testing.T) {
	c := testCorpus(t)
	cl := New(c, match.New(c.Vocabulary()), spell.NewNormalizer(c.Vocabulary()), pick.First)

	res := cl.Classify("what are your hourz")
	if res.Category != CategoryCompany {
		t.Fatalf("Expected company, got %s (%q)", res.Category, res.Text)
	}
	if !strings.HasPrefix(res.Text, "Did you mean") {
		t.Errorf("Expected confirmation for corrected typo, got %q", res.Text)
	}
}

func TestIdempotentCategory(t *testing.T) {
	cl := newClassifier(t, nil)
	first := cl.Classify("what are your hours")
	second := cl.Classify("what are your hours")
	if first.Category != second.Category {
		t.Errorf("Expected stable category, got %s then %s", first.Category, second.Category)
	}
}
