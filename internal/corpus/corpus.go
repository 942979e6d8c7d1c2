// Package corpus holds the static FAQ data the classifier matches against.
//
// The corpus is loaded once at startup and immutable afterwards, so it is
// safe for unsynchronized concurrent reads.
package corpus

import (
	"fmt"
	"strings"
)

// Entry is one FAQ: a canonical question, the keywords that route to it,
// and the candidate responses to choose from.
type Entry struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Question  string   `json:"question" yaml:"question"`
	Keywords  []string `json:"keywords" yaml:"keywords"`
	Responses []string `json:"responses,omitempty" yaml:"responses,omitempty"`

	// Response is the legacy single-response field used by older corpus
	// files. Folded into Responses during validation.
	Response string `json:"response,omitempty" yaml:"response,omitempty"`
}

// Corpus is the validated FAQ set plus derived lookup structures.
type Corpus struct {
	entries []Entry
	vocab   []string       // lowercased keywords in entry order, deduplicated
	owners  map[string]int // keyword -> index of first owning entry
}

// New builds a Corpus from entries, normalizing keywords to lowercase and
// building the matching vocabulary. Keywords duplicated across entries are
// resolved to their first owning entry in iteration order.
func New(entries []Entry) (*Corpus, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("corpus has no entries")
	}

	c := &Corpus{
		owners: make(map[string]int),
	}

	for i, e := range entries {
		if e.Response != "" {
			e.Responses = append(e.Responses, e.Response)
			e.Response = ""
		}
		if strings.TrimSpace(e.Question) == "" {
			return nil, fmt.Errorf("entry %d: question is required", i)
		}
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("entry %d (%q): at least one keyword is required", i, e.Question)
		}
		if len(e.Responses) == 0 {
			return nil, fmt.Errorf("entry %d (%q): at least one response is required", i, e.Question)
		}
		if e.ID == "" {
			e.ID = fmt.Sprintf("faq-%d", i+1)
		}

		for j, kw := range e.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				return nil, fmt.Errorf("entry %d (%q): empty keyword", i, e.Question)
			}
			e.Keywords[j] = kw
			if _, seen := c.owners[kw]; !seen {
				c.owners[kw] = i
				c.vocab = append(c.vocab, kw)
			}
		}

		c.entries = append(c.entries, e)
	}

	return c, nil
}

// Entries returns all FAQ entries in load order.
func (c *Corpus) Entries() []Entry {
	return c.entries
}

// Len returns the number of FAQ entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Vocabulary returns the deduplicated keyword list in entry insertion order.
// This order is the tie-break order for fuzzy matching.
func (c *Corpus) Vocabulary() []string {
	return c.vocab
}

// EntryForKeyword resolves a keyword to its owning entry.
func (c *Corpus) EntryForKeyword(keyword string) (Entry, bool) {
	i, ok := c.owners[strings.ToLower(keyword)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}
