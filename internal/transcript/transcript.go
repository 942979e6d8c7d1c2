// Package transcript fixes recurring speech-recognition mishearings before
// an utterance reaches the dispatcher. The speech layer itself (audio in/out)
// lives outside this repo; only its text output is handled here.
package transcript

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultCorrections are misrecognitions observed with real users. Keys and
// values are single lowercase words.
var defaultCorrections = map[string]string{
	"crushal": "prushal",
	"india":   "indeed",
	"ended":   "indeed",
}

// Corrector rewrites known-bad words in recognized text.
type Corrector struct {
	corrections map[string]string
}

// NewCorrector returns a corrector with the built-in corrections.
func NewCorrector() *Corrector {
	m := make(map[string]string, len(defaultCorrections))
	for k, v := range defaultCorrections {
		m[k] = v
	}
	return &Corrector{corrections: m}
}

// LoadCorrector reads a corrections map from a YAML file
// (misheard-word: replacement) and merges it over the built-ins.
func LoadCorrector(path string) (*Corrector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corrections: %w", err)
	}

	var extra map[string]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse corrections YAML: %w", err)
	}

	c := NewCorrector()
	for k, v := range extra {
		c.corrections[strings.ToLower(k)] = v
	}
	return c, nil
}

// Apply replaces misheard words, comparing case-insensitively and keeping
// all other words as received.
func (c *Corrector) Apply(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		if fixed, ok := c.corrections[strings.ToLower(w)]; ok {
			words[i] = fixed
		}
	}
	return strings.Join(words, " ")
}
