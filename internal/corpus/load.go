package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// file is the on-disk corpus shape: {"faqs": [...]}.
type file struct {
	FAQs []Entry `json:"faqs" yaml:"faqs"`
}

// Load reads a corpus from a JSON or YAML file. A malformed file is a fatal
// condition for the caller: the service must not start with a partial corpus.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse corpus YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse corpus JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported corpus format: %s", filepath.Ext(path))
	}

	c, err := New(f.FAQs)
	if err != nil {
		return nil, fmt.Errorf("invalid corpus %s: %w", path, err)
	}
	return c, nil
}
