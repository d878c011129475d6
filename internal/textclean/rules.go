// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textclean

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Rules configures the cleanup pipeline. The zero value applies the package
// defaults.
type Rules struct {
	// StopPhrases overrides DefaultStopPhrases when non-empty.
	StopPhrases []string `yaml:"stop_phrases"`

	// Limit overrides DefaultLimit when positive.
	Limit int `yaml:"limit"`
}

func (r Rules) stopPhrases() []string {
	if len(r.StopPhrases) > 0 {
		return r.StopPhrases
	}
	return DefaultStopPhrases
}

func (r Rules) limit() int {
	if r.Limit > 0 {
		return r.Limit
	}
	return DefaultLimit
}

// LoadRules reads a YAML rules file. Missing file is not an error: the
// defaults apply.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Rules{}, nil
		}
		return Rules{}, fmt.Errorf("reading cleanup rules: %w", err)
	}
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parsing cleanup rules: %w", err)
	}
	return rules, nil
}
