// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textclean

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCitations(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips markers", "Result[12] shown[3]", "Result shown"},
		{"no markers", "plain text", "plain text"},
		{"empty", "", ""},
		{"non-numeric brackets kept", "see [ref] and [42]", "see [ref] and "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCitations(tt.in); got != tt.want {
				t.Errorf("CleanCitations(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCutBoilerplate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		phrases []string
		want    string
	}{
		{"cuts at phrase", "A. Newsletter. B", []string{"Newsletter"}, "A."},
		{"no phrase trims only", "  hello  ", []string{"Newsletter"}, "hello"},
		{"first phrase in fixed order wins", "x Privacy Policy y Newsletter z",
			[]string{"Newsletter", "Privacy Policy"}, "x"},
		{"empty input", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrases := tt.phrases
			if phrases == nil {
				phrases = DefaultStopPhrases
			}
			if got := CutBoilerplate(tt.in, phrases); got != tt.want {
				t.Errorf("CutBoilerplate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Run("within limit unchanged", func(t *testing.T) {
		in := "short text"
		if got := Truncate(in, 100); got != in {
			t.Errorf("Truncate = %q, want unchanged", got)
		}
	})

	t.Run("cuts at sentence boundary before limit", func(t *testing.T) {
		in := "First sentence. Second sentence goes well past the limit here"
		got := Truncate(in, 30)
		if got != "First sentence." {
			t.Errorf("Truncate = %q, want %q", got, "First sentence.")
		}
		if len(got) > 30 {
			t.Errorf("len = %d, exceeds limit 30", len(got))
		}
	})

	t.Run("hard cut when no boundary", func(t *testing.T) {
		in := strings.Repeat("x", 50)
		got := Truncate(in, 20)
		if len(got) != 20 {
			t.Errorf("len = %d, want exactly 20", len(got))
		}
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		in := strings.Repeat("a", DefaultLimit+10)
		got := Truncate(in, 0)
		if len(got) != DefaultLimit {
			t.Errorf("len = %d, want %d", len(got), DefaultLimit)
		}
	})
}

func TestDedupeSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"removes nonconsecutive duplicates", "A. B. A. C", "A. B. C"},
		{"normalizes whitespace", "A   b. C\n\nd", "A b. C d"},
		{"preserves first-occurrence order", "C. A. C. A. B", "C. A. B"},
		{"no duplicates unchanged", "A. B. C", "A. B. C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DedupeSentences(tt.in); got != tt.want {
				t.Errorf("DedupeSentences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Dedup output never contains two equal sentence units, for any input.
func TestDedupeSentencesNoRepeats(t *testing.T) {
	inputs := []string{
		"A. A. A",
		"The company grew. Revenue rose. The company grew",
		strings.Repeat("Same sentence. ", 20) + "End",
	}
	for _, in := range inputs {
		units := strings.Split(DedupeSentences(in), ". ")
		seen := make(map[string]bool)
		for _, u := range units {
			if seen[u] {
				t.Errorf("duplicate unit %q survived in output for input %q", u, in)
			}
			seen[u] = true
		}
	}
}

func TestNormalizeOrder(t *testing.T) {
	// Citations first, then the boilerplate cut, then truncation, then dedup.
	in := "Alpha[1] builds rockets. Alpha builds rockets. Alpha sells cars. Newsletter signup below"
	got := Normalize(in, Rules{})
	want := "Alpha builds rockets. Alpha sells cars."
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeTruncatesBeforeDedup(t *testing.T) {
	// A duplicate past the limit is cut by truncation, not by dedup, so the
	// output may be shorter than a dedup-first ordering would produce.
	sentence := "This sentence repeats itself for quite a while"
	in := sentence + ". " + sentence + ". Unique tail"
	got := Normalize(in, Rules{Limit: len(sentence) + 5})
	if got != sentence+"." {
		t.Errorf("Normalize = %q, want truncated single sentence", got)
	}
}

func TestLoadRules(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		rules, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultStopPhrases, rules.stopPhrases())
		assert.Equal(t, DefaultLimit, rules.limit())
	})

	t.Run("reads overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		content := "stop_phrases:\n  - Cookie notice\nlimit: 500\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		rules, err := LoadRules(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cookie notice"}, rules.StopPhrases)
		assert.Equal(t, 500, rules.Limit)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("stop_phrases: {bad"), 0o644))
		_, err := LoadRules(path)
		assert.Error(t, err)
	})
}
