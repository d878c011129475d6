// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textclean normalizes scraped text before summarization: citation
// markers are stripped, boilerplate tails cut, the text truncated to a
// character limit at a sentence boundary, and duplicate sentence units
// removed.
package textclean

import (
	"regexp"
	"strings"
)

// DefaultLimit is the character limit applied by Truncate when the rules
// do not override it.
const DefaultLimit = 3000

// sentenceSep is the sentence-unit boundary used for truncation and
// deduplication.
const sentenceSep = ". "

// citationPattern matches bracketed-integer citation markers like "[4]".
var citationPattern = regexp.MustCompile(`\[\d+\]`)

// whitespacePattern matches runs of whitespace for normalization.
var whitespacePattern = regexp.MustCompile(`\s+`)

// DefaultStopPhrases marks the start of boilerplate tails on scraped pages.
// Order matters: CutBoilerplate cuts at the first phrase that occurs.
var DefaultStopPhrases = []string{
	"Newsletter",
	"Privacy Policy",
	"Terms of Service",
	"Sign In",
	"Founder first",
	"Start your day",
}

// CleanCitations removes all bracketed-integer citation markers from text.
// Empty input yields empty output.
func CleanCitations(text string) string {
	return citationPattern.ReplaceAllString(text, "")
}

// CutBoilerplate truncates text at the first occurrence of any stop phrase,
// keeping only the prefix before it, and trims surrounding whitespace. When
// no stop phrase occurs the trimmed input is returned unchanged.
func CutBoilerplate(text string, stopPhrases []string) string {
	for _, phrase := range stopPhrases {
		if idx := strings.Index(text, phrase); idx >= 0 {
			text = text[:idx]
		}
	}
	return strings.TrimSpace(text)
}

// Truncate cuts text at the last sentence boundary strictly before limit,
// keeping the period. Text within the limit is returned unchanged.
//
// When no boundary exists before the limit the text is hard-cut at limit,
// mid-sentence. The limit is never exceeded.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(text) <= limit {
		return text
	}
	if idx := strings.LastIndex(text[:limit], sentenceSep); idx >= 0 {
		return text[:idx+1]
	}
	return text[:limit]
}

// DedupeSentences normalizes whitespace runs to single spaces, splits the
// text into sentence units on ". ", removes exact duplicate units while
// preserving first-occurrence order, and rejoins with ". ". The output
// contains no two identical sentence units, consecutive or not.
func DedupeSentences(text string) string {
	normalized := whitespacePattern.ReplaceAllString(text, " ")
	units := strings.Split(normalized, sentenceSep)

	seen := make(map[string]bool, len(units))
	kept := units[:0]
	for _, u := range units {
		if seen[u] {
			continue
		}
		seen[u] = true
		kept = append(kept, u)
	}
	return strings.Join(kept, sentenceSep)
}

// Normalize runs the full cleanup pipeline in its fixed order: citation
// removal, boilerplate cut, truncation, then deduplication. Truncation runs
// before deduplication, so a truncated text may end up shorter than a
// dedup-first ordering would allow; that ordering is part of the contract.
func Normalize(text string, rules Rules) string {
	text = CleanCitations(text)
	text = CutBoilerplate(text, rules.stopPhrases())
	text = Truncate(text, rules.limit())
	return DedupeSentences(text)
}
