// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package overview combines scraped fragments into one cleaned text blob and
// delegates prose synthesis to the summarization backend.
package overview

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/market-scout/internal/textclean"
	"github.com/pdiddy/market-scout/pkg/types"
)

// promptTemplate is the fixed summarization instruction. The cleaned
// scraped text is appended after the final newline.
const promptTemplate = "Provide a 200 words concise and well-structured summary of the following company details. " +
	"Ensure key information is retained while removing redundancy and unnecessary details. " +
	"Focus on the company's core business, major milestones, and recent developments:\n\n%s"

// Summarizer turns a prompt into prose. The Gemini client satisfies this;
// tests supply fakes.
type Summarizer interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Synthesize joins the fragment texts with single spaces, runs the cleanup
// pipeline, and asks the summarizer for the overview prose. The backend's
// output is returned verbatim.
//
// A backend failure is wrapped as types.SummarizationError and propagates:
// the run aborts rather than producing a report with no overview.
func Synthesize(ctx context.Context, s Summarizer, fragments []types.RawFragment, rules textclean.Rules) (string, error) {
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		texts = append(texts, f.Text)
	}

	cleaned := textclean.Normalize(strings.Join(texts, " "), rules)

	prose, err := s.GenerateText(ctx, fmt.Sprintf(promptTemplate, cleaned))
	if err != nil {
		return "", &types.SummarizationError{Err: err}
	}
	return prose, nil
}
