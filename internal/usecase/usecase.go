// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package usecase generates AI/ML use-case ideas from a company overview and
// shapes the model's free-form output into the canonical list consumed by
// the resource aggregator.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/market-scout/pkg/types"
)

// promptTemplate asks the model for strictly-shaped JSON. The query and
// overview text fill the two placeholders.
const promptTemplate = `You are an AI consultant. Based on the company or industry %q and the overview below, propose AI/ML use cases.

Respond with JSON only, in exactly this shape:
{"use_cases": [{"title": "...", "explanation": "...", "practical_application": ["...", "..."]}]}

Each title must be a short, searchable phrase naming the use case (e.g. "Demand Forecasting").
Each explanation describes the business value in 2-3 sentences.
Each practical_application entry gives one concrete deployment example.

Overview:
%s`

// JSONGenerator produces a raw JSON response for a prompt. The Gemini
// client satisfies this; tests supply fakes.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Generate asks the backend for use cases and normalizes its output.
// Backend and parse failures are wrapped as types.GenerationError and abort
// the run.
func Generate(ctx context.Context, g JSONGenerator, query, overviewText string) (types.UseCaseList, error) {
	raw, err := g.GenerateJSON(ctx, fmt.Sprintf(promptTemplate, query, overviewText))
	if err != nil {
		return types.UseCaseList{}, &types.GenerationError{Err: err}
	}

	var list types.UseCaseList
	if err := json.Unmarshal([]byte(stripFences(raw)), &list); err != nil {
		return types.UseCaseList{}, &types.GenerationError{Err: fmt.Errorf("parsing response: %w", err)}
	}

	return Normalize(list)
}

// Normalize shapes a free-form use-case list into the canonical structure:
// entries without a title are dropped (the title keys all downstream
// lookups), and a missing practical_application becomes an empty slice so
// renderers never see nil. No other coercion is performed.
func Normalize(list types.UseCaseList) (types.UseCaseList, error) {
	kept := make([]types.UseCase, 0, len(list.UseCases))
	for _, uc := range list.UseCases {
		uc.Title = strings.TrimSpace(uc.Title)
		if uc.Title == "" {
			continue
		}
		if uc.PracticalApplication == nil {
			uc.PracticalApplication = []string{}
		}
		kept = append(kept, uc)
	}

	if len(kept) == 0 {
		return types.UseCaseList{}, &types.GenerationError{Err: fmt.Errorf("no usable use cases in response")}
	}
	return types.UseCaseList{UseCases: kept}, nil
}

// stripFences removes a Markdown code fence around a JSON body. Models
// occasionally wrap JSON output despite the MIME type constraint.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
