// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one research pass end to end: search, scrape,
// summarize, generate use cases, aggregate resources, assemble the report.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/market-scout/internal/overview"
	"github.com/pdiddy/market-scout/internal/report"
	"github.com/pdiddy/market-scout/internal/resources"
	"github.com/pdiddy/market-scout/internal/scrape"
	"github.com/pdiddy/market-scout/internal/textclean"
	"github.com/pdiddy/market-scout/internal/usecase"
	"github.com/pdiddy/market-scout/internal/websearch"
	"github.com/pdiddy/market-scout/pkg/types"
)

// AIBackend is the combined surface the two AI stages need. The Gemini
// client satisfies it; tests supply fakes.
type AIBackend interface {
	overview.Summarizer
	usecase.JSONGenerator
}

// Runner wires the pipeline stages together. Every stage collaborator is a
// field so tests can replace any of them.
type Runner struct {
	Search    websearch.Provider
	Scraper   *scrape.Scraper
	AI        AIBackend
	Lookups   []resources.Lookup
	Rules     textclean.Rules
	Resources types.ResourceConfig

	// Out receives progress lines. Defaults to io.Discard.
	Out io.Writer
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return io.Discard
}

// Run executes the full pipeline for one company or industry query and
// returns the canonical report.
//
// Scrape and resource-lookup failures degrade in place per the report
// schema; search and AI failures abort the run.
func (r *Runner) Run(ctx context.Context, query string) (types.Report, error) {
	w := r.out()

	fmt.Fprintf(w, "researching: %s\n", query)
	links, err := r.Search.Search(ctx, query+" company profile")
	if err != nil {
		return types.Report{}, fmt.Errorf("searching sources: %w", err)
	}
	if len(links) == 0 {
		return types.Report{}, types.Validationf("no sources found for %q", query)
	}

	fmt.Fprintf(w, "scraping %d sources\n", len(links))
	fragments := r.Scraper.FetchAll(ctx, links)

	fmt.Fprintln(w, "synthesizing overview")
	overviewText, err := overview.Synthesize(ctx, r.AI, fragments, r.Rules)
	if err != nil {
		return types.Report{}, err
	}

	fmt.Fprintln(w, "generating use cases")
	list, err := usecase.Generate(ctx, r.AI, query, overviewText)
	if err != nil {
		return types.Report{}, err
	}

	col := resources.Collect(ctx, list, r.Lookups, r.Resources, w)

	return report.Assemble(overviewText, list, col)
}
