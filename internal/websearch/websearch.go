// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package websearch finds candidate source pages for a research query.
package websearch

import (
	"context"
	"strings"

	"github.com/pdiddy/market-scout/pkg/types"
)

// Provider searches a single web search API. Implementations follow the
// Strategy pattern so tests can supply fakes.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]string, error)
}

// PrioritizeWikipedia moves the first Wikipedia link, when present, to the
// front of the list. Wikipedia pages are the most reliable overview source
// for company profiles, so the scraper reads them first.
func PrioritizeWikipedia(links []string) []string {
	for i, link := range links {
		if strings.Contains(link, "wikipedia.org") {
			reordered := make([]string, 0, len(links))
			reordered = append(reordered, link)
			reordered = append(reordered, links[:i]...)
			reordered = append(reordered, links[i+1:]...)
			return reordered
		}
	}
	return links
}

// maxLinks returns the configured result cap, defaulting to 5.
func maxLinks(cfg types.SearchConfig) int {
	if cfg.MaxLinks > 0 {
		return cfg.MaxLinks
	}
	return 5
}
