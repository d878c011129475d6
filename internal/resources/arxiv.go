// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resources

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/market-scout/internal/httputil"
	"github.com/pdiddy/market-scout/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivLookup queries the arXiv API for research papers.
type ArxivLookup struct {
	Client *http.Client
	Config types.ResourceConfig
}

// Kind returns the resource category key.
func (l *ArxivLookup) Kind() string { return KindResearchPapers }

// NoneMessage returns the explicit empty-result text.
func (l *ArxivLookup) NoneMessage() string { return "No papers found" }

// Find searches arXiv and returns up to limit papers. Paper titles become
// the item names; the abstract page URL the item link.
func (l *ArxivLookup) Find(ctx context.Context, query string, limit int) ([]types.ResourceItem, error) {
	params := url.Values{
		"search_query": {query},
		"start":        {"0"},
		"max_results":  {fmt.Sprintf("%d", limit)},
	}
	reqURL := arxivAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if l.Config.UserAgent != "" {
		req.Header.Set("User-Agent", l.Config.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, l.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var items []types.ResourceItem
	for _, entry := range feed.Entries {
		title := strings.TrimSpace(entry.Title)
		link := strings.TrimSpace(entry.ID)
		if title == "" || link == "" {
			continue
		}
		items = append(items, types.FoundResource(title, link))
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID    string `xml:"id"`
	Title string `xml:"title"`
}
