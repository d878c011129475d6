// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape extracts paragraph text from candidate source pages.
// Failures degrade to an error string embedded as fragment content: one
// unreachable page never aborts the run.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/market-scout/pkg/types"
)

// noContentMessage is used when a page yields no paragraph text.
const noContentMessage = "No relevant content found."

// unwantedPhrases are call-to-action fragments stripped from extracted text
// before the character cap is applied.
var unwantedPhrases = []string{
	"Read more", "Learn more", "Click here", "Subscribe", "Sign up",
	"Follow us", "Contact us", "Get started", "All rights reserved",
}

// Scraper fetches pages and extracts their paragraph text.
type Scraper struct {
	Client *http.Client
	Config types.ScrapeConfig
}

// maxChars returns the per-page extraction cap, defaulting to 1500.
func (s *Scraper) maxChars() int {
	if s.Config.MaxChars > 0 {
		return s.Config.MaxChars
	}
	return 1500
}

// concurrency returns the fetch parallelism, defaulting to 4.
func (s *Scraper) concurrency() int {
	if s.Config.Concurrency > 0 {
		return s.Config.Concurrency
	}
	return 4
}

// Fetch retrieves one page and returns its extracted fragment. On failure
// the fragment text carries the error description instead; the cleanup
// pipeline downstream treats it as ordinary content.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) types.RawFragment {
	text, err := s.extract(ctx, pageURL)
	if err != nil {
		return types.RawFragment{URL: pageURL, Text: fmt.Sprintf("Error extracting content: %v", err)}
	}
	return types.RawFragment{URL: pageURL, Text: text}
}

// FetchAll retrieves all pages concurrently, preserving input order in the
// returned fragments.
func (s *Scraper) FetchAll(ctx context.Context, urls []string) []types.RawFragment {
	fragments := make([]types.RawFragment, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	for i, u := range urls {
		g.Go(func() error {
			fragments[i] = s.Fetch(ctx, u)
			return nil
		})
	}

	// Fetch never returns an error; failures are embedded in fragments.
	g.Wait()
	return fragments
}

func (s *Scraper) extract(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if s.Config.UserAgent != "" {
		req.Header.Set("User-Agent", s.Config.UserAgent)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	text := strings.Join(parts, " ")
	for _, phrase := range unwantedPhrases {
		text = strings.ReplaceAll(text, phrase, "")
	}

	if text == "" {
		return noContentMessage, nil
	}
	if max := s.maxChars(); len(text) > max {
		text = text[:max]
	}
	return text, nil
}
