// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/market-scout/internal/httputil"
	"github.com/pdiddy/market-scout/pkg/types"
)

// googleSearchBase is the Google Custom Search endpoint. Declared as a var
// so tests can substitute an httptest server.
var googleSearchBase = "https://www.googleapis.com/customsearch/v1"

// GoogleProvider queries the Google Custom Search JSON API.
type GoogleProvider struct {
	Client *http.Client
	Config types.SearchConfig
}

// Name returns the provider identifier.
func (p *GoogleProvider) Name() string { return "google" }

// Search returns the top result links for query, Wikipedia first when one
// appears among them.
func (p *GoogleProvider) Search(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	params := url.Values{
		"q":   {query},
		"key": {p.Config.APIKey},
		"cx":  {p.Config.EngineID},
	}
	reqURL := googleSearchBase + "?" + params.Encode()

	resp, err := httputil.GetJSON(ctx, p.Client, reqURL, p.Config.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("search API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Items []struct {
			Link string `json:"link"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	limit := maxLinks(p.Config)
	var links []string
	for _, item := range body.Items {
		if item.Link == "" {
			continue
		}
		links = append(links, item.Link)
		if len(links) == limit {
			break
		}
	}

	return PrioritizeWikipedia(links), nil
}
