// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/market-scout/internal/httputil"
	"github.com/pdiddy/market-scout/pkg/types"
)

// gitHubAPIBase is the GitHub REST API root. Declared as a var so tests can
// substitute an httptest server.
var gitHubAPIBase = "https://api.github.com"

// GitHubLookup queries the GitHub repository search API, stars descending.
type GitHubLookup struct {
	Client *http.Client
	Config types.ResourceConfig
}

// Kind returns the resource category key.
func (l *GitHubLookup) Kind() string { return KindGitHubRepositories }

// NoneMessage returns the explicit empty-result text.
func (l *GitHubLookup) NoneMessage() string { return "No relevant repositories found" }

// Find searches repositories and returns up to limit entries.
func (l *GitHubLookup) Find(ctx context.Context, query string, limit int) ([]types.ResourceItem, error) {
	params := url.Values{
		"q":        {query},
		"sort":     {"stars"},
		"order":    {"desc"},
		"per_page": {fmt.Sprintf("%d", limit)},
	}
	reqURL := gitHubAPIBase + "/search/repositories?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if l.Config.UserAgent != "" {
		req.Header.Set("User-Agent", l.Config.UserAgent)
	}
	if l.Config.GitHubToken != "" {
		req.Header.Set("Authorization", "token "+l.Config.GitHubToken)
	}

	resp, err := httputil.DoWithRetry(ctx, l.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("github API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github API returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Items []struct {
			FullName string `json:"full_name"`
			HTMLURL  string `json:"html_url"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing github response: %w", err)
	}

	var items []types.ResourceItem
	for _, repo := range body.Items {
		if repo.FullName == "" {
			continue
		}
		items = append(items, types.FoundResource(repo.FullName, repo.HTMLURL))
		if len(items) == limit {
			break
		}
	}
	return items, nil
}
