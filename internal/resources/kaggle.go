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

// kaggleAPIBase is the Kaggle public API root. Declared as a var so tests
// can substitute an httptest server.
var kaggleAPIBase = "https://www.kaggle.com/api/v1"

// KaggleLookup queries the Kaggle dataset list API with basic auth.
type KaggleLookup struct {
	Client *http.Client
	Config types.ResourceConfig
}

// Kind returns the resource category key.
func (l *KaggleLookup) Kind() string { return KindKaggleDatasets }

// NoneMessage returns the explicit empty-result text.
func (l *KaggleLookup) NoneMessage() string { return "No relevant datasets found" }

// Find searches Kaggle datasets and returns up to limit entries.
func (l *KaggleLookup) Find(ctx context.Context, query string, limit int) ([]types.ResourceItem, error) {
	params := url.Values{"search": {query}}
	reqURL := kaggleAPIBase + "/datasets/list?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if l.Config.UserAgent != "" {
		req.Header.Set("User-Agent", l.Config.UserAgent)
	}
	if l.Config.KaggleUsername != "" {
		req.SetBasicAuth(l.Config.KaggleUsername, l.Config.KaggleKey)
	}

	resp, err := httputil.DoWithRetry(ctx, l.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("kaggle API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kaggle API returned HTTP %d", resp.StatusCode)
	}

	var entries []struct {
		Ref string `json:"ref"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing kaggle response: %w", err)
	}

	var items []types.ResourceItem
	for _, e := range entries {
		if e.Ref == "" {
			continue
		}
		items = append(items, types.FoundResource(e.Ref, "https://www.kaggle.com/datasets/"+e.Ref))
		if len(items) == limit {
			break
		}
	}
	return items, nil
}
