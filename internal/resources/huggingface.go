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

// huggingFaceAPIBase is the Hugging Face Hub API root. Declared as a var so
// tests can substitute an httptest server.
var huggingFaceAPIBase = "https://huggingface.co/api"

// HuggingFaceLookup queries the Hugging Face Hub for models, or for
// datasets when Datasets is set.
type HuggingFaceLookup struct {
	Client   *http.Client
	Config   types.ResourceConfig
	Datasets bool
}

// Kind returns the resource category key.
func (l *HuggingFaceLookup) Kind() string {
	if l.Datasets {
		return KindHuggingFaceDatasets
	}
	return KindHuggingFaceModels
}

// NoneMessage returns the explicit empty-result text.
func (l *HuggingFaceLookup) NoneMessage() string {
	if l.Datasets {
		return "No relevant datasets found"
	}
	return "No relevant models found"
}

// Find searches the Hub and returns up to limit entries.
func (l *HuggingFaceLookup) Find(ctx context.Context, query string, limit int) ([]types.ResourceItem, error) {
	path, urlPrefix := "/models", "https://huggingface.co/"
	if l.Datasets {
		path, urlPrefix = "/datasets", "https://huggingface.co/datasets/"
	}

	params := url.Values{
		"search": {query},
		"limit":  {fmt.Sprintf("%d", limit)},
	}
	reqURL := huggingFaceAPIBase + path + "?" + params.Encode()

	resp, err := httputil.GetJSON(ctx, l.Client, reqURL, l.Config.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("hugging face API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hugging face API returned HTTP %d", resp.StatusCode)
	}

	var entries []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing hugging face response: %w", err)
	}

	var items []types.ResourceItem
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		items = append(items, types.FoundResource(e.ID, urlPrefix+e.ID))
		if len(items) == limit {
			break
		}
	}
	return items, nil
}
